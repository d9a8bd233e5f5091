package ws

import (
	"sync"

	"go-estate/engine"
	"go-estate/entities"
	"go-estate/logger"
	"go-estate/repository"

	"github.com/gorilla/websocket"
	"github.com/mitchellh/mapstructure"
)

// 引擎不做内部加锁，所有改状态的动作串行执行
var actionLock sync.Mutex

type actionHandler func(conn *websocket.Conn, roomID, playerID string, msg map[string]interface{})

var actionHandlers = map[string]actionHandler{
	"roll_start_dice":      handleRollStartDice,
	"preview_land":         handlePreviewLand,
	"buy_land":             handleBuyLand,
	"skip_land":            handleSkipLand,
	"steal_land":           handleStealLand,
	"preview_design":       handlePreviewDesign,
	"pick_design":          handlePickDesign,
	"preview_construction": handlePreviewConstruction,
	"pick_constructor":     handlePickConstructor,
	"resolve_risks":        handleResolveRisks,
	"preview_evaluation":   handlePreviewEvaluation,
	"evaluate":             handleEvaluate,
	"use_wildcard":         handleUseWildcard,
	"sell_building":        handleSellBuilding,
	"repay_loan":           handleRepayLoan,
	"abandon_project":      handleAbandonProject,
	"end_turn":             handleEndTurn,
}

// decodePayload 把消息体宽松落到结构体（数字经 json 解出来都是 float64）
func decodePayload(msg map[string]interface{}, out interface{}) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "json",
		WeaklyTypedInput: true,
		Result:           out,
	})
	if err != nil {
		return err
	}
	return decoder.Decode(msg)
}

// requireGame 取对局，不存在时直接回错
func requireGame(conn *websocket.Conn, roomID, action string) *engine.GameContext {
	g := gameOf(roomID)
	if g == nil {
		sendResult(conn, action, false, string(engine.CodePrecondition), "对局还没有开始", nil)
	}
	return g
}

// 人满后也可由玩家显式发起开局（比如重连后房主补一脚）
func handleRollStartDice(conn *websocket.Conn, roomID, playerID string, msg map[string]interface{}) {
	if gameOf(roomID) != nil {
		sendResult(conn, "roll_start_dice", false, string(engine.CodeInvalidPhase), "游戏已经开始", nil)
		return
	}
	roomInfo, err := GetRoomInfo(repository.Rdb, roomID)
	if err != nil {
		sendResult(conn, "roll_start_dice", false, string(engine.CodePrecondition), "房间不存在", nil)
		return
	}
	if getRoomPlayerCount(roomID) < roomInfo.MaxPlayers {
		sendResult(conn, "roll_start_dice", false, string(engine.CodePrecondition), "人还没齐", nil)
		return
	}
	if err := startRoomGame(roomID, roomInfo); err != nil {
		sendResult(conn, "roll_start_dice", false, string(engine.CodePrecondition), "开局失败", nil)
		return
	}
	sendResult(conn, "roll_start_dice", true, string(engine.CodeOK), "", nil)
	broadcastRaw(roomID, map[string]string{"type": "start"})
	broadcastSync(roomID)
}

type landPayload struct {
	LandID string `json:"landId"`
	Tier   string `json:"tier"`
}

func handlePreviewLand(conn *websocket.Conn, roomID, playerID string, msg map[string]interface{}) {
	g := requireGame(conn, roomID, "preview_land")
	if g == nil {
		return
	}
	var p landPayload
	if err := decodePayload(msg, &p); err != nil {
		sendResult(conn, "preview_land", false, "badPayload", "参数解析失败", nil)
		return
	}
	actionLock.Lock()
	quote, out := g.PreviewLand(playerID, p.LandID, entities.PriceTier(p.Tier))
	actionLock.Unlock()
	sendResult(conn, "preview_land", out.OK, string(out.Code), out.Message, quote)
}

func handleBuyLand(conn *websocket.Conn, roomID, playerID string, msg map[string]interface{}) {
	g := requireGame(conn, roomID, "buy_land")
	if g == nil {
		return
	}
	var p landPayload
	if err := decodePayload(msg, &p); err != nil {
		sendResult(conn, "buy_land", false, "badPayload", "参数解析失败", nil)
		return
	}

	actionLock.Lock()
	dice, out := g.BuyLand(playerID, p.LandID, entities.PriceTier(p.Tier))
	if out.OK {
		g.AdvanceTurn()
	}
	actionLock.Unlock()

	data := map[string]interface{}{"dice": dice}
	sendResult(conn, "buy_land", out.OK, string(out.Code), out.Message, data)
	// 掷骰失败也改了状态（记了失败标记），同样要落快照并广播
	if out.OK || out.Code == engine.CodeDiceFailure {
		afterAction(roomID)
	}
}

func handleSkipLand(conn *websocket.Conn, roomID, playerID string, msg map[string]interface{}) {
	g := requireGame(conn, roomID, "skip_land")
	if g == nil {
		return
	}
	actionLock.Lock()
	out := g.SkipLand(playerID)
	if out.OK {
		g.AdvanceTurn()
	}
	actionLock.Unlock()

	sendResult(conn, "skip_land", out.OK, string(out.Code), out.Message, nil)
	if out.OK {
		afterAction(roomID)
	}
}

type stealPayload struct {
	VictimID string `json:"victimId"`
}

func handleStealLand(conn *websocket.Conn, roomID, playerID string, msg map[string]interface{}) {
	g := requireGame(conn, roomID, "steal_land")
	if g == nil {
		return
	}
	var p stealPayload
	if err := decodePayload(msg, &p); err != nil {
		sendResult(conn, "steal_land", false, "badPayload", "参数解析失败", nil)
		return
	}
	actionLock.Lock()
	out := g.StealLand(playerID, p.VictimID)
	if out.OK {
		g.AdvanceTurn()
	}
	actionLock.Unlock()

	sendResult(conn, "steal_land", out.OK, string(out.Code), out.Message, nil)
	if out.OK {
		afterAction(roomID)
	}
}

type designPayload struct {
	ArchitectID string `json:"architectId"`
	Building    string `json:"building"`
}

func handlePreviewDesign(conn *websocket.Conn, roomID, playerID string, msg map[string]interface{}) {
	g := requireGame(conn, roomID, "preview_design")
	if g == nil {
		return
	}
	var p designPayload
	if err := decodePayload(msg, &p); err != nil {
		sendResult(conn, "preview_design", false, "badPayload", "参数解析失败", nil)
		return
	}
	actionLock.Lock()
	quote, out := g.PreviewDesign(playerID, p.ArchitectID, p.Building)
	actionLock.Unlock()
	sendResult(conn, "preview_design", out.OK, string(out.Code), out.Message, quote)
}

func handlePickDesign(conn *websocket.Conn, roomID, playerID string, msg map[string]interface{}) {
	g := requireGame(conn, roomID, "pick_design")
	if g == nil {
		return
	}
	var p designPayload
	if err := decodePayload(msg, &p); err != nil {
		sendResult(conn, "pick_design", false, "badPayload", "参数解析失败", nil)
		return
	}
	actionLock.Lock()
	out := g.PickDesign(playerID, p.ArchitectID, p.Building)
	if out.OK {
		g.AdvanceTurn()
	}
	actionLock.Unlock()

	sendResult(conn, "pick_design", out.OK, string(out.Code), out.Message, nil)
	if out.OK {
		afterAction(roomID)
	}
}

type constructorPayload struct {
	ConstructorID string `json:"constructorId"`
}

func handlePreviewConstruction(conn *websocket.Conn, roomID, playerID string, msg map[string]interface{}) {
	g := requireGame(conn, roomID, "preview_construction")
	if g == nil {
		return
	}
	var p constructorPayload
	if err := decodePayload(msg, &p); err != nil {
		sendResult(conn, "preview_construction", false, "badPayload", "参数解析失败", nil)
		return
	}
	actionLock.Lock()
	quote, out := g.PreviewConstruction(playerID, p.ConstructorID)
	actionLock.Unlock()
	sendResult(conn, "preview_construction", out.OK, string(out.Code), out.Message, quote)
}

// 签约施工方后把抽到的风险手牌回给玩家，等待 resolve_risks
func handlePickConstructor(conn *websocket.Conn, roomID, playerID string, msg map[string]interface{}) {
	g := requireGame(conn, roomID, "pick_constructor")
	if g == nil {
		return
	}
	var p constructorPayload
	if err := decodePayload(msg, &p); err != nil {
		sendResult(conn, "pick_constructor", false, "badPayload", "参数解析失败", nil)
		return
	}
	actionLock.Lock()
	out := g.HireConstructor(playerID, p.ConstructorID)
	var risks []entities.Risk
	if out.OK {
		if pl := g.FindPlayer(playerID); pl != nil && pl.Project != nil {
			risks = pl.Project.Risks
		}
	}
	actionLock.Unlock()

	sendResult(conn, "pick_constructor", out.OK, string(out.Code), out.Message,
		map[string]interface{}{"risks": risks})
	if out.OK {
		afterAction(roomID)
	}
}

type resolveRisksPayload struct {
	Blocks []string `json:"blocks"`
}

func handleResolveRisks(conn *websocket.Conn, roomID, playerID string, msg map[string]interface{}) {
	g := requireGame(conn, roomID, "resolve_risks")
	if g == nil {
		return
	}
	var p resolveRisksPayload
	if err := decodePayload(msg, &p); err != nil {
		sendResult(conn, "resolve_risks", false, "badPayload", "参数解析失败", nil)
		return
	}
	actionLock.Lock()
	report, out := g.ResolveRisks(playerID, p.Blocks)
	// 天灾毁约也算结算完成，照样交出行动权
	if out.OK || out.Code == engine.CodeCatastrophe {
		g.AdvanceTurn()
	}
	actionLock.Unlock()

	sendResult(conn, "resolve_risks", out.OK, string(out.Code), out.Message, report)
	if out.OK || out.Code == engine.CodeCatastrophe {
		afterAction(roomID)
	}
}

func handlePreviewEvaluation(conn *websocket.Conn, roomID, playerID string, msg map[string]interface{}) {
	g := requireGame(conn, roomID, "preview_evaluation")
	if g == nil {
		return
	}
	actionLock.Lock()
	val, out := g.PreviewEvaluation(playerID)
	actionLock.Unlock()
	sendResult(conn, "preview_evaluation", out.OK, string(out.Code), out.Message, val)
}

func handleEvaluate(conn *websocket.Conn, roomID, playerID string, msg map[string]interface{}) {
	g := requireGame(conn, roomID, "evaluate")
	if g == nil {
		return
	}
	actionLock.Lock()
	val, out := g.Evaluate(playerID)
	if out.OK {
		g.AdvanceTurn()
	}
	actionLock.Unlock()

	sendResult(conn, "evaluate", out.OK, string(out.Code), out.Message, val)
	if out.OK {
		afterAction(roomID)
	}
}

type wildcardPayload struct {
	WildcardID string `json:"wildcardId"`
}

func handleUseWildcard(conn *websocket.Conn, roomID, playerID string, msg map[string]interface{}) {
	g := requireGame(conn, roomID, "use_wildcard")
	if g == nil {
		return
	}
	var p wildcardPayload
	if err := decodePayload(msg, &p); err != nil {
		sendResult(conn, "use_wildcard", false, "badPayload", "参数解析失败", nil)
		return
	}
	actionLock.Lock()
	out := g.UseWildcard(playerID, p.WildcardID)
	actionLock.Unlock()

	sendResult(conn, "use_wildcard", out.OK, string(out.Code), out.Message, nil)
	if out.OK {
		afterAction(roomID)
	}
}

type sellPayload struct {
	Index int `json:"index"`
}

func handleSellBuilding(conn *websocket.Conn, roomID, playerID string, msg map[string]interface{}) {
	g := requireGame(conn, roomID, "sell_building")
	if g == nil {
		return
	}
	var p sellPayload
	if err := decodePayload(msg, &p); err != nil {
		sendResult(conn, "sell_building", false, "badPayload", "参数解析失败", nil)
		return
	}
	actionLock.Lock()
	out := g.SellBuilding(playerID, p.Index)
	actionLock.Unlock()

	sendResult(conn, "sell_building", out.OK, string(out.Code), out.Message, nil)
	if out.OK {
		afterAction(roomID)
	}
}

type repayPayload struct {
	Amount int64 `json:"amount"`
}

func handleRepayLoan(conn *websocket.Conn, roomID, playerID string, msg map[string]interface{}) {
	g := requireGame(conn, roomID, "repay_loan")
	if g == nil {
		return
	}
	var p repayPayload
	if err := decodePayload(msg, &p); err != nil {
		sendResult(conn, "repay_loan", false, "badPayload", "参数解析失败", nil)
		return
	}
	actionLock.Lock()
	out := g.RepayLoan(playerID, p.Amount)
	actionLock.Unlock()

	sendResult(conn, "repay_loan", out.OK, string(out.Code), out.Message, nil)
	if out.OK {
		afterAction(roomID)
	}
}

func handleAbandonProject(conn *websocket.Conn, roomID, playerID string, msg map[string]interface{}) {
	g := requireGame(conn, roomID, "abandon_project")
	if g == nil {
		return
	}
	actionLock.Lock()
	out := g.AbandonProject(playerID)
	if out.OK {
		g.AdvanceTurn()
	}
	actionLock.Unlock()

	sendResult(conn, "abandon_project", out.OK, string(out.Code), out.Message, nil)
	if out.OK {
		afterAction(roomID)
	}
}

func handleEndTurn(conn *websocket.Conn, roomID, playerID string, msg map[string]interface{}) {
	g := requireGame(conn, roomID, "end_turn")
	if g == nil {
		return
	}
	actionLock.Lock()
	cur := g.CurrentPlayer()
	if cur == nil || cur.ID != playerID {
		actionLock.Unlock()
		sendResult(conn, "end_turn", false, string(engine.CodeNotYourTurn), "还没轮到你行动", nil)
		return
	}
	g.AdvanceTurn()
	actionLock.Unlock()

	logger.L.Debugf("玩家 %s 结束行动", playerID)
	sendResult(conn, "end_turn", true, string(engine.CodeOK), "", nil)
	afterAction(roomID)
}
