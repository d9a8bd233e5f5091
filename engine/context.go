package engine

import (
	"fmt"

	"go-estate/const_data"
	"go-estate/entities"
)

// Phase 游戏阶段
type Phase string

const (
	PhaseSetup        Phase = "setup"
	PhaseLandPurchase Phase = "landPurchase"
	PhaseDesign       Phase = "design"
	PhaseConstruction Phase = "construction"
	PhaseEvaluation   Phase = "evaluation"
	PhaseGameEnd      Phase = "gameEnd"
)

const (
	DefaultMaxRounds = 5
	StartingCash     = 500_000_000
	deckRefillFloor  = 4 // 设计师/施工方牌堆低于此张数时回合末补牌
	logTailLimit     = 50
)

// GameContext 一局游戏的全部可变状态。没有包级单例，
// 所有结算器都是它的方法，按值传引用显式流转。
type GameContext struct {
	RoomID    string
	Players   []*entities.Player
	Round     int
	MaxRounds int
	Phase     Phase
	Current   int // 当前行动玩家下标
	Starter   int // 本回合起始玩家下标

	LandDeck        *Deck[entities.Land]
	ArchitectDeck   *Deck[entities.Architect]
	ConstructorDeck *Deck[entities.Constructor]
	RiskDeck        *Deck[entities.Risk]

	Grid *CityGrid

	// 占用表：卡 id → 玩家 id，设计师/施工方的回合内独占
	Claims map[string]string
	// 购地失败记录：landID|playerID，当回合内禁止再走非市价渠道
	PendingFail map[string]bool

	LogTail []string

	rng     *RNG
	projSeq int
}

// NewGame 创建一局游戏并洗好四副牌
func NewGame(roomID string, playerIDs []string, seed uint64, maxRounds int) *GameContext {
	if maxRounds <= 0 {
		maxRounds = DefaultMaxRounds
	}
	g := &GameContext{
		RoomID:      roomID,
		Round:       1,
		MaxRounds:   maxRounds,
		Phase:       PhaseSetup,
		Grid:        NewCityGrid(),
		Claims:      make(map[string]string),
		PendingFail: make(map[string]bool),
		rng:         NewRNG(seed),
	}
	for _, id := range playerIDs {
		g.Players = append(g.Players, &entities.Player{
			ID:           id,
			Name:         id,
			Cash:         StartingCash,
			InterestRate: DefaultLoanRate,
		})
	}
	g.buildDecks()
	return g
}

func (g *GameContext) buildDecks() {
	g.LandDeck = NewDeck(g.rng, const_data.LandList)
	g.ArchitectDeck = NewDeck(g.rng, const_data.ArchitectList)
	g.ConstructorDeck = NewDeck(g.rng, const_data.ConstructorList)
	g.LandDeck.Shuffle()
	g.ArchitectDeck.Shuffle()
	g.ConstructorDeck.Shuffle()
	g.RiskDeck = BuildWeighted(g.rng, const_data.RiskTemplates, const_data.RiskWeight)
}

// RNG 暴露随机源（宿主层发万能卡、测试注入用）
func (g *GameContext) RNG() *RNG {
	return g.rng
}

// SetRNG 快照恢复后重建随机源
func (g *GameContext) SetRNG(rng *RNG) {
	g.rng = rng
}

// FindPlayer 按 id 找玩家，找不到返回 nil
func (g *GameContext) FindPlayer(id string) *entities.Player {
	for _, p := range g.Players {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// CurrentPlayer 当前行动玩家
func (g *GameContext) CurrentPlayer() *entities.Player {
	if len(g.Players) == 0 {
		return nil
	}
	return g.Players[g.Current]
}

// Claim 占用一张设计师/施工方卡，同一回合内独占
func (g *GameContext) Claim(cardID, playerID string) Outcome {
	if holder, ok := g.Claims[cardID]; ok {
		return Fail(CodeCardClaimed, fmt.Sprintf("卡[%s]已被玩家[%s]占用", cardID, holder))
	}
	g.Claims[cardID] = playerID
	return Ok()
}

// ReleaseBy 释放某玩家占用的全部卡（弃置/出售项目时一次性释放）
func (g *GameContext) ReleaseBy(playerID string) {
	for cardID, holder := range g.Claims {
		if holder == playerID {
			delete(g.Claims, cardID)
		}
	}
}

func failKey(landID, playerID string) string {
	return landID + "|" + playerID
}

// Logf 追加一条有界日志尾巴（随快照持久化）
func (g *GameContext) Logf(format string, args ...interface{}) {
	g.LogTail = append(g.LogTail, fmt.Sprintf(format, args...))
	if len(g.LogTail) > logTailLimit {
		g.LogTail = g.LogTail[len(g.LogTail)-logTailLimit:]
	}
}

func (g *GameContext) newProjectID() string {
	g.projSeq++
	return fmt.Sprintf("%s-p%d", g.RoomID, g.projSeq)
}

// guardTurn 通用前置：阶段正确且轮到该玩家
func (g *GameContext) guardTurn(playerID string, phase Phase) (*entities.Player, Outcome) {
	if g.Phase != phase {
		return nil, Fail(CodeInvalidPhase, fmt.Sprintf("当前阶段是 %s，不能执行 %s 的操作", g.Phase, phase))
	}
	p := g.CurrentPlayer()
	if p == nil || p.ID != playerID {
		return nil, Fail(CodeNotYourTurn, "还没轮到该玩家行动")
	}
	return p, Ok()
}
