package ws

import (
	"sync"
	"time"

	"go-estate/dto"
	"go-estate/engine"
	"go-estate/logger"
	"go-estate/repository"
	"go-estate/utils"
)

// 内存中的对局表：roomID → 引擎上下文。快照落 redis，重启后可恢复。
var games = make(map[string]*engine.GameContext)
var gamesLock sync.Mutex

func gameOf(roomID string) *engine.GameContext {
	gamesLock.Lock()
	defer gamesLock.Unlock()
	return games[roomID]
}

// DropGame 房间销毁时移除对局
func DropGame(roomID string) {
	gamesLock.Lock()
	defer gamesLock.Unlock()
	delete(games, roomID)
}

// startRoomGame 人满开局：优先从快照恢复断局，否则按座位顺序开新局
func startRoomGame(roomID string, roomInfo dto.RoomInfo) error {
	seed := uint64(time.Now().UnixNano())

	if snap, ok := LoadSnapshot(roomID); ok {
		g := engine.Restore(snap, seed)
		gamesLock.Lock()
		games[roomID] = g
		gamesLock.Unlock()
		logger.L.Infof("✅ 房间 %s 从快照恢复，第 %d 回合", roomID, g.Round)
		return nil
	}

	RoomLock.Lock()
	playerIDs := make([]string, 0, len(Rooms[roomID]))
	for _, pc := range Rooms[roomID] {
		playerIDs = append(playerIDs, pc.PlayerID)
	}
	RoomLock.Unlock()

	g := engine.NewGame(roomID, playerIDs, seed, roomInfo.MaxRounds)
	if out := g.StartGame(); !out.OK {
		logger.L.Warnf("⚠️ 开局异常: %s", out.Message)
	}

	gamesLock.Lock()
	games[roomID] = g
	gamesLock.Unlock()

	roomInfo.Started = true
	if err := SetRoomInfo(repository.Rdb, roomID, roomInfo); err != nil {
		logger.L.Warnf("⚠️ 更新房间状态失败: %v", err)
	}
	if err := SaveSnapshot(g); err != nil {
		logger.L.Warnf("⚠️ 保存开局快照失败: %v", err)
	}
	logger.L.Infof("✅ 房间 %s 开局，玩家 %v", roomID, playerIDs)
	return nil
}

// buildRoomView 组装广播给前端的房间视图
func buildRoomView(roomID string) map[string]interface{} {
	g := gameOf(roomID)
	if g == nil {
		return map[string]interface{}{"started": false}
	}
	snap := g.Snapshot()

	currentID := ""
	if p := g.CurrentPlayer(); p != nil {
		currentID = p.ID
	}
	view := map[string]interface{}{
		"started":       true,
		"round":         snap.Round,
		"maxRounds":     snap.MaxRounds,
		"phase":         snap.Phase,
		"currentPlayer": currentID,
		"players":       snap.Players,
		"lands":         snap.Lands,
		"architects":    snap.Architects,
		"constructors":  snap.Constructors,
		"cells":         snap.Cells,
		"claims":        snap.Claims,
		"logTail":       utils.TailLines(snap.LogTail, 50),
	}
	if g.Phase == engine.PhaseGameEnd {
		view["scores"] = g.FinalScores()
	}
	return view
}

// afterAction 动作成功后的统一收尾：存快照、广播、终局归档
func afterAction(roomID string) {
	g := gameOf(roomID)
	if g == nil {
		return
	}
	if err := SaveSnapshot(g); err != nil {
		logger.L.Warnf("⚠️ 保存快照失败: %v", err)
	}
	broadcastSync(roomID)

	if g.Phase == engine.PhaseGameEnd {
		scores := g.FinalScores()
		if err := repository.ArchiveResults(roomID, scores); err != nil {
			logger.L.Warnf("⚠️ 归档对局结果失败: %v", err)
		}
		broadcastRaw(roomID, map[string]interface{}{
			"type":   "game_over",
			"scores": scores,
		})
		logger.L.Infof("🏁 房间 %s 对局结束", roomID)
	}
}
