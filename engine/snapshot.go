package engine

import (
	"go-estate/const_data"
	"go-estate/dto"
	"go-estate/entities"
)

// Snapshot 导出整局状态（宿主层负责编码与存取）
func (g *GameContext) Snapshot() dto.Snapshot {
	snap := dto.Snapshot{
		RoomID:       g.RoomID,
		Round:        g.Round,
		MaxRounds:    g.MaxRounds,
		Phase:        string(g.Phase),
		Current:      g.Current,
		Starter:      g.Starter,
		Players:      g.Players,
		Lands:        g.LandDeck.Items(),
		Architects:   g.ArchitectDeck.Items(),
		Constructors: g.ConstructorDeck.Items(),
		Risks:        g.RiskDeck.Items(),
		Claims:       g.Claims,
		LogTail:      g.LogTail,
		ProjSeq:      g.projSeq,
	}
	for r := 0; r < GridSize; r++ {
		for c := 0; c < GridSize; c++ {
			snap.Cells = append(snap.Cells, g.Grid.Cells[r][c])
		}
	}
	for key := range g.PendingFail {
		snap.PendingFail = append(snap.PendingFail, key)
	}
	return snap
}

// Restore 从快照重建。缺失的牌堆按目录重新生成，
// 缺失的网格/占用表退回初始值——旧档照样能读。
func Restore(snap dto.Snapshot, seed uint64) *GameContext {
	g := &GameContext{
		RoomID:      snap.RoomID,
		Round:       snap.Round,
		MaxRounds:   snap.MaxRounds,
		Phase:       Phase(snap.Phase),
		Current:     snap.Current,
		Starter:     snap.Starter,
		Players:     snap.Players,
		Grid:        NewCityGrid(),
		Claims:      snap.Claims,
		PendingFail: make(map[string]bool),
		LogTail:     snap.LogTail,
		rng:         NewRNG(seed),
		projSeq:     snap.ProjSeq,
	}
	if g.MaxRounds <= 0 {
		g.MaxRounds = DefaultMaxRounds
	}
	if g.Round <= 0 {
		g.Round = 1
	}
	if g.Phase == "" {
		g.Phase = PhaseSetup
	}
	if g.Claims == nil {
		g.Claims = make(map[string]string)
	}

	// 牌堆：字段在快照里出现过就按快照恢复（空牌堆也是合法状态，
	// 不能把已卖出的地重新生出来），字段缺失才按目录重建
	if snap.Lands != nil {
		g.LandDeck = NewDeck(g.rng, snap.Lands)
	} else {
		g.LandDeck = NewDeck(g.rng, const_data.LandList)
		g.LandDeck.Shuffle()
	}
	if snap.Architects != nil {
		g.ArchitectDeck = NewDeck(g.rng, snap.Architects)
	} else {
		g.ArchitectDeck = NewDeck(g.rng, const_data.ArchitectList)
		g.ArchitectDeck.Shuffle()
	}
	if snap.Constructors != nil {
		g.ConstructorDeck = NewDeck(g.rng, snap.Constructors)
	} else {
		g.ConstructorDeck = NewDeck(g.rng, const_data.ConstructorList)
		g.ConstructorDeck.Shuffle()
	}
	if snap.Risks != nil {
		g.RiskDeck = NewDeck(g.rng, snap.Risks)
	} else {
		g.RiskDeck = BuildWeighted(g.rng, const_data.RiskTemplates, const_data.RiskWeight)
	}

	for _, cell := range snap.Cells {
		if cell.Row >= 0 && cell.Row < GridSize && cell.Col >= 0 && cell.Col < GridSize {
			g.Grid.Cells[cell.Row][cell.Col] = cell
		}
	}
	for _, key := range snap.PendingFail {
		g.PendingFail[key] = true
	}
	if g.Players == nil {
		g.Players = []*entities.Player{}
	}
	return g
}
