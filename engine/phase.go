package engine

import (
	"sort"

	"go-estate/const_data"
	"go-estate/entities"
)

// StartGame 起始骰定先手，进入第一回合的购地阶段
func (g *GameContext) StartGame() Outcome {
	if g.Phase != PhaseSetup {
		return Fail(CodeInvalidPhase, "游戏已经开始")
	}
	if len(g.Players) == 0 {
		return Fail(CodePrecondition, "房间里没有玩家")
	}

	// 每人掷两枚起始骰，点数最高者先手，平局取先出现的
	best := -1
	for i, p := range g.Players {
		p.StartDice = g.rng.Dice() + g.rng.Dice()
		if p.StartDice > best {
			best = p.StartDice
			g.Starter = i
		}
	}
	g.Current = g.Starter
	g.openProjects()
	g.Phase = PhaseLandPurchase
	g.Logf("游戏开始，玩家[%s]先手（起始骰 %d）", g.Players[g.Starter].ID, best)
	return Ok()
}

// openProjects 回合开始时给每位玩家开一个空项目
func (g *GameContext) openProjects() {
	for _, p := range g.Players {
		p.Project = &entities.Project{
			ID:         g.newProjectID(),
			EvalFactor: 1.0,
			RateFactor: 1.0,
		}
	}
}

// playerDone 当前阶段下该玩家是否已无事可做
func (g *GameContext) playerDone(p *entities.Player) bool {
	proj := p.Project
	switch g.Phase {
	case PhaseLandPurchase:
		return p.Flags.Skipped || (proj != nil && proj.Land != nil)
	case PhaseDesign:
		if p.Flags.Skipped || proj == nil || proj.Land == nil {
			return true // 没有土地，自动跳过
		}
		return proj.Architect != nil && proj.Building != nil
	case PhaseConstruction:
		if p.Flags.Skipped || proj == nil || proj.Building == nil {
			return true
		}
		return proj.Constructor != nil && proj.RiskResolved
	case PhaseEvaluation:
		if p.Flags.Skipped || proj == nil || proj.Constructor == nil || !proj.RiskResolved {
			return true
		}
		if proj.Ruined {
			return true // 全损项目不参与评估
		}
		return proj.Evaluated
	}
	return true
}

// roundComplete 阶段推进判定：所有玩家都完成（或自动跳过）才整体换阶段
func (g *GameContext) roundComplete() bool {
	for _, p := range g.Players {
		if !g.playerDone(p) {
			return false
		}
	}
	return true
}

// AdvanceTurn 一次行动提交后调用：
// 全员完成则换阶段，否则把行动权交给下一个还没完成的玩家
func (g *GameContext) AdvanceTurn() {
	if g.Phase == PhaseSetup || g.Phase == PhaseGameEnd {
		return
	}
	if g.roundComplete() {
		g.advancePhase()
		return
	}
	for i := 1; i <= len(g.Players); i++ {
		next := (g.Current + i) % len(g.Players)
		if !g.playerDone(g.Players[next]) {
			g.Current = next
			return
		}
	}
}

// advancePhase 阶段切换后行动权总是回到本回合起始玩家
func (g *GameContext) advancePhase() {
	switch g.Phase {
	case PhaseLandPurchase:
		g.Phase = PhaseDesign
	case PhaseDesign:
		g.Phase = PhaseConstruction
	case PhaseConstruction:
		g.Phase = PhaseEvaluation
	case PhaseEvaluation:
		g.endRound()
		return
	}
	g.Current = g.Starter
	g.Logf("进入阶段 %s", g.Phase)
	// 新阶段可能无人有事可做（比如全员打工），直接继续推进
	if g.roundComplete() {
		g.advancePhase()
		return
	}
	// 起点玩家若已无事可做，顺延到第一个有动作的玩家
	if g.playerDone(g.Players[g.Current]) {
		g.AdvanceTurn()
	}
}

// endRound 回合结算：完工项目沉淀为资产（不发现金），
// 只有土地的项目弃置并腾格，贷款一律保留
func (g *GameContext) endRound() {
	for _, p := range g.Players {
		proj := p.Project
		if proj == nil {
			continue
		}
		switch {
		case proj.Ruined:
			// 灾难全损：建筑价值归零，土地按裸地残值入账
			p.Buildings = append(p.Buildings, entities.CompletedBuilding{
				Name:   proj.Building.Name,
				LandID: proj.Land.ID,
				Value:  proj.Land.PriceMarket / 2,
				Round:  g.Round,
				Ruined: true,
			})
			g.Grid.MarkBuilt(p.ID, proj.ID, "废墟")
		case proj.Building != nil && proj.Constructor != nil && proj.RiskResolved:
			p.Buildings = append(p.Buildings, entities.CompletedBuilding{
				Name:   proj.Building.Name,
				LandID: proj.Land.ID,
				Value:  proj.SalePrice,
				Round:  g.Round,
			})
			g.Grid.MarkBuilt(p.ID, proj.ID, proj.Building.Name)
		case proj.Land != nil:
			// 只买了地没盖楼：弃置，格子腾出
			g.Grid.Vacate(p.ID, proj.ID)
			g.Logf("玩家[%s]的地块[%s]流转弃置", p.ID, proj.Land.ID)
		}
		p.Project = nil
		p.Flags = entities.RoundFlags{}
	}
	g.Claims = make(map[string]string)
	g.PendingFail = make(map[string]bool)

	g.Round++
	if g.Round > g.MaxRounds {
		g.Phase = PhaseGameEnd
		g.Logf("全部 %d 回合结束", g.MaxRounds)
		return
	}

	g.refillDecks()
	g.Starter = (g.Starter + 1) % len(g.Players)
	g.Current = g.Starter
	g.openProjects()
	g.Phase = PhaseLandPurchase
	g.Logf("第 %d 回合开始，玩家[%s]先手", g.Round, g.Players[g.Starter].ID)
}

// refillDecks 牌堆低水位补牌；设计师/施工方去重，风险堆整体重建
func (g *GameContext) refillDecks() {
	if g.ArchitectDeck.Size() < deckRefillFloor {
		existing := make(map[string]bool)
		for _, a := range g.ArchitectDeck.Items() {
			existing[a.ID] = true
		}
		g.ArchitectDeck.Refill(func() []entities.Architect { return const_data.ArchitectList }, existing)
	}
	if g.ConstructorDeck.Size() < deckRefillFloor {
		existing := make(map[string]bool)
		for _, c := range g.ConstructorDeck.Items() {
			existing[c.ID] = true
		}
		g.ConstructorDeck.Refill(func() []entities.Constructor { return const_data.ConstructorList }, existing)
	}
	if g.RiskDeck.Size() < deckRefillFloor*2 {
		g.RiskDeck = BuildWeighted(g.rng, const_data.RiskTemplates, const_data.RiskWeight)
	}
}

// Score 终局排名条目
type Score struct {
	Rank          int    `json:"rank"`
	PlayerID      string `json:"playerId"`
	Cash          int64  `json:"cash"`
	BuildingValue int64  `json:"buildingValue"`
	Loan          int64  `json:"loan"`
	NetWorth      int64  `json:"netWorth"`
}

// FinalScores 终局净值排名：现金 + 资产账面值 − 贷款
func (g *GameContext) FinalScores() []Score {
	scores := make([]Score, 0, len(g.Players))
	for _, p := range g.Players {
		scores = append(scores, Score{
			PlayerID:      p.ID,
			Cash:          p.Cash,
			BuildingValue: p.BuildingValue(),
			Loan:          p.Loan,
			NetWorth:      p.NetWorth(),
		})
	}
	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].NetWorth > scores[j].NetWorth
	})
	for i := range scores {
		scores[i].Rank = i + 1
	}
	return scores
}
