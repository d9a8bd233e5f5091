package engine

import (
	"testing"

	"go-estate/entities"
)

func TestStartGameRollsStarter(t *testing.T) {
	g := NewGame("r", []string{"a", "b", "c"}, 3, 5)
	if out := g.StartGame(); !out.OK {
		t.Fatalf("开局失败: %s", out.Message)
	}
	if g.Phase != PhaseLandPurchase {
		t.Fatalf("开局后应进入购地阶段")
	}
	if g.Current != g.Starter {
		t.Fatalf("先手玩家应立即获得行动权")
	}
	best := g.Players[g.Starter].StartDice
	for _, p := range g.Players {
		if p.StartDice > best {
			t.Fatalf("先手应是起始骰最高者")
		}
	}
	// 重复开局无效
	if out := g.StartGame(); out.OK {
		t.Fatalf("已开始的对局不应重复开局")
	}
}

func TestPhaseAdvancesOnlyWhenAllDone(t *testing.T) {
	g := newTestGame(t, 1, "a", "b")
	forceTurn(g, 0, PhaseLandPurchase)

	if _, out := g.BuyLand("a", "L05", entities.TierMarket); !out.OK {
		t.Fatalf("购地失败: %s", out.Message)
	}
	g.AdvanceTurn()
	if g.Phase != PhaseLandPurchase {
		t.Fatalf("还有玩家没行动，不应换阶段")
	}
	if g.Current != 1 {
		t.Fatalf("行动权应轮到下一个未完成的玩家")
	}

	if out := g.SkipLand("b"); !out.OK {
		t.Fatalf("跳过失败: %s", out.Message)
	}
	g.AdvanceTurn()
	if g.Phase != PhaseDesign {
		t.Fatalf("全员完成后应进入设计阶段，实际 %s", g.Phase)
	}
	// 阶段切换后行动权回到本回合起始玩家
	if g.Current != g.Starter {
		t.Fatalf("新阶段应从起始玩家开始，实际下标 %d", g.Current)
	}
}

func TestSkippedPlayerAutoPassesLaterPhases(t *testing.T) {
	g := newTestGame(t, 1, "a", "b")
	forceTurn(g, 0, PhaseDesign)
	g.Players[0].Flags.Skipped = true
	g.Players[0].Project = nil
	giveLand(t, g, g.Players[1], "L01")

	if !g.playerDone(g.Players[0]) {
		t.Fatalf("打工玩家在设计阶段应自动视为完成")
	}
	if g.playerDone(g.Players[1]) {
		t.Fatalf("有地未设计的玩家不应视为完成")
	}
}

func TestEndRoundRotatesStarterAndResets(t *testing.T) {
	g := newTestGame(t, 1, "a", "b")
	starterBefore := g.Starter
	// 双双打工，一路空转到回合结算
	for _, id := range []string{"a", "b"} {
		g.Current = indexOf(g, id)
		if out := g.SkipLand(id); !out.OK {
			t.Fatalf("跳过失败: %s", out.Message)
		}
	}
	g.Claims["A01"] = "a"
	g.PendingFail["L01|a"] = true
	g.AdvanceTurn()

	if g.Round != 2 {
		t.Fatalf("应进入第 2 回合，实际 %d", g.Round)
	}
	if g.Starter != (starterBefore+1)%2 {
		t.Fatalf("先手应轮转")
	}
	if len(g.Claims) != 0 || len(g.PendingFail) != 0 {
		t.Fatalf("占用表和失败记录应清空")
	}
	for _, p := range g.Players {
		if p.Flags.Skipped {
			t.Fatalf("回合标记应重置")
		}
		if p.Project == nil || p.Project.EvalFactor != 1.0 {
			t.Fatalf("新回合应开新项目")
		}
	}
}

func TestGameEndsAfterMaxRounds(t *testing.T) {
	g := NewGame("r", []string{"a", "b"}, 5, 1)
	g.StartGame()
	for _, id := range []string{"a", "b"} {
		g.Current = indexOf(g, id)
		if out := g.SkipLand(id); !out.OK {
			t.Fatalf("跳过失败: %s", out.Message)
		}
	}
	g.AdvanceTurn()

	if g.Phase != PhaseGameEnd {
		t.Fatalf("唯一回合结束后应终局，实际 %s", g.Phase)
	}
	scores := g.FinalScores()
	if len(scores) != 2 {
		t.Fatalf("终局排名应覆盖所有玩家")
	}
	if scores[0].Rank != 1 || scores[1].Rank != 2 {
		t.Fatalf("名次应从 1 开始连续编号")
	}
	for _, s := range scores {
		if s.NetWorth != s.Cash+s.BuildingValue-s.Loan {
			t.Fatalf("净值口径应为现金+资产−贷款")
		}
	}
	// 终局后行动推进应为空操作
	g.AdvanceTurn()
	if g.Phase != PhaseGameEnd {
		t.Fatalf("终局状态不应再变化")
	}
}

func TestLandOnlyProjectDiscardedAtRoundEnd(t *testing.T) {
	g := newTestGame(t, 1, "a")
	forceTurn(g, 0, PhaseLandPurchase)
	if _, out := g.BuyLand("a", "L05", entities.TierMarket); !out.OK {
		t.Fatalf("购地失败: %s", out.Message)
	}
	// 买了地又反悔：弃置项目，格子腾出
	if out := g.AbandonProject("a"); !out.OK {
		t.Fatalf("弃置失败: %s", out.Message)
	}
	g.AdvanceTurn()
	if g.Round != 2 {
		t.Fatalf("弃置后应直接进入下一回合")
	}
	for r := 0; r < GridSize; r++ {
		for c := 0; c < GridSize; c++ {
			if g.Grid.Cells[r][c].Owner == "a" {
				t.Fatalf("弃置项目的格子应腾出")
			}
		}
	}
	if g.Players[0].BuildingValue() != 0 {
		t.Fatalf("未完工项目不应沉淀资产")
	}
}

func TestDeckRefillAtRoundEnd(t *testing.T) {
	g := newTestGame(t, 1, "a")
	// 把设计师牌池抽到低水位
	for g.ArchitectDeck.Size() > 2 {
		g.ArchitectDeck.Draw(1)
	}
	g.Current = 0
	if out := g.SkipLand("a"); !out.OK {
		t.Fatalf("跳过失败: %s", out.Message)
	}
	g.AdvanceTurn()

	if g.ArchitectDeck.Size() < deckRefillFloor {
		t.Fatalf("回合结算后牌池应补回，实际 %d 张", g.ArchitectDeck.Size())
	}
	seen := make(map[string]bool)
	for _, a := range g.ArchitectDeck.Items() {
		if seen[a.ID] {
			t.Fatalf("补牌不应出现重复的 %s", a.ID)
		}
		seen[a.ID] = true
	}
}

func indexOf(g *GameContext, id string) int {
	for i, p := range g.Players {
		if p.ID == id {
			return i
		}
	}
	return -1
}
