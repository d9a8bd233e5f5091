package engine

import (
	"testing"

	"go-estate/entities"
)

// 手工拼一个完工项目，绕开抽牌的随机性
func readyProject(g *GameContext, idx int, arch entities.Architect, cons entities.Constructor) *entities.Player {
	p := g.Players[idx]
	building := entities.Building{Name: "公寓", DesignFee: 50_000_000, BaseCost: 500_000_000, Period: 4}
	p.Project = &entities.Project{
		ID:               "proj-test",
		Land:             &entities.Land{ID: "LX", PriceMarket: 200_000_000},
		LandPrice:        200_000_000,
		Architect:        &arch,
		Building:         &building,
		DesignFee:        50_000_000,
		Constructor:      &cons,
		ConstructionCost: 500_000_000,
		RiskResolved:     true,
		EvalFactor:       1.0,
		RateFactor:       1.0,
	}
	return p
}

func TestValuationDeterministic(t *testing.T) {
	g := newTestGame(t, 1, "a")
	forceTurn(g, 0, PhaseEvaluation)
	// 无代表作、无工艺加成、无地段标签、无邻接：系数恒为 1
	arch := entities.Architect{ID: "AX", Trait: entities.TraitModern}
	cons := entities.Constructor{ID: "CX", Category: "small"}
	readyProject(g, 0, arch, cons)

	v, out := g.PreviewEvaluation("a")
	if !out.OK {
		t.Fatalf("评估预览失败: %s", out.Message)
	}
	if v.TotalInvestment != 750_000_000 {
		t.Fatalf("总投入应为 7.5 亿，实际 %d", v.TotalInvestment)
	}
	if len(v.Awards) != 0 {
		t.Fatalf("不应获奖")
	}
	if v.SalePrice != 750_000_000 {
		t.Fatalf("系数为 1 时售价应等于投入，实际 %d", v.SalePrice)
	}
}

func TestLossCostSubtractedFromSale(t *testing.T) {
	g := newTestGame(t, 1, "a")
	forceTurn(g, 0, PhaseEvaluation)
	p := readyProject(g, 0, entities.Architect{ID: "AX"}, entities.Constructor{ID: "CX"})
	p.Project.LossCost = 30_000_000
	p.Project.InterestCost = 5_000_000

	v, out := g.PreviewEvaluation("a")
	if !out.OK {
		t.Fatalf("评估预览失败: %s", out.Message)
	}
	if v.LossCost != 35_000_000 {
		t.Fatalf("损失成本应为风险损失加利息")
	}
	if v.SalePrice != 715_000_000 {
		t.Fatalf("售价应扣除损失成本，实际 %d", v.SalePrice)
	}
}

func TestSalePriceNeverNegative(t *testing.T) {
	g := newTestGame(t, 1, "a")
	forceTurn(g, 0, PhaseEvaluation)
	p := readyProject(g, 0, entities.Architect{ID: "AX"}, entities.Constructor{ID: "CX"})
	p.Project.LossCost = 2_000_000_000

	v, out := g.PreviewEvaluation("a")
	if !out.OK {
		t.Fatalf("评估预览失败: %s", out.Message)
	}
	if v.SalePrice != 0 {
		t.Fatalf("售价应钳制在 0，实际 %d", v.SalePrice)
	}
}

func TestZeroSalePriceStillFinishesEvaluation(t *testing.T) {
	g := newTestGame(t, 1, "a")
	forceTurn(g, 0, PhaseEvaluation)
	// 巨亏项目：售价被钳到 0，但评估本身算完成，不能卡住阶段
	p := readyProject(g, 0, entities.Architect{ID: "AX"}, entities.Constructor{ID: "CX"})
	p.Project.LossCost = 2_000_000_000

	v, out := g.Evaluate("a")
	if !out.OK {
		t.Fatalf("评估失败: %s", out.Message)
	}
	if v.SalePrice != 0 || !p.Project.Evaluated {
		t.Fatalf("零售价也应标记已评估")
	}
	if !g.playerDone(p) {
		t.Fatalf("评估完成后玩家应视为本阶段已结束")
	}
	if _, out := g.Evaluate("a"); out.OK || out.Code != CodePrecondition {
		t.Fatalf("零售价项目也不允许重复评估: %s", out.Code)
	}
}

func TestAwardsGrantWildcards(t *testing.T) {
	g := newTestGame(t, 1, "a")
	forceTurn(g, 0, PhaseEvaluation)
	// 代表作 + 工艺加成：两个奖，发两张万能卡
	arch := entities.Architect{ID: "AX", Masterpieces: []string{"公寓"}}
	cons := entities.Constructor{ID: "CX", ArtistryBonus: 1.15, Category: "small"}
	p := readyProject(g, 0, arch, cons)

	v, out := g.Evaluate("a")
	if !out.OK {
		t.Fatalf("评估失败: %s", out.Message)
	}
	if len(v.Awards) != 2 {
		t.Fatalf("应获两个奖项，实际 %d", len(v.Awards))
	}
	if len(p.Wildcards) != 2 {
		t.Fatalf("两个奖应发两张万能卡，实际 %d", len(p.Wildcards))
	}
	// 获奖抬高了系数，售价应高于投入
	if v.SalePrice <= v.TotalInvestment {
		t.Fatalf("获奖项目售价应高于投入")
	}
}

func TestEvaluateOnlyOncePerRound(t *testing.T) {
	g := newTestGame(t, 1, "a")
	forceTurn(g, 0, PhaseEvaluation)
	readyProject(g, 0, entities.Architect{ID: "AX"}, entities.Constructor{ID: "CX"})

	if _, out := g.Evaluate("a"); !out.OK {
		t.Fatalf("首次评估失败: %s", out.Message)
	}
	_, out := g.Evaluate("a")
	if out.OK || out.Code != CodePrecondition {
		t.Fatalf("重复评估应被拒绝: %s", out.Code)
	}
}

func TestRuinedProjectCannotEvaluate(t *testing.T) {
	g := newTestGame(t, 1, "a")
	forceTurn(g, 0, PhaseEvaluation)
	p := readyProject(g, 0, entities.Architect{ID: "AX"}, entities.Constructor{ID: "CX"})
	p.Project.Ruined = true

	_, out := g.Evaluate("a")
	if out.OK || out.Code != CodeCatastrophe {
		t.Fatalf("全损项目不应可评估: %s", out.Code)
	}
}
