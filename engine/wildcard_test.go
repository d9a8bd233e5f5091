package engine

import (
	"testing"

	"go-estate/entities"
)

func giveWildcard(p *entities.Player, kind entities.WildcardKind) string {
	id := "W-" + string(kind)
	p.Wildcards = append(p.Wildcards, entities.Wildcard{ID: id, Name: string(kind), Kind: kind})
	return id
}

func TestRerollClearsOwnPendingFails(t *testing.T) {
	g := newTestGame(t, 1, "a", "b")
	g.PendingFail["L01|a"] = true
	g.PendingFail["L02|a"] = true
	g.PendingFail["L01|b"] = true
	id := giveWildcard(g.Players[0], entities.WildReroll)

	if out := g.UseWildcard("a", id); !out.OK {
		t.Fatalf("使用失败: %s", out.Message)
	}
	if g.PendingFail["L01|a"] || g.PendingFail["L02|a"] {
		t.Fatalf("自己的失败记录应清空")
	}
	if !g.PendingFail["L01|b"] {
		t.Fatalf("别人的失败记录不应受影响")
	}
	if len(g.Players[0].Wildcards) != 0 {
		t.Fatalf("万能卡应被消耗")
	}
}

func TestRiskBlockCardAddsCapacity(t *testing.T) {
	g := newTestGame(t, 1, "a")
	p := g.Players[0]
	id := giveWildcard(p, entities.WildRiskBlock)

	if out := g.UseWildcard("a", id); !out.OK {
		t.Fatalf("使用失败: %s", out.Message)
	}
	if p.Project.ExtraBlocks != 1 {
		t.Fatalf("额外抵挡名额应加一")
	}

	// 风险已结算后保单来不及生效
	p.Project.RiskResolved = true
	id2 := giveWildcard(p, entities.WildRiskBlock)
	out := g.UseWildcard("a", id2)
	if out.OK || out.Code != CodePrecondition {
		t.Fatalf("结算后的保单应被拒绝: %s", out.Code)
	}
	if len(p.Wildcards) != 1 {
		t.Fatalf("被拒绝的卡不应消耗")
	}
}

func TestDiscountCardBeforeConstructorOnly(t *testing.T) {
	g := newTestGame(t, 1, "a")
	p := g.Players[0]
	id := giveWildcard(p, entities.WildDiscount)
	if out := g.UseWildcard("a", id); !out.OK {
		t.Fatalf("使用失败: %s", out.Message)
	}
	if p.Project.CostDiscount != 0.1 {
		t.Fatalf("折扣比例应记到项目上")
	}

	p.Project.Constructor = &entities.Constructor{ID: "CX"}
	id2 := giveWildcard(p, entities.WildDiscount)
	if out := g.UseWildcard("a", id2); out.OK {
		t.Fatalf("签约施工方后折扣券应失效")
	}
}

func TestLoanDiscountStacksOnRate(t *testing.T) {
	g := newTestGame(t, 1, "a")
	p := g.Players[0]
	id := giveWildcard(p, entities.WildLoanDiscount)
	if out := g.UseWildcard("a", id); !out.OK {
		t.Fatalf("使用失败: %s", out.Message)
	}
	if p.Project.RateFactor != 0.9 {
		t.Fatalf("利率乘数应为 0.9，实际 %v", p.Project.RateFactor)
	}
}

func TestUnknownWildcardRejected(t *testing.T) {
	g := newTestGame(t, 1, "a")
	out := g.UseWildcard("a", "W-nope")
	if out.OK || out.Code != CodeCardNotFound {
		t.Fatalf("没有的卡应拒绝: %s", out.Code)
	}
}
