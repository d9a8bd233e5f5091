package engine

import (
	"testing"

	"go-estate/entities"
)

func TestSellBuildingCashesBookValue(t *testing.T) {
	g := newTestGame(t, 1, "a")
	p := g.Players[0]
	p.Buildings = append(p.Buildings, entities.CompletedBuilding{
		Name: "公寓", Value: 300_000_000, Round: 1,
	})

	if out := g.SellBuilding("a", 0); !out.OK {
		t.Fatalf("出售失败: %s", out.Message)
	}
	if p.Cash != StartingCash+300_000_000 {
		t.Fatalf("售款应入现金，实际 %d", p.Cash)
	}
	if !p.Buildings[0].Sold || len(p.Sales) != 1 {
		t.Fatalf("出售应留痕并标记资产")
	}
	// 同一资产不能卖两次
	if out := g.SellBuilding("a", 0); out.OK {
		t.Fatalf("重复出售应被拒绝")
	}
	if out := g.SellBuilding("a", 5); out.OK {
		t.Fatalf("越界编号应被拒绝")
	}
}

func TestAbandonReturnsCardsToPool(t *testing.T) {
	g := newTestGame(t, 1, "a")
	forceTurn(g, 0, PhaseDesign)
	p := g.Players[0]
	giveLand(t, g, p, "L01")
	if out := g.PickDesign("a", "A02", "公寓"); !out.OK {
		t.Fatalf("设计失败: %s", out.Message)
	}
	if _, found := g.ArchitectDeck.Find("A02"); found {
		t.Fatalf("签约中的设计师不应在牌池")
	}

	if out := g.AbandonProject("a"); !out.OK {
		t.Fatalf("弃置失败: %s", out.Message)
	}
	if _, found := g.ArchitectDeck.Find("A02"); !found {
		t.Fatalf("弃置后设计师应回到牌池重新可选")
	}
	if _, claimed := g.Claims["A02"]; claimed {
		t.Fatalf("占用记录应解除")
	}
	if p.Project != nil || !p.Flags.Skipped {
		t.Fatalf("弃置后本回合应视为打工")
	}
}

func TestRepayLoanManually(t *testing.T) {
	g := newTestGame(t, 1, "a")
	p := g.Players[0]
	p.Loan = 100_000_000

	if out := g.RepayLoan("a", 40_000_000); !out.OK {
		t.Fatalf("还款失败: %s", out.Message)
	}
	if p.Loan != 60_000_000 || p.Cash != StartingCash-40_000_000 {
		t.Fatalf("还款应同时减贷款和现金")
	}
	if out := g.RepayLoan("a", 61_000_000); out.OK {
		t.Fatalf("超出贷款余额的还款应被拒绝")
	}
	if out := g.RepayLoan("a", 0); out.OK {
		t.Fatalf("零额还款应被拒绝")
	}
}
