package engine

import (
	"testing"

	"go-estate/entities"
)

func TestMaxLoanGrowsWithAssets(t *testing.T) {
	p := &entities.Player{Cash: 100}
	if MaxLoan(p) != BaseMaxLoan {
		t.Fatalf("无资产时授信应为基础额度")
	}
	p.Buildings = append(p.Buildings, entities.CompletedBuilding{Value: 200_000_000})
	if MaxLoan(p) != BaseMaxLoan+100_000_000 {
		t.Fatalf("授信应加资产账面值的一半，实际 %d", MaxLoan(p))
	}
	// 已售资产不再计入授信
	p.Buildings[0].Sold = true
	if MaxLoan(p) != BaseMaxLoan {
		t.Fatalf("已售资产不应抬高授信")
	}
}

func TestPayAutoBorrowsShortfall(t *testing.T) {
	p := &entities.Player{Cash: 100_000_000}
	if out := Pay(p, 150_000_000); !out.OK {
		t.Fatalf("授信范围内的付款不应失败: %s", out.Message)
	}
	if p.Cash != 0 || p.Loan != 50_000_000 {
		t.Fatalf("应自动借出 5000 万缺口，cash=%d loan=%d", p.Cash, p.Loan)
	}
	if !p.Flags.LoanUsed {
		t.Fatalf("动用贷款应打标记")
	}
}

func TestBorrowRejectsOverLimit(t *testing.T) {
	p := &entities.Player{Cash: 0, Loan: BaseMaxLoan - 10}
	out := Borrow(p, 11)
	if out.OK || out.Code != CodeLoanLimit {
		t.Fatalf("超授信应整笔拒绝，code=%s", out.Code)
	}
	if p.Loan != BaseMaxLoan-10 || p.Cash != 0 {
		t.Fatalf("拒绝后状态不应有任何变化")
	}
	// 整笔失败：付款也一样，一分都不动
	out = Pay(p, 100)
	if out.OK {
		t.Fatalf("超授信付款应失败")
	}
	if p.Cash != 0 || p.Loan != BaseMaxLoan-10 {
		t.Fatalf("失败的付款不应部分扣款")
	}
}

func TestInterestSimpleProRata(t *testing.T) {
	// 1 亿本金，年息 5%，6 个月 → 250 万
	if got := InterestFor(100_000_000, 0.05, 6); got != 2_500_000 {
		t.Fatalf("利息计算错误: %d", got)
	}
	if InterestFor(0, 0.05, 6) != 0 {
		t.Fatalf("无贷款不应计息")
	}
	if InterestFor(100, 0.05, 0) != 0 {
		t.Fatalf("零工期不应计息")
	}
}

func TestDevelopCostSurcharges(t *testing.T) {
	// 陡坡 + 不通水电 + 不临路，三项叠加
	land := &entities.Land{Slope: 2}
	if got := DevelopCost(land); got != 60_000_000 {
		t.Fatalf("整备费应为 6000 万，实际 %d", got)
	}
	flat := &entities.Land{Slope: 0, HasUtility: true, HasRoad: true}
	if DevelopCost(flat) != 0 {
		t.Fatalf("熟地不应有整备费")
	}
}
