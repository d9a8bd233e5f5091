package engine

import (
	"fmt"
	"math"

	"go-estate/entities"
)

// 贷款与利息的纯函数，所有结算器共用
const (
	BaseMaxLoan      int64   = 500_000_000 // 基础授信
	DefaultLoanRate  float64 = 0.05        // 年利率
	slopeSurchargeHi int64   = 30_000_000  // 陡坡整备费
	slopeSurchargeMd int64   = 15_000_000  // 缓坡整备费
	utilitySurcharge int64   = 20_000_000  // 接通水电
	roadSurcharge    int64   = 10_000_000  // 修临时道路
)

// MaxLoan 授信上限：基础额度 + 未售资产账面值的一半
func MaxLoan(p *entities.Player) int64 {
	return BaseMaxLoan + p.BuildingValue()/2
}

// AvailableFunds 现金 + 剩余授信
func AvailableFunds(p *entities.Player) int64 {
	return p.Cash + MaxLoan(p) - p.Loan
}

// InterestFor 简单利息：本金 × 年利率 × 月数 / 12
func InterestFor(principal int64, rate float64, months int) int64 {
	if principal <= 0 || months <= 0 {
		return 0
	}
	return int64(math.Round(float64(principal) * rate * float64(months) / 12))
}

// Borrow 借款，超出授信上限则整笔拒绝
func Borrow(p *entities.Player, amount int64) Outcome {
	if amount <= 0 {
		return Ok()
	}
	if p.Loan+amount > MaxLoan(p) {
		return Fail(CodeLoanLimit, fmt.Sprintf("超出贷款上限：已贷 %d，上限 %d", p.Loan, MaxLoan(p)))
	}
	p.Loan += amount
	p.Cash += amount
	return Ok()
}

// Pay 付款，现金不足时自动借出缺口；缺口超授信则整笔失败，状态不变
func Pay(p *entities.Player, amount int64) Outcome {
	if amount <= 0 {
		return Ok()
	}
	if p.Cash < amount {
		shortfall := amount - p.Cash
		if out := Borrow(p, shortfall); !out.OK {
			return out
		}
		p.Flags.LoanUsed = true
	}
	p.Cash -= amount
	return Ok()
}

// DevelopCost 场地整备附加费：各项叠加，不复利
func DevelopCost(land *entities.Land) int64 {
	var cost int64
	switch land.Slope {
	case 2:
		cost += slopeSurchargeHi
	case 1:
		cost += slopeSurchargeMd
	}
	if !land.HasUtility {
		cost += utilitySurcharge
	}
	if !land.HasRoad {
		cost += roadSurcharge
	}
	return cost
}
