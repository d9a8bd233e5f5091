package engine

import (
	"fmt"

	"go-estate/entities"
)

// SellBuilding 出售已沉淀的资产，按账面价值变现。
// 废墟只剩裸地残值（入账时已折算）。
func (g *GameContext) SellBuilding(playerID string, index int) Outcome {
	p := g.FindPlayer(playerID)
	if p == nil {
		return Fail(CodePrecondition, "玩家不存在")
	}
	if index < 0 || index >= len(p.Buildings) {
		return Fail(CodePrecondition, "资产编号不存在")
	}
	b := &p.Buildings[index]
	if b.Sold {
		return Fail(CodePrecondition, "该资产已经卖出")
	}
	b.Sold = true
	p.Cash += b.Value
	p.Sales = append(p.Sales, entities.SaleRecord{
		Round:    g.Round,
		Building: b.Name,
		Price:    b.Value,
	})
	g.Logf("玩家[%s]卖出[%s]，回笼 %d", playerID, b.Name, b.Value)
	return Ok()
}

// AbandonProject 弃置在建项目：占用的设计师/施工方放回牌池重新可选，
// 网格腾出，已付出的钱不退
func (g *GameContext) AbandonProject(playerID string) Outcome {
	p := g.FindPlayer(playerID)
	if p == nil {
		return Fail(CodePrecondition, "玩家不存在")
	}
	proj := p.Project
	if proj == nil {
		return Fail(CodePrecondition, "没有在建项目")
	}
	if proj.Architect != nil {
		g.ArchitectDeck.Push(*proj.Architect)
	}
	if proj.Constructor != nil {
		g.ConstructorDeck.Push(*proj.Constructor)
	}
	g.ReleaseBy(playerID)
	g.Grid.Vacate(playerID, proj.ID)
	p.Project = nil
	p.Flags.Skipped = true
	g.Logf("玩家[%s]弃置了在建项目", playerID)
	return Ok()
}

// RepayLoan 主动还贷（贷款从不自动偿还）
func (g *GameContext) RepayLoan(playerID string, amount int64) Outcome {
	p := g.FindPlayer(playerID)
	if p == nil {
		return Fail(CodePrecondition, "玩家不存在")
	}
	if amount <= 0 || amount > p.Loan {
		return Fail(CodePrecondition, fmt.Sprintf("还款金额应在 1~%d 之间", p.Loan))
	}
	if amount > p.Cash {
		return Fail(CodeInsufficientFunds, "现金不足以还款")
	}
	p.Cash -= amount
	p.Loan -= amount
	return Ok()
}
