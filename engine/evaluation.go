package engine

import (
	"math"

	"go-estate/const_data"
	"go-estate/entities"
)

// Valuation 评估结果
type Valuation struct {
	TotalInvestment int64               `json:"totalInvestment"`
	LossCost        int64               `json:"lossCost"`
	Awards          []entities.Award    `json:"awards"`
	LocationBonus   float64             `json:"locationBonus"`
	AdjacencyBonus  float64             `json:"adjacencyBonus"`
	FinalFactor     float64             `json:"finalFactor"`
	SalePrice       int64               `json:"salePrice"`
	NetProfit       int64               `json:"netProfit"`
	Wildcards       []entities.Wildcard `json:"wildcards"`
}

// computeValuation 纯计算，不动状态
func (g *GameContext) computeValuation(p *entities.Player) Valuation {
	proj := p.Project
	v := Valuation{
		TotalInvestment: proj.TotalInvestment(),
		LossCost:        proj.LossCost + proj.InterestCost,
		Awards:          evaluateAwards(proj),
	}

	// 评估系数：设计/施工阶段累乘的系数打底，奖项逐个相乘，
	// 再叠地段标签加成和网格邻接加成
	factor := proj.EvalFactor
	for _, award := range v.Awards {
		factor *= award.Bonus
	}
	v.LocationBonus = 0.05 * float64(len(proj.Land.BonusTags))
	factor *= 1 + v.LocationBonus
	v.AdjacencyBonus = g.Grid.AdjacencyBonus(p.ID)
	factor *= 1 + v.AdjacencyBonus
	v.FinalFactor = factor

	v.SalePrice = int64(math.Round(float64(v.TotalInvestment)*factor - float64(v.LossCost)))
	if v.SalePrice < 0 {
		v.SalePrice = 0
	}
	v.NetProfit = v.SalePrice - p.Loan
	return v
}

// PreviewEvaluation 评估预览，无副作用
func (g *GameContext) PreviewEvaluation(playerID string) (Valuation, Outcome) {
	p, out := g.guardTurn(playerID, PhaseEvaluation)
	if !out.OK {
		return Valuation{}, out
	}
	proj := p.Project
	if proj == nil || proj.Constructor == nil || !proj.RiskResolved {
		return Valuation{}, Fail(CodePrecondition, "项目尚未完工，无法评估")
	}
	if proj.Ruined {
		return Valuation{}, Fail(CodeCatastrophe, "项目已全损，无法评估")
	}
	if proj.Evaluated {
		return Valuation{}, Fail(CodePrecondition, "本回合已经评估过")
	}
	return g.computeValuation(p), Ok()
}

// Evaluate 评估提交：记账面售价（不发现金、不自动还贷），
// 按获奖数发万能卡：1 个奖发 1 张，2 个及以上发 2 张
func (g *GameContext) Evaluate(playerID string) (Valuation, Outcome) {
	v, out := g.PreviewEvaluation(playerID)
	if !out.OK {
		return v, out
	}
	p := g.CurrentPlayer()
	p.Project.SalePrice = v.SalePrice
	p.Project.Evaluated = true

	grants := 0
	switch {
	case len(v.Awards) >= 2:
		grants = 2
	case len(v.Awards) == 1:
		grants = 1
	}
	for i := 0; i < grants; i++ {
		card := const_data.WildcardList[g.rng.Intn(len(const_data.WildcardList))]
		p.Wildcards = append(p.Wildcards, card)
		v.Wildcards = append(v.Wildcards, card)
	}
	g.Logf("玩家[%s]评估完成：售价 %d，获奖 %d 项，发放万能卡 %d 张",
		playerID, v.SalePrice, len(v.Awards), grants)
	return v, Ok()
}
