package engine

import (
	"fmt"
	"math"

	"go-estate/const_data"
	"go-estate/entities"
)

// ConstructionQuote 施工预览
type ConstructionQuote struct {
	Constructor       entities.Constructor `json:"constructor"`
	Cost              int64                `json:"cost"`
	EstimatedInterest int64                `json:"estimatedInterest"`
	Total             int64                `json:"total"`
	RiskHandSize      int                  `json:"riskHandSize"`
}

// RiskReport 风险结算结果
type RiskReport struct {
	Blocked      []entities.Risk `json:"blocked"`
	Active       []entities.Risk `json:"active"`
	CostIncrease int64           `json:"costIncrease"`
	DelayMonths  int             `json:"delayMonths"`
	FinalCost    int64           `json:"finalCost"`
	InterestCost int64           `json:"interestCost"`
	Ruined       bool            `json:"ruined"`
}

// PreviewConstruction 校验施工方并算账：
// 造价 = 基础造价 × 设计师倍率 × 施工方倍率，利息按当前贷款与工期预估
func (g *GameContext) PreviewConstruction(playerID, constructorID string) (ConstructionQuote, Outcome) {
	p, out := g.guardTurn(playerID, PhaseConstruction)
	if !out.OK {
		return ConstructionQuote{}, out
	}
	proj := p.Project
	if proj == nil || proj.Building == nil || proj.Architect == nil {
		return ConstructionQuote{}, Fail(CodePrecondition, "还没有完成设计，无法开工")
	}
	if proj.Constructor != nil {
		return ConstructionQuote{}, Fail(CodePrecondition, "本回合已经选定施工方")
	}
	cons, found := g.ConstructorDeck.Find(constructorID)
	if !found {
		return ConstructionQuote{}, Fail(CodeCardNotFound, fmt.Sprintf("施工方[%s]不在可选列表", constructorID))
	}
	if holder, claimed := g.Claims[constructorID]; claimed {
		return ConstructionQuote{}, Fail(CodeCardClaimed, fmt.Sprintf("施工方[%s]已被玩家[%s]签约", constructorID, holder))
	}
	if !cons.CanBuild(proj.Building.Name) {
		return ConstructionQuote{}, Fail(CodePrecondition,
			fmt.Sprintf("施工方[%s]不承建[%s]", cons.Name, proj.Building.Name))
	}

	cost := int64(math.Round(float64(proj.Building.BaseCost) * proj.Architect.CostMultiplier * cons.CostMultiplier))
	if proj.CostDiscount > 0 {
		cost = int64(math.Round(float64(cost) * (1 - proj.CostDiscount)))
	}
	estInterest := InterestFor(p.Loan, p.InterestRate*proj.RateFactor, proj.Building.Period)
	total := cost + estInterest
	if total > AvailableFunds(p) {
		return ConstructionQuote{}, Fail(CodeInsufficientFunds,
			fmt.Sprintf("施工费加利息预估需要 %d，可用 %d", total, AvailableFunds(p)))
	}
	return ConstructionQuote{
		Constructor:       cons,
		Cost:              cost,
		EstimatedInterest: estInterest,
		Total:             total,
		RiskHandSize:      proj.Building.Period,
	}, Ok()
}

// HireConstructor 施工提交：签约（独占）、定价、按工期抽风险手牌。
// 付款在风险结算之后分期进行。
func (g *GameContext) HireConstructor(playerID, constructorID string) Outcome {
	quote, out := g.PreviewConstruction(playerID, constructorID)
	if !out.OK {
		return out
	}
	p := g.CurrentPlayer()
	proj := p.Project

	if out := g.Claim(constructorID, playerID); !out.OK {
		return out
	}
	cons, _ := g.ConstructorDeck.Remove(constructorID)
	proj.Constructor = &cons
	proj.ConstructionCost = quote.Cost
	// 权重堆张数固定，不够发满一手就整堆重建再抽
	if g.RiskDeck.Size() < proj.Building.Period {
		g.RiskDeck = BuildWeighted(g.rng, const_data.RiskTemplates, const_data.RiskWeight)
	}
	proj.Risks = g.RiskDeck.Draw(proj.Building.Period)
	// 同一模板可能抽到多张，逐张编号，结算时才能指名压下其中某一张
	for i := range proj.Risks {
		proj.Risks[i].ID = fmt.Sprintf("%s#%d", proj.Risks[i].ID, i+1)
	}
	g.Logf("玩家[%s]签约施工方[%s]，造价 %d，抽取风险 %d 张",
		playerID, cons.Name, quote.Cost, len(proj.Risks))
	return Ok()
}

// ResolveRisks 风险结算 + 分期付款。
// blockIDs 是玩家决定用抵挡名额压下的风险卡 id；
// 有害风险超出抵挡容量的部分按效果变体逐一生效。
func (g *GameContext) ResolveRisks(playerID string, blockIDs []string) (RiskReport, Outcome) {
	p, out := g.guardTurn(playerID, PhaseConstruction)
	if !out.OK {
		return RiskReport{}, out
	}
	proj := p.Project
	if proj == nil || proj.Constructor == nil {
		return RiskReport{}, Fail(CodePrecondition, "还没有签约施工方")
	}
	if proj.RiskResolved {
		return RiskReport{}, Fail(CodePrecondition, "风险已经结算过")
	}

	capacity := proj.Constructor.RiskBlocks + proj.ExtraBlocks
	wantBlock := make(map[string]bool, len(blockIDs))
	for _, id := range blockIDs {
		wantBlock[id] = true
	}

	// 第一遍只算账：选出压下的风险、聚合生效的效果，先不落任何状态
	report := RiskReport{}
	blocked := make([]bool, len(proj.Risks))
	blockedCount := 0
	var costRateSum float64
	var delayMonths int
	rateFactor := 1.0
	evalBonus := 1.0
	ruined := false
	for i, risk := range proj.Risks {
		if risk.Harmful() && wantBlock[risk.ID] && blockedCount < capacity {
			blocked[i] = true
			blockedCount++
			risk.Blocked = true
			report.Blocked = append(report.Blocked, risk)
			continue
		}
		switch risk.Effect.Kind {
		case entities.EffectDelay:
			delayMonths += risk.Effect.Months
		case entities.EffectCostIncrease:
			costRateSum += risk.Effect.CostRate
		case entities.EffectInterestMul:
			rateFactor *= risk.Effect.RateFactor
		case entities.EffectDisaster:
			ruined = true
		case entities.EffectGrant:
			evalBonus *= risk.Effect.EvalBonus
		case entities.EffectNone:
			// 无事发生
		}
		if risk.Harmful() {
			report.Active = append(report.Active, risk)
		}
	}
	report.DelayMonths = delayMonths

	// 成本上涨一次性作用在造价上；差额同时记作不可回收损失，
	// 估值时会从售价里扣回去，涨价不会反过来抬高卖价
	newCost := proj.ConstructionCost
	var costDelta int64
	if costRateSum > 0 {
		costDelta = int64(math.Round(float64(proj.ConstructionCost) * costRateSum))
		newCost += costDelta
		report.CostIncrease = costDelta
	}

	commit := func() {
		for i := range proj.Risks {
			if blocked[i] {
				proj.Risks[i].Blocked = true
			}
		}
		proj.DelayMonths += delayMonths
		proj.RateFactor *= rateFactor
		proj.EvalFactor *= evalBonus
		proj.ConstructionCost = newCost
		proj.LossCost += costDelta
		proj.RiskResolved = true
	}

	if ruined {
		// 灾难全损：投资作废，贷款照还，土地只剩裸地残值
		commit()
		proj.Ruined = true
		report.Ruined = true
		g.Logf("玩家[%s]项目遭遇灾难全损", playerID)
		return report, Fail(CodeCatastrophe, "项目遭遇灾难，投资全损")
	}

	// 付款前整笔验资：涨价后的工程款加建设期利息必须都在授信额度内，
	// 不够就整笔拒绝、分文不动，手牌原样保留，玩家筹到钱再重新结算
	months := proj.Building.Period + proj.DelayMonths + delayMonths
	projectedLoan := p.Loan
	if newCost > p.Cash {
		projectedLoan += newCost - p.Cash
	}
	interest := InterestFor(projectedLoan, p.InterestRate*proj.RateFactor*rateFactor, months)
	if newCost+interest > AvailableFunds(p) {
		return RiskReport{}, Fail(CodeInsufficientFunds,
			fmt.Sprintf("风险结算后需要 %d，可用 %d", newCost+interest, AvailableFunds(p)))
	}
	commit()

	// 分期付工程款，余数并入最后一期；现金不足自动借款
	stages := proj.Constructor.PaymentStages
	stage := proj.ConstructionCost / int64(stages)
	paid := int64(0)
	for i := 0; i < stages; i++ {
		amount := stage
		if i == stages-1 {
			amount = proj.ConstructionCost - paid
		}
		if out := Pay(p, amount); !out.OK {
			return report, out
		}
		paid += amount
	}
	if out := Pay(p, interest); !out.OK {
		return report, out
	}
	proj.InterestCost = interest
	report.InterestCost = interest
	report.FinalCost = proj.ConstructionCost

	// 施工方的工艺加成
	if proj.Constructor.ArtistryBonus > 0 {
		proj.EvalFactor *= proj.Constructor.ArtistryBonus
	}
	g.Logf("玩家[%s]完成风险结算：压下 %d 个风险，利息 %d", playerID, blockedCount, interest)
	return report, Ok()
}
