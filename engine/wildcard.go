package engine

import (
	"fmt"
	"strings"

	"go-estate/entities"
)

// UseWildcard 消耗一张万能卡。效果落在当前在建项目上，
// 重掷令则清掉本回合的购地失败记录。
func (g *GameContext) UseWildcard(playerID, wildcardID string) Outcome {
	p := g.FindPlayer(playerID)
	if p == nil {
		return Fail(CodePrecondition, "玩家不存在")
	}
	idx := -1
	for i, w := range p.Wildcards {
		if w.ID == wildcardID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return Fail(CodeCardNotFound, fmt.Sprintf("没有万能卡[%s]", wildcardID))
	}
	card := p.Wildcards[idx]

	switch card.Kind {
	case entities.WildReroll:
		// 清除该玩家名下所有地块的失败记录
		for key := range g.PendingFail {
			if strings.HasSuffix(key, "|"+playerID) {
				delete(g.PendingFail, key)
			}
		}
	case entities.WildRiskBlock, entities.WildDiscount, entities.WildFeeWaiver, entities.WildLoanDiscount:
		proj := p.Project
		if proj == nil {
			return Fail(CodePrecondition, "没有在建项目，不能使用该卡")
		}
		switch card.Kind {
		case entities.WildRiskBlock:
			if proj.RiskResolved {
				return Fail(CodePrecondition, "风险已经结算，保单来不及生效")
			}
			proj.ExtraBlocks++
		case entities.WildDiscount:
			if proj.Constructor != nil {
				return Fail(CodePrecondition, "已经签约施工方，折扣券来不及生效")
			}
			proj.CostDiscount = 0.1
		case entities.WildFeeWaiver:
			if proj.Architect != nil {
				return Fail(CodePrecondition, "已经签约设计师，减免券来不及生效")
			}
			proj.FeeWaived = true
		case entities.WildLoanDiscount:
			proj.RateFactor *= 0.9
		}
	}

	p.Wildcards = append(p.Wildcards[:idx], p.Wildcards[idx+1:]...)
	g.Logf("玩家[%s]使用了万能卡[%s]", playerID, card.Name)
	return Ok()
}
