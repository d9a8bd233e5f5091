package const_data

import "go-estate/entities"

// RiskTemplates 风险卡模板。加权牌堆按类别/严重度展开：
// 中立 ×6、利好 ×3、毁灭(3) ×1、高危(2) ×1、其余 ×2。
var RiskTemplates = []entities.Risk{
	{
		ID: "R01", Name: "连绵阴雨", Category: entities.RiskDelay, Severity: 1,
		Effect: entities.RiskEffect{Kind: entities.EffectDelay, Months: 1},
	},
	{
		ID: "R02", Name: "考古勘探叫停", Category: entities.RiskDelay, Severity: 2,
		Effect: entities.RiskEffect{Kind: entities.EffectDelay, Months: 3},
	},
	{
		ID: "R03", Name: "钢材涨价", Category: entities.RiskCostUp, Severity: 1,
		Effect: entities.RiskEffect{Kind: entities.EffectCostIncrease, CostRate: 0.08},
	},
	{
		ID: "R04", Name: "人工短缺", Category: entities.RiskCostUp, Severity: 1,
		Effect: entities.RiskEffect{Kind: entities.EffectCostIncrease, CostRate: 0.05},
	},
	{
		ID: "R05", Name: "央行加息", Category: entities.RiskCostUp, Severity: 2,
		Effect: entities.RiskEffect{Kind: entities.EffectInterestMul, RateFactor: 1.5},
	},
	{
		ID: "R06", Name: "地基塌陷", Category: entities.RiskDisaster, Severity: 3,
		Effect: entities.RiskEffect{Kind: entities.EffectDisaster},
	},
	{
		ID: "R07", Name: "政策补贴", Category: entities.RiskPositive, Severity: 1,
		Effect: entities.RiskEffect{Kind: entities.EffectGrant, EvalBonus: 1.05},
	},
	{
		ID: "R08", Name: "媒体报道", Category: entities.RiskPositive, Severity: 1,
		Effect: entities.RiskEffect{Kind: entities.EffectGrant, EvalBonus: 1.08},
	},
	{
		ID: "R09", Name: "风平浪静", Category: entities.RiskNeutral, Severity: 1,
		Effect: entities.RiskEffect{Kind: entities.EffectNone},
	},
	{
		ID: "R10", Name: "工期顺利", Category: entities.RiskNeutral, Severity: 1,
		Effect: entities.RiskEffect{Kind: entities.EffectNone},
	},
}

// RiskWeight 模板在加权牌堆中的份数
func RiskWeight(r entities.Risk) int {
	switch {
	case r.Category == entities.RiskNeutral:
		return 6
	case r.Category == entities.RiskPositive:
		return 3
	case r.Severity >= 3:
		return 1
	case r.Severity == 2:
		return 1
	default:
		return 2
	}
}
