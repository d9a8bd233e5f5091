package const_data

import "go-estate/entities"

// WildcardList 万能卡目录，获奖后从中均匀随机发放
var WildcardList = []entities.Wildcard{
	{ID: "W01", Name: "工程折扣券", Kind: entities.WildDiscount},
	{ID: "W02", Name: "设计费减免", Kind: entities.WildFeeWaiver},
	{ID: "W03", Name: "风险保单", Kind: entities.WildRiskBlock},
	{ID: "W04", Name: "低息额度", Kind: entities.WildLoanDiscount},
	{ID: "W05", Name: "重掷令", Kind: entities.WildReroll},
}

// AwardList 评估奖项目录，判定逻辑在 engine/awards.go
var AwardList = []entities.Award{
	{ID: "AW1", Name: "大师之作", Bonus: 1.15}, // 代表作建筑
	{ID: "AW2", Name: "匠心工程", Bonus: 1.10}, // 有工艺加成的施工方
	{ID: "AW3", Name: "黄金地段", Bonus: 1.10}, // 地段标签 ≥2
	{ID: "AW4", Name: "绿色建筑", Bonus: 1.08}, // 生态派 × 生态住宅/别墅
	{ID: "AW5", Name: "城市地标", Bonus: 1.12}, // 大型施工方 × 高造价建筑
}
