package const_data

import "go-estate/entities"

// ConstructorList 施工方卡目录
var ConstructorList = []entities.Constructor{
	{
		ID: "C01", Name: "磐石重工", Category: "large",
		CostMultiplier: 1.2, RiskBlocks: 3, PaymentStages: 4, ArtistryBonus: 0,
		Buildable: []string{"写字楼", "商场", "酒店", "体育馆", "科技园"},
	},
	{
		ID: "C02", Name: "恒建集团", Category: "large",
		CostMultiplier: 1.15, RiskBlocks: 2, PaymentStages: 3, ArtistryBonus: 1.05,
		Buildable: []string{"写字楼", "商场", "酒店", "公寓", "体育馆"},
	},
	{
		ID: "C03", Name: "匠心营造", Category: "medium",
		CostMultiplier: 1.1, RiskBlocks: 2, PaymentStages: 3, ArtistryBonus: 1.15,
		Buildable: []string{"美术馆", "图书馆", "别墅", "酒店"},
	},
	{
		ID: "C04", Name: "绿野建设", Category: "medium",
		CostMultiplier: 1.0, RiskBlocks: 2, PaymentStages: 2, ArtistryBonus: 1.1,
		Buildable: []string{"生态住宅", "别墅", "公寓", "图书馆"},
	},
	{
		ID: "C05", Name: "城南工务", Category: "small",
		CostMultiplier: 0.9, RiskBlocks: 1, PaymentStages: 2, ArtistryBonus: 0,
		Buildable: []string{"公寓", "生态住宅", "图书馆"},
	},
	{
		ID: "C06", Name: "启明智造", Category: "medium",
		CostMultiplier: 1.05, RiskBlocks: 2, PaymentStages: 3, ArtistryBonus: 1.1,
		Buildable: []string{"科技园", "写字楼", "公寓"},
	},
	{
		ID: "C07", Name: "远大基建", Category: "large",
		CostMultiplier: 1.25, RiskBlocks: 3, PaymentStages: 5, ArtistryBonus: 0,
		Buildable: []string{"体育馆", "商场", "酒店", "科技园", "写字楼"},
	},
	{
		ID: "C08", Name: "青瓦坊", Category: "small",
		CostMultiplier: 0.95, RiskBlocks: 1, PaymentStages: 2, ArtistryBonus: 1.2,
		Buildable: []string{"别墅", "美术馆", "生态住宅"},
	},
}
