package const_data

import "go-estate/entities"

// ArchitectList 设计师卡目录，每个特长各两位
var ArchitectList = []entities.Architect{
	{
		ID: "A01", Name: "林苍远", Trait: entities.TraitModern,
		TraitBonus: 1.3, FeeMultiplier: 1.2, CostMultiplier: 1.1,
		Masterpieces: []string{"写字楼", "公寓"},
	},
	{
		ID: "A02", Name: "程未", Trait: entities.TraitModern,
		TraitBonus: 1.2, FeeMultiplier: 1.0, CostMultiplier: 1.0,
		Masterpieces: []string{"商场", "体育馆"},
	},
	{
		ID: "A03", Name: "顾清和", Trait: entities.TraitClassic,
		TraitBonus: 1.35, FeeMultiplier: 1.3, CostMultiplier: 1.15,
		Masterpieces: []string{"美术馆", "图书馆"},
	},
	{
		ID: "A04", Name: "沈砚", Trait: entities.TraitClassic,
		TraitBonus: 1.2, FeeMultiplier: 1.1, CostMultiplier: 1.0,
		Masterpieces: []string{"别墅", "酒店"},
	},
	{
		ID: "A05", Name: "闻人绿", Trait: entities.TraitGreen,
		TraitBonus: 1.3, FeeMultiplier: 1.15, CostMultiplier: 1.05,
		Masterpieces: []string{"生态住宅", "别墅"},
	},
	{
		ID: "A06", Name: "夏栖原", Trait: entities.TraitGreen,
		TraitBonus: 1.15, FeeMultiplier: 0.9, CostMultiplier: 0.95,
		Masterpieces: []string{"公寓", "图书馆"},
	},
	{
		ID: "A07", Name: "白简", Trait: entities.TraitSmart,
		TraitBonus: 1.35, FeeMultiplier: 1.25, CostMultiplier: 1.1,
		Masterpieces: []string{"科技园", "写字楼"},
	},
	{
		ID: "A08", Name: "陆知行", Trait: entities.TraitSmart,
		TraitBonus: 1.2, FeeMultiplier: 1.0, CostMultiplier: 1.0,
		Masterpieces: []string{"酒店", "商场"},
	},
}
