package const_data

import "go-estate/entities"

// BuildingList 建筑类型目录（纯静态数据）
var BuildingList = []entities.Building{
	{
		Name:      "公寓",
		DesignFee: 50_000_000,
		BaseCost:  500_000_000,
		Period:    4,
		TraitFactor: map[entities.Trait]float64{
			entities.TraitModern: 1.2, entities.TraitClassic: 1.0,
			entities.TraitGreen: 1.1, entities.TraitSmart: 1.1,
		},
	},
	{
		Name:      "别墅",
		DesignFee: 80_000_000,
		BaseCost:  600_000_000,
		Period:    5,
		TraitFactor: map[entities.Trait]float64{
			entities.TraitModern: 1.1, entities.TraitClassic: 1.3,
			entities.TraitGreen: 1.2, entities.TraitSmart: 1.0,
		},
	},
	{
		Name:      "写字楼",
		DesignFee: 100_000_000,
		BaseCost:  900_000_000,
		Period:    6,
		TraitFactor: map[entities.Trait]float64{
			entities.TraitModern: 1.3, entities.TraitClassic: 1.0,
			entities.TraitGreen: 1.0, entities.TraitSmart: 1.3,
		},
	},
	{
		Name:      "商场",
		DesignFee: 120_000_000,
		BaseCost:  1_100_000_000,
		Period:    6,
		TraitFactor: map[entities.Trait]float64{
			entities.TraitModern: 1.2, entities.TraitClassic: 1.1,
			entities.TraitGreen: 1.0, entities.TraitSmart: 1.2,
		},
	},
	{
		Name:      "酒店",
		DesignFee: 150_000_000,
		BaseCost:  1_300_000_000,
		Period:    7,
		TraitFactor: map[entities.Trait]float64{
			entities.TraitModern: 1.2, entities.TraitClassic: 1.2,
			entities.TraitGreen: 1.1, entities.TraitSmart: 1.1,
		},
	},
	{
		Name:      "美术馆",
		DesignFee: 130_000_000,
		BaseCost:  800_000_000,
		Period:    5,
		TraitFactor: map[entities.Trait]float64{
			entities.TraitModern: 1.1, entities.TraitClassic: 1.4,
			entities.TraitGreen: 1.1, entities.TraitSmart: 1.0,
		},
	},
	{
		Name:      "科技园",
		DesignFee: 110_000_000,
		BaseCost:  1_000_000_000,
		Period:    6,
		TraitFactor: map[entities.Trait]float64{
			entities.TraitModern: 1.1, entities.TraitClassic: 1.0,
			entities.TraitGreen: 1.1, entities.TraitSmart: 1.4,
		},
	},
	{
		Name:      "生态住宅",
		DesignFee: 70_000_000,
		BaseCost:  550_000_000,
		Period:    4,
		TraitFactor: map[entities.Trait]float64{
			entities.TraitModern: 1.0, entities.TraitClassic: 1.1,
			entities.TraitGreen: 1.4, entities.TraitSmart: 1.1,
		},
	},
	{
		Name:      "体育馆",
		DesignFee: 140_000_000,
		BaseCost:  1_200_000_000,
		Period:    7,
		TraitFactor: map[entities.Trait]float64{
			entities.TraitModern: 1.3, entities.TraitClassic: 1.1,
			entities.TraitGreen: 1.0, entities.TraitSmart: 1.1,
		},
	},
	{
		Name:      "图书馆",
		DesignFee: 90_000_000,
		BaseCost:  700_000_000,
		Period:    5,
		TraitFactor: map[entities.Trait]float64{
			entities.TraitModern: 1.0, entities.TraitClassic: 1.3,
			entities.TraitGreen: 1.2, entities.TraitSmart: 1.1,
		},
	},
}

// FindBuilding 按名称查建筑目录，找不到返回 nil
func FindBuilding(name string) *entities.Building {
	for i := range BuildingList {
		if BuildingList[i].Name == name {
			return &BuildingList[i]
		}
	}
	return nil
}
