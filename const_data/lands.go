package const_data

import "go-estate/entities"

// LandList 土地卡目录。急售/拍卖价为 0 表示该渠道不开放。
var LandList = []entities.Land{
	{
		ID: "L01", Name: "滨江地块", Suitable: []string{"公寓", "酒店", "商场"},
		Suitability: 1.2, PriceMarket: 200_000_000, PriceUrgent: 160_000_000, PriceAuction: 140_000_000,
		UrgentDice: []int{3, 4, 5, 6}, AuctionDice: []int{5, 6},
		Slope: 0, HasUtility: true, HasRoad: true,
		BonusTags: []string{"河景"}, Region: 1,
	},
	{
		ID: "L02", Name: "老城里弄", Suitable: []string{"美术馆", "图书馆", "别墅"},
		Suitability: 1.15, PriceMarket: 150_000_000, PriceUrgent: 120_000_000, PriceAuction: 0,
		UrgentDice: []int{2, 3, 4, 5, 6},
		Slope:      0, HasUtility: true, HasRoad: false,
		BonusTags: []string{"历史街区"}, Region: 2,
	},
	{
		ID: "L03", Name: "高新区地块", Suitable: []string{"科技园", "写字楼"},
		Suitability: 1.25, PriceMarket: 260_000_000, PriceUrgent: 0, PriceAuction: 200_000_000,
		AuctionDice: []int{4, 5, 6},
		Slope:       0, HasUtility: true, HasRoad: true,
		BonusTags: []string{"地铁", "政策扶持"}, Region: 1,
	},
	{
		ID: "L04", Name: "山腰台地", Suitable: []string{"别墅", "生态住宅"},
		Suitability: 1.3, PriceMarket: 120_000_000, PriceUrgent: 90_000_000, PriceAuction: 80_000_000,
		UrgentDice: []int{4, 5, 6}, AuctionDice: []int{6},
		Slope: 2, HasUtility: false, HasRoad: false,
		BonusTags: []string{"山景"}, Region: 4,
	},
	{
		ID: "L05", Name: "城郊平原", Suitable: []string{"体育馆", "科技园", "商场"},
		Suitability: 1.1, PriceMarket: 100_000_000, PriceUrgent: 80_000_000, PriceAuction: 70_000_000,
		UrgentDice: []int{2, 3, 4, 5, 6}, AuctionDice: []int{3, 4, 5, 6},
		Slope: 0, HasUtility: false, HasRoad: true,
		BonusTags: nil, Region: 5,
	},
	{
		ID: "L06", Name: "中央商务区", Suitable: []string{"写字楼", "酒店", "商场"},
		Suitability: 1.35, PriceMarket: 400_000_000, PriceUrgent: 0, PriceAuction: 320_000_000,
		AuctionDice: []int{5, 6},
		Slope:       0, HasUtility: true, HasRoad: true,
		BonusTags: []string{"地铁", "地标"}, Region: 1,
	},
	{
		ID: "L07", Name: "湖畔缓坡", Suitable: []string{"别墅", "酒店", "生态住宅"},
		Suitability: 1.2, PriceMarket: 180_000_000, PriceUrgent: 140_000_000, PriceAuction: 0,
		UrgentDice: []int{3, 4, 5, 6},
		Slope:      1, HasUtility: true, HasRoad: false,
		BonusTags: []string{"湖景"}, Region: 3,
	},
	{
		ID: "L08", Name: "大学城东", Suitable: []string{"图书馆", "公寓", "体育馆"},
		Suitability: 1.15, PriceMarket: 140_000_000, PriceUrgent: 110_000_000, PriceAuction: 100_000_000,
		UrgentDice: []int{2, 3, 4, 5, 6}, AuctionDice: []int{4, 5, 6},
		Slope: 0, HasUtility: true, HasRoad: true,
		BonusTags: []string{"学区"}, Region: 2,
	},
	{
		ID: "L09", Name: "旧厂改造区", Suitable: []string{"美术馆", "科技园", "商场"},
		Suitability: 1.1, PriceMarket: 110_000_000, PriceUrgent: 85_000_000, PriceAuction: 75_000_000,
		UrgentDice: []int{3, 4, 5, 6}, AuctionDice: []int{4, 5, 6},
		Slope: 0, HasUtility: false, HasRoad: true,
		BonusTags: []string{"文创园"}, Region: 3,
	},
	{
		ID: "L10", Name: "坡地新村", Suitable: []string{"公寓", "生态住宅"},
		Suitability: 1.05, PriceMarket: 90_000_000, PriceUrgent: 70_000_000, PriceAuction: 60_000_000,
		UrgentDice: []int{2, 3, 4, 5, 6}, AuctionDice: []int{3, 4, 5, 6},
		Slope: 1, HasUtility: true, HasRoad: true,
		BonusTags: nil, Region: 4,
	},
	{
		ID: "L11", Name: "会展中心旁", Suitable: []string{"酒店", "写字楼", "体育馆"},
		Suitability: 1.25, PriceMarket: 280_000_000, PriceUrgent: 220_000_000, PriceAuction: 0,
		UrgentDice: []int{4, 5, 6},
		Slope:      0, HasUtility: true, HasRoad: true,
		BonusTags: []string{"会展", "地铁"}, Region: 2,
	},
	{
		ID: "L12", Name: "湿地边缘", Suitable: []string{"生态住宅", "美术馆"},
		Suitability: 1.3, PriceMarket: 130_000_000, PriceUrgent: 0, PriceAuction: 95_000_000,
		AuctionDice: []int{5, 6},
		Slope:       0, HasUtility: false, HasRoad: false,
		BonusTags: []string{"湿地", "河景"}, Region: 5,
	},
}
