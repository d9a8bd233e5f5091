package entities

// Trait 设计师特长类别（四选一）
type Trait string

const (
	TraitModern  Trait = "Modern"  // 现代派
	TraitClassic Trait = "Classic" // 古典派
	TraitGreen   Trait = "Green"   // 生态派
	TraitSmart   Trait = "Smart"   // 智能派
)

// PriceTier 土地的三种购买渠道
type PriceTier string

const (
	TierMarket  PriceTier = "market"  // 市价，必定成交
	TierUrgent  PriceTier = "urgent"  // 急售，掷骰判定
	TierAuction PriceTier = "auction" // 拍卖，掷骰判定
)

// Land 土地卡（目录数据，购买后从牌池移除）
type Land struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Suitable     []string `json:"suitable"`    // 适合建造的建筑类型
	Suitability  float64  `json:"suitability"` // 土地适配加成（评估系数乘数）
	PriceMarket  int64    `json:"priceMarket"`
	PriceUrgent  int64    `json:"priceUrgent"`  // 0 表示该渠道不可用
	PriceAuction int64    `json:"priceAuction"` // 0 表示该渠道不可用
	UrgentDice   []int    `json:"urgentDice"`   // 急售成交点数集合
	AuctionDice  []int    `json:"auctionDice"`  // 拍卖成交点数集合
	Slope        int      `json:"slope"`        // 0 平地 / 1 缓坡 / 2 陡坡
	HasUtility   bool     `json:"hasUtility"`   // 是否通水电
	HasRoad      bool     `json:"hasRoad"`      // 是否临路
	BonusTags    []string `json:"bonusTags"`    // 地段标签（河景、地铁…）
	Region       int      `json:"region"`       // 1..5，对应城市网格的行
}

func (l Land) CardID() string { return l.ID }

// TierPrice 返回指定渠道的报价，0 表示不可用
func (l Land) TierPrice(tier PriceTier) int64 {
	switch tier {
	case TierMarket:
		return l.PriceMarket
	case TierUrgent:
		return l.PriceUrgent
	case TierAuction:
		return l.PriceAuction
	}
	return 0
}

// TierDice 返回指定渠道的成交点数集合（市价渠道返回 nil，表示无需掷骰）
func (l Land) TierDice(tier PriceTier) []int {
	switch tier {
	case TierUrgent:
		return l.UrgentDice
	case TierAuction:
		return l.AuctionDice
	}
	return nil
}

// Architect 设计师卡（目录数据，同一回合内只能被一名玩家占用）
type Architect struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Trait          Trait    `json:"trait"`
	TraitBonus     float64  `json:"traitBonus"`     // 特长加成倍数
	FeeMultiplier  float64  `json:"feeMultiplier"`  // 设计费倍率
	CostMultiplier float64  `json:"costMultiplier"` // 施工造价倍率
	Masterpieces   []string `json:"masterpieces"`   // 代表作建筑列表
}

func (a Architect) CardID() string { return a.ID }

// IsMasterpiece 判断某建筑是否在设计师的代表作列表内
func (a Architect) IsMasterpiece(building string) bool {
	for _, name := range a.Masterpieces {
		if name == building {
			return true
		}
	}
	return false
}

// Constructor 施工方卡（同一回合内只能被一名玩家占用）
type Constructor struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Category       string   `json:"category"` // small / medium / large
	CostMultiplier float64  `json:"costMultiplier"`
	RiskBlocks     int      `json:"riskBlocks"`    // 可抵挡的风险数
	PaymentStages  int      `json:"paymentStages"` // 工程款分期数
	ArtistryBonus  float64  `json:"artistryBonus"` // 工艺加成，0 表示无
	Buildable      []string `json:"buildable"`     // 可承建的建筑类型
}

func (c Constructor) CardID() string { return c.ID }

// CanBuild 判断施工方能否承建某建筑
func (c Constructor) CanBuild(building string) bool {
	for _, name := range c.Buildable {
		if name == building {
			return true
		}
	}
	return false
}

// Building 建筑类型目录（纯静态数据）
type Building struct {
	Name        string            `json:"name"`
	DesignFee   int64             `json:"designFee"` // 基础设计费
	BaseCost    int64             `json:"baseCost"`  // 基础造价
	Period      int               `json:"period"`    // 工期（月），同时决定风险手牌数
	TraitFactor map[Trait]float64 `json:"traitFactor"`
}

// RiskCategory 风险卡大类
type RiskCategory string

const (
	RiskDelay    RiskCategory = "delay"    // 工期延误
	RiskCostUp   RiskCategory = "costUp"   // 成本上涨
	RiskDisaster RiskCategory = "disaster" // 灾难（项目全损）
	RiskPositive RiskCategory = "positive" // 利好
	RiskNeutral  RiskCategory = "neutral"  // 无事发生
)

// RiskEffectKind 风险生效后的封闭效果变体
type RiskEffectKind string

const (
	EffectNone         RiskEffectKind = "none"
	EffectDelay        RiskEffectKind = "delay"        // 增加工期
	EffectCostIncrease RiskEffectKind = "costIncrease" // 造价按比例上浮
	EffectInterestMul  RiskEffectKind = "interestMul"  // 利率乘数
	EffectDisaster     RiskEffectKind = "disaster"     // 投资全损
	EffectGrant        RiskEffectKind = "grant"        // 利好：评估系数加成
)

// RiskEffect 风险效果描述，按 Kind 取对应字段
type RiskEffect struct {
	Kind       RiskEffectKind `json:"kind"`
	Months     int            `json:"months"`     // EffectDelay
	CostRate   float64        `json:"costRate"`   // EffectCostIncrease，比例
	RateFactor float64        `json:"rateFactor"` // EffectInterestMul
	EvalBonus  float64        `json:"evalBonus"`  // EffectGrant
}

// Risk 风险卡实例（从加权牌堆抽出的副本，结算时就地打 Blocked 标记）
type Risk struct {
	ID       string       `json:"id"`
	Name     string       `json:"name"`
	Category RiskCategory `json:"category"`
	Severity int          `json:"severity"` // 1 普通 / 2 高危 / 3 毁灭
	Effect   RiskEffect   `json:"effect"`
	Blocked  bool         `json:"blocked"`
}

func (r Risk) CardID() string { return r.ID }

// Harmful 有害风险才消耗抵挡名额
func (r Risk) Harmful() bool {
	return r.Category != RiskNeutral && r.Category != RiskPositive
}

// WildcardKind 万能卡效果种类
type WildcardKind string

const (
	WildDiscount     WildcardKind = "discount"     // 施工造价九折
	WildFeeWaiver    WildcardKind = "feeWaiver"    // 免除设计费
	WildRiskBlock    WildcardKind = "riskBlock"    // 额外抵挡一个风险
	WildLoanDiscount WildcardKind = "loanDiscount" // 本项目利率九折
	WildReroll       WildcardKind = "reroll"       // 清除购地失败记录，可重掷
)

// Wildcard 评估获奖后随机发放的一次性道具
type Wildcard struct {
	ID   string       `json:"id"`
	Name string       `json:"name"`
	Kind WildcardKind `json:"kind"`
}

// Award 评估奖项（无状态规则，每次评估重新判定）
type Award struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Bonus float64 `json:"bonus"` // 评估系数乘数
}
