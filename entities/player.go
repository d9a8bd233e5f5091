package entities

// Project 玩家本回合唯一的在建项目，回合结束后转入 Buildings 并清空
type Project struct {
	ID               string       `json:"id"`
	Land             *Land        `json:"land"`
	LandTier         PriceTier    `json:"landTier"`
	LandPrice        int64        `json:"landPrice"`
	DevelopCost      int64        `json:"developCost"` // 场地整备附加费（坡地/水电/道路）
	Architect        *Architect   `json:"architect"`
	Building         *Building    `json:"building"`
	DesignFee        int64        `json:"designFee"`
	Constructor      *Constructor `json:"constructor"`
	ConstructionCost int64        `json:"constructionCost"`
	Risks            []Risk       `json:"risks"`
	RiskResolved     bool         `json:"riskResolved"`
	ExtraBlocks      int          `json:"extraBlocks"` // 万能卡提供的额外抵挡
	DelayMonths      int          `json:"delayMonths"`
	RateFactor       float64      `json:"rateFactor"`   // 风险/万能卡对利率的乘数
	CostDiscount     float64      `json:"costDiscount"` // 万能卡造价折扣比例
	FeeWaived        bool         `json:"feeWaived"`    // 万能卡免设计费
	LossCost         int64        `json:"lossCost"`     // 风险造成的不可回收损失
	InterestCost     int64        `json:"interestCost"` // 建设期利息
	EvalFactor       float64      `json:"evalFactor"`   // 累乘评估系数
	SalePrice        int64        `json:"salePrice"`    // 评估售价（账面，不入现金）
	Evaluated        bool         `json:"evaluated"`    // 本回合已评估（售价可被钳到 0，不能拿售价当标记）
	Ruined           bool         `json:"ruined"`       // 灾难全损
}

// TotalInvestment 地价 + 整备费 + 设计费 + 施工费
func (p *Project) TotalInvestment() int64 {
	return p.LandPrice + p.DevelopCost + p.DesignFee + p.ConstructionCost
}

// CompletedBuilding 回合结束后沉淀下来的资产
type CompletedBuilding struct {
	Name   string `json:"name"`
	LandID string `json:"landId"`
	Value  int64  `json:"value"` // 账面价值（评估售价；废墟为裸地残值）
	Round  int    `json:"round"`
	Ruined bool   `json:"ruined"`
	Sold   bool   `json:"sold"`
}

// SaleRecord 出售历史
type SaleRecord struct {
	Round    int    `json:"round"`
	Building string `json:"building"`
	Price    int64  `json:"price"`
}

// RoundFlags 每回合重置的使用标记
type RoundFlags struct {
	Skipped  bool `json:"skipped"`  // 本回合去顾问公司打工，跳过开发
	LoanUsed bool `json:"loanUsed"` // 本回合动用过建设贷款
}

// Player 玩家，开局创建，整局存续
type Player struct {
	ID           string              `json:"id"`
	Name         string              `json:"name"`
	Cash         int64               `json:"cash"`
	Loan         int64               `json:"loan"`
	InterestRate float64             `json:"interestRate"` // 年利率
	StealUsed    bool                `json:"stealUsed"`    // 整局一次的抢地
	StartDice    int                 `json:"startDice"`    // 起始骰点（先手判定）
	Flags        RoundFlags          `json:"flags"`
	Buildings    []CompletedBuilding `json:"buildings"`
	Sales        []SaleRecord        `json:"sales"`
	Project      *Project            `json:"project"`
	Wildcards    []Wildcard          `json:"wildcards"`
}

// BuildingValue 未出售资产的账面总值
func (p *Player) BuildingValue() int64 {
	var total int64
	for _, b := range p.Buildings {
		if !b.Sold {
			total += b.Value
		}
	}
	return total
}

// NetWorth 终局净值：现金 + 资产账面值 − 贷款
func (p *Player) NetWorth() int64 {
	return p.Cash + p.BuildingValue() - p.Loan
}
