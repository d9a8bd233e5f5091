package engine

import (
	"fmt"

	"go-estate/entities"
)

// LandQuote 购地预览：只算账，不动任何状态
type LandQuote struct {
	Land        entities.Land      `json:"land"`
	Tier        entities.PriceTier `json:"tier"`
	Price       int64              `json:"price"`
	DevelopCost int64              `json:"developCost"`
	TotalCost   int64              `json:"totalCost"`
	NeedsDice   bool               `json:"needsDice"`
	SuccessDice []int              `json:"successDice"`
}

// PreviewLand 报价 + 可行性检查（渠道开放、未被拉黑、付得起）
func (g *GameContext) PreviewLand(playerID, landID string, tier entities.PriceTier) (LandQuote, Outcome) {
	p, out := g.guardTurn(playerID, PhaseLandPurchase)
	if !out.OK {
		return LandQuote{}, out
	}
	if p.Project == nil || p.Project.Land != nil {
		return LandQuote{}, Fail(CodePrecondition, "本回合已经有地了")
	}
	land, found := g.LandDeck.Find(landID)
	if !found {
		return LandQuote{}, Fail(CodeCardNotFound, fmt.Sprintf("地块[%s]不在可售列表", landID))
	}
	price := land.TierPrice(tier)
	if price <= 0 {
		return LandQuote{}, Fail(CodeTierUnavailable, fmt.Sprintf("地块[%s]未开放 %s 渠道", landID, tier))
	}
	if tier != entities.TierMarket && g.PendingFail[failKey(landID, playerID)] {
		return LandQuote{}, Fail(CodeRetryBlocked, "该地块本回合已竞买失败，不能再走非市价渠道")
	}
	develop := DevelopCost(&land)
	total := price + develop
	if total > AvailableFunds(p) {
		return LandQuote{}, Fail(CodeInsufficientFunds,
			fmt.Sprintf("资金不足：需要 %d，可用 %d", total, AvailableFunds(p)))
	}
	return LandQuote{
		Land:        land,
		Tier:        tier,
		Price:       price,
		DevelopCost: develop,
		TotalCost:   total,
		NeedsDice:   tier != entities.TierMarket,
		SuccessDice: land.TierDice(tier),
	}, Ok()
}

// BuyLand 购地提交。市价必成；急售/拍卖掷骰判定，失败记入黑名单。
// 返回骰子点数（市价渠道为 0）。
func (g *GameContext) BuyLand(playerID, landID string, tier entities.PriceTier) (int, Outcome) {
	quote, out := g.PreviewLand(playerID, landID, tier)
	if !out.OK {
		return 0, out
	}
	p := g.CurrentPlayer()

	dice := 0
	if quote.NeedsDice {
		dice = g.rng.Dice()
		if !containsInt(quote.SuccessDice, dice) {
			g.PendingFail[failKey(landID, playerID)] = true
			g.Logf("玩家[%s]竞买[%s]掷出 %d，未成交", playerID, landID, dice)
			return dice, Fail(CodeDiceFailure, fmt.Sprintf("掷出 %d，未达成交点数", dice))
		}
	}

	// 先付款再绑定；Pay 内部借缺口，预览已保证不会超授信
	if out := Pay(p, quote.TotalCost); !out.OK {
		return dice, out
	}
	land, _ := g.LandDeck.Remove(landID)
	p.Project.Land = &land
	p.Project.LandTier = tier
	p.Project.LandPrice = quote.Price
	p.Project.DevelopCost = quote.DevelopCost
	g.Grid.Place(p.ID, p.Project.ID, land.Region)
	g.Logf("玩家[%s]以 %s 渠道购得[%s]，总价 %d", playerID, tier, land.Name, quote.TotalCost)
	return dice, Ok()
}

// SkipLand 本回合去顾问公司打工，放弃开发（购地阶段的主动跳过）
func (g *GameContext) SkipLand(playerID string) Outcome {
	p, out := g.guardTurn(playerID, PhaseLandPurchase)
	if !out.OK {
		return out
	}
	if p.Project != nil && p.Project.Land != nil {
		return Fail(CodePrecondition, "已经买地，不能再跳过本回合")
	}
	p.Flags.Skipped = true
	p.Project = nil
	g.Logf("玩家[%s]本回合选择顾问打工", playerID)
	return Ok()
}

// StealLand 整局一次的抢地：当前玩家按对方实付金额买断其项目土地。
// 借记、退款、土地转移一步完成，任何前置不满足都不落任何变更。
func (g *GameContext) StealLand(thiefID, victimID string) Outcome {
	thief, out := g.guardTurn(thiefID, PhaseLandPurchase)
	if !out.OK {
		return out
	}
	if thief.StealUsed {
		return Fail(CodePrecondition, "抢地机会整局只有一次，已经用过")
	}
	if thief.Project == nil || thief.Project.Land != nil {
		return Fail(CodePrecondition, "自己已有土地，不能抢地")
	}
	victim := g.FindPlayer(victimID)
	if victim == nil || victim.Project == nil || victim.Project.Land == nil {
		return Fail(CodePrecondition, "目标玩家没有可抢的土地")
	}
	if victim.Project.Architect != nil {
		return Fail(CodePrecondition, "目标项目已进入设计，不能抢")
	}

	cost := victim.Project.LandPrice + victim.Project.DevelopCost
	if cost > AvailableFunds(thief) {
		return Fail(CodeInsufficientFunds, fmt.Sprintf("抢地需要 %d，可用 %d", cost, AvailableFunds(thief)))
	}
	if out := Pay(thief, cost); !out.OK {
		return out
	}
	// 付款成功后的转移不再有失败路径，保证原子性
	victim.Cash += cost
	thief.Project.Land = victim.Project.Land
	thief.Project.LandTier = victim.Project.LandTier
	thief.Project.LandPrice = victim.Project.LandPrice
	thief.Project.DevelopCost = victim.Project.DevelopCost
	g.Grid.Vacate(victim.ID, victim.Project.ID)
	victim.Project.Land = nil
	victim.Project.LandPrice = 0
	victim.Project.DevelopCost = 0
	g.Grid.Place(thief.ID, thief.Project.ID, thief.Project.Land.Region)
	thief.StealUsed = true
	g.Logf("玩家[%s]从[%s]手中抢下[%s]，补偿 %d", thiefID, victimID, thief.Project.Land.Name, cost)
	return Ok()
}

func containsInt(list []int, v int) bool {
	for _, x := range list {
		if x == v {
			return true
		}
	}
	return false
}
