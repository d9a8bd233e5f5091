package engine

import (
	"fmt"
	"math"

	"go-estate/const_data"
	"go-estate/entities"
)

// DesignQuote 设计预览：设计费、评估加成、施工费预估
type DesignQuote struct {
	Architect     entities.Architect `json:"architect"`
	Building      entities.Building  `json:"building"`
	Masterpiece   bool               `json:"masterpiece"`
	Fee           int64              `json:"fee"`
	TraitBonus    float64            `json:"traitBonus"`    // 特长 × 建筑价值系数（非代表作折半）
	EstimatedCost int64              `json:"estimatedCost"` // 施工费预估（不含施工方倍率）
}

// PreviewDesign 计算设计费与评估加成。
// 费用可行性按「设计费 + 施工费预估」把关，确认时只收设计费。
func (g *GameContext) PreviewDesign(playerID, architectID, buildingName string) (DesignQuote, Outcome) {
	p, out := g.guardTurn(playerID, PhaseDesign)
	if !out.OK {
		return DesignQuote{}, out
	}
	proj := p.Project
	if proj == nil || proj.Land == nil {
		return DesignQuote{}, Fail(CodePrecondition, "没有土地，无法进入设计")
	}
	if proj.Architect != nil {
		return DesignQuote{}, Fail(CodePrecondition, "本回合已经选定设计师")
	}
	arch, found := g.ArchitectDeck.Find(architectID)
	if !found {
		return DesignQuote{}, Fail(CodeCardNotFound, fmt.Sprintf("设计师[%s]不在可选列表", architectID))
	}
	if holder, claimed := g.Claims[architectID]; claimed {
		return DesignQuote{}, Fail(CodeCardClaimed, fmt.Sprintf("设计师[%s]已被玩家[%s]签约", architectID, holder))
	}
	building := const_data.FindBuilding(buildingName)
	if building == nil {
		return DesignQuote{}, Fail(CodeCardNotFound, fmt.Sprintf("建筑类型[%s]不存在", buildingName))
	}

	masterpiece := arch.IsMasterpiece(buildingName)
	fee := int64(math.Round(float64(building.DesignFee) * arch.FeeMultiplier))
	if !masterpiece {
		fee = int64(math.Round(float64(fee) * 0.7)) // 非代表作设计费七折
	}
	if proj.FeeWaived {
		fee = 0
	}

	bonus := building.TraitFactor[arch.Trait] * arch.TraitBonus
	if !masterpiece {
		bonus = 1 + (bonus-1)*0.5 // 非代表作加成向 1 折半，而不是打掉
	}

	estimated := int64(math.Round(float64(building.BaseCost) * arch.CostMultiplier))
	if fee+estimated > AvailableFunds(p) {
		return DesignQuote{}, Fail(CodeInsufficientFunds,
			fmt.Sprintf("设计费加施工预估需要 %d，可用 %d", fee+estimated, AvailableFunds(p)))
	}
	return DesignQuote{
		Architect:     arch,
		Building:      *building,
		Masterpiece:   masterpiece,
		Fee:           fee,
		TraitBonus:    bonus,
		EstimatedCost: estimated,
	}, Ok()
}

// PickDesign 设计提交：收设计费、签约设计师（独占）、绑定建筑类型，
// 把特长加成和土地适配加成乘进评估系数
func (g *GameContext) PickDesign(playerID, architectID, buildingName string) Outcome {
	quote, out := g.PreviewDesign(playerID, architectID, buildingName)
	if !out.OK {
		return out
	}
	p := g.CurrentPlayer()
	proj := p.Project

	if out := g.Claim(architectID, playerID); !out.OK {
		return out
	}
	if out := Pay(p, quote.Fee); !out.OK {
		g.ReleaseBy(playerID)
		return out
	}
	arch, _ := g.ArchitectDeck.Remove(architectID)
	proj.Architect = &arch
	building := quote.Building
	proj.Building = &building
	proj.DesignFee = quote.Fee
	proj.EvalFactor *= quote.TraitBonus
	proj.EvalFactor *= proj.Land.Suitability
	g.Logf("玩家[%s]签约设计师[%s]设计[%s]，设计费 %d", playerID, arch.Name, buildingName, quote.Fee)
	return Ok()
}
