package engine

import (
	"go-estate/const_data"
	"go-estate/entities"
)

// awardEarned 奖项判定：组合设计师特长、施工方规模、建筑类型与地段标签。
// 无状态规则，每次评估重新跑一遍。
func awardEarned(id string, proj *entities.Project) bool {
	switch id {
	case "AW1": // 大师之作：建筑在设计师代表作列表内
		return proj.Architect.IsMasterpiece(proj.Building.Name)
	case "AW2": // 匠心工程：施工方带工艺加成
		return proj.Constructor.ArtistryBonus > 1.0
	case "AW3": // 黄金地段：地段标签两个以上
		return len(proj.Land.BonusTags) >= 2
	case "AW4": // 绿色建筑：生态派设计师 × 生态类建筑
		if proj.Architect.Trait != entities.TraitGreen {
			return false
		}
		return proj.Building.Name == "生态住宅" || proj.Building.Name == "别墅"
	case "AW5": // 城市地标：大型施工方 × 高造价建筑
		return proj.Constructor.Category == "large" && proj.Building.BaseCost >= 1_000_000_000
	}
	return false
}

// evaluateAwards 返回赢得的奖项列表
func evaluateAwards(proj *entities.Project) []entities.Award {
	var earned []entities.Award
	for _, award := range const_data.AwardList {
		if awardEarned(award.ID, proj) {
			earned = append(earned, award)
		}
	}
	return earned
}
