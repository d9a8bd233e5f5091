package entities

// CityCell 城市网格单元。ProjectID 只存句柄，不内嵌 Project，
// 避免和 Player.Project 出现两份不同步的副本。
type CityCell struct {
	Row         int    `json:"row"`
	Col         int    `json:"col"`
	Region      int    `json:"region"` // 行号对应的城区等级，1..5
	Owner       string `json:"owner"`  // playerID，空串表示无主
	ProjectID   string `json:"projectId"`
	HasBuilding bool   `json:"hasBuilding"`
	Building    string `json:"building"` // 建成后的建筑名
}

// Empty 该格是否可放置
func (c *CityCell) Empty() bool {
	return c.Owner == ""
}
