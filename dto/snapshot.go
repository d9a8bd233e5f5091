package dto

import "go-estate/entities"

// Snapshot 整局游戏的持久化快照。核心引擎不关心编码，
// 宿主层整存整取；缺字段时回退到默认值/重建牌堆。
type Snapshot struct {
	RoomID       string                 `json:"roomId"`
	Round        int                    `json:"round"`
	MaxRounds    int                    `json:"maxRounds"`
	Phase        string                 `json:"phase"`
	Current      int                    `json:"current"`
	Starter      int                    `json:"starter"`
	Players      []*entities.Player     `json:"players"`
	Lands        []entities.Land        `json:"lands"`
	Architects   []entities.Architect   `json:"architects"`
	Constructors []entities.Constructor `json:"constructors"`
	Risks        []entities.Risk        `json:"risks"`
	Cells        []entities.CityCell    `json:"cells"`
	Claims       map[string]string      `json:"claims"`
	PendingFail  []string               `json:"pendingFail"`
	LogTail      []string               `json:"logTail"`
	ProjSeq      int                    `json:"projSeq"`
}
