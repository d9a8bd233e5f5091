package dto

// ActionResult 单个操作的应答，只回给动作发起方
type ActionResult struct {
	Type    string      `json:"type"` // 固定 "action_result"
	Action  string      `json:"action"`
	OK      bool        `json:"ok"`
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// SyncMessage 广播给全房间的状态同步
type SyncMessage struct {
	Type     string      `json:"type"` // 固定 "sync"
	PlayerID string      `json:"playerId"`
	RoomData interface{} `json:"roomData"`
}
