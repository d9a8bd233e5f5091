package dto

import "github.com/gorilla/websocket"

// PlayerConn 房间里的一条玩家连接
type PlayerConn struct {
	PlayerID string          // 玩家ID
	Conn     *websocket.Conn // 连接对象
	Online   bool            // 是否在线（掉线后保留座位）
}
