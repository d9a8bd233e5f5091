package ws

import (
	"encoding/json"
	"net/http"
	"sync"

	"go-estate/dto"
	"go-estate/logger"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Rooms 房间内的所有连接（掉线玩家保留座位，Online 置 false）
var Rooms = make(map[string][]dto.PlayerConn)
var RoomLock sync.Mutex

// sendJSON 给单个连接发一条消息，失败只记日志
func sendJSON(conn *websocket.Conn, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return conn.WriteMessage(websocket.TextMessage, data)
}

// sendResult 把操作应答只回给动作发起方
func sendResult(conn *websocket.Conn, action string, ok bool, code, message string, data interface{}) {
	res := dto.ActionResult{
		Type:    "action_result",
		Action:  action,
		OK:      ok,
		Code:    code,
		Message: message,
		Data:    data,
	}
	if err := sendJSON(conn, res); err != nil {
		logger.L.Warnf("发送操作应答失败: %v", err)
	}
}

// broadcastSync 向房间内所有在线玩家推送最新局面
func broadcastSync(roomID string) {
	view := buildRoomView(roomID)

	RoomLock.Lock()
	defer RoomLock.Unlock()

	for i, pc := range Rooms[roomID] {
		if !pc.Online {
			continue
		}
		msg := dto.SyncMessage{Type: "sync", PlayerID: pc.PlayerID, RoomData: view}
		if err := sendJSON(pc.Conn, msg); err != nil {
			logger.L.Infof("广播失败，标记掉线: %s", pc.PlayerID)
			pc.Conn.Close()
			Rooms[roomID][i].Online = false
		}
	}
}

// broadcastRaw 发送一条简单的 type 消息（start / game_over 等）
func broadcastRaw(roomID string, v interface{}) {
	RoomLock.Lock()
	defer RoomLock.Unlock()

	for i, pc := range Rooms[roomID] {
		if !pc.Online {
			continue
		}
		if err := sendJSON(pc.Conn, v); err != nil {
			pc.Conn.Close()
			Rooms[roomID][i].Online = false
		}
	}
}

// 获取房间在线人数
func getRoomPlayerCount(roomID string) int {
	RoomLock.Lock()
	defer RoomLock.Unlock()
	return len(Rooms[roomID])
}

// 向单个客户端发送初始化消息（告诉前端自己的 playerId）
func sendInitMessage(conn *websocket.Conn, playerID string) {
	sendJSON(conn, map[string]string{
		"type":     "init",
		"playerId": playerID,
	})
}

// 玩家断开连接后标记掉线，座位保留以便重连
func cleanupOnDisconnect(roomID, playerID string, conn *websocket.Conn) {
	RoomLock.Lock()
	defer RoomLock.Unlock()

	for i, pc := range Rooms[roomID] {
		if pc.Conn == conn {
			Rooms[roomID][i].Online = false
		}
	}
	logger.L.Infof("玩家 %s 离开房间 %s", playerID, roomID)
}

// 将 HTTP 请求升级为 WebSocket 连接
func upgradeConnection(c *gin.Context) (*websocket.Conn, error) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logger.L.Warnf("WebSocket 升级失败: %v", err)
	}
	return conn, err
}
