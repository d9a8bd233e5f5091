package ws

import (
	"encoding/json"
	"fmt"
	"strconv"

	"go-estate/dto"
	"go-estate/logger"
	"go-estate/repository"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/gorilla/websocket"
)

// SetRoomInfo 把房间元信息写入 redis hash
func SetRoomInfo(rdb *redis.Client, roomID string, info dto.RoomInfo) error {
	key := fmt.Sprintf("room:%s:roomInfo", roomID)
	fields := map[string]interface{}{
		"userId":     info.UserID,
		"maxPlayers": info.MaxPlayers,
		"maxRounds":  info.MaxRounds,
		"started":    strconv.FormatBool(info.Started),
	}
	if _, err := rdb.HSet(repository.Ctx, key, fields).Result(); err != nil {
		return fmt.Errorf("写入房间信息失败: %w", err)
	}
	return nil
}

// GetRoomInfo 从 redis hash 读出房间元信息
func GetRoomInfo(rdb *redis.Client, roomID string) (dto.RoomInfo, error) {
	key := fmt.Sprintf("room:%s:roomInfo", roomID)
	fields, err := rdb.HGetAll(repository.Ctx, key).Result()
	if err != nil {
		return dto.RoomInfo{}, fmt.Errorf("读取房间信息失败: %w", err)
	}
	if len(fields) == 0 {
		return dto.RoomInfo{}, fmt.Errorf("房间 %s 不存在", roomID)
	}
	maxPlayers, _ := strconv.Atoi(fields["maxPlayers"])
	maxRounds, _ := strconv.Atoi(fields["maxRounds"])
	started, _ := strconv.ParseBool(fields["started"])
	return dto.RoomInfo{
		RoomID:     roomID,
		UserID:     fields["userId"],
		MaxPlayers: maxPlayers,
		MaxRounds:  maxRounds,
		Started:    started,
	}, nil
}

// 校验房间是否有空位，并将玩家加入房间；已在座的玩家视为重连
func validateAndJoinRoom(roomID, playerID string, conn *websocket.Conn) bool {
	roomInfo, err := GetRoomInfo(repository.Rdb, roomID)
	if err != nil {
		logger.L.Warnf("❌ 无法获取房间信息: %v", err)
		return false
	}

	RoomLock.Lock()
	defer RoomLock.Unlock()

	for i, pc := range Rooms[roomID] {
		if pc.PlayerID == playerID {
			Rooms[roomID][i].Conn = conn
			Rooms[roomID][i].Online = true
			logger.L.Infof("玩家 %s 重连成功", playerID)
			return true
		}
	}

	if len(Rooms[roomID]) >= roomInfo.MaxPlayers {
		return false
	}

	Rooms[roomID] = append(Rooms[roomID], dto.PlayerConn{
		PlayerID: playerID,
		Conn:     conn,
		Online:   true,
	})
	logger.L.Infof("玩家 %s 加入房间 %s", playerID, roomID)
	return true
}

// HandleWebSocket WebSocket 主入口（处理每个连接）
func HandleWebSocket(c *gin.Context) {
	conn, err := upgradeConnection(c)
	if err != nil {
		return
	}
	defer conn.Close()

	roomID := c.Query("roomId")
	playerID := c.Query("userId")
	if roomID == "" || playerID == "" {
		sendJSON(conn, map[string]string{"type": "error", "message": "缺少 roomId 或 userId"})
		return
	}

	if !validateAndJoinRoom(roomID, playerID, conn) {
		sendJSON(conn, map[string]string{"type": "error", "message": "房间已满"})
		return
	}
	defer cleanupOnDisconnect(roomID, playerID, conn)

	sendInitMessage(conn, playerID)

	roomInfo, err := GetRoomInfo(repository.Rdb, roomID)
	if err != nil {
		sendJSON(conn, map[string]string{"type": "error", "message": "房间不存在"})
		return
	}

	count := getRoomPlayerCount(roomID)
	logger.L.Infof("玩家加入 room=%s，ID=%s，当前人数=%d/%d", roomID, playerID, count, roomInfo.MaxPlayers)

	// 人满即开局；重连/已开局则直接同步快照
	if gameOf(roomID) != nil {
		broadcastSync(roomID)
	} else if count == roomInfo.MaxPlayers {
		if err := startRoomGame(roomID, roomInfo); err != nil {
			logger.L.Errorf("❌ 开局失败: %v", err)
			sendJSON(conn, map[string]string{"type": "error", "message": "开局失败"})
			return
		}
		broadcastRaw(roomID, map[string]string{"type": "start"})
		broadcastSync(roomID)
	}

	listenMessages(roomID, playerID, conn)
}

// 持续监听客户端消息并分发到对应的动作处理器
func listenMessages(roomID, playerID string, conn *websocket.Conn) {
	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			logger.L.Infof("读取消息失败: %v", err)
			break
		}

		var msgMap map[string]interface{}
		if err := json.Unmarshal(msg, &msgMap); err != nil {
			logger.L.Warnf("消息解析失败: %v", err)
			continue
		}

		msgType, _ := msgMap["type"].(string)
		handler, ok := actionHandlers[msgType]
		if !ok {
			sendResult(conn, msgType, false, "unknownAction", "未知的消息类型", nil)
			continue
		}
		handler(conn, roomID, playerID, msgMap)
	}
}
