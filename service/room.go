package service

import (
	"fmt"
	"strings"

	"go-estate/dto"
	"go-estate/repository"
	"go-estate/ws"

	"github.com/google/uuid"
)

// CreateRoom 生成 8 位房间号并把房间元信息写入 redis
func CreateRoom(params dto.CreateRoomRequest) (string, error) {
	uuidStr := uuid.New().String()
	roomID := strings.ReplaceAll(uuidStr, "-", "")[:8]

	err := ws.SetRoomInfo(repository.Rdb, roomID, dto.RoomInfo{
		RoomID:     roomID,
		UserID:     params.UserID,
		MaxPlayers: params.MaxPlayers,
		MaxRounds:  params.MaxRounds,
		Started:    false,
	})
	if err != nil {
		return "", fmt.Errorf("初始化房间信息失败: %w", err)
	}

	ws.Rooms[roomID] = []dto.PlayerConn{}
	return roomID, nil
}

// DeleteRoom 清掉房间在 redis 里的所有 key（房间信息、快照），并释放内存对局
func DeleteRoom(params dto.DeleteRoomRequest) error {
	ctx := repository.Ctx
	rdb := repository.Rdb

	// 用 SCAN 查找所有以 room:{RoomID}: 开头的 key
	prefix := fmt.Sprintf("room:%s:", params.RoomID)
	var cursor uint64
	var keysToDelete []string

	for {
		keys, cur, err := rdb.Scan(ctx, cursor, prefix+"*", 100).Result()
		if err != nil {
			return fmt.Errorf("扫描房间相关 key 失败: %w", err)
		}
		keysToDelete = append(keysToDelete, keys...)
		cursor = cur
		if cursor == 0 {
			break
		}
	}

	if len(keysToDelete) == 0 {
		return fmt.Errorf("房间不存在或无相关数据")
	}

	if _, err := rdb.Del(ctx, keysToDelete...).Result(); err != nil {
		return fmt.Errorf("删除房间相关 key 失败: %w", err)
	}

	ws.RoomLock.Lock()
	delete(ws.Rooms, params.RoomID)
	ws.RoomLock.Unlock()
	ws.DropGame(params.RoomID)

	return nil
}

// GetRoomList 汇总所有活跃房间与座位情况
func GetRoomList() ([]dto.RoomInfo, error) {
	rdb := repository.Rdb
	var rooms []dto.RoomInfo

	ws.RoomLock.Lock()
	seats := make(map[string][]dto.RoomPlayer)
	for roomID, conns := range ws.Rooms {
		players := make([]dto.RoomPlayer, 0, len(conns))
		for _, pc := range conns {
			players = append(players, dto.RoomPlayer{
				PlayerID: pc.PlayerID,
				Online:   pc.Online,
			})
		}
		seats[roomID] = players
	}
	ws.RoomLock.Unlock()

	for roomID, players := range seats {
		roomInfo, err := ws.GetRoomInfo(rdb, roomID)
		if err != nil {
			// 房间 key 已被清理，跳过脏座位
			continue
		}
		roomInfo.RoomPlayer = players
		rooms = append(rooms, roomInfo)
	}
	return rooms, nil
}
