package ws

import (
	"encoding/json"
	"fmt"

	"go-estate/dto"
	"go-estate/engine"
	"go-estate/logger"
	"go-estate/repository"

	"github.com/go-redis/redis/v8"
	"github.com/mitchellh/mapstructure"
)

func snapshotKey(roomID string) string {
	return fmt.Sprintf("room:%s:snapshot", roomID)
}

// SaveSnapshot 整局状态序列化后落 redis
func SaveSnapshot(g *engine.GameContext) error {
	snap := g.Snapshot()
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("快照序列化失败: %w", err)
	}
	if _, err := repository.Rdb.Set(repository.Ctx, snapshotKey(g.RoomID), data, 0).Result(); err != nil {
		return fmt.Errorf("快照写入 redis 失败: %w", err)
	}
	return nil
}

// LoadSnapshot 宽容读取快照：先解到 map 再用 mapstructure 落到结构体，
// 老版本快照缺字段时不报错，由引擎恢复默认值
func LoadSnapshot(roomID string) (dto.Snapshot, bool) {
	raw, err := repository.Rdb.Get(repository.Ctx, snapshotKey(roomID)).Result()
	if err == redis.Nil {
		return dto.Snapshot{}, false
	}
	if err != nil {
		logger.L.Warnf("读取快照失败: %v", err)
		return dto.Snapshot{}, false
	}

	var m map[string]interface{}
	if err := json.Unmarshal([]byte(raw), &m); err != nil {
		logger.L.Warnf("快照解析失败: %v", err)
		return dto.Snapshot{}, false
	}

	var snap dto.Snapshot
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "json",
		WeaklyTypedInput: true,
		Result:           &snap,
	})
	if err != nil {
		logger.L.Warnf("构建快照解码器失败: %v", err)
		return dto.Snapshot{}, false
	}
	if err := decoder.Decode(m); err != nil {
		logger.L.Warnf("快照字段解码失败: %v", err)
		return dto.Snapshot{}, false
	}
	return snap, true
}
