package repository

import (
	"database/sql"
	"fmt"
	"os"

	_ "github.com/go-sql-driver/mysql"

	"go-estate/engine"
	"go-estate/logger"
)

var DB *sql.DB

// InitMySQL 终局战绩归档库。连不上只告警不退出，
// 归档失败不影响对局本身。
func InitMySQL() {
	dsn := os.Getenv("MYSQL_DSN")
	if dsn == "" {
		dsn = "root:@tcp(127.0.0.1:3306)/goestate?parseTime=true"
	}
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		logger.L.Warnf("MySQL 初始化失败: %v", err)
		return
	}
	if err := db.Ping(); err != nil {
		logger.L.Warnf("MySQL 连接失败，战绩归档不可用: %v", err)
		return
	}
	DB = db
	logger.L.Info("✅ MySQL 连接成功")
}

// ArchiveResults 终局排名写入 game_results 表
func ArchiveResults(roomID string, scores []engine.Score) error {
	if DB == nil {
		return fmt.Errorf("MySQL 未连接")
	}
	const stmt = `INSERT INTO game_results
		(room_id, player_id, cash, building_value, loan, net_worth, ranking)
		VALUES (?, ?, ?, ?, ?, ?, ?)`
	for _, s := range scores {
		if _, err := DB.Exec(stmt, roomID, s.PlayerID, s.Cash, s.BuildingValue, s.Loan, s.NetWorth, s.Rank); err != nil {
			return fmt.Errorf("写入战绩失败: %w", err)
		}
	}
	return nil
}

// LoadResults 读取某房间的终局排名
func LoadResults(roomID string) ([]engine.Score, error) {
	if DB == nil {
		return nil, fmt.Errorf("MySQL 未连接")
	}
	rows, err := DB.Query(`SELECT player_id, cash, building_value, loan, net_worth, ranking
		FROM game_results WHERE room_id = ? ORDER BY ranking`, roomID)
	if err != nil {
		return nil, fmt.Errorf("查询战绩失败: %w", err)
	}
	defer rows.Close()

	var scores []engine.Score
	for rows.Next() {
		var s engine.Score
		if err := rows.Scan(&s.PlayerID, &s.Cash, &s.BuildingValue, &s.Loan, &s.NetWorth, &s.Rank); err != nil {
			return nil, fmt.Errorf("解析战绩失败: %w", err)
		}
		scores = append(scores, s)
	}
	return scores, rows.Err()
}
