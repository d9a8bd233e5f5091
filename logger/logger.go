package logger

import "go.uber.org/zap"

// L 全局 SugaredLogger，main 里 Init 一次
var L *zap.SugaredLogger

func Init() {
	base, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	L = base.Sugar()
}

func init() {
	// 未显式 Init 时兜底，避免测试里空指针
	if L == nil {
		L = zap.NewNop().Sugar()
	}
}
