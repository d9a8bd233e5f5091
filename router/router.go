package router

import (
	"go-estate/controller"
	"go-estate/middleware"
	"go-estate/ws"

	"github.com/gin-gonic/gin"
)

func InitRouter(r *gin.Engine) {
	r.POST("/auth/token", controller.IssueToken)

	// 游戏接口路由
	api := r.Group("/room")
	{
		api.POST("/create", middleware.AuthMiddleware(), controller.CreateRoom)
		api.POST("/delete", middleware.AuthMiddleware(), controller.DeleteRoom)
		api.GET("/list", controller.GetRoomList)
		api.GET("/:roomID/ranking", controller.GetRanking)
	}

	// WebSocket 路由
	r.GET("/ws", ws.HandleWebSocket)
}
