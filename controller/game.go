package controller

import (
	"net/http"

	"go-estate/dto"
	"go-estate/repository"
	"go-estate/service"

	"github.com/gin-gonic/gin"
)

// IssueToken 签发登录令牌（演示环境不做账号体系，userId 即身份）
func IssueToken(c *gin.Context) {
	var req dto.TokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "缺少必要字段"})
		return
	}
	token, err := service.IssueToken(req.UserID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status_code": http.StatusOK,
		"data":        dto.TokenResponse{Token: token},
	})
}

// GetRanking 查询一局已归档的最终排名
func GetRanking(c *gin.Context) {
	roomID := c.Param("roomID")
	scores, err := repository.LoadResults(roomID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "查询排名失败"})
		return
	}
	if len(scores) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "对局还没有结算"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status_code": http.StatusOK,
		"data":        scores,
	})
}
