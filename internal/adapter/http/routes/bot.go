package routes

import (
	"autocare/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathBot   = "/bot"
	PathUsers = "/users"
)

func addBotRoutes(rg *gin.RouterGroup, botHandler *handlers.BotHandler) {
	bot := rg.Group(PathBot)
	{
		// The messenger gateway forwards every user turn here.
		bot.POST("/updates", botHandler.HandleUpdate)
	}
}

func addStatsRoutes(rg *gin.RouterGroup, statsHandler *handlers.StatsHandler) {
	users := rg.Group(PathUsers + "/:user_id")
	{
		users.GET("/history/full", statsHandler.FullHistory)
		users.GET("/history/since-last", statsHandler.SinceLastChange)
		users.GET("/repairs/summary", statsHandler.RepairSummary)
		users.GET("/export", statsHandler.Export)
	}
}
