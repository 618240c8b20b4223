package routes

import (
	"backend/config"
	"backend/controllers"
	"backend/lexicon"
	"backend/middlewares"
	"backend/services"

	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	lex := lexicon.New()
	hub := services.NewRealtimeHub()

	foodParser := services.NewFoodParser(lex)
	workoutParser := services.NewWorkoutParser(lex)
	nutrition := services.NewNutritionService(lex)
	energy := services.NewEnergyService(lex)
	dups := services.NewDuplicateService(config.DB)

	logSvc := services.NewLogService(config.DB, foodParser, workoutParser, nutrition, energy, dups, hub)
	statsSvc := services.NewStatsService(config.DB)

	logCtl := controllers.NewLogController(logSvc)
	statsCtl := controllers.NewStatsController(statsSvc)
	rtCtl := controllers.NewRealtimeController(hub)

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
	}

	authed := r.Group("/")
	authed.Use(middlewares.AuthMiddleware())
	{
		authed.GET("/user/profile", controllers.GetProfile)
		authed.PUT("/user/profile", controllers.UpdateProfile)

		authed.POST("/log/transcript", logCtl.LogTranscript)
		authed.GET("/log/food", logCtl.ListFoodEntries)
		authed.GET("/log/workouts", logCtl.ListWorkoutEntries)
		authed.DELETE("/log/food/:id", logCtl.DeleteFoodEntry)
		authed.DELETE("/log/workouts/:id", logCtl.DeleteWorkoutEntry)

		authed.GET("/stats/daily", statsCtl.GetDaily)
		authed.GET("/stats/weekly", statsCtl.GetWeekly)
		authed.GET("/stats/monthly", statsCtl.GetMonthly)
		authed.GET("/stats/yearly", statsCtl.GetYearly)
		authed.GET("/stats/range", statsCtl.GetRange)

		authed.GET("/ws/entries", rtCtl.EntriesWS)
	}

	return r
}
