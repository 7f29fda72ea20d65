package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/MazaSebastian/crop-crm-sub000/handlers"
	"github.com/MazaSebastian/crop-crm-sub000/middleware"
	"github.com/MazaSebastian/crop-crm-sub000/utils"
)

// RegisterAuthRoutes registers account endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/register", hb.Auth.RegisterHandler)
		api.POST("/login", hb.Auth.LoginHandler)

		// Protected routes (require authentication)
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.GET("/me", hb.Auth.ProfileHandler)
		api.PUT("/fcm-token", hb.Auth.UpdateFCMTokenHandler)
		api.POST("/logout", hb.Auth.LogoutHandler)
	}
}

// RegisterCropRoutes registers crop, task and daily-log endpoints.
func RegisterCropRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	crops := r.Group("/api/crops")
	{
		crops.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		crops.GET("", hb.Crop.ListCropsHandler)
		crops.POST("", hb.Crop.CreateCropHandler)
		crops.GET("/:id", hb.Crop.GetCropHandler)
		crops.PUT("/:id", hb.Crop.UpdateCropHandler)
		crops.DELETE("/:id", hb.Crop.DeleteCropHandler)

		crops.GET("/:id/tasks", hb.Crop.ListTasksHandler)
		crops.POST("/:id/tasks", hb.Crop.CreateTaskHandler)
		crops.GET("/:id/logs", hb.Crop.ListLogEntriesHandler)
		crops.POST("/:id/logs", hb.Crop.CreateLogEntryHandler)
	}

	tasks := r.Group("/api/tasks")
	{
		tasks.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		tasks.PATCH("/:id", hb.Crop.UpdateTaskStatusHandler)
		tasks.DELETE("/:id", hb.Crop.DeleteTaskHandler)
	}

	logs := r.Group("/api/logs")
	{
		logs.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		logs.DELETE("/:id", hb.Crop.DeleteLogEntryHandler)
	}
}

// RegisterStockRoutes registers inventory endpoints.
func RegisterStockRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	stock := r.Group("/api/stock")
	{
		stock.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		stock.GET("", hb.Stock.ListItemsHandler)
		stock.POST("", hb.Stock.CreateItemHandler)
		stock.PUT("/:id", hb.Stock.UpdateItemHandler)
		stock.DELETE("/:id", hb.Stock.DeleteItemHandler)
		stock.GET("/:id/movements", hb.Stock.ListMovementsHandler)
		stock.POST("/:id/movements", hb.Stock.RecordMovementHandler)
	}
}

// RegisterExpenseRoutes registers cost-tracking endpoints.
func RegisterExpenseRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	expenses := r.Group("/api/expenses")
	{
		expenses.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		expenses.GET("", hb.Expense.ListExpensesHandler)
		expenses.POST("", hb.Expense.CreateExpenseHandler)
		expenses.GET("/export", hb.Expense.ExportExpensesHandler)
		expenses.PUT("/:id", hb.Expense.UpdateExpenseHandler)
		expenses.DELETE("/:id", hb.Expense.DeleteExpenseHandler)
	}
}

// RegisterCalendarRoutes registers planned-event and month-grid endpoints.
func RegisterCalendarRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	events := r.Group("/api/planned-events")
	{
		events.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		events.GET("", hb.PlannedEvent.ListPlannedEventsHandler)
		events.POST("", hb.PlannedEvent.CreatePlannedEventHandler)
		events.PUT("/:id", hb.PlannedEvent.UpdatePlannedEventHandler)
		events.DELETE("/:id", hb.PlannedEvent.DeletePlannedEventHandler)
	}

	calendar := r.Group("/api/calendar")
	{
		calendar.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		calendar.GET("/:year/:month", hb.Calendar.MonthGridHandler)
	}
}

// RegisterCoordinationRoutes registers the event questionnaire wizard. These
// endpoints are public: clients authenticate with their event code, not an
// account.
func RegisterCoordinationRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	coord := r.Group("/api/coordination")
	{
		coord.POST("/verify", hb.Coordination.VerifyHandler)
		coord.GET("/:session", hb.Coordination.StateHandler)
		coord.POST("/:session/start", hb.Coordination.StartHandler)
		coord.POST("/:session/answer", hb.Coordination.AnswerHandler)
		coord.POST("/:session/next", hb.Coordination.NextHandler)
		coord.POST("/:session/previous", hb.Coordination.PreviousHandler)
		coord.POST("/:session/complete", hb.Coordination.CompleteHandler)
		coord.POST("/:session/reset", hb.Coordination.ResetHandler)
		coord.GET("/:session/question", hb.Coordination.CurrentQuestionHandler)
		coord.GET("/:session/progress", hb.Coordination.ProgressHandler)
	}
}

// RegisterAdminRoutes sets up endpoints for coordination administration:
// issuing event codes and reviewing archived questionnaires.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	admin := r.Group("/api/admin")
	{
		admin.Use(middleware.JWTAuthMiddleware(hb.UserRepo), middleware.RequireRole("admin"))
		admin.POST("/event-codes", hb.Admin.CreateEventCodeHandler)
		admin.GET("/coordination-sessions", hb.Admin.ListSessionsHandler)
		admin.GET("/coordination-sessions/:code", hb.Admin.GetSessionHandler)
	}
}

// RegisterWeatherRoutes registers the forecast endpoint.
func RegisterWeatherRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	weather := r.Group("/api/weather")
	{
		weather.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		weather.GET("/forecast", hb.Weather.ForecastHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":       "ok",
			"dependencies": utils.GetHealthStatus(),
		})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(utils.ErrorHandler())
	r.Use(middleware.RateLimitMiddleware())

	RegisterAuthRoutes(r, hb)
	RegisterCropRoutes(r, hb)
	RegisterStockRoutes(r, hb)
	RegisterExpenseRoutes(r, hb)
	RegisterCalendarRoutes(r, hb)
	RegisterCoordinationRoutes(r, hb)
	RegisterWeatherRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
	RegisterHealthRoute(r)
}
