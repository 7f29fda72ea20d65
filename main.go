package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	"github.com/MazaSebastian/crop-crm-sub000/config"
	"github.com/MazaSebastian/crop-crm-sub000/cron"
	"github.com/MazaSebastian/crop-crm-sub000/database"
	cropRepoPkg "github.com/MazaSebastian/crop-crm-sub000/database/repository/crop"
	dailylogRepoPkg "github.com/MazaSebastian/crop-crm-sub000/database/repository/dailylog"
	eventRepoPkg "github.com/MazaSebastian/crop-crm-sub000/database/repository/event"
	expenseRepoPkg "github.com/MazaSebastian/crop-crm-sub000/database/repository/expense"
	plannedeventRepoPkg "github.com/MazaSebastian/crop-crm-sub000/database/repository/plannedevent"
	stockRepoPkg "github.com/MazaSebastian/crop-crm-sub000/database/repository/stock"
	taskRepoPkg "github.com/MazaSebastian/crop-crm-sub000/database/repository/task"
	userRepoPkg "github.com/MazaSebastian/crop-crm-sub000/database/repository/user"
	"github.com/MazaSebastian/crop-crm-sub000/handlers"
	"github.com/MazaSebastian/crop-crm-sub000/routes"
	"github.com/MazaSebastian/crop-crm-sub000/services/coordination"
	"github.com/MazaSebastian/crop-crm-sub000/services/crop"
	"github.com/MazaSebastian/crop-crm-sub000/services/expense"
	"github.com/MazaSebastian/crop-crm-sub000/services/notification"
	"github.com/MazaSebastian/crop-crm-sub000/services/plannedevent"
	"github.com/MazaSebastian/crop-crm-sub000/services/stock"
	"github.com/MazaSebastian/crop-crm-sub000/services/user"
	"github.com/MazaSebastian/crop-crm-sub000/services/weather"
	"github.com/MazaSebastian/crop-crm-sub000/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()
	utils.FirebaseInit()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(gin.Logger())

	// repositories.
	cropRepo := cropRepoPkg.NewPostgresCropRepo()
	taskRepo := taskRepoPkg.NewPostgresTaskRepo()
	dailylogRepo := dailylogRepoPkg.NewPostgresDailyLogRepo()
	stockRepo := stockRepoPkg.NewPostgresStockRepo()
	expenseRepo := expenseRepoPkg.NewPostgresExpenseRepo()
	plannedeventRepo := plannedeventRepoPkg.NewPostgresPlannedEventRepo()
	eventRepo := eventRepoPkg.NewPostgresEventRepo()
	userRepo := userRepoPkg.NewPostgresUserRepo()

	// services.
	userService := &user.DefaultUserService{Repo: userRepo}
	notificationService := &notification.DefaultNotificationService{Users: userRepo}

	cropService := &crop.DefaultCropService{
		Repo:     cropRepo,
		Tasks:    taskRepo,
		DailyLog: dailylogRepo,
	}
	stockService := &stock.DefaultStockService{
		Repo:     stockRepo,
		Notifier: notificationService,
	}
	expenseService := &expense.DefaultExpenseService{Repo: expenseRepo}
	plannedeventService := &plannedevent.DefaultPlannedEventService{Repo: plannedeventRepo}
	weatherService := weather.NewDefaultWeatherService(utils.GetCacheClient())

	coordinationService := &coordination.DefaultCoordinationService{
		Verifier: &coordination.RepoVerifier{Repo: eventRepo},
		Store:    coordination.NewRedisStateStore(utils.GetSessionCacheClient()),
		Sessions: eventRepo,
		Notifier: notificationService,
	}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		UserRepo:     userRepo,
		Auth:         handlers.NewAuthHandler(userService),
		Crop:         handlers.NewCropHandler(cropService),
		Stock:        handlers.NewStockHandler(stockService),
		Expense:      handlers.NewExpenseHandler(expenseService),
		PlannedEvent: handlers.NewPlannedEventHandler(plannedeventService),
		Calendar:     handlers.NewCalendarHandler(plannedeventService),
		Coordination: handlers.NewCoordinationHandler(coordinationService),
		Weather:      handlers.NewWeatherHandler(weatherService),
		Admin:        handlers.NewAdminHandler(coordinationService),
	}

	routes.RegisterRoutes(router, handlerBundle)

	// Background workers.
	monitorCtx, stopMonitors := context.WithCancel(context.Background())
	defer stopMonitors()

	cron.InitReminderWorker(notificationService)
	cron.StartReminderScheduler(monitorCtx, taskRepo)
	utils.StartHealthMonitor(monitorCtx, []*redis.Client{
		utils.GetCacheClient(),
		utils.GetAuthCacheClient(),
		utils.GetSessionCacheClient(),
	}, database.DB)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	stopMonitors()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
