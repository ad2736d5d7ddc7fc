package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	api "chomper-backend/cmd/api"
	"chomper-backend/internal/notification"
	notifdelivery "chomper-backend/internal/notification/delivery"
	notifdomain "chomper-backend/internal/notification/domain"
	notifrepo "chomper-backend/internal/notification/repository"
	progressdelivery "chomper-backend/internal/progress/delivery"
	progressdomain "chomper-backend/internal/progress/domain"
	progressrepo "chomper-backend/internal/progress/repository"
	progressusecase "chomper-backend/internal/progress/usecase"
	taskdelivery "chomper-backend/internal/task/delivery"
	taskdomain "chomper-backend/internal/task/domain"
	taskrepo "chomper-backend/internal/task/repository"
	"chomper-backend/internal/task/scheduler"
	taskusecase "chomper-backend/internal/task/usecase"
	userdomain "chomper-backend/internal/user/domain"
	userrepo "chomper-backend/internal/user/repository"
	"chomper-backend/pkg/config"
	"chomper-backend/pkg/database"
	"chomper-backend/pkg/fcm"
	"chomper-backend/pkg/webpush"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.NewPostgresConnection(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Auto-migrate database schemas
	if err := db.AutoMigrate(
		&userdomain.User{},
		&taskdomain.Task{},
		&taskdomain.RecurringTemplate{},
		&progressdomain.ProgressStats{},
		&progressdomain.Achievement{},
		&notifdomain.PushSubscription{},
		&notifdomain.DeviceToken{},
	); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Initialize repositories (dependency injection)
	userRepository := userrepo.NewGormUserRepository(db)
	taskRepository := taskrepo.NewGormTaskRepository(db)
	templateRepository := taskrepo.NewGormTemplateRepository(db)
	statsRepository := progressrepo.NewGormStatsRepository(db)
	achievementRepository := progressrepo.NewGormAchievementRepository(db)
	subscriptionRepository := notifrepo.NewGormPushSubscriptionRepository(db)
	deviceTokenRepository := notifrepo.NewGormDeviceTokenRepository(db)

	// Initialize push transports (either may be absent)
	webPushClient := webpush.NewClient(cfg.VAPIDPublicKey, cfg.VAPIDPrivateKey, cfg.VAPIDSubscriber)
	if webPushClient == nil {
		log.Println("[WARN] VAPID keys not configured, web push disabled")
	}

	var fcmClient *fcm.Client
	if cfg.FirebaseCredentials != "" {
		fcmClient, err = fcm.NewClient(cfg.FirebaseCredentials)
		if err != nil {
			log.Printf("[WARN] Failed to initialize FCM client (push notifications disabled): %v", err)
		}
	} else {
		log.Println("[WARN] No Firebase credentials configured, FCM disabled")
	}

	notifService := newNotificationService(subscriptionRepository, deviceTokenRepository, webPushClient, fcmClient)

	// Initialize use cases (dependency injection)
	progressUsecase := progressusecase.NewProgressUsecase(statsRepository, achievementRepository)
	taskUsecase := taskusecase.NewTaskUsecase(db, taskRepository, progressUsecase)
	templateUsecase := taskusecase.NewTemplateUsecase(db, templateRepository, taskRepository)

	// Start the background scheduler
	sched := scheduler.New(userRepository, taskRepository, templateRepository, templateUsecase, notifService)
	if err := sched.Start(); err != nil {
		log.Fatal("Failed to start scheduler:", err)
	}

	// Initialize HTTP handlers
	taskHandler := taskdelivery.NewTaskHandler(taskUsecase, templateUsecase)
	progressHandler := progressdelivery.NewProgressHandler(progressUsecase)
	notifHandler := notifdelivery.NewNotificationHandler(subscriptionRepository, deviceTokenRepository, userRepository)
	handler := api.NewHandler(cfg, taskHandler, progressHandler, notifHandler)

	// Stop the scheduler cleanly on SIGINT/SIGTERM
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		sched.Stop()
		os.Exit(0)
	}()

	log.Printf("Server starting on port %s", cfg.Port)
	if err := handler.Start(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}

// newNotificationService builds the dispatcher without handing nil interface
// values wrapped around nil pointers to the service.
func newNotificationService(
	subRepo notifrepo.PushSubscriptionRepository,
	tokenRepo notifrepo.DeviceTokenRepository,
	webPushClient *webpush.Client,
	fcmClient *fcm.Client,
) *notification.Service {
	var wp notification.WebPushSender
	if webPushClient != nil {
		wp = webPushClient
	}
	var fc notification.FCMSender
	if fcmClient != nil {
		fc = fcmClient
	}
	return notification.NewService(subRepo, tokenRepo, wp, fc)
}
