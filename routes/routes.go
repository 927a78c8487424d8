package routes

import (
	"MediCore/cache"
	"MediCore/config"
	"MediCore/controllers"
	"MediCore/database"
	"MediCore/handlers"
	"MediCore/middlewares"
	"MediCore/repositories"
	"MediCore/services"
	"MediCore/utils"
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// SetupRoutes wires repositories, services and handlers and returns the HTTP handler.
func SetupRoutes(cfg *config.AppConfig, db *gorm.DB, redisClient *redis.Client, log zerolog.Logger) (http.Handler, error) {
	if cfg.IsDev() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	tokens, err := utils.NewTokenManager(cfg.JWTSecret, cfg.SymmetricKey, cfg.AccessTokenTTL, cfg.RefreshTokenTTL)
	if err != nil {
		return nil, err
	}

	router := gin.New()
	router.Use(middlewares.LoggingMiddleware(log))
	router.Use(middlewares.RecoveryMiddleware())
	router.Use(middlewares.CorsMiddleware(middlewares.DefaultCorsConfig(cfg.CORSOrigins)))
	router.Use(middlewares.NewRateLimiterMiddleware(middlewares.RateLimiterConfig{
		RequestsPerSecond: cfg.RateLimitRPS,
		Burst:             cfg.RateLimitBurst,
	}))

	redisCache := cache.New(redisClient)
	locker := database.NewLocker(redisClient).WithLogger(log)
	mailer := utils.NewMailer(cfg, log)
	clock := services.Clock(time.Now)

	userRepo := repositories.NewUserRepository(db)
	doctorRepo := repositories.NewDoctorRepository(db, redisCache, log)
	appointmentRepo := repositories.NewAppointmentRepository(db)
	staffRepo := repositories.NewStaffRepository(db)
	roomRepo := repositories.NewRoomRepository(db)
	admissionRepo := repositories.NewAdmissionRepository(db)
	billingRepo := repositories.NewBillingRepository(db)
	diseaseRepo := repositories.NewDiseaseRepository(db, redisCache, log)
	prescriptionRepo := repositories.NewPrescriptionRepository(db)
	chatbotRepo := repositories.NewChatbotRepository(db)

	userService := services.NewUserService(userRepo, locker, utils.NewResetCodeStore(redisCache), mailer, log)
	doctorService := services.NewDoctorService(doctorRepo, locker)
	appointmentService := services.NewAppointmentService(appointmentRepo, doctorRepo, userRepo, locker)
	adminService := services.NewAdminService(
		services.AdminCredentials{Email: cfg.AdminEmail, Password: cfg.AdminPassword},
		services.AdminRepositories{
			Users:        userRepo,
			Doctors:      doctorRepo,
			Staff:        staffRepo,
			Appointments: appointmentRepo,
			Admissions:   admissionRepo,
			Billings:     billingRepo,
			Rooms:        roomRepo,
			Chats:        chatbotRepo,
		},
	)
	staffService := services.NewStaffService(staffRepo, locker, mailer, clock, log)
	roomService := services.NewRoomService(roomRepo, locker)
	admissionService := services.NewAdmissionService(admissionRepo, userRepo, doctorRepo, clock)
	billingService := services.NewBillingService(billingRepo, userRepo, appointmentRepo, admissionRepo, clock)
	diseaseService := services.NewDiseaseService(diseaseRepo, locker)
	prescriptionService := services.NewPrescriptionService(prescriptionRepo, appointmentRepo)
	chatbotService := services.NewChatbotService(chatbotRepo, services.NewSymptomMatcher(diseaseRepo), clock)

	api := router.Group("/api")

	authController := &controllers.AuthController{
		Tokens: tokens,
		Auth:   handlers.NewAuthHandler(tokens),
		Admin:  handlers.NewAdminHandler(adminService, doctorService, appointmentService, tokens),
		User:   handlers.NewUserHandler(userService, appointmentService, tokens),
		Doctor: handlers.NewDoctorHandler(doctorService, appointmentService, tokens),
	}
	authController.RegisterRoutes(api)

	controllers.SetupStaffRoutes(api, tokens, handlers.NewStaffHandler(staffService, tokens))
	controllers.SetupRoomRoutes(api, tokens, handlers.NewRoomHandler(roomService))
	controllers.SetupAdmissionRoutes(api, tokens, handlers.NewAdmissionHandler(admissionService))
	controllers.SetupBillingRoutes(api, tokens, handlers.NewBillingHandler(billingService))
	controllers.SetupDiseaseRoutes(api, tokens, handlers.NewDiseaseHandler(diseaseService))
	controllers.SetupPrescriptionRoutes(api, tokens, handlers.NewPrescriptionHandler(prescriptionService))
	controllers.SetupChatbotRoutes(api, tokens, handlers.NewChatbotHandler(chatbotService))

	controllers.SetupRootRoute(router, func(ctx context.Context) error {
		sqlDB, err := db.DB()
		if err != nil {
			return err
		}
		if err := sqlDB.PingContext(ctx); err != nil {
			return err
		}
		return redisClient.Ping(ctx).Err()
	})

	return router, nil
}
