package api

import (
	"log"

	"github.com/campuskit/onboarding_service/config"
	"github.com/campuskit/onboarding_service/infra/cache"
	"github.com/campuskit/onboarding_service/infra/queue"
	"github.com/campuskit/onboarding_service/internal/api/rest"
	"github.com/campuskit/onboarding_service/internal/api/rest/handlers"
	"github.com/campuskit/onboarding_service/internal/clients/lms"
	"github.com/campuskit/onboarding_service/internal/domain"
	"github.com/campuskit/onboarding_service/internal/helper"
	"github.com/campuskit/onboarding_service/internal/interfaces"
	"github.com/campuskit/onboarding_service/internal/repository"
	"github.com/campuskit/onboarding_service/internal/services"
	pkgcloudinary "github.com/campuskit/onboarding_service/pkg/cloudinary"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const migrationLockID = 722031

func StartServer(cfg config.Config) {
	app := fiber.New()
	app.Use(logger.New())

	allowOrigins := cfg.BaseURL
	if allowOrigins == "" {
		allowOrigins = "http://localhost:3000"
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins:     allowOrigins,
		AllowHeaders:     "Content-Type, Accept, Authorization",
		AllowCredentials: true,
	}))

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DatabaseDSN,
		PreferSimpleProtocol: true,
	}), &gorm.Config{})
	if err != nil {
		log.Fatalf("database connection error: %v", err)
	}
	log.Println("database connected")

	if err := migrate(db); err != nil {
		log.Fatalf("migration error: %v", err)
	}

	producer := queue.NewProducer(cfg.KafkaBroker, cfg.KafkaTopic, cfg.KafkaUsername, cfg.KafkaPassword)
	redisCache := cache.New(cfg.RedisAddr, cfg.RedisPassword)
	lmsClient := lms.New(cfg.LMSBaseURL, cfg.LMSApiKey)

	var uploader interfaces.Uploader
	if cfg.CloudinaryURL != "" {
		cld, err := pkgcloudinary.New()
		if err != nil {
			log.Fatalf("cloudinary setup error: %v", err)
		}
		uploader = pkgcloudinary.NewCloudinaryUploader(cld)
	} else {
		uploader = localURLUploader{}
	}

	auth := helper.SetupAuth(cfg.AccessSecret)

	userRepo := repository.NewUserRepository(db)
	universityRepo := repository.NewUniversityRepository(db)
	documentRepo := repository.NewDocumentRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	hostelRepo := repository.NewHostelRepository(db)
	lmsRepo := repository.NewLMSRepository(db)
	courseRepo := repository.NewCourseRepository(db)
	complianceRepo := repository.NewComplianceRepository(db)
	onboardingRepo := repository.NewOnboardingRepository(db)

	rh := &rest.RestHandler{
		App:    app,
		Auth:   auth,
		Config: cfg,

		UserSvc:       services.NewUserService(userRepo, universityRepo, auth),
		UniversitySvc: services.NewUniversityService(universityRepo, redisCache),
		DocumentSvc:   services.NewDocumentService(documentRepo, uploader, producer),
		PaymentSvc:    services.NewPaymentService(paymentRepo, producer),
		HostelSvc:     services.NewHostelService(hostelRepo),
		LMSSvc:        services.NewLMSService(lmsRepo, userRepo, lmsClient, producer),
		CourseSvc:     services.NewCourseService(courseRepo),
		ComplianceSvc: services.NewComplianceService(complianceRepo),
		OnboardingSvc: services.NewOnboardingService(onboardingRepo, producer),
		DashboardSvc:  services.NewDashboardService(onboardingRepo, userRepo, producer),
	}

	app.Get("/health", func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{"status": "ok"})
	})

	handlers.SetupUserRoutes(rh)
	handlers.SetupUniversityRoutes(rh)
	handlers.SetupDocumentRoutes(rh)
	handlers.SetupPaymentRoutes(rh)
	handlers.SetupHostelRoutes(rh)
	handlers.SetupLMSRoutes(rh)
	handlers.SetupCourseRoutes(rh)
	handlers.SetupComplianceRoutes(rh)
	handlers.SetupOnboardingRoutes(rh)

	if err := app.Listen(cfg.ServerPort); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

// migrate runs AutoMigrate under a session advisory lock so that replicas
// starting at the same time do not race on DDL.
func migrate(db *gorm.DB) error {
	if err := db.Exec("SELECT pg_advisory_lock(?)", migrationLockID).Error; err != nil {
		return err
	}
	defer func() {
		if err := db.Exec("SELECT pg_advisory_unlock(?)", migrationLockID).Error; err != nil {
			log.Printf("advisory unlock failed: %v", err)
		}
	}()

	return db.AutoMigrate(
		&domain.University{},
		&domain.User{},
		&domain.Document{},
		&domain.Payment{},
		&domain.HostelApplication{},
		&domain.LMSActivation{},
		&domain.Course{},
		&domain.Subject{},
		&domain.Enrollment{},
		&domain.ComplianceItem{},
		&domain.StudentCompliance{},
		&domain.ProgressSnapshot{},
	)
}
