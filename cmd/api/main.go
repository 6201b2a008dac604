package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"bwbackbone/internal/config"
	"bwbackbone/internal/database"
	"bwbackbone/internal/domain"
	"bwbackbone/internal/events"
	"bwbackbone/internal/middleware"
	"bwbackbone/internal/modules/auth"
	"bwbackbone/internal/modules/customer"
	"bwbackbone/internal/modules/equipment"
	"bwbackbone/internal/modules/feed"
	"bwbackbone/internal/modules/job"
	"bwbackbone/internal/modules/operation"
	"bwbackbone/internal/modules/qc"
	"bwbackbone/internal/modules/staff"
	"bwbackbone/internal/modules/timeclock"
	"bwbackbone/internal/mq"
	jwtsvc "bwbackbone/internal/pkg/jwt"
	"bwbackbone/internal/pkg/keylock"
	"bwbackbone/internal/repository"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal(err)
	}

	customerRepo := repository.NewCustomerRepository(db)
	staffRepo := repository.NewStaffRepository(db)
	jobRepo := repository.NewJobRepository(db)
	operationRepo := repository.NewOperationRepository(db)
	punchRepo := repository.NewTimePunchRepository(db)
	qcRepo := repository.NewQCRepository(db)
	equipmentRepo := repository.NewEquipmentRepository(db)

	locks := keylock.New()
	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)

	hub := feed.NewHub()
	defer hub.Close()

	var sinks []events.Sink
	sinks = append(sinks, hub)
	if cfg.RabbitMQURL != "" {
		publisher, err := mq.NewRabbitPublisher(cfg.RabbitMQURL, cfg.RabbitMQExchange)
		if err != nil {
			log.Fatal(err)
		}
		defer publisher.Close()
		sinks = append(sinks, publisher)
	}
	sink := events.Multi(sinks...)

	authService := auth.NewService(staffRepo, j)
	authHandler := auth.NewHandler(authService)

	customerService := customer.NewService(customerRepo, locks)
	customerHandler := customer.NewHandler(customerService)

	staffService := staff.NewService(staffRepo, locks)
	staffHandler := staff.NewHandler(staffService)

	jobService := job.NewService(jobRepo, operationRepo, qcRepo, customerRepo, locks, sink)
	jobHandler := job.NewHandler(jobService)

	operationService := operation.NewService(operationRepo, staffRepo, locks, sink)
	operationHandler := operation.NewHandler(operationService)

	timeclockService := timeclock.NewService(punchRepo, staffRepo, locks, sink)
	timeclockHandler := timeclock.NewHandler(timeclockService)

	qcService := qc.NewService(qcRepo, jobRepo, sink)
	qcHandler := qc.NewHandler(qcService)

	equipmentService := equipment.NewService(equipmentRepo, locks, sink)
	equipmentHandler := equipment.NewHandler(equipmentService)

	feedHandler := feed.NewHandler(hub, j)

	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())

	v1 := r.Group("/api/v1")
	{
		// public
		authHandler.RegisterRoutes(v1)
		feedHandler.RegisterRoutes(v1)

		protected := v1.Group("/")
		protected.Use(middleware.Auth(j))
		{
			// any authenticated staff member
			timeclockHandler.RegisterRoutes(protected)
			jobHandler.RegisterRoutes(protected)
			operationHandler.RegisterRoutes(protected)
			equipmentHandler.RegisterRoutes(protected)

			qa := protected.Group("/")
			qa.Use(middleware.RequireRole(domain.RoleQA, domain.RoleManager))
			{
				qcHandler.RegisterRoutes(qa)
			}

			office := protected.Group("/")
			office.Use(middleware.RequireRole(domain.RoleManager, domain.RoleEstimator, domain.RoleBilling))
			{
				customerHandler.RegisterRoutes(office)
			}

			managers := protected.Group("/")
			managers.Use(middleware.RequireRole(domain.RoleManager))
			{
				timeclockHandler.RegisterReviewRoutes(managers)
				staffHandler.RegisterRoutes(managers)
			}
		}
	}

	if err := r.Run(":" + cfg.HTTPPort); err != nil {
		log.Fatal(err)
	}
}
