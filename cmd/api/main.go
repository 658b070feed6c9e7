package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"

	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/sharespace/sharespace-service/internal/adapters/cache"
	"github.com/sharespace/sharespace-service/internal/adapters/gateway"
	"github.com/sharespace/sharespace-service/internal/adapters/handler"
	"github.com/sharespace/sharespace-service/internal/adapters/middleware"
	"github.com/sharespace/sharespace-service/internal/adapters/repository"
	"github.com/sharespace/sharespace-service/internal/config"
	"github.com/sharespace/sharespace-service/internal/core/domain"
	"github.com/sharespace/sharespace-service/internal/core/ports"
	"github.com/sharespace/sharespace-service/internal/core/services"
)

func main() {

	cfg := config.Load()
	ctx := context.Background()

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	db, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	if err := repository.EnsureSchema(ctx, db); err != nil {
		log.Fatalf("failed to apply schema: %v", err)
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddress,
		Password: cfg.RedisPassword,
		DB:       0,
	})

	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Fatalf("failed to connect to redis: %v", err)
	}
	log.Println("Authenticated with Redis successfully")

	roomRepo := repository.NewRoomSQLRepository(db)
	roommateRepo := repository.NewRoommateSQLRepository(db)
	vacateRepo := repository.NewVacateSQLRepository(db)
	grievanceRepo := repository.NewGrievanceSQLRepository(db)
	paymentRepo := repository.NewPaymentSQLRepository(db)
	ownerRepo := repository.NewOwnerSQLRepository(db)
	outboxRepo := repository.NewOutboxSQLRepository(db)

	redisCache := cache.NewRedisCache(redisClient, logger)
	paymentGateway := gateway.NewRazorpayGateway(cfg.GatewayBaseURL, cfg.GatewayKey, cfg.GatewaySecret, logger)

	roomService := services.NewRoomService(roomRepo, roommateRepo, redisCache, logger)
	roommateService := services.NewRoommateService(roommateRepo, roomRepo, vacateRepo, redisCache, cfg.JWTPrivateKey, logger)
	paymentService := services.NewPaymentService(roommateRepo, paymentRepo, paymentGateway, logger)
	grievanceService := services.NewGrievanceService(grievanceRepo, roommateRepo, logger)
	ownerService := services.NewOwnerService(ownerRepo, cfg.JWTPrivateKey, logger)
	notificationService := services.NewNotificationService(roommateRepo, roomRepo, outboxRepo, logger)

	if err := seed(ctx, roomRepo, ownerService); err != nil {
		log.Fatalf("failed to seed initial data: %v", err)
	}

	authMiddleware := middleware.NewAuthMiddleware(cfg.JWTPublicKey, redisCache)

	roomHandler := handler.NewRoomHandler(roomService)
	roommateHandler := handler.NewRoommateHandler(roommateService)
	paymentHandler := handler.NewPaymentHandler(paymentService)
	grievanceHandler := handler.NewGrievanceHandler(grievanceService)
	ownerHandler := handler.NewOwnerHandler(ownerService)
	notificationHandler := handler.NewNotificationHandler(notificationService)
	authHandler := handler.NewAuthHandler(redisCache)
	healthHandler := handler.NewHealthHandler(db, redisClient)

	owner := []domain.Role{domain.RoleOwner}
	anyRole := []domain.Role{domain.RoleOwner, domain.RoleRoommate}

	mux := http.NewServeMux()

	// Health endpoints (OpenShift compatible)
	mux.HandleFunc("GET /health", healthHandler.Health)
	mux.HandleFunc("GET /health/ready", healthHandler.Ready)
	mux.HandleFunc("GET /health/live", healthHandler.Live)
	mux.Handle("GET /metrics", promhttp.Handler())

	// Public endpoints: browsing and booking rooms, both logins.
	mux.HandleFunc("GET /room/all-rooms", roomHandler.GetAllRooms)
	mux.HandleFunc("GET /room/get-room/{roomId}", roomHandler.GetRoom)
	mux.HandleFunc("POST /room/check-availability", roomHandler.CheckAvailability)
	mux.HandleFunc("POST /room/book/{roomId}", roomHandler.BookRoom)
	mux.HandleFunc("POST /roommate/get-roommate", roommateHandler.Login)
	mux.HandleFunc("POST /owner/login", ownerHandler.Login)

	// Owner console.
	mux.HandleFunc("POST /room/add-room", authMiddleware.RequireRole(owner, roomHandler.AddRoom))
	mux.HandleFunc("PATCH /room/edit-room/{roomId}", authMiddleware.RequireRole(owner, roomHandler.EditRoom))
	mux.HandleFunc("DELETE /room/delete-room/{roomId}", authMiddleware.RequireRole(owner, roomHandler.DeleteRoom))
	mux.HandleFunc("GET /roommate/all-roommates", authMiddleware.RequireRole(owner, roommateHandler.GetAllRoommates))
	mux.HandleFunc("DELETE /roommate/vacate/{username}", authMiddleware.RequireRole(owner, roommateHandler.Vacate))
	mux.HandleFunc("GET /roommate/pending-vacate-request", authMiddleware.RequireRole(owner, roommateHandler.PendingVacateRequests))
	mux.HandleFunc("PUT /roommate/mark-read/{vacateRequestId}", authMiddleware.RequireRole(owner, roommateHandler.MarkVacateRead))
	mux.HandleFunc("POST /roommate/sort", authMiddleware.RequireRole(owner, roommateHandler.Sort))
	mux.HandleFunc("GET /payments/paymentDetails", authMiddleware.RequireRole(owner, paymentHandler.PaymentDetails))
	mux.HandleFunc("GET /payments/sort", authMiddleware.RequireRole(owner, paymentHandler.Sort))
	mux.HandleFunc("GET /payments/search/{query}", authMiddleware.RequireRole(owner, paymentHandler.Search))
	mux.HandleFunc("GET /payments/export", authMiddleware.RequireRole(owner, paymentHandler.Export))
	mux.HandleFunc("GET /grievance/pending-grievance", authMiddleware.RequireRole(owner, grievanceHandler.Pending))
	mux.HandleFunc("POST /grievance/mark-as-read/{grievanceId}", authMiddleware.RequireRole(owner, grievanceHandler.MarkRead))
	mux.HandleFunc("GET /notification/send-mail", authMiddleware.RequireRole(owner, notificationHandler.SendMail))
	mux.HandleFunc("GET /notification/send-rent-pending", authMiddleware.RequireRole(owner, notificationHandler.SendRentPending))
	mux.HandleFunc("GET /notification/load", authMiddleware.RequireRole(owner, notificationHandler.Load))

	// Roommate self-service.
	mux.HandleFunc("PATCH /roommate/update-details/{roommateId}", authMiddleware.RequireRole(anyRole, roommateHandler.UpdateDetails))
	mux.HandleFunc("POST /roommate/send-vacate-request/{roommateId}", authMiddleware.RequireRole(anyRole, roommateHandler.SendVacateRequest))
	mux.HandleFunc("POST /grievance/raise/{roommateId}", authMiddleware.RequireRole(anyRole, grievanceHandler.Raise))
	mux.HandleFunc("POST /payments/payrent", authMiddleware.RequireRole(anyRole, paymentHandler.PayRent))
	mux.HandleFunc("POST /payments/paymentCallback", authMiddleware.RequireRole(anyRole, paymentHandler.PaymentCallback))
	mux.HandleFunc("POST /auth/logout", authMiddleware.RequireRole(anyRole, authHandler.Logout))

	chain := middleware.CORSMiddleware(cfg.AllowedOrigins)(middleware.MetricsMiddleware(mux))

	log.Printf("Starting server on :%s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, chain); err != nil {
		log.Fatalf("Could not start server: %s\n", err)
	}
}

// seed inserts the initial room inventory and the default owner account on
// first boot, when the rooms table is still empty.
func seed(ctx context.Context, roomRepo ports.RoomRepository, ownerService ports.OwnerService) error {
	count, err := roomRepo.Count(ctx)
	if err != nil {
		return err
	}

	if count == 0 {
		rooms := []domain.Room{
			{FloorNumber: 1, RoomNumber: "F1", RoomType: "Single Sharing", Capacity: 1, IsAcAvailable: true, Price: 8500, PerDayPrice: 284},
			{FloorNumber: 1, RoomNumber: "F2", RoomType: "Two Sharing", Capacity: 2, IsAcAvailable: true, Price: 7500, PerDayPrice: 250},
			{FloorNumber: 1, RoomNumber: "F3", RoomType: "Three Sharing", Capacity: 3, IsAcAvailable: true, Price: 6500, PerDayPrice: 217},
			{FloorNumber: 2, RoomNumber: "S1", RoomType: "Single Sharing", Capacity: 1, IsAcAvailable: false, Price: 8000, PerDayPrice: 267},
			{FloorNumber: 2, RoomNumber: "S2", RoomType: "Two Sharing", Capacity: 2, IsAcAvailable: false, Price: 7000, PerDayPrice: 234},
			{FloorNumber: 2, RoomNumber: "S3", RoomType: "Three Sharing", Capacity: 3, IsAcAvailable: false, Price: 6000, PerDayPrice: 200},
		}
		for i := range rooms {
			if err := roomRepo.Create(ctx, &rooms[i]); err != nil {
				return err
			}
		}
		log.Println("Initial room inventory inserted into the database")
	} else {
		log.Println("Room data already exists in the database, skipping initialization")
	}

	// Idempotent: registration is skipped when the owner already exists.
	return ownerService.Register(ctx, domain.Owner{OwnerName: "Sacchin", Password: "1234"})
}
