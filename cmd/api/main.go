package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"mesareserva/internal/config"
	"mesareserva/internal/database"
	"mesareserva/internal/middleware"
	"mesareserva/internal/modules/auth"
	"mesareserva/internal/modules/reservation"
	"mesareserva/internal/modules/restaurant"
	"mesareserva/internal/modules/table"
	jwtsvc "mesareserva/internal/pkg/jwt"
	"mesareserva/internal/repository"
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

	userRepo := repository.NewUserRepository(db)
	restaurantRepo := repository.NewRestaurantRepository(db)
	tableRepo := repository.NewTableRepository(db)
	reservationRepo := repository.NewReservationRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTAccessTTL)

	authService := auth.NewService(userRepo, j)
	authHandler := auth.NewHandler(authService)

	restaurantService := restaurant.NewService(restaurantRepo, reservationRepo)
	restaurantHandler := restaurant.NewHandler(restaurantService)

	tableService := table.NewService(tableRepo, restaurantRepo, reservationRepo)
	tableHandler := table.NewHandler(tableService)

	reservationService := reservation.NewService(reservationRepo, restaurantRepo, tableRepo)
	reservationHandler := reservation.NewHandler(reservationService)

	if cfg.AppEnv == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()
	r.Use(middleware.CORS(cfg.CORSOrigins))
	r.Use(middleware.ErrorLogger())

	v1 := r.Group("/api/v1")
	{
		// public
		authHandler.RegisterPublicRoutes(v1)
		restaurantHandler.RegisterPublicRoutes(v1)

		// any authenticated user
		protected := v1.Group("/")
		protected.Use(middleware.Auth(j))
		{
			authHandler.RegisterProtectedRoutes(protected)
			restaurantHandler.RegisterProtectedRoutes(protected)
			reservationHandler.RegisterClientRoutes(protected)
		}

		// restaurant owners
		admin := v1.Group("/admin")
		admin.Use(middleware.Auth(j), middleware.AdminOnly())
		{
			restaurantHandler.RegisterAdminRoutes(admin)
			tableHandler.RegisterAdminRoutes(admin)
			reservationHandler.RegisterAdminRoutes(admin)
		}
	}

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
