package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"github.com/CMSC-127-Final-Project/cmsc-127-app-sub000/app"
	"github.com/CMSC-127-Final-Project/cmsc-127-app-sub000/app/handlers"
	"github.com/CMSC-127-Final-Project/cmsc-127-app-sub000/app/repositories"
	"github.com/CMSC-127-Final-Project/cmsc-127-app-sub000/app/usecases"
	"github.com/CMSC-127-Final-Project/cmsc-127-app-sub000/config"
	"github.com/CMSC-127-Final-Project/cmsc-127-app-sub000/database"
	"github.com/CMSC-127-Final-Project/cmsc-127-app-sub000/server"
)

func main() {
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found, using system environment")
	}

	cfg, err := config.LoadConfig("config.yaml")
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	db, err := database.ConnectDB(cfg.Database.User, cfg.Database.Password, cfg.Database.DBName, cfg.Database.Host, cfg.Database.Port)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := database.RunMigrations(db); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}

	// Repositories
	userRepo := repositories.NewUserRepository(db)
	roomRepo := repositories.NewRoomRepository(db)
	scheduleRepo := repositories.NewScheduleRepository(db)
	reservationRepo := repositories.NewReservationRepository(db)
	dashboardRepo := repositories.NewDashboardRepository(db)

	// Google OAuth
	googleConfig := &oauth2.Config{
		ClientID:     os.Getenv("GOOGLE_CLIENT_ID"),
		ClientSecret: os.Getenv("GOOGLE_CLIENT_SECRET"),
		RedirectURL:  cfg.Google.RedirectURL,
		Scopes: []string{
			"https://www.googleapis.com/auth/userinfo.email",
			"https://www.googleapis.com/auth/userinfo.profile",
		},
		Endpoint: google.Endpoint,
	}

	// Usecases
	userUsecase := usecases.NewUserUsecase(userRepo, cfg.Server.DefaultAvatarURL)
	authUsecase := usecases.NewAuthUsecase(userRepo, googleConfig)
	roomUsecase := usecases.NewRoomUsecase(roomRepo)
	scheduleUsecase := usecases.NewScheduleUsecase(scheduleRepo, roomRepo)
	availabilityUsecase := usecases.NewAvailabilityUsecase(roomRepo, scheduleRepo)
	reservationUsecase := usecases.NewReservationUsecase(reservationRepo, roomRepo, scheduleRepo)
	dashboardUsecase := usecases.NewDashboardUsecase(dashboardRepo)
	imageUsecase := usecases.NewImageUsecase()

	// Handlers
	userHandler := handlers.NewUserHandler(userUsecase)
	authHandler := handlers.NewAuthHandler(authUsecase)
	roomHandler := handlers.NewRoomHandler(roomUsecase, availabilityUsecase)
	scheduleHandler := handlers.NewScheduleHandler(scheduleUsecase)
	reservationHandler := handlers.NewReservationHandler(reservationUsecase)
	dashboardHandler := handlers.NewDashboardHandler(dashboardUsecase)
	imageHandler := handlers.NewImageHandler(imageUsecase)

	srv := server.NewEchoServer(cfg)
	app.RegisterRoutes(
		srv.GetEcho(),
		userHandler,
		authHandler,
		roomHandler,
		scheduleHandler,
		reservationHandler,
		dashboardHandler,
		imageHandler,
	)

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server stopped: %v", err)
		}
	}()

	// Drain in-flight requests on SIGINT/SIGTERM.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("shutdown failed: %v", err)
	}
}
