package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"go-restaurant-pos/config"
	"go-restaurant-pos/database"
	"go-restaurant-pos/helpers"
	"go-restaurant-pos/middleware"
	"go-restaurant-pos/notify"
	"go-restaurant-pos/printer"
	"go-restaurant-pos/repository"
	"go-restaurant-pos/routes"
	"go-restaurant-pos/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	if cfg.AuthRequired && cfg.SecretKey == "" {
		log.Fatal("SECRET_KEY must be set when AUTH_REQUIRED=true")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client, err := database.DBinstance(ctx, cfg.MongoURL)
	if err != nil {
		log.Fatal(err)
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Println("Error disconnecting mongodb:", err)
		}
	}()

	db := client.Database(cfg.DatabaseName)
	if err := database.EnsureIndexes(ctx, db); err != nil {
		log.Fatal(err)
	}
	if cfg.SeedSampleData {
		if err := database.Seed(ctx, db); err != nil {
			log.Printf("Error seeding sample data: %v", err)
		}
	}

	menuRepo := repository.NewMenuRepository(db.Collection(database.MenuCollection))
	tableRepo := repository.NewTableRepository(db.Collection(database.TableCollection))
	orderRepo := repository.NewOrderRepository(db.Collection(database.OrderCollection))
	billRepo := repository.NewBillRepository(db.Collection(database.BillCollection))
	userRepo := repository.NewUserRepository(db.Collection(database.UserCollection))

	hub := notify.NewHub()
	tokens := helpers.NewTokenIssuer(cfg.SecretKey)
	profile := cfg.Profile

	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CorsOrigins,
		AllowMethods:     []string{"POST", "GET", "PATCH", "DELETE", "PUT", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "token"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Page not found"})
	})
	router.GET("/ws", hub.HandleWebSocket())

	var auth gin.HandlerFunc
	if cfg.AuthRequired {
		auth = middleware.Authentication(tokens)
	}
	routes.Register(router, routes.Services{
		Menu:   services.NewMenuService(menuRepo),
		Tables: services.NewTableService(tableRepo),
		Orders: services.NewOrderService(orderRepo, tableRepo, menuRepo, hub),
		Bills:  services.NewBillService(billRepo, orderRepo, profile.Issuer, hub),
		Print:  services.NewPrintService(printer.NewSender(), profile.Issuer, profile.Printer),
		Users:  services.NewUserService(userRepo, tokens),
	}, auth)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		log.Printf("POS server listening on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("listen: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("server shutdown: %v", err)
	}
}
