package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"strconv"

	"funtrip/cmd/fx/account_fx"
	"funtrip/cmd/fx/controllers_fx"
	"funtrip/cmd/fx/db_fx"
	"funtrip/cmd/fx/genai_fx"
	"funtrip/cmd/fx/itinerary_fx"
	"funtrip/cmd/fx/trip_fx"
	"funtrip/internal/api/controllers"
	"funtrip/pkg/middleware"
	"funtrip/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	app := fx.New(
		db_fx.Module,
		genai_fx.Module,
		account_fx.Module,
		trip_fx.Module,
		itinerary_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8080"
				}
				log.Printf("Starting HTTP server at :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	accountController *controllers.AccountController,
	tripController *controllers.TripController,
	itineraryController *controllers.ItineraryController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r, accountController, tripController, itineraryController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	accountController *controllers.AccountController,
	tripController *controllers.TripController,
	itineraryController *controllers.ItineraryController) {

	r.GET("/", func(c *gin.Context) {
		utils.RespondSuccess(c, http.StatusOK, gin.H{"service": "funtrip"}, "OK")
	})

	authGroup := r.Group("/auth")
	authGroup.POST("/register", accountController.Register)
	authGroup.POST("/login", accountController.Login)
	authGroup.GET("/me", middleware.JWTAuthMiddleware(), accountController.Me)

	tripGroup := r.Group("/trips")
	tripGroup.Use(middleware.JWTAuthMiddleware())
	tripGroup.POST("", tripController.CreateTrip)
	tripGroup.GET("", tripController.GetTrips)
	tripGroup.GET("/:tripId", tripController.GetTripByID)
	tripGroup.PUT("/:tripId", tripController.UpdateTrip)
	tripGroup.DELETE("/:tripId", tripController.DeleteTrip)

	itineraryGroup := r.Group("/itineraries")
	itineraryGroup.Use(middleware.JWTAuthMiddleware())
	itineraryGroup.POST("/generate/:tripId", itineraryController.GenerateForTrip)
	itineraryGroup.GET("/trip/:tripId", itineraryController.GetItinerariesByTrip)
	itineraryGroup.GET("/:itineraryId", itineraryController.GetItineraryByID)
	itineraryGroup.DELETE("/:itineraryId", itineraryController.DeleteItinerary)

	guestGroup := r.Group("/guest")
	guestGroup.Use(middleware.NewRateLimiter(guestRateLimit()).Limit())
	guestGroup.POST("/itineraries/generate", itineraryController.GenerateForGuest)
}

func guestRateLimit() int {
	if raw := os.Getenv("GUEST_RATE_LIMIT_PER_MINUTE"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			return n
		}
	}
	return 5
}
