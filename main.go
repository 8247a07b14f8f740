package main

import (
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/nmapp/checkbackend/auth/middleware"
	"github.com/nmapp/checkbackend/handlers"
	"github.com/nmapp/checkbackend/initializers"
	"github.com/nmapp/checkbackend/repository"
	"github.com/nmapp/checkbackend/routes"
)

const defaultPort = "8080"

func main() {
	initializers.LoadEnv()
	db := initializers.ConnectToDatabase()

	if os.Getenv("JWT_SECRET") == "" {
		log.Fatal("JWT_SECRET is not set in environment variables")
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = defaultPort
	}

	store := repository.NewGormStore(db)
	h := handlers.New(store)

	router := gin.Default()
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-Id"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	router.Use(
		middleware.RequestIDMiddleware(),
		middleware.NewRateLimiter().Middleware(),
	)

	routes.Register(router, h)

	log.Printf("listening on :%s", port)
	log.Fatal(router.Run(":" + port))
}
