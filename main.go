package main

import (
	"context"
	"os"
	"strconv"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"github.com/prathamesh-patil-5090/banao-backend/controllers"
	"github.com/prathamesh-patil-5090/banao-backend/database"
	"github.com/prathamesh-patil-5090/banao-backend/intializers"
	"github.com/prathamesh-patil-5090/banao-backend/middlewares"
	"github.com/prathamesh-patil-5090/banao-backend/routes"
	"github.com/prathamesh-patil-5090/banao-backend/services"
	"github.com/prathamesh-patil-5090/banao-backend/stores"
)

func init() {
	intializers.LoadEnvVariables()

	logrus.SetOutput(os.Stderr)
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if level, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL")); err == nil {
		logrus.SetLevel(level)
	}
}

func main() {
	client, err := database.Connect()
	if err != nil {
		logrus.WithError(err).Fatal("mongo connection failed")
	}
	defer client.Disconnect(context.Background())

	userStore := stores.NewMongoUserStore(database.OpenCollection(client, "users"))
	postStore := stores.NewMongoPostStore(database.OpenCollection(client, "posts"))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := userStore.EnsureIndexes(ctx); err != nil {
		logrus.WithError(err).Fatal("ensure user indexes failed")
	}

	bcryptCost := bcrypt.DefaultCost
	if v, err := strconv.Atoi(os.Getenv("BCRYPT_COST")); err == nil {
		bcryptCost = v
	}

	secret := []byte(os.Getenv("SECRET_KEY"))
	authService := services.NewAuthService(userStore, secret, bcryptCost)
	relationshipService := services.NewRelationshipService(userStore)
	engagementService := services.NewEngagementService(postStore, userStore)

	router := gin.Default()
	router.Use(middlewares.RequestLogger)
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://127.0.0.1:5500", "http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	requireAuth := middlewares.RequireAuth(secret)
	routes.AuthRouter(router, controllers.NewAuthController(authService))
	routes.UserRouter(router, controllers.NewUserController(relationshipService), requireAuth)
	routes.PostRouter(router, controllers.NewPostController(engagementService), requireAuth)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := router.Run(":" + port); err != nil {
		logrus.WithError(err).Fatal("server stopped")
	}
}
