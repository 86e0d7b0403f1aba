package main

import (
	"errors"
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/LearnPlayAI/HeartCart-sub006/config"
	"github.com/LearnPlayAI/HeartCart-sub006/controllers"
	"github.com/LearnPlayAI/HeartCart-sub006/jobs"
	"github.com/LearnPlayAI/HeartCart-sub006/models"
	"github.com/LearnPlayAI/HeartCart-sub006/routes"
	"github.com/LearnPlayAI/HeartCart-sub006/storage"
	"github.com/LearnPlayAI/HeartCart-sub006/utils"
	"github.com/LearnPlayAI/HeartCart-sub006/websocket"
)

func main() {
	godotenv.Load()
	r := gin.Default()

	// CORS config
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Database
	config.ConnectDB()
	config.DB.AutoMigrate(
		&models.User{},
		&models.Supplier{},
		&models.Catalog{},
		&models.Category{},
		&models.Product{},
		&models.Promotion{},
		&models.Order{},
		&models.OrderItem{},
	)

	seedAdminUser()

	// Redis for Asynq and the event feed
	config.InitRedis()

	// Cloudinary
	if err := utils.InitCloudinary(); err != nil {
		log.Fatal("Failed to initialize Cloudinary: ", err)
	}

	// Task queue client for handlers that enqueue image work
	queue := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     redisAddr(),
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       0,
	})
	defer queue.Close()

	controllers.Init(storage.NewGormStore(config.DB), queue)

	// Admin event feed
	websocket.Manager.Start()

	// Worker runs in-process
	go startWorker()

	// Routes
	routes.SetupRoutes(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Server running on 0.0.0.0:%s", port)
	r.Run(":" + port)
}

func redisAddr() string {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "127.0.0.1:6379"
	}
	return addr
}

func startWorker() {
	redisOpt := asynq.RedisClientOpt{
		Addr:     redisAddr(),
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       0,
	}

	srv := asynq.NewServer(redisOpt, asynq.Config{
		Concurrency: 10,
		Queues: map[string]int{
			"critical": 6,
			"default":  3,
			"low":      1,
		},
		RetryDelayFunc: func(n int, e error, t *asynq.Task) time.Duration {
			backoff := []time.Duration{1, 3, 5, 10, 15} // minutes
			if n == 0 {
				return 0
			}
			if n <= len(backoff) {
				return backoff[n-1] * time.Minute
			}
			return 15 * time.Minute
		},
	})

	processor := jobs.NewImageProcessor(config.DB, config.RDB)

	mux := asynq.NewServeMux()
	mux.HandleFunc(jobs.TaskImageDerivatives, processor.ProcessTask)

	log.Println("Worker started, waiting for jobs...")

	if err := srv.Run(mux); err != nil {
		log.Printf("Worker error: %v", err)
	}
}

// seedAdminUser creates the back-office account from ADMIN_EMAIL /
// ADMIN_PASSWORD when it does not exist yet.
func seedAdminUser() {
	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		return
	}

	var existing models.User
	err := config.DB.Where("email = ?", email).First(&existing).Error
	if err == nil {
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Printf("Failed to check admin user: %v", err)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("Failed to hash admin password: %v", err)
		return
	}

	admin := models.User{
		Name:     "Administrator",
		Email:    email,
		Password: string(hash),
		Role:     models.RoleAdmin,
	}
	if err := config.DB.Create(&admin).Error; err != nil {
		log.Printf("Failed to seed admin user: %v", err)
		return
	}
	log.Printf("Seeded admin user %s", email)
}
