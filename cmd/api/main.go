package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"

	"github.com/Trend-White-Oficial/cuide-se-sub002/internal/config"
	"github.com/Trend-White-Oficial/cuide-se-sub002/internal/db"
	"github.com/Trend-White-Oficial/cuide-se-sub002/internal/reminder"
	"github.com/Trend-White-Oficial/cuide-se-sub002/internal/routes"
)

func main() {
	// .env é opcional (em produção as variáveis vêm do ambiente)
	_ = godotenv.Load()

	cfg := config.Load()

	database := db.NewDB(cfg)

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})

	r := gin.Default()

	notifDispatcher := routes.Setup(r, database, rdb, cfg)

	reminder.NewService(database, notifDispatcher).StartScheduler()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	log.Printf("🚀 cuide-se API ouvindo em %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatal(err)
	}
}
