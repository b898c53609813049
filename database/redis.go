package database

import (
	"context"
	"log"
	"volunteermatch-backend/config"

	"github.com/redis/go-redis/v9"
)

var Redis *redis.Client

func ConnectRedis() {
	opt, err := redis.ParseURL(config.AppConfig.RedisURL)
	if err != nil {
		log.Println("⚠️  Invalid REDIS_URL, running without cache:", err)
		return
	}

	Redis = redis.NewClient(opt)

	if _, err := Redis.Ping(context.Background()).Result(); err != nil {
		log.Println("⚠️  Redis not available, running without cache:", err)
		Redis = nil
		return
	}

	log.Println("✅ Redis connected successfully")
}
