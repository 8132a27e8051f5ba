package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"employee-form/internal/repositories"
	"employee-form/pkg/config"
	"employee-form/seeders"
)

func main() {
	log.Println("======================================================")
	log.Println("       🌱 Наполнение справочника должностей (Redis)   ")
	log.Println("======================================================")

	designations := flag.String("designations", "", `список вида "HR-001:Manager,Intern" (по умолчанию DESIGNATIONS или встроенный)`)
	flag.Parse()

	cfg := config.New()
	if cfg.Redis.Address == "" {
		log.Println("❌ REDIS_ADDRESS не задан: сервер без Redis наполняет справочник сам при старте.")
		return
	}

	list := cfg.Designations.Seed
	if *designations != "" {
		list = *designations
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Address,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer redisClient.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Fatalf("❌ Не удалось подключиться к Redis %s: %v", cfg.Redis.Address, err)
	}

	logger, _ := zap.NewDevelopment()
	defer logger.Sync()

	repo := repositories.NewDesignationRepository(repositories.NewRedisCacheRepository(redisClient))
	if err := seeders.SeedDesignations(ctx, repo, list, logger); err != nil {
		log.Fatalf("❌ %v", err)
	}

	log.Println("✅ Справочник должностей обновлён.")
	log.Println("======================================================")
}
