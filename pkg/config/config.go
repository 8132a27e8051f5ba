// Файл: config/config.go
package config

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type ServerConfig struct {
	Port string
}

type RedisConfig struct {
	Address  string
	Password string
	DB       int
}

// SiteConfig - учётная запись сайта и параметры сессий.
type SiteConfig struct {
	User         string
	FullName     string
	PasswordHash string
	SessionTTL   time.Duration
}

type DesignationConfig struct {
	// Seed - список вида "HR-001:Manager,HR-002:Accountant". Пустой - берутся значения по умолчанию.
	Seed string
}

// ClientConfig - настройки клиента формы (cmd/employeeform).
type ClientConfig struct {
	BaseURL     string
	User        string
	Password    string
	CSRFToken   string
	FormPage    string
	MessageTTL  time.Duration
	HTTPTimeout time.Duration
}

type Config struct {
	Server       ServerConfig
	Redis        RedisConfig
	Site         SiteConfig
	Designations DesignationConfig
	Client       ClientConfig
}

func New() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Предупреждение: .env файл не найден или не удалось его загрузить.")
	}

	return &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "8080"),
		},
		Redis: RedisConfig{
			Address:  getEnv("REDIS_ADDRESS", ""),
			Password: getEnv("REDIS_PASSWORD", ""),
		},
		Site: SiteConfig{
			User:         getEnv("SITE_USER", "Administrator"),
			FullName:     getEnv("SITE_FULL_NAME", "Administrator"),
			PasswordHash: getEnv("SITE_PASSWORD_HASH", ""),
			SessionTTL:   getDuration("SESSION_TTL", time.Hour*24*3),
		},
		Designations: DesignationConfig{
			Seed: getEnv("DESIGNATIONS", ""),
		},
		Client: ClientConfig{
			BaseURL:     strings.TrimRight(getEnv("FRAPPE_URL", "http://localhost:8080"), "/"),
			User:        getEnv("FRAPPE_USER", ""),
			Password:    getEnv("FRAPPE_PASSWORD", ""),
			CSRFToken:   getEnv("CSRF_TOKEN", ""),
			FormPage:    getEnv("FORM_PAGE", "/employeeform"),
			MessageTTL:  getDuration("MESSAGE_TTL", time.Second*3),
			HTTPTimeout: getDuration("HTTP_TIMEOUT", time.Second*20),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		log.Printf("Предупреждение: неверное значение %s=%q, используется %s", key, value, fallback)
		return fallback
	}
	return d
}
