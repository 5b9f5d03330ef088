package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv              string
	Port                string
	APIBaseURL          string
	ImageBaseURL        string
	QRISMerchantID      string
	SessionSecret       string
	SessionExpiry       string
	RedisAddr           string
	RedisPassword       string
	ReceiptDir          string
	MaxUploadSize       int64
	OrderPollInterval   time.Duration
	SuccessPollInterval time.Duration
	BannerDismissDelay  time.Duration
}

var AppConfig *Config

func LoadConfig() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}

	maxUploadSize, _ := strconv.ParseInt(os.Getenv("MAX_UPLOAD_SIZE"), 10, 64)
	if maxUploadSize == 0 {
		maxUploadSize = 5242880
	}

	AppConfig = &Config{
		AppEnv:              getEnv("APP_ENV", "development"),
		Port:                getEnv("APP_PORT", getEnv("PORT", "8080")),
		APIBaseURL:          getEnv("API_BASE_URL", "http://localhost:8000/api"),
		ImageBaseURL:        getEnv("IMAGE_BASE_URL", ""),
		QRISMerchantID:      getEnv("QRIS_MERCHANT_ID", "9988123"),
		SessionSecret:       getEnv("SESSION_SECRET", "secret"),
		SessionExpiry:       getEnv("SESSION_EXPIRY", "24h"),
		RedisAddr:           getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:       getEnv("REDIS_PASSWORD", ""),
		ReceiptDir:          getEnv("RECEIPT_DIR", "./receipts"),
		MaxUploadSize:       maxUploadSize,
		OrderPollInterval:   getDuration("ORDER_POLL_INTERVAL", 10*time.Second),
		SuccessPollInterval: getDuration("SUCCESS_POLL_INTERVAL", 5*time.Second),
		BannerDismissDelay:  getDuration("BANNER_DISMISS_DELAY", 30*time.Second),
	}

	log.Println("Configuration loaded successfully")
	log.Printf("Environment: %s", AppConfig.AppEnv)
	log.Printf("Upstream API: %s", AppConfig.APIBaseURL)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
		log.Printf("Warning: invalid duration for %s, using default %s", key, defaultValue)
	}
	return defaultValue
}
