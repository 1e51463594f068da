package configs

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

var (
	JWTSecret        string
	JWTRefreshSecret string
	GoogleClientID   string
)

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if os.Getenv("APP_ENV") == "production" {
		log.Println("[CONFIG] production mode, reading ENV from the system")
	} else if err := godotenv.Load(); err != nil {
		log.Println("[CONFIG] no .env file found, reading ENV from the system")
	}

	JWTSecret = GetEnv("JWT_SECRET")
	JWTRefreshSecret = GetEnv("JWT_REFRESH_SECRET")
	GoogleClientID = GetEnv("GOOGLE_CLIENT_ID")

	if JWTSecret == "" {
		log.Println("[CONFIG] WARNING: JWT_SECRET is not set")
	}
	if JWTRefreshSecret == "" {
		log.Println("[CONFIG] WARNING: JWT_REFRESH_SECRET is not set")
	}
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}
