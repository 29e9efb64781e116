package config

import (
	"database/sql"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

type Config struct {
	DB            *sql.DB
	JWTSecret     string
	CloudinaryURL string
	RedisAddr     string
}

var AppConfig *Config

// LoadEnv loads .env when present; deployed environments use real env vars.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment")
	}
}

// GetEnv returns the value of an environment variable, or the optional
// default when unset.
func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}

func InitDB() {
	host := GetEnv("DB_HOST", "localhost")
	port := GetEnv("DB_PORT", "5432")
	user := GetEnv("DB_USER", "postgres")
	password := GetEnv("DB_PASSWORD")
	dbname := GetEnv("DB_NAME", "alandalus")
	sslmode := GetEnv("DB_SSLMODE", "disable")

	psqlInfo := fmt.Sprintf("host=%s port=%s user=%s dbname=%s sslmode=%s connect_timeout=60",
		host, port, user, dbname, sslmode)
	if password != "" {
		psqlInfo += " password=" + password
	}

	db, err := sql.Open("postgres", psqlInfo)
	if err != nil {
		log.Fatal("Failed to open database connection:", err)
	}

	// Set connection pool settings
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)

	log.Println("Testing database connection...")
	if err = db.Ping(); err != nil {
		log.Fatalf("Cannot establish database connection to %s:%s/%s: %v", host, port, dbname, err)
	}

	AppConfig = &Config{
		DB:            db,
		JWTSecret:     GetEnv("JWT_SECRET"),
		CloudinaryURL: GetEnv("CLOUDINARY_URL"),
		RedisAddr:     GetEnv("REDIS_ADDR"),
	}
	log.Println("Database connected successfully")
}

func GetDB() *sql.DB {
	return AppConfig.DB
}
