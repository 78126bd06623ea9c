package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	ServicePort   string
	MongoDBConfig MongoDBConfig
	JWTSecret     string
	UploadDir     string
	CORSOrigin    string
}

type MongoDBConfig struct {
	DBHost string
	DBPort string
	DBName string
}

func CreateNewConfig() *Config {
	godotenv.Load(".env")

	conf := Config{
		ServicePort: os.Getenv("SERVICE_PORT"),
		MongoDBConfig: MongoDBConfig{
			DBHost: os.Getenv("DB_HOST"),
			DBPort: os.Getenv("DB_PORT"),
			DBName: os.Getenv("DB_NAME"),
		},
		JWTSecret:  os.Getenv("JWT_SECRET"),
		UploadDir:  os.Getenv("UPLOAD_DIR"),
		CORSOrigin: os.Getenv("CORS_ORIGIN"),
	}

	if conf.MongoDBConfig.DBName == "" {
		conf.MongoDBConfig.DBName = "vendor_app"
	}

	if conf.UploadDir == "" {
		conf.UploadDir = "uploads"
	}

	return &conf
}
