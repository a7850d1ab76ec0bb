package config

import (
	"fmt"
	"os"
)

type Config struct {
	Port              string
	MongoDBURI        string
	MongoDBName       string
	JWTSecret         string
	GoogleClientID    string
	RazorpayKeyID     string
	RazorpayKeySecret string
	FrontendURL       string
	UploadDir         string
	Environment       string
	LogLevel          string
}

func LoadConfig() (*Config, error) {
	cfg := &Config{
		Port:              getEnvWithDefault("PORT", "4000"),
		MongoDBURI:        os.Getenv("MONGODB_URI"),
		MongoDBName:       getEnvWithDefault("MONGODB_DB", "stayelo"),
		JWTSecret:         os.Getenv("JWT_SECRET"),
		GoogleClientID:    os.Getenv("GOOGLE_CLIENT_ID"),
		RazorpayKeyID:     os.Getenv("RAZORPAY_KEY_ID"),
		RazorpayKeySecret: os.Getenv("RAZORPAY_KEY_SECRET"),
		FrontendURL:       getEnvWithDefault("FRONTEND_URL", "http://localhost:3000"),
		UploadDir:         getEnvWithDefault("UPLOAD_DIR", "uploads"),
		Environment:       getEnvWithDefault("ENVIRONMENT", "development"),
		LogLevel:          getEnvWithDefault("LOG_LEVEL", "info"),
	}

	// Validate required fields
	if cfg.MongoDBURI == "" {
		return nil, fmt.Errorf("MONGODB_URI is required")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	return cfg, nil
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}
