package config

import (
	"fmt"
	"os"
	"time"
)

type Config struct {
	Port                string
	MongoDBURI          string
	MongoDBDatabase     string
	JWTSecret           string
	JWTExpiresIn        time.Duration
	StripeAPIKey        string
	CloudinaryCloudName string
	CloudinaryAPIKey    string
	CloudinaryAPISecret string
	AdminEmail          string
	FrontendURL         string
	Environment         string
	LogLevel            string
}

func LoadConfig() (*Config, error) {
	cfg := &Config{
		Port:                getEnvWithDefault("PORT", "8080"),
		MongoDBURI:          os.Getenv("MONGODB_URI"),
		MongoDBDatabase:     getEnvWithDefault("MONGODB_DATABASE", "staybook"),
		JWTSecret:           os.Getenv("JWT_SECRET_KEY"),
		StripeAPIKey:        os.Getenv("STRIPE_API_KEY"),
		CloudinaryCloudName: os.Getenv("CLOUDINARY_CLOUD_NAME"),
		CloudinaryAPIKey:    os.Getenv("CLOUDINARY_API_KEY"),
		CloudinaryAPISecret: os.Getenv("CLOUDINARY_API_SECRET"),
		AdminEmail:          os.Getenv("ADMIN_EMAIL"),
		FrontendURL:         getEnvWithDefault("FRONTEND_URL", "http://localhost:5173"),
		Environment:         getEnvWithDefault("ENVIRONMENT", "development"),
		LogLevel:            getEnvWithDefault("LOG_LEVEL", "info"),
	}

	expires := getEnvWithDefault("JWT_EXPIRES_IN", "24h")
	d, err := time.ParseDuration(expires)
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_EXPIRES_IN %q: %v", expires, err)
	}
	cfg.JWTExpiresIn = d

	// Validate required fields
	if cfg.MongoDBURI == "" {
		return nil, fmt.Errorf("MONGODB_URI is required")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if cfg.StripeAPIKey == "" {
		return nil, fmt.Errorf("STRIPE_API_KEY is required")
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
