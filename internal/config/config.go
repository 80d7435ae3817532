package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Auth     AuthConfig
	OAuth    OAuthConfig
	Payment  PaymentConfig
	SMTP     SMTPConfig
}

type AppConfig struct {
	Port               string
	BaseURL            string
	ClientURL          string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	NatsURL            string
	RedisURL           string
}

type DatabaseConfig struct {
	Connection string
}

type AuthConfig struct {
	SessionSecret     string
	SessionCookieName string
	// Cookie lifetimes in seconds. Password logins get a day, federated
	// logins a week (the identity provider already verified the email).
	PasswordSessionMaxAge  int
	FederatedSessionMaxAge int
	LoginAttemptLimit      int
}

type OAuthConfig struct {
	GoogleClientID     string
	GoogleClientSecret string
	GoogleRedirectURL  string
}

type PaymentConfig struct {
	BaseURL            string
	SecretKey          string
	CallbackToken      string
	SuccessRedirectURL string
	FailureRedirectURL string
}

type SMTPConfig struct {
	Host       string
	Port       int
	Email      string
	Password   string
	SenderName string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, using system environment")
	}

	clientURL := getEnv("CLIENT_URL", "http://localhost:3000")

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "8080"),
			BaseURL:            getEnv("APP_BASE_URL", "http://localhost:8080"),
			ClientURL:          clientURL,
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "logs/app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", clientURL),
			NatsURL:            getEnv("NATS_URL", ""),
			RedisURL:           getEnv("REDIS_URL", ""),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		Auth: AuthConfig{
			SessionSecret:          getEnv("SESSION_SECRET", ""),
			SessionCookieName:      getEnv("SESSION_COOKIE_NAME", "admin-session"),
			PasswordSessionMaxAge:  getEnvAsInt("SESSION_MAX_AGE", 86400),
			FederatedSessionMaxAge: getEnvAsInt("FEDERATED_SESSION_MAX_AGE", 604800),
			LoginAttemptLimit:      getEnvAsInt("LOGIN_ATTEMPT_LIMIT", 10),
		},
		OAuth: OAuthConfig{
			GoogleClientID:     getEnv("GOOGLE_CLIENT_ID", ""),
			GoogleClientSecret: getEnv("GOOGLE_CLIENT_SECRET", ""),
			GoogleRedirectURL:  getEnv("GOOGLE_REDIRECT_URL", ""),
		},
		Payment: PaymentConfig{
			BaseURL:            getEnv("INVOICE_API_BASE_URL", "https://api.xendit.co"),
			SecretKey:          getEnv("INVOICE_API_SECRET_KEY", ""),
			CallbackToken:      getEnv("INVOICE_CALLBACK_TOKEN", ""),
			SuccessRedirectURL: getEnv("INVOICE_SUCCESS_REDIRECT_URL", clientURL+"/checkout/success"),
			FailureRedirectURL: getEnv("INVOICE_FAILURE_REDIRECT_URL", clientURL+"/checkout/failed"),
		},
		SMTP: SMTPConfig{
			Host:       getEnv("SMTP_HOST", ""),
			Port:       getEnvAsInt("SMTP_PORT", 587),
			Email:      getEnv("SMTP_EMAIL", ""),
			Password:   getEnv("SMTP_PASSWORD", ""),
			SenderName: getEnv("SMTP_SENDER_NAME", "MasterPrima"),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}
