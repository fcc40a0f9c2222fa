package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port   string
	JWTKey string

	// Token lifetime in hours. The frontend session mirrors this value.
	TokenTTLHours int

	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string

	StripeKey     string
	StripeBaseURL string

	SendGridKey string
	EmailSender string

	// Policy toggles. Defaults reproduce the behavior of the original
	// service; flipping them hardens the corresponding endpoint.
	RequireAdminForPromotion  bool
	RequireOwnerForCartDelete bool
	VerifyGatewayConfirmation bool
	SeatTracking              bool
}

// AppConfig is a global variable to access configuration
var AppConfig *Config

// LoadConfig initializes configuration from environment variables or defaults
func LoadConfig() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found. Using system environment variables.")
	}

	AppConfig = &Config{
		Port:          getEnv("PORT", "5000"),
		JWTKey:        getEnv("ACCESS_TOKEN", "defaultSecret"),
		TokenTTLHours: getEnvInt("TOKEN_TTL_HOURS", 170),

		DBHost:     getEnv("DB_HOST", "localhost"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASS", ""),
		DBName:     getEnv("DB_NAME", "musicStudio"),
		DBPort:     getEnv("DB_PORT", "5432"),

		StripeKey:     getEnv("PAYMENT_KEY", ""),
		StripeBaseURL: getEnv("PAYMENT_BASE_URL", "https://api.stripe.com/v1"),

		SendGridKey: getEnv("SENDGRID_API_KEY", ""),
		EmailSender: getEnv("MAIL_USER", "noreply@themusicstudio.io"),

		RequireAdminForPromotion:  getEnvBool("REQUIRE_ADMIN_FOR_PROMOTION", false),
		RequireOwnerForCartDelete: getEnvBool("REQUIRE_OWNER_FOR_CART_DELETE", false),
		VerifyGatewayConfirmation: getEnvBool("VERIFY_GATEWAY_CONFIRMATION", false),
		SeatTracking:              getEnvBool("SEAT_TRACKING", true),
	}

	// Validate critical configuration
	if AppConfig.JWTKey == "defaultSecret" {
		log.Println("Warning: Using default ACCESS_TOKEN secret. Update it in your environment.")
	}
	if AppConfig.StripeKey == "" {
		log.Println("Warning: PAYMENT_KEY is empty. Payment intents will fail.")
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvInt retrieves an environment variable as an integer or returns the default integer value
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Error converting environment variable %s to int: %v", key, err)
		return defaultValue
	}
	return intValue
}

// getEnvBool retrieves an environment variable as a bool or returns the default value
func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		log.Printf("Error converting environment variable %s to bool: %v", key, err)
		return defaultValue
	}
	return boolValue
}
