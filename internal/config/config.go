package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds application configuration
type Config struct {
	Port          string
	Env           string
	PublicBaseURL string
	LogLevel      string

	// Conversation pacing
	TypingDelay        time.Duration
	AutoOpenDelay      time.Duration
	TrustSequenceDelay time.Duration
	TrustStepInterval  time.Duration

	// Booking hand-off
	WhatsAppNumber string
	ProgramLabel   string
	WebsiteURL     string

	// Transcript storage
	UseMemoryTranscript bool
	TranscriptMax       int
	RedisAddr           string
	RedisPassword       string
	RedisTLS            bool

	CORSAllowedOrigins []string
}

// Load reads configuration from environment variables
func Load() *Config {
	return &Config{
		Port:          getEnv("PORT", "8080"),
		Env:           getEnv("ENV", "development"),
		PublicBaseURL: getEnv("PUBLIC_BASE_URL", ""),
		LogLevel:      getEnv("LOG_LEVEL", "info"),

		TypingDelay:        getEnvAsDuration("TYPING_DELAY", time.Second),
		AutoOpenDelay:      getEnvAsDuration("AUTO_OPEN_DELAY", 15*time.Second),
		TrustSequenceDelay: getEnvAsDuration("TRUST_SEQUENCE_DELAY", 15*time.Second),
		TrustStepInterval:  getEnvAsDuration("TRUST_STEP_INTERVAL", 10*time.Second),

		WhatsAppNumber: getEnv("WHATSAPP_NUMBER", "923314041010"),
		ProgramLabel:   getEnv("PROGRAM_LABEL", "Mentorship By Dilawar"),
		WebsiteURL:     getEnv("WEBSITE_URL", "mentorship.dilawarpro.com"),

		UseMemoryTranscript: getEnvAsBool("USE_MEMORY_TRANSCRIPT", false),
		TranscriptMax:       getEnvAsInt("TRANSCRIPT_MAX_MESSAGES", 250),
		RedisAddr:           getEnv("REDIS_ADDR", "redis:6379"),
		RedisPassword:       getEnv("REDIS_PASSWORD", ""),
		RedisTLS:            getEnvAsBool("REDIS_TLS", false),

		CORSAllowedOrigins: getEnvAsList("CORS_ALLOWED_ORIGINS", []string{"*"}),
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt retrieves an environment variable as an integer or returns a default value
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

// getEnvAsBool retrieves an environment variable as a boolean or returns a default value
func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	if value, err := time.ParseDuration(valueStr); err == nil {
		return value
	}
	return defaultValue
}

// getEnvAsList splits a comma-separated environment variable into a slice.
func getEnvAsList(key string, defaultValue []string) []string {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	parts := strings.Split(valueStr, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
