package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config is resolved once at startup and handed to constructors; nothing else
// in the codebase reads the environment directly.
type Config struct {
	Port string

	// DBPath empty degrades the app to local-only: no cross-device sync, in-memory accounts.
	DBPath string

	// GeminiAPIKey empty blocks generation features with an actionable error, it does not crash the server.
	GeminiAPIKey string
	GeminiModel  string

	// GoogleCredentials is the service-account file for speech synthesis.
	GoogleCredentials string

	JWTSecret  string
	InviteCode string // optional signup gate
}

func Load() Config {
	_ = godotenv.Load()

	// Setting ZYSCULPT_DB to an empty string explicitly opts out of persistence.
	dbPath := "./zysculpt.db"
	if v, ok := os.LookupEnv("ZYSCULPT_DB"); ok {
		dbPath = v
	}

	cfg := Config{
		Port:              getenv("PORT", "8080"),
		DBPath:            dbPath,
		GeminiAPIKey:      os.Getenv("GEMINI_API_KEY"),
		GeminiModel:       getenv("GEMINI_MODEL", "gemini-2.5-flash"),
		GoogleCredentials: os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"),
		JWTSecret:         os.Getenv("JWT_SECRET_KEY"),
		InviteCode:        os.Getenv("SIGNUP_INVITE_CODE"),
	}

	if cfg.GeminiAPIKey == "" {
		log.Println("config.Load(): GEMINI_API_KEY not set, generation features disabled until configured")
	}
	if cfg.DBPath == "" {
		log.Println("config.Load(): ZYSCULPT_DB empty, running local-only without persistence")
	}
	return cfg
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
