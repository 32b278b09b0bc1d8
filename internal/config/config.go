package config

import (
	"crypto/rand"
	"encoding/base64"
	"log/slog"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port         string
	DataDir      string
	UploadDir    string
	PublicDir    string
	MongoURI     string
	MongoDB      string
	SessionKey   []byte
	CookieDomain string
	CookieSecure bool

	// Singleton admin bootstrap. SetupToken gates the one-time setup
	// endpoint; AdminEmail/AdminPassword let login work without a
	// stored credential (hash computed on the fly).
	AdminEmail    string
	AdminPassword string
	SetupToken    string

	SMTPHost    string
	SMTPPort    int
	SMTPUser    string
	SMTPPass    string
	SMTPFrom    string
	NotifyEmail string

	CloudinaryURL string
}

func LoadConfig() (*Config, error) {
	// Optional .env for local development; real deployments set the
	// environment directly.
	if err := godotenv.Load(); err == nil {
		slog.Info("Loaded environment from .env file")
	}

	cfg := &Config{
		Port:          getEnv("PORT", "3000"),
		DataDir:       getEnv("DATA_DIR", "./data"),
		UploadDir:     getEnv("UPLOAD_DIR", "./public/uploads"),
		PublicDir:     getEnv("PUBLIC_DIR", "./public"),
		MongoURI:      getEnv("MONGODB_URI", ""),
		MongoDB:       getEnv("MONGODB_DB", "carryluxe"),
		CookieDomain:  getEnv("COOKIE_DOMAIN", ""),
		CookieSecure:  getEnv("COOKIE_SECURE", "false") == "true",
		AdminEmail:    getEnv("ADMIN_EMAIL", ""),
		AdminPassword: getEnv("ADMIN_PASSWORD", ""),
		SetupToken:    getEnv("SETUP_TOKEN", ""),
		SMTPHost:      getEnv("SMTP_HOST", ""),
		SMTPUser:      getEnv("SMTP_USER", ""),
		SMTPPass:      getEnv("SMTP_PASS", ""),
		SMTPFrom:      getEnv("SMTP_FROM", "CarryLuxe <no-reply@carryluxe.local>"),
		CloudinaryURL: getEnv("CLOUDINARY_URL", ""),
	}

	cfg.SMTPPort = 587
	if v := os.Getenv("SMTP_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.SMTPPort = port
		} else {
			slog.Warn("Invalid SMTP_PORT, using 587", "SMTP_PORT", v)
		}
	}

	// Order notifications go to the shop operator.
	cfg.NotifyEmail = getEnv("NOTIFY_EMAIL", cfg.AdminEmail)

	// Session key (critical for security)
	sessionKeyStr := os.Getenv("SESSION_KEY")
	if sessionKeyStr == "" {
		slog.Warn("SESSION_KEY environment variable not set. Generating a random key for development. Sessions will be invalid on restart. PLEASE SET SESSION_KEY IN PRODUCTION!")
		cfg.SessionKey = generateRandomBytes(32)
	} else {
		decodedKey, err := base64.StdEncoding.DecodeString(sessionKeyStr)
		if err != nil || len(decodedKey) < 32 {
			slog.Warn("SESSION_KEY is invalid or too short (min 32 bytes recommended). Generating a random key for development. PLEASE SET A SECURE SESSION_KEY IN PRODUCTION!")
			cfg.SessionKey = generateRandomBytes(32)
		} else {
			cfg.SessionKey = decodedKey
		}
	}

	// Make sure port is valid
	if _, err := strconv.Atoi(cfg.Port); err != nil {
		slog.Error("Invalid PORT environment variable. Falling back to default.", "PORT", os.Getenv("PORT"))
		cfg.Port = "3000"
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// generateRandomBytes generates a random byte slice of specified length
// using crypto/rand.
func generateRandomBytes(n int) []byte {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		// Only reachable when the OS entropy source is broken; a fixed
		// key here is still better than crashing a dev instance.
		slog.Error("Failed to read random bytes", "error", err)
		fallback := make([]byte, n)
		copy(fallback, "carryluxe-insecure-fallback-key-0000000000000000")
		return fallback
	}
	return b
}
