package confs

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds every environment-sourced setting, resolved once at startup.
type Config struct {
	// HTTP
	Addr string

	// JWT
	JWTSecretKey      string
	JWTRefreshKey     string
	AccessTokenTTL    time.Duration
	RefreshTokenTTL   time.Duration

	// Twilio SMS
	TwilioSID            string
	TwilioAuthToken      string
	TwilioVirtualNumber  string
	TwilioVerifiedNumber string

	// OpenWeather
	OpenWeatherAppID string
}

var cfg Config

// LoadConfig loads environment variables from a .env file if present
// and resolves the typed configuration. Signing secrets are required.
func LoadConfig() error {
	// Load .env if it exists; ignore error if file not found
	if err := godotenv.Load(); err != nil {
		if !os.IsNotExist(err) {
			log.Printf("warning: could not load .env: %v", err)
		}
	}

	cfg = Config{
		Addr:            getenv("ADDR", "0.0.0.0:3536"),
		JWTSecretKey:    os.Getenv("JWT_SECRET_KEY"),
		JWTRefreshKey:   os.Getenv("JWT_REFRESH_KEY"),
		AccessTokenTTL:  getdur("ACCESS_TOKEN_TTL", 30*time.Minute),
		RefreshTokenTTL: getdur("REFRESH_TOKEN_TTL", 7*24*time.Hour),

		TwilioSID:            os.Getenv("TWILIO_SID"),
		TwilioAuthToken:      os.Getenv("TWILIO_AUTH_TOKEN"),
		TwilioVirtualNumber:  os.Getenv("TWILIO_VIRTUAL_NUMBER"),
		TwilioVerifiedNumber: os.Getenv("TWILIO_VERIFIED_NUMBER"),

		OpenWeatherAppID: os.Getenv("OPEN_WEATHER_APPID"),
	}

	if cfg.JWTSecretKey == "" || cfg.JWTRefreshKey == "" {
		return fmt.Errorf("missing required configuration: JWT_SECRET_KEY and JWT_REFRESH_KEY")
	}
	return nil
}

// Get returns the loaded configuration.
func Get() Config { return cfg }

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getdur(k string, def time.Duration) time.Duration {
	if v := os.Getenv(k); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
		log.Printf("warning: invalid duration for %s, using default %s", k, def)
	}
	return def
}
