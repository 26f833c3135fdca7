package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port           string
	MongoURL       string
	DatabaseName   string
	SecretKey      string
	AuthRequired   bool
	CorsOrigins    []string
	SeedSampleData bool
	ProfilePath    string
	Profile        Profile

	// Terminal side.
	APIURL string
	Token  string
}

// Load reads .env (when present) and the process environment, then the
// restaurant profile named by RESTAURANT_PROFILE.
func Load() (*Config, error) {
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(".env"); err != nil {
			log.Printf("Error loading .env file: %v", err)
		}
	} else if !os.IsNotExist(err) {
		log.Println("Error checking .env file:", err)
	}

	cfg := &Config{
		Port:           getEnv("PORT", "8000"),
		MongoURL:       getEnv("MONGODB_URL", "mongodb://localhost:27017"),
		DatabaseName:   getEnv("DATABASE_NAME", "restaurant"),
		SecretKey:      getEnv("SECRET_KEY", ""),
		AuthRequired:   getEnv("AUTH_REQUIRED", "false") == "true",
		CorsOrigins:    splitList(getEnv("CORS_ORIGINS", "http://localhost:3000")),
		SeedSampleData: getEnv("SEED_SAMPLE_DATA", "true") != "false",
		ProfilePath:    getEnv("RESTAURANT_PROFILE", "restaurant.yaml"),
		APIURL:         getEnv("POS_API_URL", "http://localhost:8000/api"),
		Token:          os.Getenv("POS_TOKEN"),
	}

	profile, err := LoadProfile(cfg.ProfilePath)
	if err != nil {
		return nil, err
	}
	cfg.Profile = profile
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
