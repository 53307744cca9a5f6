package config

import (
	"os"
)

type Config struct {
	Port       string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	SessionSecret      string
	SessionMaxAgeHours string // hours

	AdminUsername string
	AdminPassword string

	// TglMasukMax is the latest accepted enrollment date (YYYY-MM-DD).
	TglMasukMax string
}

func Load() *Config {
	return &Config{
		Port:       getenv("PORT", "3000"),
		DBHost:     getenv("DB_HOST", "localhost"),
		DBPort:     getenv("DB_PORT", "5432"),
		DBUser:     getenv("DB_USER", "postgres"),
		DBPassword: getenv("DB_PASSWORD", "postgres"),
		DBName:     getenv("DB_NAME", "siswa_db"),
		DBSSLMode:  getenv("DB_SSLMODE", "disable"),

		SessionSecret:      getenv("SESSION_SECRET", "secret"),
		SessionMaxAgeHours: getenv("SESSION_MAX_AGE_HOURS", "24"),

		AdminUsername: getenv("ADMIN_USERNAME", "admin"),
		AdminPassword: getenv("ADMIN_PASSWORD", "admin"),

		TglMasukMax: getenv("TGL_MASUK_MAX", "2025-12-04"),
	}
}

func getenv(key, fallback string) string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	return v
}
