package main

import "os"

// Config carries the service settings, all overridable by environment.
type Config struct {
	Port         string
	DBPath       string
	CareerAPIURL string
}

func loadConfig() Config {
	return Config{
		Port:         getEnv("PORT", "8080"),
		DBPath:       getEnv("DB_PATH", "compass.db"),
		CareerAPIURL: getEnv("CAREER_API_URL", ""),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
