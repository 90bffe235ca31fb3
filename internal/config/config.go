// Package config loads the API configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	Addr string

	DBHost     string
	DBPort     uint
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	JWTSecret   string
	CORSOrigins []string

	// AllowedTags and AllowedAttributes configure the comment sanitizer.
	// Empty means the safe default: no markup survives.
	AllowedTags       []string
	AllowedAttributes map[string][]string

	DevLog bool
}

func Load() Config {
	return Config{
		Addr:              getenv("COMMENTS_ADDR", ":8080"),
		DBHost:            getenv("DB_HOST", "localhost"),
		DBPort:            uint(getenvInt("DB_PORT", 5432)),
		DBUser:            getenv("DB_USER", "postgres"),
		DBPassword:        getenv("DB_PASSWORD", "postgres"),
		DBName:            getenv("DB_NAME", "comments"),
		DBSSLMode:         getenv("DB_SSL_MODE", "disable"),
		JWTSecret:         getenv("JWT_SECRET", "comments-dev-secret"),
		CORSOrigins:       getenvList("CORS_ORIGINS", "*"),
		AllowedTags:       getenvList("COMMENTS_ALLOWED_TAGS", ""),
		AllowedAttributes: parseAttrs(os.Getenv("COMMENTS_ALLOWED_ATTRIBUTES")),
		DevLog:            getenv("LOG_DEV", "") == "true",
	}
}

// DSN assembles the postgres connection string.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d sslmode=%s",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort, c.DBSSLMode)
}

func getenv(key, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}

func getenvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

// getenvList splits a comma-separated variable, dropping empty entries.
func getenvList(key, fallback string) []string {
	value := os.Getenv(key)
	if value == "" {
		value = fallback
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

// parseAttrs reads "tag:attr1|attr2,tag2:attr" into a tag -> attributes map.
func parseAttrs(value string) map[string][]string {
	if value == "" {
		return nil
	}
	out := map[string][]string{}
	for _, entry := range strings.Split(value, ",") {
		tag, attrs, ok := strings.Cut(strings.TrimSpace(entry), ":")
		if !ok || tag == "" {
			continue
		}
		for _, a := range strings.Split(attrs, "|") {
			a = strings.TrimSpace(a)
			if a != "" {
				out[tag] = append(out[tag], a)
			}
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
