package config

import (
	"errors"
	"io/fs"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds process-wide server settings, read once at startup.
type Config struct {
	Port          string
	AllowedOrigin string
	// Path of the .env file re-read on every request for the API settings
	EnvFile string
	// Upper bound for the single outbound chat-completion call
	UpstreamTimeout time.Duration
}

// Load reads the settings from the process environment, falling back to the
// .env file. The file is only read, so later edits are still picked up by
// APILoader on each request.
func Load() Config {
	envFile := os.Getenv("ENV_FILE")
	if envFile == "" {
		envFile = ".env"
	}
	fileVals, err := godotenv.Read(envFile)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Printf("warning: could not read %s: %v", envFile, err)
	}
	cfg := Config{
		Port:            getEnvDefault(fileVals, "PORT", "8080"),
		AllowedOrigin:   getEnvDefault(fileVals, "ALLOWED_ORIGIN", "*"),
		EnvFile:         envFile,
		UpstreamTimeout: time.Duration(getEnvIntDefault(fileVals, "UPSTREAM_TIMEOUT_SECONDS", 30)) * time.Second,
	}
	if getEnvDefault(fileVals, EnvAPIKey, "") == "" {
		log.Printf("warning: %s is not set; the page will report a configuration error until provided", EnvAPIKey)
	}
	return cfg
}

func getEnvDefault(fileVals map[string]string, key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	if v := fileVals[key]; v != "" {
		return v
	}
	return def
}

func getEnvIntDefault(fileVals map[string]string, key string, def int) int {
	v := strings.TrimSpace(getEnvDefault(fileVals, key, ""))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return def
	}
	return n
}
