package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const (
	EnvAPIKey = "CHAVE_API"
	EnvAPIURL = "GROQ_API_URL"

	DefaultAPIURL = "https://api.groq.com/openai/v1/chat/completions"

	msgEnvFileUnreadable = "Erro ao carregar o arquivo .env: Verifique se o arquivo existe e as permissões."
)

// APIConfig is the upstream configuration for a single request cycle.
// Problem is empty when the configuration can be used.
type APIConfig struct {
	APIKey  string
	APIURL  string
	Problem string
}

func (c APIConfig) Valid() bool { return c.Problem == "" }

// APILoader builds an APIConfig from the process environment layered over
// the .env file. Process values win, the file is never written back.
type APILoader struct {
	EnvFile string
	// LookupEnv defaults to os.LookupEnv
	LookupEnv func(key string) (string, bool)
}

func NewAPILoader(envFile string) APILoader {
	return APILoader{EnvFile: envFile, LookupEnv: os.LookupEnv}
}

func (l APILoader) Load() APIConfig {
	fileVals, err := l.readEnvFile()
	if err != nil {
		log.Printf("[config] %v", err)
		return APIConfig{APIURL: DefaultAPIURL, Problem: msgEnvFileUnreadable}
	}
	get := func(key string) string {
		if l.LookupEnv != nil {
			if v, ok := l.LookupEnv(key); ok && strings.TrimSpace(v) != "" {
				return strings.TrimSpace(v)
			}
		}
		return strings.TrimSpace(fileVals[key])
	}

	cfg := APIConfig{
		APIKey: get(EnvAPIKey),
		APIURL: get(EnvAPIURL),
	}
	if cfg.APIURL == "" {
		cfg.APIURL = DefaultAPIURL
	}
	if cfg.APIKey == "" {
		cfg.Problem = fmt.Sprintf("ERRO DE CONFIGURAÇÃO: A variável %s não foi encontrada no seu arquivo .env.", EnvAPIKey)
	}
	return cfg
}

// readEnvFile treats a missing file as empty.
func (l APILoader) readEnvFile() (map[string]string, error) {
	if l.EnvFile == "" {
		return map[string]string{}, nil
	}
	vals, err := godotenv.Read(l.EnvFile)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("read %s: %w", l.EnvFile, err)
	}
	return vals, nil
}
