package config

import (
	"flag"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port      string
	Env       string
	StaticDir string
	Model     ModelConfig
	Upload    UploadConfig
}

type ModelConfig struct {
	APIKey string
	Name   string
	RPS    float64
	Burst  int
}

type UploadConfig struct {
	MaxBytes int64
}

const defaultModel = "gemini-2.5-flash"

func Load() (*Config, error) {
	_ = godotenv.Load()

	port := flag.String("port", ":8080", "server port")
	flag.Parse()

	if envPort := os.Getenv("PORT"); envPort != "" {
		*port = normalizePort(envPort)
	}

	env := strings.TrimSpace(os.Getenv("APP_ENV"))
	if env == "" {
		env = "local"
	}

	return &Config{
		Port:      *port,
		Env:       env,
		StaticDir: firstNonEmpty(strings.TrimSpace(os.Getenv("STATIC_DIR")), "static"),
		Model:     loadModelConfig(),
		Upload:    loadUploadConfig(),
	}, nil
}

func loadModelConfig() ModelConfig {
	return ModelConfig{
		APIKey: strings.TrimSpace(os.Getenv("GEMINI_API_KEY")),
		Name:   firstNonEmpty(strings.TrimSpace(os.Getenv("GEMINI_MODEL")), defaultModel),
		RPS:    envFloat("LLM_RPS", "GEMINI_RPS"),
		Burst:  envInt("LLM_BURST", "GEMINI_BURST"),
	}
}

func loadUploadConfig() UploadConfig {
	max := int64(1 << 20) // 1 MiB
	if raw := strings.TrimSpace(os.Getenv("MAX_UPLOAD_BYTES")); raw != "" {
		if v, err := strconv.ParseInt(raw, 10, 64); err == nil && v > 0 {
			max = v
		}
	}
	return UploadConfig{MaxBytes: max}
}

func normalizePort(p string) string {
	if strings.HasPrefix(p, ":") {
		return p
	}
	return ":" + p
}

// envFloat returns the first parseable value among the given keys.
func envFloat(keys ...string) float64 {
	for _, k := range keys {
		if v := os.Getenv(k); v != "" {
			if f, err := strconv.ParseFloat(v, 64); err == nil {
				return f
			}
		}
	}
	return 0
}

func envInt(keys ...string) int {
	for _, k := range keys {
		if v := os.Getenv(k); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				return n
			}
		}
	}
	return 0
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
