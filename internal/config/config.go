package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// DatabaseConfig holds PostgreSQL database connection settings.
type DatabaseConfig struct {
	Host               string
	Port               string
	User               string
	Password           string
	Name               string
	SSLMode            string
	MaxOpenConns       int
	MaxIdleConns       int
	ConnMaxLifetimeSec int
}

// MinIOConfig holds object storage settings for MinIO.
type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// OpenAIConfig holds model provider settings shared by the vision and
// speech adapters.
type OpenAIConfig struct {
	APIKey          string
	BaseURL         string // optional override, used by tests
	VisionModel     string
	TTSModel        string
	TTSInstructions string
}

// TTSConfig constrains speech synthesis input. Voices is the accepted voice
// set; the default mirrors the voices the OpenAI speech endpoint recognizes.
type TTSConfig struct {
	Voices       []string
	DefaultVoice string
}

// AnalyzeConfig tunes the background page-analysis workflow.
// MaxConcurrency of 0 means unbounded. SweepMaxAge is how long a page may sit
// in processing before the recovery sweep marks it errored.
type AnalyzeConfig struct {
	MaxConcurrency int
	SweepEnabled   bool
	SweepMaxAge    time.Duration
}

// UploadConfig bounds incoming multipart uploads.
type UploadConfig struct {
	MaxSizeMB int
}

// AppConfig is the centralized configuration struct for the application.
// It is populated from environment variables. Sensitive values are not hardcoded.
type AppConfig struct {
	AppHost  string
	Port     string
	LogLevel string
	Database DatabaseConfig
	MinIO    MinIOConfig
	OpenAI   OpenAIConfig
	TTS      TTSConfig
	Analyze  AnalyzeConfig
	Upload   UploadConfig
}

// defaultVoices is the eleven-voice set accepted by the speech endpoint.
var defaultVoices = []string{
	"alloy", "ash", "ballad", "coral", "echo", "fable",
	"onyx", "nova", "sage", "shimmer", "verse",
}

// Load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
// This function does not require a .env file; real environment variables take precedence.
func Load() *AppConfig {
	return &AppConfig{
		AppHost:  getEnv("APP_HOST", "localhost:8080"),
		Port:     getEnv("PORT", "8080"), // default only for non-sensitive value
		LogLevel: getEnv("LOG_LEVEL", "info"),
		Database: DatabaseConfig{
			Host:               getEnv("DB_HOST", ""),
			Port:               getEnv("DB_PORT", "5432"),
			User:               getEnv("DB_USER", ""),
			Password:           getEnv("DB_PASSWORD", ""),
			Name:               getEnv("DB_NAME", ""),
			SSLMode:            getEnv("DB_SSLMODE", "disable"),
			MaxOpenConns:       getEnvInt("DB_MAX_OPEN_CONNS", 10),
			MaxIdleConns:       getEnvInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetimeSec: getEnvInt("DB_CONN_MAX_LIFETIME_SEC", 300),
		},
		MinIO: MinIOConfig{
			Endpoint:  getEnv("MINIO_ENDPOINT", ""),
			AccessKey: getEnv("MINIO_ACCESS_KEY", ""),
			SecretKey: getEnv("MINIO_SECRET_KEY", ""),
			Bucket:    getEnv("MINIO_BUCKET", ""),
			UseSSL:    getEnvBool("MINIO_USE_SSL", false),
		},
		OpenAI: OpenAIConfig{
			APIKey:          getEnv("OPENAI_API_KEY", ""),
			BaseURL:         getEnv("OPENAI_BASE_URL", ""),
			VisionModel:     getEnv("OPENAI_VISION_MODEL", "gpt-4o-mini"),
			TTSModel:        getEnv("OPENAI_TTS_MODEL", "gpt-4o-mini-tts"),
			TTSInstructions: getEnv("OPENAI_TTS_INSTRUCTIONS", "Speak in a cheerful and positive tone."),
		},
		TTS: TTSConfig{
			Voices:       getEnvList("TTS_VOICES", defaultVoices),
			DefaultVoice: getEnv("TTS_DEFAULT_VOICE", "nova"),
		},
		Analyze: AnalyzeConfig{
			MaxConcurrency: getEnvInt("ANALYZE_MAX_CONCURRENCY", 0),
			SweepEnabled:   getEnvBool("SWEEP_ENABLED", false),
			SweepMaxAge:    time.Duration(getEnvInt("SWEEP_MAX_AGE_SEC", 600)) * time.Second,
		},
		Upload: UploadConfig{
			MaxSizeMB: getEnvInt("UPLOAD_MAX_MB", 25),
		},
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err == nil {
			return i
		}
	}
	return def
}

func getEnvList(key string, def []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}
