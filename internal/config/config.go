package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server  ServerConfig
	Backend BackendConfig
	Upload  UploadConfig
	Poll    PollConfig
	Notify  NotifyConfig
	Logging LoggingConfig
}

type ServerConfig struct {
	Port            string
	Host            string
	ShutdownTimeout time.Duration
}

type BackendConfig struct {
	BaseURL        string
	RequestTimeout time.Duration
}

type UploadConfig struct {
	MaxFileSize     int64
	DebtorsPageSize int
	SearchDebounce  time.Duration
}

type PollConfig struct {
	StatusInterval  time.Duration
	VopInterval     time.Duration
	VopMaxPolls     int
	BillingInterval time.Duration
}

type NotifyConfig struct {
	ChannelBufferSize int
	WorkerCount       int
	MaxRetries        int
}

type LoggingConfig struct {
	Level string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using default values")
	}

	return &Config{
		Server: ServerConfig{
			Port:            getEnv("SERVER_PORT", "8080"),
			Host:            getEnv("SERVER_HOST", "0.0.0.0"),
			ShutdownTimeout: getDurationEnv("SHUTDOWN_TIMEOUT", 30*time.Second),
		},
		Backend: BackendConfig{
			BaseURL:        getEnv("BACKEND_BASE_URL", "http://localhost:9000"),
			RequestTimeout: getDurationEnv("BACKEND_REQUEST_TIMEOUT", 60*time.Second),
		},
		Upload: UploadConfig{
			MaxFileSize:     getInt64Env("UPLOAD_MAX_FILE_SIZE", 50*1024*1024),
			DebtorsPageSize: getIntEnv("DEBTORS_PAGE_SIZE", 100),
			SearchDebounce:  getDurationEnv("SEARCH_DEBOUNCE", 300*time.Millisecond),
		},
		Poll: PollConfig{
			StatusInterval:  getDurationEnv("STATUS_POLL_INTERVAL", 2*time.Second),
			VopInterval:     getDurationEnv("VOP_POLL_INTERVAL", 5*time.Second),
			VopMaxPolls:     getIntEnv("VOP_MAX_POLLS", 24),
			BillingInterval: getDurationEnv("BILLING_POLL_INTERVAL", 5*time.Second),
		},
		Notify: NotifyConfig{
			ChannelBufferSize: getIntEnv("NOTIFY_CHANNEL_BUFFER_SIZE", 1000),
			WorkerCount:       getIntEnv("NOTIFY_WORKER_COUNT", 4),
			MaxRetries:        getIntEnv("NOTIFY_MAX_RETRIES", 5),
		},
		Logging: LoggingConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getIntEnv(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Invalid value for %s: %s, using default: %d", key, valueStr, defaultValue)
		return defaultValue
	}

	return value
}

func getInt64Env(key string, defaultValue int64) int64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseInt(valueStr, 10, 64)
	if err != nil {
		log.Printf("Invalid value for %s: %s, using default: %d", key, valueStr, defaultValue)
		return defaultValue
	}

	return value
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := time.ParseDuration(valueStr)
	if err != nil {
		log.Printf("Invalid duration for %s: %s, using default: %s", key, valueStr, defaultValue)
		return defaultValue
	}

	return value
}
