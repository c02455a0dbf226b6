package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Storage backends selectable with STORAGE.
const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
)

type Config struct {
	HTTPPort               string
	Storage                string
	DBHost                 string
	DBPort                 string
	DBUser                 string
	DBPassword             string
	DBName                 string
	DBSslMode              string
	KafkaHost              string
	KafkaOrderChangedTopic string
	SeedPath               string
	BacklogReportSchedule  string
}

// LoadConfig reads the configuration from the environment. Values from envFile
// are loaded first when the file exists; variables already set win.
func LoadConfig(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("loading %s: %w", envFile, err)
		}
	}

	cfg := Config{
		HTTPPort:               getEnv("HTTP_PORT", "8080"),
		Storage:                strings.ToLower(getEnv("STORAGE", StorageMemory)),
		DBHost:                 getEnv("DB_HOST", ""),
		DBPort:                 getEnv("DB_PORT", "5432"),
		DBUser:                 getEnv("DB_USER", ""),
		DBPassword:             getEnv("DB_PASSWORD", ""),
		DBName:                 getEnv("DB_NAME", ""),
		DBSslMode:              getEnv("DB_SSLMODE", "disable"),
		KafkaHost:              getEnv("KAFKA_HOST", ""),
		KafkaOrderChangedTopic: getEnv("KAFKA_ORDER_CHANGED_TOPIC", "order.changed"),
		SeedPath:               getEnv("SEED_PATH", ""),
		BacklogReportSchedule:  getEnv("BACKLOG_REPORT_SCHEDULE", "0 * * * * *"),
	}
	return cfg, cfg.Validate()
}

// Validate checks that the selected storage has what it needs.
func (c Config) Validate() error {
	switch c.Storage {
	case StorageMemory:
		return nil
	case StoragePostgres:
		if c.DBHost == "" || c.DBName == "" {
			return errors.New("STORAGE=postgres requires DB_HOST and DB_NAME")
		}
		return nil
	default:
		return fmt.Errorf("unknown STORAGE %q, expected %s or %s", c.Storage, StorageMemory, StoragePostgres)
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}
