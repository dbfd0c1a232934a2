package config

import (
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type PricingConfig struct {
	Env          string `yaml:"env" env-default:"local"`
	HTTPServer   `yaml:"http_server"`
	PricingDB    `yaml:"pricing_db"`
	LogConfig    `yaml:"log_config"`
	KafkaService `yaml:"kafka-service"`
	Engine       `yaml:"engine"`
}

type HTTPServer struct {
	Host string `yaml:"host" env-default:"0.0.0.0"`
	Port string `yaml:"port" env-default:"8080"`
}

type PricingDB struct {
	Dsn            string `yaml:"dsn" env:"PRICING_DB_DSN"`
	MigrationsPath string `yaml:"migrations_path" env-default:"migrations"`
}

type LogConfig struct {
	LogLevel  string `yaml:"log_level" env-default:"info"`
	LogFormat string `yaml:"log_format" env-default:"json"`
	LogOutput string `yaml:"log_output" env-default:"stdout"`
}

type KafkaService struct {
	Host  string `yaml:"host"`
	Port  string `yaml:"port"`
	Topic string `yaml:"topic" env-default:"rate-events"`
}

type Engine struct {
	HorizonDays           int           `yaml:"horizon_days" env-default:"365"`
	RegenerateEvery       time.Duration `yaml:"regenerate_every" env-default:"24h"`
	PromotionCleanupEvery time.Duration `yaml:"promotion_cleanup_every" env-default:"1h"`
}

func MustLoad() *PricingConfig {
	configPath := os.Getenv("PRICING_CONFIG_PATH")

	if configPath == "" {
		log.Fatalf("PRICING_CONFIG_PATH was not found\n")
	}

	if _, err := os.Stat(configPath); err != nil {
		log.Fatalf("failed to find config file: %v\n", err)
	}

	var cfg PricingConfig
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("failed to read config file: %v", err)
	}

	return &cfg
}
