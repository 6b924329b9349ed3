package config

import (
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env        string            `yaml:"env" env-default:"local"`
	GRPC       GRPCConfig        `yaml:"grpc"`
	Kafka      KafkaStorage      `yaml:"kafka"`
	Clickhouse ClickhouseStorage `yaml:"clickhouse"`
}

type GRPCConfig struct {
	Port    int           `yaml:"port" env-default:"50052"`
	Timeout time.Duration `yaml:"timeout" env-default:"5s"`
}

type KafkaStorage struct {
	Brokers []string `yaml:"brokers" env-required:"true"`
}

type ClickhouseStorage struct {
	Addr     string `yaml:"addr" env-required:"true"`
	Database string `yaml:"database" env-default:"social_network"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
}

func MustLoad() *Config {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/config.yaml"
	}

	return MustLoadByPath(configPath)
}

func MustLoadByPath(configPath string) *Config {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		panic("config file does not exist: " + configPath)
	}

	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		panic("cannot read config: " + err.Error())
	}

	return &cfg
}
