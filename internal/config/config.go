package config

import (
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	MongoConfig   MongoConfig   `yaml:"mongo"`
	RedisConfig   RedisConfig   `yaml:"redis"`
	SessionConfig SessionConfig `yaml:"session"`
	ServerConfig  ServerConfig  `yaml:"server"`
}

type MongoConfig struct {
	URI     string        `yaml:"uri" env:"MONGODB_URI" env-default:"mongodb://localhost:27017"`
	DBName  string        `yaml:"dbname" env:"MONGODB_DBNAME" env-default:"taskmanager"`
	Timeout time.Duration `yaml:"timeout" env-default:"10s"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr" env:"REDIS_ADDR" env-default:"localhost:6379"`
	Password string `yaml:"password" env:"REDIS_PASSWORD" env-default:""`
	DB       int    `yaml:"db" env:"REDIS_DB" env-default:"0"`
}

type SessionConfig struct {
	CookieName string        `yaml:"cookie_name" env-default:"sessionId"`
	TTL        time.Duration `yaml:"ttl" env:"SESSION_TTL" env-default:"1h"`
	Secure     bool          `yaml:"secure" env:"SESSION_SECURE" env-default:"false"`
}

type ServerConfig struct {
	Port      string `yaml:"port" env:"PORT" env-default:"3000"`
	StaticDir string `yaml:"static_dir" env-default:"public"`
}

func MustLoad() Config {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config.yaml"
	}
	var config Config
	err := cleanenv.ReadConfig(configPath, &config)
	if err != nil {
		// fall back to env-only config when the file is absent
		if err = cleanenv.ReadEnv(&config); err != nil {
			log.Fatalf("config not read: %v", err)
		}
	}
	return config
}
