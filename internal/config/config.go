package config

import (
	"errors"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds the application configuration.
type Config struct {
	App struct {
		Port string `mapstructure:"port"`
		Env  string `mapstructure:"env"`
	} `mapstructure:"app"`
	Server struct {
		ReadTimeout     int `mapstructure:"readTimeout"`
		WriteTimeout    int `mapstructure:"writeTimeout"`
		ShutdownTimeout int `mapstructure:"shutdownTimeout"`
	} `mapstructure:"server"`
	DataService struct {
		BaseURL string `mapstructure:"baseUrl"`
		Timeout int    `mapstructure:"timeout"`
	} `mapstructure:"dataService"`
	Redis struct {
		Addr     string `mapstructure:"addr"`
		Password string `mapstructure:"password"`
		DB       int    `mapstructure:"db"`
	} `mapstructure:"redis"`
	Kafka struct {
		Enabled bool     `mapstructure:"enabled"`
		Brokers []string `mapstructure:"brokers"`
	} `mapstructure:"kafka"`
	Auth struct {
		JWTSecret string `mapstructure:"jwtSecret"`
		TokenTTL  int    `mapstructure:"tokenTtl"` // minutes
	} `mapstructure:"auth"`
}

// LoadConfig loads the configuration from config.yml and the environment.
// Environment variables override file values.
func LoadConfig(path string) (*Config, error) {
	if os.Getenv("APP_ENV") != "production" {
		// Missing .env is fine for local runs; the file only supplies secrets.
		_ = godotenv.Load(path)
	}

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")

	viper.SetDefault("app.port", "8080")
	viper.SetDefault("app.env", "development")
	viper.SetDefault("server.readTimeout", 10)
	viper.SetDefault("server.writeTimeout", 10)
	viper.SetDefault("server.shutdownTimeout", 10)
	viper.SetDefault("dataService.baseUrl", "http://localhost:3001")
	viper.SetDefault("dataService.timeout", 10)
	viper.SetDefault("redis.addr", "localhost:6379")
	viper.SetDefault("redis.db", 0)
	viper.SetDefault("kafka.enabled", false)
	viper.SetDefault("auth.tokenTtl", 60)

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		// Defaults and environment variables are enough to run without a file.
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}
