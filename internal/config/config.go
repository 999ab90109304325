package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Database DatabaseConfig `yaml:"database"`
	RabbitMQ RabbitMQConfig `yaml:"rabbitmq"`
	API      APIConfig      `yaml:"api"`
	Sync     SyncConfig     `yaml:"sync"`
	Images   ImagesConfig   `yaml:"images"`
	LogLevel string         `yaml:"log_level"`
}

type RabbitMQConfig struct {
	URL        string `yaml:"url"`
	Exchange   string `yaml:"exchange"`
	RoutingKey string `yaml:"routing_key"`
	QueueName  string `yaml:"queue_name"`
}

type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	DBName   string `yaml:"dbname"`
	SSLMode  string `yaml:"sslmode"`
}

func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode,
	)
}

type APIConfig struct {
	BaseURL   string        `yaml:"base_url"`
	Username  string        `yaml:"username"`
	Password  string        `yaml:"password"`
	TokenFile string        `yaml:"token_file"`
	Timeout   time.Duration `yaml:"timeout"`
}

type SyncConfig struct {
	Interval  time.Duration `yaml:"interval"` // 0 = run once and exit
	BatchSize int           `yaml:"batch_size"`
}

type ImagesConfig struct {
	RootDir      string `yaml:"root_dir"`
	ThumbWidth   int    `yaml:"thumb_width"`
	ThumbHeight  int    `yaml:"thumb_height"`
	MediumWidth  int    `yaml:"medium_width"`
	MediumHeight int    `yaml:"medium_height"`
	Quality      int    `yaml:"quality"`
	LockFile     string `yaml:"lock_file"`
}

func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.setDefaults()

	return &cfg, nil
}

func (c *Config) setDefaults() {
	if c.RabbitMQ.Exchange == "" {
		c.RabbitMQ.Exchange = "altosync"
	}
	if c.RabbitMQ.RoutingKey == "" {
		c.RabbitMQ.RoutingKey = "properties"
	}
	if c.RabbitMQ.QueueName == "" {
		c.RabbitMQ.QueueName = "cms_properties"
	}
	if c.API.Timeout == 0 {
		c.API.Timeout = 30 * time.Second
	}
	if c.API.TokenFile == "" {
		c.API.TokenFile = ".alto_token.json"
	}
	if c.Sync.BatchSize == 0 {
		c.Sync.BatchSize = 50
	}
	if c.Images.RootDir == "" {
		c.Images.RootDir = "images/properties"
	}
	if c.Images.ThumbWidth == 0 {
		c.Images.ThumbWidth = 170
	}
	if c.Images.ThumbHeight == 0 {
		c.Images.ThumbHeight = 110
	}
	if c.Images.MediumWidth == 0 {
		c.Images.MediumWidth = 600
	}
	if c.Images.MediumHeight == 0 {
		c.Images.MediumHeight = 370
	}
	if c.Images.Quality <= 0 || c.Images.Quality > 100 {
		c.Images.Quality = 90
	}
	if c.Images.LockFile == "" {
		c.Images.LockFile = filepath.Join(os.TempDir(), "altosync-resize.lock")
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}
