package config

import (
	"fmt"
	"os"

	"github.com/redis/go-redis/v9"
	"gopkg.in/yaml.v3"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"storefront/models"
)

type DatabaseConfig struct {
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	Host     string `yaml:"host"`
	Port     string `yaml:"port"`
	Database string `yaml:"database"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	Database int    `yaml:"database"`
}

type ServerConfig struct {
	Addr string `yaml:"addr"`
	// SiteURL is the public base URL, used for payment redirect targets and
	// absolute image URLs.
	SiteURL    string `yaml:"siteURL"`
	UploadsDir string `yaml:"uploadsDir"`
}

type AuthConfig struct {
	Secret string `yaml:"secret"`
}

type MercadoPagoConfig struct {
	BaseURL     string `yaml:"baseURL"`
	AccessToken string `yaml:"accessToken"`
}

type AMQPConfig struct {
	URL      string `yaml:"url"`
	Exchange string `yaml:"exchange"`
}

type Config struct {
	Database    DatabaseConfig    `yaml:"database"`
	Redis       RedisConfig       `yaml:"redis"`
	Server      ServerConfig      `yaml:"server"`
	Auth        AuthConfig        `yaml:"auth"`
	MercadoPago MercadoPagoConfig `yaml:"mercadopago"`
	AMQP        AMQPConfig        `yaml:"amqp"`
}

func LoadConfig(filename string) (Config, error) {
	var config Config
	file, err := os.Open(filename)
	if err != nil {
		return config, err
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	if err := decoder.Decode(&config); err != nil {
		return config, err
	}

	if config.Server.Addr == "" {
		config.Server.Addr = ":3000"
	}
	if config.Server.SiteURL == "" {
		config.Server.SiteURL = "http://localhost:3000"
	}
	if config.Server.UploadsDir == "" {
		config.Server.UploadsDir = "./uploads"
	}
	if config.MercadoPago.BaseURL == "" {
		config.MercadoPago.BaseURL = "https://api.mercadopago.com"
	}

	return config, nil
}

func SetupMySQLConnection(cfg DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		cfg.Username,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.Database,
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, err
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.Order{},
		&models.OrderItem{},
	)
	if err != nil {
		return nil, err
	}

	return db, nil
}

func SetupRedisConnection(cfg RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.Database,
	})
}
