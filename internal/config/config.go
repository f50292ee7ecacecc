// Package config предоставляет структуры и функцию для парсинга и загрузки конфига
package config

import (
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Режимы хранилища каталога.
const (
	StorageModeFixture  = "fixture"
	StorageModePostgres = "postgres"
)

// Config общая структура для хранения настроек
type Config struct {
	Env                string   `yaml:"env" env-default:"local"`
	SiteName           string   `yaml:"site_name" env-default:"ProConnect"`
	CORSAllowedOrigins []string `yaml:"cors_allowed_origins"`
	Storage            `yaml:"storage"`
	RedisConnection    `yaml:"redis_connection"`
	HTTPServer         `yaml:"http_server"`
	JWTToken           `yaml:"jwttoken"`
	Rabbit             `yaml:"rabbit"`
}

// Storage структура для выбора и настройки хранилища каталога.
// В режиме fixture каталог читается из JSON-файла, в режиме postgres —
// из базы данных.
type Storage struct {
	Mode             string `yaml:"mode" env-default:"fixture"`
	FixturePath      string `yaml:"fixture_path" env-default:"./db.json"`
	ConnectionString string `yaml:"connection_string"`
}

// HTTPServer структура для настройки сервера
type HTTPServer struct {
	AddressHTTP string        `yaml:"addresshttp" env-default:"0.0.0.0:8080"`
	TimeoutHTTP time.Duration `yaml:"timeouthttp" env-default:"5s"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env-default:"60s"`
}

// RedisConnection структура для настройки подключения к redis
type RedisConnection struct {
	AddressRedis string        `yaml:"addressredis"`
	Password     string        `yaml:"password"`
	User         string        `yaml:"user"`
	DB           int           `yaml:"db"`
	MaxRetries   int           `yaml:"max_retries"`
	DialTimeout  time.Duration `yaml:"dial_timeout"`
	TimeoutRedis time.Duration `yaml:"timeoutredis"`
}

// JWTToken структура для работы с сессионным jwt-токеном
type JWTToken struct {
	JWTSecretKey string        `yaml:"jwt_secret_key"`
	TokenTTL     time.Duration `yaml:"token_ttl" env-default:"24h"`
}

// Rabbit структура для настройки публикации событий. Пустой адрес
// отключает публикацию.
type Rabbit struct {
	AddressRabbit string `yaml:"addressrabbit"`
	Exchange      string `yaml:"exchange" env-default:"proconnect.contacts"`
}

// MustLoad функция для загрузки конфига, путь берётся из CONFIG_PATH
func MustLoad() *Config {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		log.Fatal("CONFIG_PATH is not set")
	}
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		log.Fatalf("file: %s - does not exist", configPath)
	}
	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("cannot read config: %s", err)
	}
	return &cfg
}
