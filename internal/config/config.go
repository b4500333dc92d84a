package config

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type HTTPServer struct {
	Addr string `yaml:"address" env:"HTTP_ADDRESS" env-default:":8080"`
}

type Database struct {
	Host            string        `yaml:"PG_HOST" env:"PG_HOST" env-default:"localhost"`
	Port            string        `yaml:"PG_PORT" env:"PG_PORT" env-default:"5432"`
	User            string        `yaml:"PG_USER" env:"PG_USER" env-required:"true"`
	Password        string        `yaml:"PG_PASSWORD" env:"PG_PASSWORD" env-required:"true"`
	Name            string        `yaml:"PG_DBNAME" env:"PG_DBNAME" env-required:"true"`
	SSLMode         string        `yaml:"PG_SSLMODE" env:"PG_SSLMODE" env-default:"require"`
	MaxOpenConns    int           `yaml:"MAX_OPEN_CONNS" env:"PG_MAX_OPEN_CONNS" env-default:"25"`
	MaxIdleConns    int           `yaml:"MAX_IDLE_CONNS" env:"PG_MAX_IDLE_CONNS" env-default:"25"`
	ConnMaxLifetime time.Duration `yaml:"CONN_MAX_LIFETIME" env:"PG_CONN_MAX_LIFETIME" env-default:"5m"`
	ConnMaxIdleTime time.Duration `yaml:"CONN_MAX_IDLE_TIME" env:"PG_CONN_MAX_IDLE_TIME" env-default:"5m"`
}

type RedisConnect struct {
	Host     string `yaml:"REDIS_HOST" env:"REDIS_HOST" env-default:"localhost"`
	Port     string `yaml:"REDIS_PORT" env:"REDIS_PORT" env-default:"6379"`
	Username string `yaml:"REDIS_USER" env:"REDIS_USER" env-required:"true"`
	Password string `yaml:"REDIS_PASSWORD" env:"REDIS_PASSWORD" env-required:"true"`
	DB       int    `yaml:"REDIS_DB" env:"REDIS_DB" env-default:"0"`
}

type RateConfig struct {
	MaxAttempts int64         `yaml:"MAX_ATTEMPTS" env:"MAX_ATTEMPTS" env-default:"5"`
	WindowSize  time.Duration `yaml:"WINDOW_SIZE" env:"WINDOW_SIZE" env-default:"15s"`
}

type Security struct {
	JWTKey   string        `yaml:"JWT_KEY" env:"JWT_KEY" env-required:"true"`
	TokenTTL time.Duration `yaml:"TOKEN_TTL" env:"TOKEN_TTL" env-default:"24h"`
}

type Session struct {
	TTL        time.Duration `yaml:"SESSION_TTL" env:"SESSION_TTL" env-default:"336h"`
	CookieName string        `yaml:"SESSION_COOKIE" env:"SESSION_COOKIE" env-default:"session_id"`
}

type CacheConfig struct {
	DefaultTTL time.Duration `yaml:"default_ttl" env:"CACHE_DEFAULT_TTL" env-default:"5m"`
}

type Telegram struct {
	BotToken string        `yaml:"TELEGRAM_BOT_TOKEN" env:"TELEGRAM_BOT_TOKEN" env-default:""`
	ChatID   string        `yaml:"TELEGRAM_CHAT_ID" env:"TELEGRAM_CHAT_ID" env-default:""`
	BaseURL  string        `yaml:"TELEGRAM_BASE_URL" env:"TELEGRAM_BASE_URL" env-default:"https://api.telegram.org"`
	Timeout  time.Duration `yaml:"TELEGRAM_TIMEOUT" env:"TELEGRAM_TIMEOUT" env-default:"20s"`
}

type SendGrid struct {
	APIKey    string `yaml:"SENDGRID_API_KEY" env:"SENDGRID_API_KEY" env-default:""`
	FromEmail string `yaml:"SENDGRID_FROM_EMAIL" env:"SENDGRID_FROM_EMAIL" env-default:"ventas@frozz.co"`
	FromName  string `yaml:"SENDGRID_FROM_NAME" env:"SENDGRID_FROM_NAME" env-default:"Frozz"`
}

type Store struct {
	Name              string        `yaml:"STORE_NAME" env:"STORE_NAME" env-default:"Frozz"`
	Currency          string        `yaml:"STORE_CURRENCY" env:"STORE_CURRENCY" env-default:"COP"`
	LowStockThreshold int           `yaml:"LOW_STOCK_THRESHOLD" env:"LOW_STOCK_THRESHOLD" env-default:"5"`
	QuotationValidity time.Duration `yaml:"QUOTATION_VALIDITY" env:"QUOTATION_VALIDITY" env-default:"24h"`
}

type Media struct {
	Root         string `yaml:"MEDIA_ROOT" env:"MEDIA_ROOT" env-default:"./media"`
	MaxProofSize int64  `yaml:"MAX_PROOF_SIZE" env:"MAX_PROOF_SIZE" env-default:"10485760"`
}

type Tracing struct {
	Enabled  bool   `yaml:"TRACING_ENABLED" env:"TRACING_ENABLED" env-default:"false"`
	Endpoint string `yaml:"OTLP_ENDPOINT" env:"OTEL_EXPORTER_OTLP_ENDPOINT" env-default:"localhost:4318"`
}

type Config struct {
	Env          string `yaml:"env" env:"ENV" env-required:"true"`
	HTTPServer   `yaml:"http_server"`
	Database     Database     `yaml:"database"`
	RedisConnect RedisConnect `yaml:"redis"`
	RateConfig   RateConfig   `yaml:"rateConfig"`
	Security     Security     `yaml:"security"`
	Session      Session      `yaml:"session"`
	Cache        CacheConfig  `yaml:"cache"`
	Telegram     Telegram     `yaml:"telegram"`
	SendGrid     SendGrid     `yaml:"sendgrid"`
	Store        Store        `yaml:"store"`
	Media        Media        `yaml:"media"`
	Tracing      Tracing      `yaml:"tracing"`
}

func MustLoad() *Config {

	var configPath string

	configPath = os.Getenv("CONFIG_PATH")

	if configPath == "" {

		flags := flag.String("config", "", "gets the config flag value")

		flag.Parse()

		configPath = *flags

		if configPath == "" {

			log.Fatal("Config path is not set")

		}

	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		log.Fatalf("config file does not exist: %s", configPath)
	}

	cfg, err := LoadConfigFromPath(configPath)

	if err != nil {

		log.Fatalf("can not read config file: %s", err.Error())
	}

	return cfg

}

// LoadConfigFromPath reads the YAML file and applies environment overrides.
func LoadConfigFromPath(configPath string) (*Config, error) {

	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		return nil, fmt.Errorf("reading config %s: %w", configPath, err)
	}

	return &cfg, nil
}

func (d *Database) GetDSN() string {
	return fmt.Sprintf("postgresql://%s:%s@%s:%s/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode)
}

func (r *RedisConnect) GetDSN() string {
	return fmt.Sprintf("redis://%s:%s@%s:%s", r.Username, r.Password, r.Host, r.Port)
}

// Enabled reports whether both bot credentials are present.
func (t *Telegram) Enabled() bool {
	return t.BotToken != "" && t.ChatID != ""
}
