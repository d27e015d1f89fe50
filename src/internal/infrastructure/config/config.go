package config

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/carlosallexandre/fc-micro-videos-admin-sub001/src/internal/domain/media"
	"github.com/carlosallexandre/fc-micro-videos-admin-sub001/src/internal/domain/shared"
)

// ErrInvalidConfig 設定不合法
var ErrInvalidConfig = &shared.DomainError{
	Code:    "CONFIG_INVALID",
	Message: "invalid configuration",
}

// ===========================
// Config
// ===========================

// Config 服務設定（YAML 檔案 + 環境變數覆寫）
type Config struct {
	App      AppConfig                  `yaml:"app"`
	Log      LogConfig                  `yaml:"log"`
	Database DatabaseConfig             `yaml:"database"`
	Broker   BrokerConfig               `yaml:"broker"`
	Events   EventsConfig               `yaml:"events"`
	Outbox   OutboxConfig               `yaml:"outbox"`
	Media    map[string]MediaKindConfig `yaml:"media"`
}

type AppConfig struct {
	Name string `yaml:"name"` // 日誌中的 service 欄位
	Env  string `yaml:"env"`
}

type LogConfig struct {
	Mode  string `yaml:"mode"` // development | production
	Level string `yaml:"level"`
}

type DatabaseConfig struct {
	Driver       string `yaml:"driver"` // sqlite | postgres
	DSN          string `yaml:"dsn"`
	MaxOpenConns int    `yaml:"max_open_conns"`
	LogLevel     string `yaml:"log_level"`
}

type BrokerConfig struct {
	Driver        string `yaml:"driver"` // redis | memory
	RedisAddr     string `yaml:"redis_addr"`
	RedisPassword string `yaml:"redis_password"`
	RedisDB       int    `yaml:"redis_db"`
	ChannelPrefix string `yaml:"channel_prefix"`
}

type EventsConfig struct {
	MaxConcurrency int `yaml:"max_concurrency"` // 0 = 不限
}

type OutboxConfig struct {
	PollInterval time.Duration `yaml:"poll_interval"`
	BatchSize    int           `yaml:"batch_size"`
	MaxAttempts  int           `yaml:"max_attempts"`
}

// MediaKindConfig 單一媒體種類的上限與允許的 MIME
//
// MaxSizeMiB 為十進位字串（例如 "0.5"、"51200"），避免浮點誤差。
type MediaKindConfig struct {
	MaxSizeMiB string   `yaml:"max_size_mib"`
	MimeTypes  []string `yaml:"mime_types"`
}

// Default 內建預設值
func Default() *Config {
	cfg := &Config{
		App:      AppConfig{Name: "catalog", Env: "development"},
		Log:      LogConfig{Mode: "development", Level: "info"},
		Database: DatabaseConfig{Driver: "sqlite", DSN: "file:catalog.db?cache=shared", LogLevel: "warn"},
		Broker:   BrokerConfig{Driver: "memory", RedisAddr: "localhost:6379", ChannelPrefix: "catalog."},
		Events:   EventsConfig{MaxConcurrency: 0},
		Outbox:   OutboxConfig{PollInterval: 5 * time.Second, BatchSize: 100, MaxAttempts: 5},
		Media:    make(map[string]MediaKindConfig),
	}

	mib := decimal.NewFromInt(media.MiB)
	for kind, p := range media.DefaultPolicies() {
		cfg.Media[string(kind)] = MediaKindConfig{
			MaxSizeMiB: decimal.NewFromInt(p.MaxSize()).Div(mib).String(),
			MimeTypes:  p.AllowedMimeTypes(),
		}
	}
	return cfg
}

// Load 讀取設定：預設值 → YAML 檔案（path 為空時略過）→ 環境變數，最後驗證
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(raw, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	c.App.Name = envString("CATALOG_APP_NAME", c.App.Name)
	c.App.Env = envString("CATALOG_ENV", c.App.Env)
	c.Log.Mode = envString("CATALOG_LOG_MODE", c.Log.Mode)
	c.Log.Level = envString("CATALOG_LOG_LEVEL", c.Log.Level)
	c.Database.Driver = envString("CATALOG_DB_DRIVER", c.Database.Driver)
	c.Database.DSN = envString("CATALOG_DB_DSN", c.Database.DSN)
	c.Database.MaxOpenConns = envInt("CATALOG_DB_MAX_OPEN_CONNS", c.Database.MaxOpenConns)
	c.Broker.Driver = envString("CATALOG_BROKER_DRIVER", c.Broker.Driver)
	c.Broker.RedisAddr = envString("CATALOG_REDIS_ADDR", c.Broker.RedisAddr)
	c.Broker.RedisPassword = envString("CATALOG_REDIS_PASSWORD", c.Broker.RedisPassword)
	c.Broker.RedisDB = envInt("CATALOG_REDIS_DB", c.Broker.RedisDB)
	c.Broker.ChannelPrefix = envString("CATALOG_CHANNEL_PREFIX", c.Broker.ChannelPrefix)
	c.Events.MaxConcurrency = envInt("CATALOG_EVENTS_MAX_CONCURRENCY", c.Events.MaxConcurrency)
	c.Outbox.PollInterval = envDuration("CATALOG_OUTBOX_POLL_INTERVAL", c.Outbox.PollInterval)
	c.Outbox.BatchSize = envInt("CATALOG_OUTBOX_BATCH_SIZE", c.Outbox.BatchSize)
	c.Outbox.MaxAttempts = envInt("CATALOG_OUTBOX_MAX_ATTEMPTS", c.Outbox.MaxAttempts)
}

// Validate 檢查所有欄位，一次返回所有問題
func (c *Config) Validate() error {
	var problems []string

	switch c.Database.Driver {
	case "sqlite", "postgres":
	default:
		problems = append(problems, fmt.Sprintf("database.driver must be sqlite or postgres, got %q", c.Database.Driver))
	}
	if c.Database.Driver == "postgres" && strings.TrimSpace(c.Database.DSN) == "" {
		problems = append(problems, "database.dsn is required for postgres")
	}

	switch c.Broker.Driver {
	case "memory":
	case "redis":
		if strings.TrimSpace(c.Broker.RedisAddr) == "" {
			problems = append(problems, "broker.redis_addr is required for redis")
		}
	default:
		problems = append(problems, fmt.Sprintf("broker.driver must be redis or memory, got %q", c.Broker.Driver))
	}

	if c.Events.MaxConcurrency < 0 {
		problems = append(problems, "events.max_concurrency must not be negative")
	}
	if c.Outbox.PollInterval <= 0 {
		problems = append(problems, "outbox.poll_interval must be positive")
	}
	if c.Outbox.BatchSize <= 0 {
		problems = append(problems, "outbox.batch_size must be positive")
	}
	if c.Outbox.MaxAttempts <= 0 {
		problems = append(problems, "outbox.max_attempts must be positive")
	}

	if _, err := c.MediaPolicies(); err != nil {
		problems = append(problems, err.Error())
	}

	if len(problems) > 0 {
		return ErrInvalidConfig.WithContext("problems", problems)
	}
	return nil
}

// MediaPolicies 將媒體設定轉成策略，未設定的種類沿用預設值
func (c *Config) MediaPolicies() (map[media.Kind]media.Policy, error) {
	policies := media.DefaultPolicies()

	names := make([]string, 0, len(c.Media))
	for name := range c.Media {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		kind := media.Kind(name)
		if !kind.Valid() {
			return nil, fmt.Errorf("media.%s: unknown media kind", name)
		}

		mc := c.Media[name]
		base := policies[kind]

		maxSize := base.MaxSize()
		if strings.TrimSpace(mc.MaxSizeMiB) != "" {
			size, err := mibToBytes(mc.MaxSizeMiB)
			if err != nil {
				return nil, fmt.Errorf("media.%s.max_size_mib: %w", name, err)
			}
			maxSize = size
		}

		mimes := base.AllowedMimeTypes()
		if len(mc.MimeTypes) > 0 {
			mimes = mc.MimeTypes
		}

		p, err := media.NewPolicy(kind, maxSize, mimes)
		if err != nil {
			return nil, fmt.Errorf("media.%s: %w", name, err)
		}
		policies[kind] = p
	}
	return policies, nil
}

// mibToBytes 十進位 MiB 字串轉位元組（無條件捨去）
func mibToBytes(value string) (int64, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(value))
	if err != nil {
		return 0, fmt.Errorf("invalid decimal %q", value)
	}
	bytes := d.Mul(decimal.NewFromInt(media.MiB)).Floor()
	if !bytes.IsPositive() {
		return 0, fmt.Errorf("must be positive, got %q", value)
	}
	return bytes.IntPart(), nil
}
