package config

import (
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config is the root configuration of the ledger processes
type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Log        LogConfig        `mapstructure:"log"`
	MySQL      MySQLConfig      `mapstructure:"mysql"`
	Tracing    TracingConfig    `mapstructure:"tracing"`
	Kafka      KafkaConfig      `mapstructure:"kafka"`
	Bus        BusConfig        `mapstructure:"bus"`
	Relay      RelayConfig      `mapstructure:"relay"`
	Projection ProjectionConfig `mapstructure:"projection"`
	Integrity  IntegrityConfig  `mapstructure:"integrity"`
	Archive    ArchiveConfig    `mapstructure:"archive"`
	Ledger     LedgerConfig     `mapstructure:"ledger"`
}

// ServerListen ...
type ServerListen struct {
	Host string `mapstructure:"host"`
	Port uint16 `mapstructure:"port"`
}

// String for connecting
func (s ServerListen) String() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// ListenString for listening on all interfaces
func (s ServerListen) ListenString() string {
	return fmt.Sprintf(":%d", s.Port)
}

// ServerConfig ...
type ServerConfig struct {
	GRPC ServerListen `mapstructure:"grpc"`
	HTTP ServerListen `mapstructure:"http"`
}

// LogConfig ...
type LogConfig struct {
	Level string `mapstructure:"level"`

	// Development enables console encoding and stack traces on warnings
	Development bool `mapstructure:"development"`
}

// TracingConfig for the OTLP HTTP exporter, disabled when endpoint is empty
type TracingConfig struct {
	Enabled     bool    `mapstructure:"enabled"`
	Endpoint    string  `mapstructure:"endpoint"`
	ServiceName string  `mapstructure:"service_name"`
	Environment string  `mapstructure:"environment"`
	SampleRatio float64 `mapstructure:"sample_ratio"`
}

// KafkaConfig ...
type KafkaConfig struct {
	Brokers      []string      `mapstructure:"brokers"`
	GroupID      string        `mapstructure:"group_id"`
	TopicPrefix  string        `mapstructure:"topic_prefix"`
	BatchTimeout time.Duration `mapstructure:"batch_timeout"`
	MinBytes     int           `mapstructure:"min_bytes"`
	MaxBytes     int           `mapstructure:"max_bytes"`
}

// BusKind ...
type BusKind string

const (
	// BusKindKafka ...
	BusKindKafka BusKind = "kafka"

	// BusKindMemory runs the relay and the projection engine in one process.
	// Not crash safe: outbox entries are marked published once queued in memory, so a crash
	// drops the queued messages. An aggregate whose last events were dropped stays behind in
	// the read models until its next event triggers backfill or a rebuild is run.
	BusKindMemory BusKind = "memory"
)

// BusConfig ...
type BusConfig struct {
	Kind       BusKind `mapstructure:"kind"`
	Partitions int     `mapstructure:"partitions"`
	BufferSize int     `mapstructure:"buffer_size"`
}

// RelayConfig ...
type RelayConfig struct {
	Partitions     uint32        `mapstructure:"partitions"`
	BatchSize      uint64        `mapstructure:"batch_size"`
	PollInterval   time.Duration `mapstructure:"poll_interval"`
	PublishTimeout time.Duration `mapstructure:"publish_timeout"`

	InitialBackoff time.Duration `mapstructure:"initial_backoff"`
	MaxBackoff     time.Duration `mapstructure:"max_backoff"`
}

// ProjectionConfig ...
type ProjectionConfig struct {
	CacheSizeBytes int           `mapstructure:"cache_size_bytes"`
	CacheExpire    time.Duration `mapstructure:"cache_expire"`
	InitialBackoff time.Duration `mapstructure:"initial_backoff"`
	MaxBackoff     time.Duration `mapstructure:"max_backoff"`
	SettleLag      time.Duration `mapstructure:"settle_lag"`
}

// IntegrityConfig ...
type IntegrityConfig struct {
	// Key is an optional 32 bytes hex key for keyed hashing of the event chain
	Key string `mapstructure:"key"`
}

// KeyBytes decodes the configured key, nil when no key is configured
func (c IntegrityConfig) KeyBytes() ([]byte, error) {
	if c.Key == "" {
		return nil, nil
	}
	key, err := hex.DecodeString(c.Key)
	if err != nil {
		return nil, fmt.Errorf("integrity key: %w", err)
	}
	if len(key) != 32 {
		return nil, fmt.Errorf("integrity key: must be 32 bytes, got %d", len(key))
	}
	return key, nil
}

// ArchiveConfig ...
type ArchiveConfig struct {
	Bucket    string        `mapstructure:"bucket"`
	Prefix    string        `mapstructure:"prefix"`
	BatchSize uint64        `mapstructure:"batch_size"`
	Interval  time.Duration `mapstructure:"interval"`
	SettleLag time.Duration `mapstructure:"settle_lag"`
}

// LedgerConfig ...
type LedgerConfig struct {
	// MaxRetries bounds the reload and retry loop of a command on version conflicts
	MaxRetries int `mapstructure:"max_retries"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.grpc.port", 10080)
	v.SetDefault("server.http.port", 10088)
	v.SetDefault("log.level", "info")

	v.SetDefault("tracing.service_name", "finledger")
	v.SetDefault("tracing.environment", "local")
	v.SetDefault("tracing.sample_ratio", 1.0)

	v.SetDefault("kafka.group_id", "finledger-projection")
	v.SetDefault("kafka.topic_prefix", "finance")
	v.SetDefault("kafka.batch_timeout", 10*time.Millisecond)
	v.SetDefault("kafka.min_bytes", 1)
	v.SetDefault("kafka.max_bytes", 10_000_000)

	v.SetDefault("bus.kind", string(BusKindKafka))
	v.SetDefault("bus.partitions", 8)
	v.SetDefault("bus.buffer_size", 1024)

	v.SetDefault("relay.partitions", 4)
	v.SetDefault("relay.batch_size", 100)
	v.SetDefault("relay.poll_interval", 200*time.Millisecond)
	v.SetDefault("relay.publish_timeout", 5*time.Second)
	v.SetDefault("relay.initial_backoff", 100*time.Millisecond)
	v.SetDefault("relay.max_backoff", 30*time.Second)

	v.SetDefault("projection.cache_size_bytes", 16*1024*1024)
	v.SetDefault("projection.cache_expire", 10*time.Minute)
	v.SetDefault("projection.initial_backoff", 100*time.Millisecond)
	v.SetDefault("projection.max_backoff", 30*time.Second)
	v.SetDefault("projection.settle_lag", 2*time.Minute)

	v.SetDefault("archive.prefix", "finledger")
	v.SetDefault("archive.batch_size", 1000)
	v.SetDefault("archive.interval", time.Minute)
	v.SetDefault("archive.settle_lag", 2*time.Minute)

	v.SetDefault("ledger.max_retries", 3)
}

func loadConfigFile(dir string, name string) Config {
	v := viper.New()
	v.SetConfigName(name)
	v.SetConfigType("yml")
	v.AddConfigPath(dir)

	v.SetEnvPrefix("FINLEDGER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	err := v.ReadInConfig()
	if err != nil {
		panic(err)
	}

	var conf Config
	err = v.Unmarshal(&conf)
	if err != nil {
		panic(err)
	}
	return conf
}

// Load config from config.yml in the working directory
func Load() Config {
	return loadConfigFile(".", "config")
}

// LoadTestConfig loads config.test.yml from the root of the module
func LoadTestConfig(rootDir string) Config {
	return loadConfigFile(rootDir, "config.test")
}

// NewLogger ...
func NewLogger(conf LogConfig) *zap.Logger {
	level := zap.NewAtomicLevel()
	if err := level.UnmarshalText([]byte(conf.Level)); err != nil {
		panic(err)
	}

	var zapConf zap.Config
	if conf.Development {
		zapConf = zap.NewDevelopmentConfig()
	} else {
		zapConf = zap.NewProductionConfig()
		zapConf.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	}
	zapConf.Level = level

	logger, err := zapConf.Build()
	if err != nil {
		panic(err)
	}
	return logger
}
