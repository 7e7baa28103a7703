package config

import "time"

// Storage backends
const (
	BackendMemory   = "memory"
	BackendFile     = "file"
	BackendPostgres = "postgres"
	BackendRedis    = "redis"
)

// Config holds all configuration for the application
type Config struct {
	Environment string          `mapstructure:"environment"`
	Server      ServerConfig    `mapstructure:"server"`
	Logger      LoggerConfig    `mapstructure:"logger"`
	Storage     StorageConfig   `mapstructure:"storage"`
	Database    DatabaseConfig  `mapstructure:"database"`
	Redis       RedisConfig     `mapstructure:"redis"`
	Kafka       KafkaConfig     `mapstructure:"kafka"`
	Cache       CacheConfig     `mapstructure:"cache"`
	Metrics     MetricsConfig   `mapstructure:"metrics"`
	Presence    PresenceConfig  `mapstructure:"presence"`
	Scheduler   SchedulerConfig `mapstructure:"scheduler"`
	Ledger      LedgerConfig    `mapstructure:"ledger"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host              string        `mapstructure:"host" validate:"required"`
	Port              int           `mapstructure:"port" validate:"required|min:1|max:65535"`
	ReadTimeout       time.Duration `mapstructure:"readTimeout"`       // seconds
	WriteTimeout      time.Duration `mapstructure:"writeTimeout"`      // seconds; 0 keeps SSE streams open
	IdleTimeout       time.Duration `mapstructure:"idleTimeout"`       // seconds
	ReadHeaderTimeout time.Duration `mapstructure:"readHeaderTimeout"` // seconds
	ShutdownTimeout   time.Duration `mapstructure:"shutdownTimeout"`   // seconds
	CORSOrigins       []string      `mapstructure:"corsOrigins"`
}

// LoggerConfig contains logger settings
type LoggerConfig struct {
	Level  string `mapstructure:"level" validate:"required|in:debug,info,warn,error"`
	Format string `mapstructure:"format" validate:"required|in:json,console"`
}

// StorageConfig selects where ledgers live
type StorageConfig struct {
	Backend     string `mapstructure:"backend" validate:"required|in:memory,file,postgres,redis"`
	FilePath    string `mapstructure:"filePath"`
	Compression string `mapstructure:"compression" validate:"in:none,zstd"`
}

// DatabaseConfig contains database connection settings
type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            string        `mapstructure:"port"`
	Username        string        `mapstructure:"username"`
	Password        string        `mapstructure:"password"`
	Database        string        `mapstructure:"database"`
	SSLMode         string        `mapstructure:"sslMode"`
	MaxOpenConns    int           `mapstructure:"maxOpenConns"`
	MaxIdleConns    int           `mapstructure:"maxIdleConns"`
	ConnMaxLifetime time.Duration `mapstructure:"connMaxLifetime"` // minutes
	ConnMaxIdleTime time.Duration `mapstructure:"connMaxIdleTime"` // minutes
	QueryTimeout    time.Duration `mapstructure:"queryTimeout"`    // seconds
	LogLevel        string        `mapstructure:"logLevel"`
	SlowThreshold   time.Duration `mapstructure:"slowThresholdMs"` // milliseconds
	RetryAttempts   int           `mapstructure:"retryAttempts"`
	RetryDelay      time.Duration `mapstructure:"retryDelay"` // seconds
}

// RedisConfig contains redis connection settings
type RedisConfig struct {
	Addr        string        `mapstructure:"addr"`
	Password    string        `mapstructure:"password"`
	DB          int           `mapstructure:"db"`
	Prefix      string        `mapstructure:"prefix"`
	DialTimeout time.Duration `mapstructure:"dialTimeout"` // seconds
}

// KafkaConfig controls the ledger event relay
type KafkaConfig struct {
	Enabled      bool          `mapstructure:"enabled"`
	Brokers      []string      `mapstructure:"brokers"`
	Topic        string        `mapstructure:"topic"`
	BatchTimeout time.Duration `mapstructure:"batchTimeoutMs"` // milliseconds
	WriteTimeout time.Duration `mapstructure:"writeTimeout"`   // seconds
}

// CacheConfig controls the admin report cache
type CacheConfig struct {
	Enabled bool          `mapstructure:"enabled"`
	SizeMB  int           `mapstructure:"sizeMb"`
	TTL     time.Duration `mapstructure:"ttl"` // seconds
}

// MetricsConfig controls the Prometheus endpoint
type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`
}

// PresenceConfig controls the presence tracker
type PresenceConfig struct {
	PollInterval time.Duration `mapstructure:"pollInterval"` // seconds
}

// SchedulerConfig controls the stale check-in checker
type SchedulerConfig struct {
	Enabled    bool   `mapstructure:"enabled"`
	StaleCheck string `mapstructure:"staleCheck"`
}

// LedgerConfig contains time ledger settings
type LedgerConfig struct {
	Timezone           string        `mapstructure:"timezone" validate:"required"`
	LockTimeout        time.Duration `mapstructure:"lockTimeoutMs"` // milliseconds
	MaxConflictRetries int           `mapstructure:"maxConflictRetries" validate:"min:0"`
	ConflictBackoff    time.Duration `mapstructure:"conflictBackoffMs"` // milliseconds
	QueueSize          int           `mapstructure:"queueSize" validate:"min:1"`
	WorkerIdleTimeout  time.Duration `mapstructure:"workerIdleTimeout"` // seconds
}
