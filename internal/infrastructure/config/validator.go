package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/gookit/validate"
	"github.com/robfig/cron/v3"
)

// Validate checks the struct rules of every section and the settings that depend on each other
func (c *Config) Validate() error {
	sections := []struct {
		name  string
		value any
	}{
		{"server", &c.Server},
		{"logger", &c.Logger},
		{"storage", &c.Storage},
		{"ledger", &c.Ledger},
	}
	for _, section := range sections {
		v := validate.Struct(section.value)
		if !v.Validate() {
			return fmt.Errorf("invalid %s config: %s", section.name, v.Errors.One())
		}
	}

	switch c.Storage.Backend {
	case BackendFile:
		if c.Storage.FilePath == "" {
			return errors.New("invalid storage config: filePath is required for the file backend")
		}
	case BackendPostgres:
		if c.Database.Host == "" || c.Database.Database == "" {
			return errors.New("invalid database config: host and database are required for the postgres backend")
		}
	case BackendRedis:
		if c.Redis.Addr == "" {
			return errors.New("invalid redis config: addr is required for the redis backend")
		}
	}

	if c.Kafka.Enabled && (len(c.Kafka.Brokers) == 0 || c.Kafka.Topic == "") {
		return errors.New("invalid kafka config: brokers and topic are required when enabled")
	}
	if c.Cache.Enabled && (c.Cache.SizeMB <= 0 || c.Cache.TTL <= 0) {
		return errors.New("invalid cache config: sizeMb and ttl must be positive when enabled")
	}
	if c.Presence.PollInterval < time.Second {
		return errors.New("invalid presence config: pollInterval must be at least one second")
	}
	if c.Scheduler.Enabled {
		if _, err := cron.ParseStandard(c.Scheduler.StaleCheck); err != nil {
			return fmt.Errorf("invalid scheduler config: %w", err)
		}
	}
	if _, err := time.LoadLocation(c.Ledger.Timezone); err != nil {
		return fmt.Errorf("invalid ledger config: %w", err)
	}
	return nil
}
