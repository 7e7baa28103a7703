package database

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validConfig() *Config {
	return &Config{
		Driver:        "postgres",
		Host:          "localhost",
		Port:          5432,
		Username:      "portal",
		Password:      "secret",
		Database:      "employee_portal",
		SSLMode:       "disable",
		MaxOpenConns:  10,
		MaxIdleConns:  5,
		QueryTimeout:  5 * time.Second,
		LogLevel:      "warn",
		RetryAttempts: 3,
		RetryDelay:    time.Second,
	}
}

func TestConfig_Validate(t *testing.T) {
	assert.NoError(t, validConfig().Validate())

	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{name: "driver", mutate: func(c *Config) { c.Driver = "mysql" }},
		{name: "host", mutate: func(c *Config) { c.Host = "" }},
		{name: "port", mutate: func(c *Config) { c.Port = 70000 }},
		{name: "username", mutate: func(c *Config) { c.Username = "" }},
		{name: "database", mutate: func(c *Config) { c.Database = "" }},
		{name: "ssl mode", mutate: func(c *Config) { c.SSLMode = "sometimes" }},
		{name: "max open", mutate: func(c *Config) { c.MaxOpenConns = 0 }},
		{name: "max idle", mutate: func(c *Config) { c.MaxIdleConns = 0 }},
		{name: "query timeout", mutate: func(c *Config) { c.QueryTimeout = 0 }},
		{name: "retry attempts", mutate: func(c *Config) { c.RetryAttempts = 0 }},
		{name: "log level", mutate: func(c *Config) { c.LogLevel = "verbose" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validConfig()
			tt.mutate(c)
			assert.Error(t, c.Validate())
		})
	}
}

func TestConfig_DSN(t *testing.T) {
	assert.Equal(t,
		"host=localhost port=5432 user=portal password=secret dbname=employee_portal sslmode=disable",
		validConfig().DSN())
}

func TestDefaultConfig_ReadsEnvironment(t *testing.T) {
	t.Setenv("EP_DB_HOST", "db.internal")
	t.Setenv("EP_DB_PORT", "6543")
	t.Setenv("EP_DB_QUERY_TIMEOUT_SECONDS", "not-a-number")

	c := DefaultConfig()

	assert.Equal(t, "db.internal", c.Host)
	assert.Equal(t, 6543, c.Port)
	assert.Equal(t, 10*time.Second, c.QueryTimeout)
	assert.Equal(t, "postgres", c.Driver)
}
