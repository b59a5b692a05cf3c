package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfig_Validate(t *testing.T) {
	postgres := func() *Config {
		return &Config{
			Driver:       DriverPostgres,
			Host:         "localhost",
			Port:         5432,
			Username:     "pollwin",
			Password:     "secret",
			Database:     "pollwin",
			SSLMode:      "disable",
			MaxOpenConns: 10,
			MaxIdleConns: 5,
		}
	}

	testCases := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{"valid postgres", func(c *Config) {}, false},
		{"valid sqlite", func(c *Config) { *c = Config{Driver: DriverSQLite, Path: ":memory:", MaxOpenConns: 1, MaxIdleConns: 1} }, false},
		{"sqlite without path", func(c *Config) { *c = Config{Driver: DriverSQLite, MaxOpenConns: 1, MaxIdleConns: 1} }, true},
		{"unknown driver", func(c *Config) { c.Driver = "mysql" }, true},
		{"missing host", func(c *Config) { c.Host = "" }, true},
		{"bad port", func(c *Config) { c.Port = 70000 }, true},
		{"bad ssl mode", func(c *Config) { c.SSLMode = "sometimes" }, true},
		{"no connections", func(c *Config) { c.MaxOpenConns = 0 }, true},
		{"bad sql log level", func(c *Config) { c.LogLevel = "trace" }, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c := postgres()
			tc.mutate(c)
			if tc.wantErr {
				assert.Error(t, c.Validate())
			} else {
				assert.NoError(t, c.Validate())
			}
		})
	}
}

func TestConfig_DSN(t *testing.T) {
	c := &Config{Driver: DriverPostgres, Host: "db", Port: 5433, Username: "u", Password: "p", Database: "d", SSLMode: "require"}
	assert.Equal(t, "host=db port=5433 user=u password=p dbname=d sslmode=require", c.DSN())

	s := &Config{Driver: DriverSQLite, Path: "pollwin.db"}
	assert.Equal(t, "pollwin.db", s.DSN())
}

func TestParsePort(t *testing.T) {
	assert.Equal(t, 5432, ParsePort("5432"))
	assert.Equal(t, 0, ParsePort("abc"))
	assert.Equal(t, 0, ParsePort("0"))
	assert.Equal(t, 0, ParsePort("65536"))
}
