package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Full(t *testing.T) {
	path := writeConfig(t, `
[server]
http_port = 8083
read_timeout = 10

[database]
host = "db"
port = 5433
user = "smc"
password = "secret"
dbname = "stocks"
sslmode = "require"
max_open_conns = 10
max_idle_conns = 2

[logs]
file = ""
level = "debug"

[metrics]
enabled = true
path = "/prom"
service_name = "stocks"

[offer_service]
url = "http://offers:8080"
timeout = 3

[generation]
max_stocks_per_request = 500
max_interval_days = 90
default_department_code = "974"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8083, cfg.Server.HTTPPort)
	assert.Equal(t, 10, cfg.Server.ReadTimeout)
	assert.Equal(t, 15, cfg.Server.WriteTimeout)
	assert.Equal(t, "host=db port=5433 user=smc password=secret dbname=stocks sslmode=require", cfg.Database.DSN())
	assert.Equal(t, "debug", cfg.Logs.Level)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, "/prom", cfg.Metrics.Path)
	assert.Equal(t, "http://offers:8080", cfg.OfferService.URL)
	assert.Equal(t, 3, cfg.OfferService.Timeout)
	assert.Equal(t, 500, cfg.Generation.MaxStocksPerRequest)
	assert.Equal(t, 90, cfg.Generation.MaxIntervalDays)
	assert.Equal(t, "974", cfg.Generation.DefaultDepartmentCode)
}

func TestLoad_Defaults(t *testing.T) {
	path := writeConfig(t, `
[database]
host = "localhost"
dbname = "stocks"

[offer_service]
url = "http://localhost:8081"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.Equal(t, "info", cfg.Logs.Level)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.Equal(t, 5, cfg.OfferService.Timeout)
	assert.Equal(t, 10000, cfg.Generation.MaxStocksPerRequest)
	assert.Equal(t, 366, cfg.Generation.MaxIntervalDays)
	assert.Equal(t, 50000, cfg.Generation.MaxStocksPerOffer)
	assert.Equal(t, "75", cfg.Generation.DefaultDepartmentCode)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name: "missing database host",
			content: `
[database]
dbname = "stocks"
[offer_service]
url = "http://localhost:8081"
`,
		},
		{
			name: "unknown log level",
			content: `
[database]
host = "localhost"
dbname = "stocks"
[logs]
level = "verbose"
[offer_service]
url = "http://localhost:8081"
`,
		},
		{
			name: "missing offer service url",
			content: `
[database]
host = "localhost"
dbname = "stocks"
`,
		},
		{
			name: "offer cap below request cap",
			content: `
[database]
host = "localhost"
dbname = "stocks"
[offer_service]
url = "http://localhost:8081"
[generation]
max_stocks_per_request = 1000
max_stocks_per_offer = 100
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, "[server\nhttp_port = "))
	assert.Error(t, err)
}
