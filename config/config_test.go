package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func validConfig() Config {
	return Config{
		Server: ServerConfig{Host: "0.0.0.0", Port: 8080, ShutdownTimeout: 5 * time.Second},
		HTTP:   HTTPConfig{RequestTimeout: 3 * time.Second},
		Auth:   AuthConfig{Issuer: "https://issuer.example.com", ClientID: "dashboard", EmailClaim: "email"},
		Postgres: PostgresConfig{
			Host: "localhost", Port: 5432,
			User: "postgres", Password: "postgres", DBName: "dashboard_directory_db",
		},
	}
}

func TestConfigValidate(t *testing.T) {
	require.NoError(t, validConfig().Validate())

	noIssuer := validConfig()
	noIssuer.Auth.Issuer = ""
	require.Error(t, noIssuer.Validate())

	noClient := validConfig()
	noClient.Auth.ClientID = ""
	require.Error(t, noClient.Validate())

	noClaim := validConfig()
	noClaim.Auth.EmailClaim = ""
	require.Error(t, noClaim.Validate())

	noPort := validConfig()
	noPort.Server.Port = 0
	require.Error(t, noPort.Validate())

	noDB := validConfig()
	noDB.Postgres.DBName = ""
	require.Error(t, noDB.Validate())
}

func TestServerAddr(t *testing.T) {
	cfg := validConfig()
	require.Equal(t, "0.0.0.0:8080", cfg.ServerAddr())
}

func TestPostgresDSN(t *testing.T) {
	cfg := validConfig()
	cfg.Postgres.SSLMode = "disable"
	require.Equal(t,
		"host=localhost port=5432 user=postgres password=postgres dbname=dashboard_directory_db sslmode=disable",
		cfg.Postgres.DSN(),
	)
}
