package warden

import (
	"context"
	"os"

	"github.com/xy-planning-network/waymark"
	"github.com/xy-planning-network/waymark/i18n"
	"github.com/xy-planning-network/waymark/logger"
	"github.com/xy-planning-network/waymark/prefs"
	"github.com/xy-planning-network/waymark/settings"
)

const (
	// Configuration file defaults
	configFileEnvVar  = "CONFIG_FILE"
	defaultConfigFile = "waymark.yml"

	// Environment defaults
	environmentEnvVar = "ENVIRONMENT"

	// Locale defaults
	localeEnvVar  = "LOCALE"
	defaultLocale = "en"

	// Log defaults
	logLevelEnvVar = "LOG_LEVEL"

	// Database defaults
	dbHostEnvVar     = "DATABASE_HOST"
	defaultDBHost    = "localhost"
	dbNameEnvVar     = "DATABASE_NAME"
	dbPassEnvVar     = "DATABASE_PASSWORD"
	dbPortEnvVar     = "DATABASE_PORT"
	defaultDBPort    = "5432"
	dbSSLModeEnvVar  = "DATABASE_SSLMODE"
	defaultDBSSLMode = "prefer"
	dbURLEnvVar      = "DATABASE_URL"
	dbUserEnvVar     = "DATABASE_USER"

	// Session defaults
	SessionAuthKeyEnvVar    = "SESSION_AUTH_KEY"
	SessionEncryptKeyEnvVar = "SESSION_ENCRYPTION_KEY"

	// Test defaults
	dbTestHostEnvVar       = "DATABASE_TEST_HOST"
	defaultDBTestHost      = "localhost"
	DatabaseTestNameEnvVar = "DATABASE_TEST_NAME"
	dbTestPassEnvVar       = "DATABASE_TEST_PASSWORD"
	dbTestPortEnvVar       = "DATABASE_TEST_PORT"
	defaultDBTestPort      = "5432"
	dbTestURLEnvVar        = "DATABASE_TEST_URL"
	dbTestUserEnvVar       = "DATABASE_TEST_USER"
	dbTestSSLModeEnvVar    = "DATABASE_TEST_SSLMODE"
	defaultDBTestSSLMode   = "prefer"
)

// NewPostgresConfig constructs a *prefs.CxnConfig appropriate to the given environment.
// Confer the DATABASE env vars for usage.
func NewPostgresConfig(env waymark.Environment) *prefs.CxnConfig {
	var cfg *prefs.CxnConfig
	url := os.Getenv(dbURLEnvVar)
	switch {
	case env.IsTesting():
		cfg = &prefs.CxnConfig{
			Host:     waymark.EnvVarOrString(dbTestHostEnvVar, defaultDBTestHost),
			IsTestDB: true,
			Name:     os.Getenv(DatabaseTestNameEnvVar),
			Password: os.Getenv(dbTestPassEnvVar),
			Port:     waymark.EnvVarOrString(dbTestPortEnvVar, defaultDBTestPort),
			SSLMode:  waymark.EnvVarOrString(dbTestSSLModeEnvVar, defaultDBTestSSLMode),
			User:     os.Getenv(dbTestUserEnvVar),
		}

	case url == "":
		cfg = &prefs.CxnConfig{
			Host:     waymark.EnvVarOrString(dbHostEnvVar, defaultDBHost),
			IsTestDB: false,
			Name:     os.Getenv(dbNameEnvVar),
			Password: os.Getenv(dbPassEnvVar),
			Port:     waymark.EnvVarOrString(dbPortEnvVar, defaultDBPort),
			SSLMode:  waymark.EnvVarOrString(dbSSLModeEnvVar, defaultDBSSLMode),
			User:     os.Getenv(dbUserEnvVar),
		}

	default:
		cfg = &prefs.CxnConfig{IsTestDB: false, URL: url}
	}

	return cfg
}

// defaultOpts are applied before the options passed into New,
// so everything a Warden carries starts from a usable configuration.
func defaultOpts() []WardenOption {
	return []WardenOption{
		WithContext(context.Background()),
		WithEnv(environmentEnvVar),
		defaultLoggerOpt(),
		defaultFileOpt(),
		defaultTranslationsOpt(),
		WithRegistry(settings.All()),
	}
}

// defaultLoggerOpt constructs a logger.Logger
// from the environment configured by earlier options
// and the LOG_LEVEL env var.
func defaultLoggerOpt() WardenOption {
	return func(w *Warden) (OptFollowup, error) {
		l := logger.NewLogger(
			logger.WithEnv(w.env.String()),
			logger.WithLevel(envVarOrLogLevel(logLevelEnvVar, logger.LogLevelInfo)),
		)

		w.l = l
		if setupLog == nil {
			setupLog = l
		}

		return nil, nil
	}
}

// defaultFileOpt points the Warden's file store at the CONFIG_FILE env var.
func defaultFileOpt() WardenOption {
	return func(w *Warden) (OptFollowup, error) {
		store, err := prefs.NewFileStore(waymark.EnvVarOrString(configFileEnvVar, defaultConfigFile))
		if err != nil {
			return nil, err
		}

		w.file = store

		return nil, nil
	}
}

// defaultTranslationsOpt constructs an empty i18n.Catalog matched to the
// LOCALE env var. With no message tables registered every label key
// passes through untranslated, which is the English source text.
func defaultTranslationsOpt() WardenOption {
	return func(w *Warden) (OptFollowup, error) {
		cat, err := i18n.NewCatalog(i18n.Config{Locale: waymark.EnvVarOrString(localeEnvVar, defaultLocale)})
		if err != nil {
			return nil, err
		}

		return WithTranslations(cat)(w)
	}
}

// envVarOrLogLevel gets the environment variable for the provided key,
// creates a logger.LogLevel from the retrieved value,
// or returns the provided default logger.LogLevel
// if the value is missing or names no level.
func envVarOrLogLevel(key string, def logger.LogLevel) logger.LogLevel {
	ll := logger.NewLogLevel(os.Getenv(key))
	if ll == logger.LogLevelUnk {
		return def
	}

	return ll
}
