package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
	"github.com/tendant/chi-demo/app"
	dbutils "github.com/tendant/db-utils/db"
	"github.com/tendant/simple-oidc/migrations"
	"github.com/tendant/simple-oidc/pkg/client"
	"github.com/tendant/simple-oidc/pkg/oauth2client"
	oauth2clientapi "github.com/tendant/simple-oidc/pkg/oauth2client/api"
	"github.com/tendant/simple-oidc/pkg/provider"
)

type OidcDbConfig struct {
	Host     string `env:"OIDC_PG_HOST" env-default:"localhost"`
	Port     uint16 `env:"OIDC_PG_PORT" env-default:"5432"`
	Database string `env:"OIDC_PG_DATABASE" env-default:"oidc_db"`
	User     string `env:"OIDC_PG_USER" env-default:"oidc"`
	Password string `env:"OIDC_PG_PASSWORD" env-default:"pwd"`
	Schema   string `env:"OIDC_PG_SCHEMA" env-default:"public"`
}

func (d OidcDbConfig) toDatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable&search_path=%s,public",
		d.User, d.Password, d.Host, d.Port, d.Database, d.Schema)
}

func (d OidcDbConfig) toDbConfig() dbutils.DbConfig {
	return dbutils.DbConfig{
		Host:     d.Host,
		Port:     d.Port,
		Database: d.Database,
		User:     d.User,
		Password: d.Password,
	}
}

type JwtConfig struct {
	JwtSecret string `env:"JWT_SECRET" env-default:"very-secure-jwt-secret"`
}

type OAuth2ClientConfig struct {
	// Key used to seal client secrets at rest
	EncryptionKey string `env:"OAUTH2_CLIENT_ENCRYPTION_KEY" env-default:"dev-encryption-key"`
}

type ProviderConfig struct {
	Issuer                string   `env:"OIDC_ISSUER" env-default:"http://localhost:4000"`
	AuthorizationEndpoint string   `env:"OIDC_AUTHORIZATION_ENDPOINT" env-default:"http://localhost:4000/authorize"`
	TokenEndpoint         string   `env:"OIDC_TOKEN_ENDPOINT" env-default:"http://localhost:4000/token"`
	UserInfoEndpoint      string   `env:"OIDC_USERINFO_ENDPOINT" env-default:"http://localhost:4000/userinfo"`
	JwksURI               string   `env:"OIDC_JWKS_URI" env-default:"http://localhost:4000/jwks"`
	Scopes                []string `env:"OIDC_SCOPES" env-default:"openid,profile,email"`
	Claims                []string `env:"OIDC_CLAIMS" env-default:"sub,iss,aud,exp,iat,name,email"`
}

type Config struct {
	OidcDbConfig       OidcDbConfig
	AppConfig          app.AppConfig
	JwtConfig          JwtConfig
	OAuth2ClientConfig OAuth2ClientConfig
	ProviderConfig     ProviderConfig
}

// loadEnvFile loads environment variables from a .env file if one exists.
// Variables already set in the environment win.
func loadEnvFile() {
	if _, err := os.Stat(".env"); os.IsNotExist(err) {
		return
	}
	if err := godotenv.Load(); err != nil {
		slog.Error("Failed to load .env file", "error", err)
		return
	}
	slog.Info("Configuration loaded from .env file")
}

// runMigrations applies the embedded schema migrations.
func runMigrations(dbURL string) error {
	source, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return fmt.Errorf("failed to load embedded migrations: %w", err)
	}

	migrator, err := migrate.NewWithSourceInstance("iofs", source, dbURL)
	if err != nil {
		return fmt.Errorf("failed to create migrator: %w", err)
	}
	defer migrator.Close()

	if err := migrator.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}
	return nil
}

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		AddSource: true,
	}))
	slog.SetDefault(logger)

	loadEnvFile()

	config := Config{}
	cleanenv.ReadEnv(&config)

	// Validate provider configuration before serving anything. A bad
	// configuration is fatal at startup, not at request time.
	oidcProvider := provider.NewProvider(provider.Options{
		Issuer:                config.ProviderConfig.Issuer,
		AuthorizationEndpoint: config.ProviderConfig.AuthorizationEndpoint,
		TokenEndpoint:         config.ProviderConfig.TokenEndpoint,
		UserinfoEndpoint:      config.ProviderConfig.UserInfoEndpoint,
		JwksURI:               config.ProviderConfig.JwksURI,
		ScopesSupported:       config.ProviderConfig.Scopes,
		ClaimsSupported:       config.ProviderConfig.Claims,
	})
	if err := oidcProvider.Validate(); err != nil {
		var configErr *provider.ConfigurationError
		if errors.As(err, &configErr) {
			slog.Error("Invalid provider configuration",
				"error", configErr.Code,
				"description", configErr.Description)
		} else {
			slog.Error("Invalid provider configuration", "error", err)
		}
		os.Exit(-1)
	}

	server := app.DefaultApp()
	app.RoutesHealthz(server.R)

	dbURL := config.OidcDbConfig.toDatabaseURL()
	if err := runMigrations(dbURL); err != nil {
		slog.Error("Failed to migrate database", "error", err)
		os.Exit(-1)
	}

	dbConfig := config.OidcDbConfig.toDbConfig()
	pool, err := dbutils.NewDbPool(context.Background(), dbConfig)
	if err != nil {
		slog.Error("Failed creating dbpool", "db", dbConfig.Database, "host", dbConfig.Host,
			"port", dbConfig.Port, "user", dbConfig.User)
		os.Exit(-1)
	}

	clientRepo, err := oauth2client.NewPostgresClientRepository(pool)
	if err != nil {
		slog.Error("Failed to create client repository", "error", err)
		os.Exit(-1)
	}

	clientService, err := oauth2client.NewClientService(clientRepo, config.OAuth2ClientConfig.EncryptionKey)
	if err != nil {
		slog.Error("Failed to create client service", "error", err)
		os.Exit(-1)
	}

	// Discovery document, unauthenticated
	providerHandler := provider.NewHandler(oidcProvider)
	server.R.Get("/.well-known/openid-configuration", providerHandler.OpenIDConfiguration)

	// Client registry API, JWT protected
	hmacAuth := jwtauth.New("HS256", []byte(config.JwtConfig.JwtSecret), nil)
	oauth2ClientHandle := oauth2clientapi.NewHandle(clientService)

	server.R.Group(func(r chi.Router) {
		r.Use(client.Verifier(hmacAuth))
		r.Use(client.AuthUserMiddleware)
		r.Mount("/api/clients", oauth2ClientHandle.Routes())
	})

	slog.Info("Starting OIDC registry", "issuer", config.ProviderConfig.Issuer)
	server.Run()
}
