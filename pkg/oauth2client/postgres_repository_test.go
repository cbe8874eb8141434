package oauth2client

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

func setupPostgresRepository(t *testing.T) *PostgresClientRepository {
	t.Helper()
	ctx := context.Background()

	postgresContainer, err := postgres.RunContainer(ctx,
		testcontainers.WithImage("postgres:15-alpine"),
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := postgresContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %s", err)
		}
	})

	connStr, err := postgresContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	m, err := migrate.New("file://../../migrations", connStr)
	require.NoError(t, err)
	require.NoError(t, m.Up())

	pool, err := pgxpool.New(ctx, connStr)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	repo, err := NewPostgresClientRepository(pool)
	require.NoError(t, err)
	return repo
}

func TestNewPostgresClientRepositoryNilDatabase(t *testing.T) {
	_, err := NewPostgresClientRepository(nil)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "database connection cannot be nil")
}

func TestPostgresClientRepository(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}

	repo := setupPostgresRepository(t)
	ctx := context.Background()

	openid, err := repo.CreateScope(ctx, CreateScopeParams{Name: "openid", IsDefault: true})
	require.NoError(t, err)

	t.Run("CreateAndGet", func(t *testing.T) {
		secret := "aa11:bb22:cc33"
		grantedBy := "admin"
		created, err := repo.CreateClient(ctx, ClientData{
			Client: CreateClientParams{
				Secret:                  &secret,
				Name:                    "Backend App",
				Type:                    ClientTypeConfidential,
				ApplicationType:         ApplicationTypeWeb,
				TokenEndpointAuthMethod: TokenEndpointAuthClientSecretBasic,
			},
			Scopes: []ScopeGrant{{ScopeID: openid.ID, GrantedBy: &grantedBy}},
			RedirectURIs: []RedirectURIParam{
				{RedirectURI: "https://app.example.com/callback", IsPrimary: true},
			},
			GrantTypes: []string{"authorization_code", "refresh_token"},
		})
		require.NoError(t, err)

		fetched, err := repo.GetClient(ctx, created.Client.ID)
		require.NoError(t, err)

		assert.Equal(t, "Backend App", fetched.Client.Name)
		require.NotNil(t, fetched.Client.Secret)
		assert.Equal(t, secret, *fetched.Client.Secret)
		assert.True(t, fetched.Client.RequirePKCE)
		assert.EqualValues(t, DefaultAccessTokenLifetime, fetched.Client.AccessTokenLifetime)

		require.Len(t, fetched.Scopes, 1)
		assert.Equal(t, "openid", fetched.Scopes[0].Scope.Name)
		require.NotNil(t, fetched.Scopes[0].GrantedBy)
		assert.Equal(t, "admin", *fetched.Scopes[0].GrantedBy)

		require.Len(t, fetched.RedirectURIs, 1)
		assert.True(t, fetched.RedirectURIs[0].IsPrimary)
		assert.Len(t, fetched.GrantTypes, 2)
	})

	t.Run("DuplicateNameConflicts", func(t *testing.T) {
		_, err := repo.CreateClient(ctx, ClientData{
			Client: defaultCreateParams("Backend App"),
		})
		require.Error(t, err)
		assert.True(t, IsDuplicate(err))
	})

	t.Run("CreateRollsBackOnChildFailure", func(t *testing.T) {
		before, err := repo.queries.CountClients(ctx)
		require.NoError(t, err)

		// Duplicate redirect URI within the bundle violates the unique
		// constraint, so the whole transaction must roll back.
		_, err = repo.CreateClient(ctx, ClientData{
			Client: defaultCreateParams("Doomed App"),
			RedirectURIs: []RedirectURIParam{
				{RedirectURI: "https://a.example.com/cb", IsPrimary: true},
				{RedirectURI: "https://b.example.com/cb"},
				{RedirectURI: "https://a.example.com/cb"},
			},
		})
		require.Error(t, err)
		assert.True(t, IsDuplicate(err))

		after, err := repo.queries.CountClients(ctx)
		require.NoError(t, err)
		assert.Equal(t, before, after)
	})

	t.Run("UpdatePartial", func(t *testing.T) {
		created, err := repo.CreateClient(ctx, ClientData{
			Client: defaultCreateParams("Update Target"),
		})
		require.NoError(t, err)

		newName := "Updated Target"
		lifetime := int32(7200)
		updated, err := repo.UpdateClient(ctx, created.Client.ID, UpdateClientParams{
			Name:                &newName,
			AccessTokenLifetime: &lifetime,
		})
		require.NoError(t, err)

		assert.Equal(t, "Updated Target", updated.Name)
		assert.EqualValues(t, 7200, updated.AccessTokenLifetime)
		assert.EqualValues(t, DefaultRefreshTokenLifetime, updated.RefreshTokenLifetime)
	})

	t.Run("UpdateNotFound", func(t *testing.T) {
		name := "Ghost"
		_, err := repo.UpdateClient(ctx, uuid.New(), UpdateClientParams{Name: &name})
		require.Error(t, err)
		assert.True(t, IsNotFound(err))
	})

	t.Run("DeleteCascades", func(t *testing.T) {
		created, err := repo.CreateClient(ctx, ClientData{
			Client: defaultCreateParams("Delete Target"),
			RedirectURIs: []RedirectURIParam{
				{RedirectURI: "https://delete.example.com/cb", IsPrimary: true},
			},
			GrantTypes: []string{"authorization_code"},
		})
		require.NoError(t, err)

		require.NoError(t, repo.DeleteClient(ctx, created.Client.ID))

		_, err = repo.GetClient(ctx, created.Client.ID)
		require.Error(t, err)
		assert.True(t, IsNotFound(err))

		uris, err := repo.queries.GetClientRedirectURIs(ctx, created.Client.ID)
		require.NoError(t, err)
		assert.Empty(t, uris)

		err = repo.DeleteClient(ctx, created.Client.ID)
		require.Error(t, err)
		assert.True(t, IsNotFound(err))
	})

	t.Run("ListClientsPaginates", func(t *testing.T) {
		for i := 0; i < 7; i++ {
			_, err := repo.CreateClient(ctx, ClientData{
				Client: defaultCreateParams(fmt.Sprintf("Page Client %02d", i)),
			})
			require.NoError(t, err)
		}

		clients, total, err := repo.ListClients(ctx, ListClientsParams{Page: 1, Limit: 3})
		require.NoError(t, err)
		assert.Len(t, clients, 3)
		assert.GreaterOrEqual(t, total, int64(7))
	})

	t.Run("Scopes", func(t *testing.T) {
		_, err := repo.CreateScope(ctx, CreateScopeParams{Name: "openid"})
		require.Error(t, err)
		assert.True(t, IsDuplicate(err))

		scope, err := repo.GetScopeByName(ctx, "openid")
		require.NoError(t, err)
		assert.True(t, scope.IsDefault)

		_, err = repo.GetScopeByName(ctx, "missing")
		require.Error(t, err)
		assert.True(t, IsNotFound(err))
	})
}

func defaultCreateParams(name string) CreateClientParams {
	return CreateClientParams{
		Name:                    name,
		Type:                    ClientTypeConfidential,
		ApplicationType:         ApplicationTypeWeb,
		TokenEndpointAuthMethod: TokenEndpointAuthClientSecretBasic,
	}
}
