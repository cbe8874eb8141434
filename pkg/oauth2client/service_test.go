package oauth2client

import (
	"context"
	"encoding/hex"
	"fmt"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testEncryptionKey = "test-encryption-key"

func newTestService(t *testing.T) (*ClientService, *InMemClientRepository) {
	t.Helper()
	repo := NewInMemClientRepository()
	service, err := NewClientService(repo, testEncryptionKey)
	require.NoError(t, err)
	return service, repo
}

func TestNewClientServiceRequiresKey(t *testing.T) {
	_, err := NewClientService(NewInMemClientRepository(), "")
	assert.Error(t, err)
}

func TestCreateClientConfidential(t *testing.T) {
	service, _ := newTestService(t)
	ctx := context.Background()

	result, err := service.CreateClient(ctx, ClientData{})
	require.Error(t, err, "empty client name must be rejected")
	assert.Nil(t, result)

	result, err = service.CreateClient(ctx, ClientData{
		Client: CreateClientParams{Name: "Backend App"},
		RedirectURIs: []RedirectURIParam{
			{RedirectURI: "https://app.example.com/callback", IsPrimary: true},
		},
		GrantTypes: []string{"authorization_code", "refresh_token"},
	})
	require.NoError(t, err)

	// Defaults
	assert.Equal(t, ClientTypeConfidential, result.Client.Type)
	assert.Equal(t, ApplicationTypeWeb, result.Client.ApplicationType)
	assert.Equal(t, TokenEndpointAuthClientSecretBasic, result.Client.TokenEndpointAuthMethod)
	assert.True(t, result.Client.RequirePKCE)
	assert.True(t, result.Client.IsActive)
	assert.EqualValues(t, DefaultAccessTokenLifetime, result.Client.AccessTokenLifetime)
	assert.EqualValues(t, DefaultRefreshTokenLifetime, result.Client.RefreshTokenLifetime)

	// Stored secret is a three-segment hex envelope
	require.NotNil(t, result.Client.Secret)
	parts := strings.Split(*result.Client.Secret, ":")
	require.Len(t, parts, 3)
	for _, part := range parts {
		_, err := hex.DecodeString(part)
		assert.NoError(t, err)
	}

	// The plaintext secret is returned once and matches the envelope
	require.NotNil(t, result.PlainSecret)
	plaintext, err := service.DecryptClientSecret(*result.Client.Secret)
	require.NoError(t, err)
	assert.Equal(t, *result.PlainSecret, plaintext)

	assert.Len(t, result.RedirectURIs, 1)
	assert.True(t, result.RedirectURIs[0].IsPrimary)
	assert.Len(t, result.GrantTypes, 2)
}

func TestCreateClientPublicHasNoSecret(t *testing.T) {
	service, _ := newTestService(t)

	result, err := service.CreateClient(context.Background(), ClientData{
		Client: CreateClientParams{
			Name: "Mobile App",
			Type: ClientTypePublic,
		},
	})
	require.NoError(t, err)

	assert.Nil(t, result.Client.Secret)
	assert.Nil(t, result.PlainSecret)
	assert.Equal(t, TokenEndpointAuthNone, result.Client.TokenEndpointAuthMethod)
}

func TestCreateClientAtomicity(t *testing.T) {
	service, _ := newTestService(t)
	ctx := context.Background()

	// The third redirect URI duplicates the first, so the insert fails
	// mid-bundle. Nothing may survive.
	_, err := service.CreateClient(ctx, ClientData{
		Client: CreateClientParams{Name: "Doomed App"},
		RedirectURIs: []RedirectURIParam{
			{RedirectURI: "https://a.example.com/cb", IsPrimary: true},
			{RedirectURI: "https://b.example.com/cb"},
			{RedirectURI: "https://a.example.com/cb"},
		},
	})
	require.Error(t, err)
	assert.True(t, IsDuplicate(err))

	list, err := service.ListClients(ctx, ListClientsParams{})
	require.NoError(t, err)
	assert.Empty(t, list.Data)
	assert.EqualValues(t, 0, list.Metadata.TotalItems)
}

func TestCreateClientUnknownScopeRollsBack(t *testing.T) {
	service, _ := newTestService(t)
	ctx := context.Background()

	_, err := service.CreateClient(ctx, ClientData{
		Client: CreateClientParams{Name: "Scoped App"},
		Scopes: []ScopeGrant{{ScopeID: uuid.New()}},
	})
	require.Error(t, err)
	assert.True(t, IsNotFound(err))

	list, err := service.ListClients(ctx, ListClientsParams{})
	require.NoError(t, err)
	assert.Empty(t, list.Data)
}

func TestCreateClientDuplicateName(t *testing.T) {
	service, _ := newTestService(t)
	ctx := context.Background()

	_, err := service.CreateClient(ctx, ClientData{Client: CreateClientParams{Name: "Same Name"}})
	require.NoError(t, err)

	_, err = service.CreateClient(ctx, ClientData{Client: CreateClientParams{Name: "Same Name"}})
	require.Error(t, err)
	assert.True(t, IsDuplicate(err))
}

func TestCreateClientValidation(t *testing.T) {
	service, _ := newTestService(t)
	ctx := context.Background()

	t.Run("InvalidClientType", func(t *testing.T) {
		_, err := service.CreateClient(ctx, ClientData{
			Client: CreateClientParams{Name: "App", Type: "internal"},
		})
		assert.Error(t, err)
	})

	t.Run("InvalidApplicationType", func(t *testing.T) {
		_, err := service.CreateClient(ctx, ClientData{
			Client: CreateClientParams{Name: "App", ApplicationType: "desktop"},
		})
		assert.Error(t, err)
	})

	t.Run("InvalidRedirectURI", func(t *testing.T) {
		_, err := service.CreateClient(ctx, ClientData{
			Client:       CreateClientParams{Name: "App"},
			RedirectURIs: []RedirectURIParam{{RedirectURI: "not a url"}},
		})
		assert.Error(t, err)
	})

	t.Run("NativeSchemeAllowed", func(t *testing.T) {
		_, err := service.CreateClient(ctx, ClientData{
			Client:       CreateClientParams{Name: "Native App", ApplicationType: ApplicationTypeNative},
			RedirectURIs: []RedirectURIParam{{RedirectURI: "myapp://callback"}},
		})
		assert.NoError(t, err)
	})
}

func TestGetClientJoinsScopes(t *testing.T) {
	service, _ := newTestService(t)
	ctx := context.Background()

	openid, err := service.CreateScope(ctx, CreateScopeParams{Name: "openid", IsDefault: true})
	require.NoError(t, err)
	profile, err := service.CreateScope(ctx, CreateScopeParams{Name: "profile"})
	require.NoError(t, err)

	grantedBy := "admin"
	created, err := service.CreateClient(ctx, ClientData{
		Client: CreateClientParams{Name: "Scoped App"},
		Scopes: []ScopeGrant{
			{ScopeID: profile.ID},
			{ScopeID: openid.ID, GrantedBy: &grantedBy},
		},
	})
	require.NoError(t, err)

	aggregate, err := service.GetClient(ctx, created.Client.ID)
	require.NoError(t, err)

	require.Len(t, aggregate.Scopes, 2)
	// Sorted by scope name
	assert.Equal(t, "openid", aggregate.Scopes[0].Scope.Name)
	assert.Equal(t, "profile", aggregate.Scopes[1].Scope.Name)
	require.NotNil(t, aggregate.Scopes[0].GrantedBy)
	assert.Equal(t, "admin", *aggregate.Scopes[0].GrantedBy)
}

func TestListClientsPagination(t *testing.T) {
	service, _ := newTestService(t)
	ctx := context.Background()

	for i := 0; i < 12; i++ {
		_, err := service.CreateClient(ctx, ClientData{
			Client: CreateClientParams{Name: fmt.Sprintf("Client %02d", i)},
		})
		require.NoError(t, err)
	}

	t.Run("MiddlePage", func(t *testing.T) {
		list, err := service.ListClients(ctx, ListClientsParams{Page: 2, Limit: 5})
		require.NoError(t, err)

		assert.Len(t, list.Data, 5)
		assert.EqualValues(t, 5, list.Metadata.ItemsPerPage)
		assert.EqualValues(t, 12, list.Metadata.TotalItems)
		assert.EqualValues(t, 2, list.Metadata.CurrentPage)
		assert.EqualValues(t, 3, list.Metadata.TotalPages)
	})

	t.Run("LastPageIsPartial", func(t *testing.T) {
		list, err := service.ListClients(ctx, ListClientsParams{Page: 3, Limit: 5})
		require.NoError(t, err)
		assert.Len(t, list.Data, 2)
	})

	t.Run("PageBeyondEnd", func(t *testing.T) {
		list, err := service.ListClients(ctx, ListClientsParams{Page: 9, Limit: 5})
		require.NoError(t, err)
		assert.Empty(t, list.Data)
		assert.EqualValues(t, 12, list.Metadata.TotalItems)
	})

	t.Run("Defaults", func(t *testing.T) {
		list, err := service.ListClients(ctx, ListClientsParams{})
		require.NoError(t, err)
		assert.Len(t, list.Data, 10)
		assert.EqualValues(t, 1, list.Metadata.CurrentPage)
		assert.EqualValues(t, 10, list.Metadata.ItemsPerPage)
		assert.EqualValues(t, 2, list.Metadata.TotalPages)
	})
}

func TestUpdateClient(t *testing.T) {
	service, _ := newTestService(t)
	ctx := context.Background()

	created, err := service.CreateClient(ctx, ClientData{
		Client: CreateClientParams{Name: "Original Name"},
	})
	require.NoError(t, err)

	t.Run("PartialUpdate", func(t *testing.T) {
		newName := "Renamed"
		lifetime := int32(7200)
		updated, err := service.UpdateClient(ctx, created.Client.ID, UpdateClientParams{
			Name:                &newName,
			AccessTokenLifetime: &lifetime,
		})
		require.NoError(t, err)

		assert.Equal(t, "Renamed", updated.Name)
		assert.EqualValues(t, 7200, updated.AccessTokenLifetime)
		// Untouched fields keep their values
		assert.EqualValues(t, DefaultRefreshTokenLifetime, updated.RefreshTokenLifetime)
		assert.Equal(t, created.Client.Type, updated.Type)
	})

	t.Run("Deactivate", func(t *testing.T) {
		inactive := false
		updated, err := service.UpdateClient(ctx, created.Client.ID, UpdateClientParams{IsActive: &inactive})
		require.NoError(t, err)
		assert.False(t, updated.IsActive)
	})

	t.Run("InvalidAuthMethod", func(t *testing.T) {
		bad := "mtls"
		_, err := service.UpdateClient(ctx, created.Client.ID, UpdateClientParams{TokenEndpointAuthMethod: &bad})
		assert.Error(t, err)
	})

	t.Run("NotFound", func(t *testing.T) {
		name := "Ghost"
		_, err := service.UpdateClient(ctx, uuid.New(), UpdateClientParams{Name: &name})
		require.Error(t, err)
		assert.True(t, IsNotFound(err))
	})
}

func TestDeleteClient(t *testing.T) {
	service, _ := newTestService(t)
	ctx := context.Background()

	created, err := service.CreateClient(ctx, ClientData{
		Client:       CreateClientParams{Name: "Short Lived"},
		RedirectURIs: []RedirectURIParam{{RedirectURI: "https://x.example.com/cb"}},
		GrantTypes:   []string{"authorization_code"},
	})
	require.NoError(t, err)

	require.NoError(t, service.DeleteClient(ctx, created.Client.ID))

	_, err = service.GetClient(ctx, created.Client.ID)
	require.Error(t, err)
	assert.True(t, IsNotFound(err))

	// Deleting twice reports not found
	err = service.DeleteClient(ctx, created.Client.ID)
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
}

func TestScopes(t *testing.T) {
	service, _ := newTestService(t)
	ctx := context.Background()

	_, err := service.CreateScope(ctx, CreateScopeParams{Name: "openid", IsDefault: true})
	require.NoError(t, err)
	_, err = service.CreateScope(ctx, CreateScopeParams{Name: "email"})
	require.NoError(t, err)

	t.Run("DuplicateName", func(t *testing.T) {
		_, err := service.CreateScope(ctx, CreateScopeParams{Name: "openid"})
		require.Error(t, err)
		assert.True(t, IsDuplicate(err))
	})

	t.Run("EmptyName", func(t *testing.T) {
		_, err := service.CreateScope(ctx, CreateScopeParams{Name: ""})
		assert.Error(t, err)
	})

	t.Run("GetByName", func(t *testing.T) {
		scope, err := service.GetScopeByName(ctx, "openid")
		require.NoError(t, err)
		assert.True(t, scope.IsDefault)

		_, err = service.GetScopeByName(ctx, "missing")
		require.Error(t, err)
		assert.True(t, IsNotFound(err))
	})

	t.Run("ListOrderedByName", func(t *testing.T) {
		scopes, err := service.ListScopes(ctx)
		require.NoError(t, err)
		require.Len(t, scopes, 2)
		assert.Equal(t, "email", scopes[0].Name)
		assert.Equal(t, "openid", scopes[1].Name)
	})
}
