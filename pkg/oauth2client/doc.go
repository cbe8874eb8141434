// Package oauth2client provides OAuth2 client registration and management
// for simple-oidc.
//
// A client is stored together with its granted scopes, redirect URIs, and
// grant types. Creation is atomic: the client row and every child row are
// persisted in a single transaction, and a failure on any child row rolls
// back the whole bundle.
//
// # Basic Usage
//
//	import "github.com/tendant/simple-oidc/pkg/oauth2client"
//
//	repo, err := oauth2client.NewPostgresClientRepository(pool)
//	service, err := oauth2client.NewClientService(repo, encryptionKey)
//
//	result, err := service.CreateClient(ctx, oauth2client.ClientData{
//		Client: oauth2client.CreateClientParams{
//			Name: "My Application",
//			Type: oauth2client.ClientTypeConfidential,
//		},
//		RedirectURIs: []oauth2client.RedirectURIParam{
//			{RedirectURI: "https://myapp.com/callback", IsPrimary: true},
//		},
//		GrantTypes: []string{"authorization_code", "refresh_token"},
//	})
//
// For confidential clients the service generates a random secret, seals it
// with AES-256-GCM through pkg/secrets, and returns the plaintext exactly
// once in result.PlainSecret. Public clients never get a secret.
//
// # Repository Implementations
//
//	// PostgreSQL, backed by the clientdb sqlc queries
//	repo, err := oauth2client.NewPostgresClientRepository(pool)
//
//	// In-memory, for tests and local development
//	repo := oauth2client.NewInMemClientRepository()
//
// # Related Packages
//
//   - pkg/secrets - client secret generation and encryption
//   - pkg/provider - provider configuration and discovery document
package oauth2client
