package oauth2client

import (
	"context"
	"fmt"
	"net/url"

	"github.com/google/uuid"
	"github.com/tendant/simple-oidc/pkg/secrets"
)

// Secret length in bytes before hex encoding
const clientSecretLength = 32

// Pagination defaults
const (
	defaultPage  = 1
	defaultLimit = 10
	maxLimit     = 100
)

// ClientService provides methods for managing OAuth2 clients
type ClientService struct {
	repository    ClientRepository
	encryptionKey string
}

// NewClientService creates a new client service with the provided repository.
// encryptionKey seals client secrets at rest; it must not be empty.
func NewClientService(repository ClientRepository, encryptionKey string) (*ClientService, error) {
	if encryptionKey == "" {
		return nil, fmt.Errorf("encryption key cannot be empty")
	}
	return &ClientService{
		repository:    repository,
		encryptionKey: encryptionKey,
	}, nil
}

// CreateClientResult is the outcome of CreateClient. PlainSecret carries
// the unencrypted secret for confidential clients and is only available
// here, at creation time; it is never stored and cannot be retrieved later.
type CreateClientResult struct {
	ClientAggregate
	PlainSecret *string `json:"plainSecret,omitempty"`
}

// CreateClient validates the bundle, generates and encrypts a secret for
// confidential clients, and persists the client with all of its child rows
// atomically.
func (s *ClientService) CreateClient(ctx context.Context, data ClientData) (*CreateClientResult, error) {
	if err := s.validateClientData(&data); err != nil {
		return nil, err
	}

	var plainSecret *string
	if data.Client.Type == ClientTypeConfidential {
		envelope, err := secrets.Generate(s.encryptionKey, clientSecretLength)
		if err != nil {
			return nil, fmt.Errorf("failed to generate client secret: %w", err)
		}
		data.Client.Secret = &envelope

		plaintext, err := secrets.Decrypt(s.encryptionKey, envelope)
		if err != nil {
			return nil, fmt.Errorf("failed to recover generated secret: %w", err)
		}
		plainSecret = &plaintext
	}

	aggregate, err := s.repository.CreateClient(ctx, data)
	if err != nil {
		return nil, err
	}

	return &CreateClientResult{
		ClientAggregate: *aggregate,
		PlainSecret:     plainSecret,
	}, nil
}

// GetClient retrieves a client by ID together with its scopes, redirect
// URIs, and grant types.
func (s *ClientService) GetClient(ctx context.Context, id uuid.UUID) (*ClientAggregate, error) {
	return s.repository.GetClient(ctx, id)
}

// ListClients returns one page of clients plus pagination metadata.
// Page defaults to 1 and limit to 10; limit is capped at 100.
func (s *ClientService) ListClients(ctx context.Context, params ListClientsParams) (*ClientList, error) {
	if params.Page < 1 {
		params.Page = defaultPage
	}
	if params.Limit < 1 {
		params.Limit = defaultLimit
	}
	if params.Limit > maxLimit {
		params.Limit = maxLimit
	}

	clients, total, err := s.repository.ListClients(ctx, params)
	if err != nil {
		return nil, err
	}

	totalPages := int32(total / int64(params.Limit))
	if total%int64(params.Limit) != 0 {
		totalPages++
	}

	return &ClientList{
		Data: clients,
		Metadata: ListMetadata{
			ItemsPerPage: params.Limit,
			TotalItems:   total,
			CurrentPage:  params.Page,
			TotalPages:   totalPages,
		},
	}, nil
}

// UpdateClient applies the non-nil fields of params to an existing client
func (s *ClientService) UpdateClient(ctx context.Context, id uuid.UUID, params UpdateClientParams) (*Client, error) {
	if params.TokenEndpointAuthMethod != nil && !isValidTokenEndpointAuthMethod(*params.TokenEndpointAuthMethod) {
		return nil, fmt.Errorf("invalid token endpoint auth method: %s", *params.TokenEndpointAuthMethod)
	}
	return s.repository.UpdateClient(ctx, id, params)
}

// DeleteClient removes a client and cascades to all of its child rows
func (s *ClientService) DeleteClient(ctx context.Context, id uuid.UUID) error {
	return s.repository.DeleteClient(ctx, id)
}

// DecryptClientSecret recovers the plaintext secret from a stored envelope.
// Returns a *secrets.DecryptionError when the envelope is malformed or was
// sealed under a different key.
func (s *ClientService) DecryptClientSecret(envelope string) (string, error) {
	return secrets.Decrypt(s.encryptionKey, envelope)
}

// CreateScope registers a new grantable scope
func (s *ClientService) CreateScope(ctx context.Context, params CreateScopeParams) (*Scope, error) {
	if params.Name == "" {
		return nil, fmt.Errorf("scope name cannot be empty")
	}
	return s.repository.CreateScope(ctx, params)
}

// GetScopeByName retrieves a scope by its unique name
func (s *ClientService) GetScopeByName(ctx context.Context, name string) (*Scope, error) {
	return s.repository.GetScopeByName(ctx, name)
}

// ListScopes returns all registered scopes
func (s *ClientService) ListScopes(ctx context.Context) ([]Scope, error) {
	return s.repository.ListScopes(ctx)
}

// validateClientData checks the bundle and fills in defaults before it is
// handed to the repository.
func (s *ClientService) validateClientData(data *ClientData) error {
	if data.Client.Name == "" {
		return fmt.Errorf("client name cannot be empty")
	}

	if data.Client.Type == "" {
		data.Client.Type = ClientTypeConfidential
	}
	if data.Client.Type != ClientTypeConfidential && data.Client.Type != ClientTypePublic {
		return fmt.Errorf("invalid client type: %s", data.Client.Type)
	}

	if data.Client.ApplicationType == "" {
		data.Client.ApplicationType = ApplicationTypeWeb
	}
	switch data.Client.ApplicationType {
	case ApplicationTypeWeb, ApplicationTypeNative, ApplicationTypeSpa:
	default:
		return fmt.Errorf("invalid application type: %s", data.Client.ApplicationType)
	}

	if data.Client.TokenEndpointAuthMethod == "" {
		if data.Client.Type == ClientTypePublic {
			data.Client.TokenEndpointAuthMethod = TokenEndpointAuthNone
		} else {
			data.Client.TokenEndpointAuthMethod = TokenEndpointAuthClientSecretBasic
		}
	}
	if !isValidTokenEndpointAuthMethod(data.Client.TokenEndpointAuthMethod) {
		return fmt.Errorf("invalid token endpoint auth method: %s", data.Client.TokenEndpointAuthMethod)
	}

	for _, uri := range data.RedirectURIs {
		if !isValidRedirectURI(uri.RedirectURI) {
			return fmt.Errorf("invalid redirect URI: %s", uri.RedirectURI)
		}
	}

	for _, grantType := range data.GrantTypes {
		if grantType == "" {
			return fmt.Errorf("grant type cannot be empty")
		}
	}

	return nil
}

func isValidTokenEndpointAuthMethod(method string) bool {
	switch method {
	case TokenEndpointAuthClientSecretBasic,
		TokenEndpointAuthClientSecretPost,
		TokenEndpointAuthClientSecretJwt,
		TokenEndpointAuthNone:
		return true
	}
	return false
}

// isValidRedirectURI accepts absolute URIs. Custom schemes are allowed so
// native apps can register app-specific callbacks.
func isValidRedirectURI(raw string) bool {
	if raw == "" {
		return false
	}
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return u.Scheme != ""
}
