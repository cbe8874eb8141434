package oauth2client

import (
	"context"

	"github.com/google/uuid"
)

// ClientRepository defines the interface for OAuth2 client data access operations
type ClientRepository interface {
	// CreateClient persists a client and all of its child rows (scopes,
	// redirect URIs, grant types) atomically. If any insert fails the
	// whole bundle is rolled back and nothing is persisted.
	CreateClient(ctx context.Context, data ClientData) (*ClientAggregate, error)

	// GetClient retrieves a client by ID together with its scopes
	// (joined with the scope rows), redirect URIs, and grant types.
	// Returns ErrClientNotFound if no client matches.
	GetClient(ctx context.Context, id uuid.UUID) (*ClientAggregate, error)

	// ListClients returns one page of clients plus the total count.
	ListClients(ctx context.Context, params ListClientsParams) ([]Client, int64, error)

	// UpdateClient applies the non-nil fields of params to an existing
	// client. Returns ErrClientNotFound if no client matches.
	UpdateClient(ctx context.Context, id uuid.UUID, params UpdateClientParams) (*Client, error)

	// DeleteClient removes a client and, through cascade, all of its
	// child rows. Returns ErrClientNotFound if no client matches.
	DeleteClient(ctx context.Context, id uuid.UUID) error

	// CreateScope registers a new grantable scope.
	CreateScope(ctx context.Context, params CreateScopeParams) (*Scope, error)

	// GetScopeByName retrieves a scope by its unique name.
	// Returns ErrScopeNotFound if no scope matches.
	GetScopeByName(ctx context.Context, name string) (*Scope, error)

	// ListScopes returns all registered scopes ordered by name.
	ListScopes(ctx context.Context) ([]Scope, error)
}
