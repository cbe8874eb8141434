package oauth2client

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// InMemClientRepository implements ClientRepository using in-memory storage.
// Intended for tests and local development.
type InMemClientRepository struct {
	mutex        sync.RWMutex
	clients      map[uuid.UUID]*Client
	scopes       map[uuid.UUID]*Scope
	scopesByName map[string]uuid.UUID
	clientScopes map[uuid.UUID][]ClientScope
	redirectURIs map[uuid.UUID][]ClientRedirectURI
	grantTypes   map[uuid.UUID][]ClientGrantType
	order        []uuid.UUID
}

// NewInMemClientRepository creates a new empty in-memory repository
func NewInMemClientRepository() *InMemClientRepository {
	return &InMemClientRepository{
		clients:      make(map[uuid.UUID]*Client),
		scopes:       make(map[uuid.UUID]*Scope),
		scopesByName: make(map[string]uuid.UUID),
		clientScopes: make(map[uuid.UUID][]ClientScope),
		redirectURIs: make(map[uuid.UUID][]ClientRedirectURI),
		grantTypes:   make(map[uuid.UUID][]ClientGrantType),
	}
}

// CreateClient persists a client and all of its child rows atomically.
// Child rows are built concurrently with an errgroup; nothing is installed
// into the maps until every row has been built and validated.
func (r *InMemClientRepository) CreateClient(ctx context.Context, data ClientData) (*ClientAggregate, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	for _, existing := range r.clients {
		if existing.Name == data.Client.Name {
			return nil, fmt.Errorf("client name %q: %w", data.Client.Name, ErrDuplicate)
		}
	}

	now := time.Now()
	client := newClientFromParams(data.Client, now)

	scopeRows := make([]ClientScope, len(data.Scopes))
	uriRows := make([]ClientRedirectURI, len(data.RedirectURIs))
	grantRows := make([]ClientGrantType, len(data.GrantTypes))

	g, _ := errgroup.WithContext(ctx)

	for i, grant := range data.Scopes {
		g.Go(func() error {
			scope, ok := r.scopes[grant.ScopeID]
			if !ok {
				return fmt.Errorf("scope %s: %w", grant.ScopeID, ErrScopeNotFound)
			}
			for j, other := range data.Scopes {
				if j < i && other.ScopeID == grant.ScopeID {
					return fmt.Errorf("scope %s: %w", grant.ScopeID, ErrDuplicate)
				}
			}
			scopeCopy := *scope
			scopeRows[i] = ClientScope{
				ID:        uuid.New(),
				ClientID:  client.ID,
				ScopeID:   grant.ScopeID,
				GrantedAt: now,
				GrantedBy: grant.GrantedBy,
				Scope:     &scopeCopy,
			}
			return nil
		})
	}

	for i, uri := range data.RedirectURIs {
		g.Go(func() error {
			if uri.RedirectURI == "" {
				return fmt.Errorf("redirect URI cannot be empty")
			}
			for j, other := range data.RedirectURIs {
				if j < i && other.RedirectURI == uri.RedirectURI {
					return fmt.Errorf("redirect URI %q: %w", uri.RedirectURI, ErrDuplicate)
				}
			}
			uriRows[i] = ClientRedirectURI{
				ID:          uuid.New(),
				ClientID:    client.ID,
				RedirectURI: uri.RedirectURI,
				IsPrimary:   uri.IsPrimary,
				CreatedAt:   now,
				UpdatedAt:   now,
			}
			return nil
		})
	}

	for i, grantType := range data.GrantTypes {
		g.Go(func() error {
			if grantType == "" {
				return fmt.Errorf("grant type cannot be empty")
			}
			for j, other := range data.GrantTypes {
				if j < i && other == grantType {
					return fmt.Errorf("grant type %q: %w", grantType, ErrDuplicate)
				}
			}
			grantRows[i] = ClientGrantType{
				ID:        uuid.New(),
				ClientID:  client.ID,
				GrantType: grantType,
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	r.clients[client.ID] = client
	r.clientScopes[client.ID] = scopeRows
	r.redirectURIs[client.ID] = uriRows
	r.grantTypes[client.ID] = grantRows
	r.order = append(r.order, client.ID)

	return r.buildAggregate(client.ID)
}

// GetClient retrieves a client by ID together with all of its child rows
func (r *InMemClientRepository) GetClient(ctx context.Context, id uuid.UUID) (*ClientAggregate, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	if _, ok := r.clients[id]; !ok {
		return nil, fmt.Errorf("client %s: %w", id, ErrClientNotFound)
	}
	return r.buildAggregate(id)
}

// ListClients returns one page of clients plus the total count
func (r *InMemClientRepository) ListClients(ctx context.Context, params ListClientsParams) ([]Client, int64, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	total := int64(len(r.order))
	start := int((params.Page - 1) * params.Limit)
	end := start + int(params.Limit)
	if start > len(r.order) {
		start = len(r.order)
	}
	if end > len(r.order) {
		end = len(r.order)
	}

	clients := make([]Client, 0, end-start)
	for _, id := range r.order[start:end] {
		clients = append(clients, *r.clients[id])
	}
	return clients, total, nil
}

// UpdateClient applies the non-nil fields of params to an existing client
func (r *InMemClientRepository) UpdateClient(ctx context.Context, id uuid.UUID, params UpdateClientParams) (*Client, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	client, ok := r.clients[id]
	if !ok {
		return nil, fmt.Errorf("client %s: %w", id, ErrClientNotFound)
	}

	if params.Name != nil {
		client.Name = *params.Name
	}
	if params.TokenEndpointAuthMethod != nil {
		client.TokenEndpointAuthMethod = *params.TokenEndpointAuthMethod
	}
	if params.Description != nil {
		client.Description = params.Description
	}
	if params.ClientURI != nil {
		client.ClientURI = params.ClientURI
	}
	if params.LogoURI != nil {
		client.LogoURI = params.LogoURI
	}
	if params.TosURI != nil {
		client.TosURI = params.TosURI
	}
	if params.PolicyURI != nil {
		client.PolicyURI = params.PolicyURI
	}
	if params.RequirePKCE != nil {
		client.RequirePKCE = *params.RequirePKCE
	}
	if params.AccessTokenLifetime != nil {
		client.AccessTokenLifetime = *params.AccessTokenLifetime
	}
	if params.RefreshTokenLifetime != nil {
		client.RefreshTokenLifetime = *params.RefreshTokenLifetime
	}
	if params.IDTokenLifetime != nil {
		client.IDTokenLifetime = *params.IDTokenLifetime
	}
	if params.AuthorizationCodeLifetime != nil {
		client.AuthorizationCodeLifetime = *params.AuthorizationCodeLifetime
	}
	if params.IsActive != nil {
		client.IsActive = *params.IsActive
	}
	client.UpdatedAt = time.Now()

	updated := *client
	return &updated, nil
}

// DeleteClient removes a client and all of its child rows
func (r *InMemClientRepository) DeleteClient(ctx context.Context, id uuid.UUID) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	if _, ok := r.clients[id]; !ok {
		return fmt.Errorf("client %s: %w", id, ErrClientNotFound)
	}

	delete(r.clients, id)
	delete(r.clientScopes, id)
	delete(r.redirectURIs, id)
	delete(r.grantTypes, id)
	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

// CreateScope registers a new grantable scope
func (r *InMemClientRepository) CreateScope(ctx context.Context, params CreateScopeParams) (*Scope, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	if _, exists := r.scopesByName[params.Name]; exists {
		return nil, fmt.Errorf("scope name %q: %w", params.Name, ErrDuplicate)
	}

	now := time.Now()
	scope := &Scope{
		ID:          uuid.New(),
		Name:        params.Name,
		Description: params.Description,
		IsDefault:   params.IsDefault,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	r.scopes[scope.ID] = scope
	r.scopesByName[scope.Name] = scope.ID

	created := *scope
	return &created, nil
}

// GetScopeByName retrieves a scope by its unique name
func (r *InMemClientRepository) GetScopeByName(ctx context.Context, name string) (*Scope, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	id, ok := r.scopesByName[name]
	if !ok {
		return nil, fmt.Errorf("scope %q: %w", name, ErrScopeNotFound)
	}
	scope := *r.scopes[id]
	return &scope, nil
}

// ListScopes returns all registered scopes ordered by name
func (r *InMemClientRepository) ListScopes(ctx context.Context) ([]Scope, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	scopes := make([]Scope, 0, len(r.scopes))
	for _, scope := range r.scopes {
		scopes = append(scopes, *scope)
	}
	sort.Slice(scopes, func(i, j int) bool { return scopes[i].Name < scopes[j].Name })
	return scopes, nil
}

// buildAggregate assembles a deep copy of the client and its child rows.
// Callers must hold at least a read lock.
func (r *InMemClientRepository) buildAggregate(id uuid.UUID) (*ClientAggregate, error) {
	client := *r.clients[id]

	aggregate := &ClientAggregate{
		Client:       client,
		Scopes:       make([]ClientScope, len(r.clientScopes[id])),
		RedirectURIs: make([]ClientRedirectURI, len(r.redirectURIs[id])),
		GrantTypes:   make([]ClientGrantType, len(r.grantTypes[id])),
	}
	copy(aggregate.Scopes, r.clientScopes[id])
	copy(aggregate.RedirectURIs, r.redirectURIs[id])
	copy(aggregate.GrantTypes, r.grantTypes[id])

	sort.Slice(aggregate.Scopes, func(i, j int) bool {
		return aggregate.Scopes[i].Scope.Name < aggregate.Scopes[j].Scope.Name
	})
	sort.Slice(aggregate.GrantTypes, func(i, j int) bool {
		return aggregate.GrantTypes[i].GrantType < aggregate.GrantTypes[j].GrantType
	})

	return aggregate, nil
}

func newClientFromParams(params CreateClientParams, now time.Time) *Client {
	client := &Client{
		ID:                        uuid.New(),
		Secret:                    params.Secret,
		Name:                      params.Name,
		Type:                      params.Type,
		ApplicationType:           params.ApplicationType,
		TokenEndpointAuthMethod:   params.TokenEndpointAuthMethod,
		Description:               params.Description,
		ClientURI:                 params.ClientURI,
		LogoURI:                   params.LogoURI,
		TosURI:                    params.TosURI,
		PolicyURI:                 params.PolicyURI,
		RequirePKCE:               true,
		AccessTokenLifetime:       DefaultAccessTokenLifetime,
		RefreshTokenLifetime:      DefaultRefreshTokenLifetime,
		IDTokenLifetime:           DefaultIDTokenLifetime,
		AuthorizationCodeLifetime: DefaultAuthorizationCodeLifetime,
		IsActive:                  true,
		CreatedBy:                 params.CreatedBy,
		CreatedAt:                 now,
		UpdatedAt:                 now,
	}
	if params.RequirePKCE != nil {
		client.RequirePKCE = *params.RequirePKCE
	}
	if params.AccessTokenLifetime != nil {
		client.AccessTokenLifetime = *params.AccessTokenLifetime
	}
	if params.RefreshTokenLifetime != nil {
		client.RefreshTokenLifetime = *params.RefreshTokenLifetime
	}
	if params.IDTokenLifetime != nil {
		client.IDTokenLifetime = *params.IDTokenLifetime
	}
	if params.AuthorizationCodeLifetime != nil {
		client.AuthorizationCodeLifetime = *params.AuthorizationCodeLifetime
	}
	return client
}
