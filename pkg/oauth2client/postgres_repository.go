package oauth2client

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tendant/simple-oidc/pkg/oauth2client/clientdb"
)

// PostgresClientRepository implements ClientRepository using PostgreSQL
type PostgresClientRepository struct {
	db      *pgxpool.Pool
	queries *clientdb.Queries
}

// NewPostgresClientRepository creates a new PostgreSQL OAuth2 client repository
func NewPostgresClientRepository(db *pgxpool.Pool) (*PostgresClientRepository, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection cannot be nil")
	}

	return &PostgresClientRepository{
		db:      db,
		queries: clientdb.New(db),
	}, nil
}

// CreateClient persists a client and all of its child rows in one transaction.
// Child inserts run sequentially because a pgx.Tx must not be shared across
// goroutines; atomicity comes from the surrounding transaction.
func (r *PostgresClientRepository) CreateClient(ctx context.Context, data ClientData) (*ClientAggregate, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	txQueries := r.queries.WithTx(tx)

	created, err := txQueries.CreateClient(ctx, toCreateClientRow(data.Client))
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("client name %q: %w", data.Client.Name, ErrDuplicate)
		}
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	for _, grant := range data.Scopes {
		if _, err := txQueries.AddClientScope(ctx, clientdb.AddClientScopeParams{
			ClientID:  created.ID,
			ScopeID:   grant.ScopeID,
			GrantedBy: toPgText(grant.GrantedBy),
		}); err != nil {
			if isUniqueViolation(err) {
				return nil, fmt.Errorf("scope %s: %w", grant.ScopeID, ErrDuplicate)
			}
			return nil, fmt.Errorf("failed to add client scope: %w", err)
		}
	}

	for _, uri := range data.RedirectURIs {
		if _, err := txQueries.AddClientRedirectURI(ctx, clientdb.AddClientRedirectURIParams{
			ClientID:    created.ID,
			RedirectUri: uri.RedirectURI,
			IsPrimary:   uri.IsPrimary,
		}); err != nil {
			if isUniqueViolation(err) {
				return nil, fmt.Errorf("redirect URI %q: %w", uri.RedirectURI, ErrDuplicate)
			}
			return nil, fmt.Errorf("failed to add client redirect URI: %w", err)
		}
	}

	for _, grantType := range data.GrantTypes {
		if _, err := txQueries.AddClientGrantType(ctx, clientdb.AddClientGrantTypeParams{
			ClientID:  created.ID,
			GrantType: grantType,
		}); err != nil {
			if isUniqueViolation(err) {
				return nil, fmt.Errorf("grant type %q: %w", grantType, ErrDuplicate)
			}
			return nil, fmt.Errorf("failed to add client grant type: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return r.GetClient(ctx, created.ID)
}

// GetClient retrieves a client by ID together with all of its child rows
func (r *PostgresClientRepository) GetClient(ctx context.Context, id uuid.UUID) (*ClientAggregate, error) {
	row, err := r.queries.GetClient(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("client %s: %w", id, ErrClientNotFound)
		}
		return nil, fmt.Errorf("failed to get client: %w", err)
	}

	scopeRows, err := r.queries.GetClientScopes(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get client scopes: %w", err)
	}

	uriRows, err := r.queries.GetClientRedirectURIs(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get client redirect URIs: %w", err)
	}

	grantRows, err := r.queries.GetClientGrantTypes(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get client grant types: %w", err)
	}

	aggregate := &ClientAggregate{
		Client:       fromClientRow(row),
		Scopes:       make([]ClientScope, 0, len(scopeRows)),
		RedirectURIs: make([]ClientRedirectURI, 0, len(uriRows)),
		GrantTypes:   make([]ClientGrantType, 0, len(grantRows)),
	}

	for _, sr := range scopeRows {
		scope := &Scope{
			ID:          sr.ScopeID,
			Name:        sr.ScopeName,
			Description: fromPgText(sr.Description),
			IsDefault:   sr.IsDefault,
			IsActive:    sr.IsActive,
		}
		aggregate.Scopes = append(aggregate.Scopes, ClientScope{
			ID:        sr.ID,
			ClientID:  sr.ClientID,
			ScopeID:   sr.ScopeID,
			GrantedAt: sr.GrantedAt.Time,
			GrantedBy: fromPgText(sr.GrantedBy),
			Scope:     scope,
		})
	}

	for _, ur := range uriRows {
		aggregate.RedirectURIs = append(aggregate.RedirectURIs, ClientRedirectURI{
			ID:          ur.ID,
			ClientID:    ur.ClientID,
			RedirectURI: ur.RedirectUri,
			IsPrimary:   ur.IsPrimary,
			CreatedAt:   ur.CreatedAt.Time,
			UpdatedAt:   ur.UpdatedAt.Time,
		})
	}

	for _, gr := range grantRows {
		aggregate.GrantTypes = append(aggregate.GrantTypes, ClientGrantType{
			ID:        gr.ID,
			ClientID:  gr.ClientID,
			GrantType: gr.GrantType,
		})
	}

	return aggregate, nil
}

// ListClients returns one page of clients plus the total count
func (r *PostgresClientRepository) ListClients(ctx context.Context, params ListClientsParams) ([]Client, int64, error) {
	offset := (params.Page - 1) * params.Limit

	rows, err := r.queries.ListClients(ctx, clientdb.ListClientsParams{
		Limit:  params.Limit,
		Offset: offset,
	})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list clients: %w", err)
	}

	total, err := r.queries.CountClients(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count clients: %w", err)
	}

	clients := make([]Client, 0, len(rows))
	for _, row := range rows {
		clients = append(clients, fromClientRow(row))
	}

	return clients, total, nil
}

// UpdateClient applies the non-nil fields of params to an existing client
func (r *PostgresClientRepository) UpdateClient(ctx context.Context, id uuid.UUID, params UpdateClientParams) (*Client, error) {
	arg := clientdb.UpdateClientParams{
		ID:                        id,
		ClientName:                toPgText(params.Name),
		ClientDescription:         toPgText(params.Description),
		ClientUri:                 toPgText(params.ClientURI),
		LogoUri:                   toPgText(params.LogoURI),
		TosUri:                    toPgText(params.TosURI),
		PolicyUri:                 toPgText(params.PolicyURI),
		RequirePkce:               toPgBool(params.RequirePKCE),
		AccessTokenLifetime:       toPgInt4(params.AccessTokenLifetime),
		RefreshTokenLifetime:      toPgInt4(params.RefreshTokenLifetime),
		IDTokenLifetime:           toPgInt4(params.IDTokenLifetime),
		AuthorizationCodeLifetime: toPgInt4(params.AuthorizationCodeLifetime),
		IsActive:                  toPgBool(params.IsActive),
	}
	if params.TokenEndpointAuthMethod != nil {
		arg.TokenEndpointAuthMethod = clientdb.NullTokenEndpointAuthMethodEnum{
			TokenEndpointAuthMethodEnum: clientdb.TokenEndpointAuthMethodEnum(*params.TokenEndpointAuthMethod),
			Valid:                       true,
		}
	}

	row, err := r.queries.UpdateClient(ctx, arg)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("client %s: %w", id, ErrClientNotFound)
		}
		return nil, fmt.Errorf("failed to update client: %w", err)
	}

	client := fromClientRow(row)
	return &client, nil
}

// DeleteClient removes a client; child rows go away through ON DELETE CASCADE
func (r *PostgresClientRepository) DeleteClient(ctx context.Context, id uuid.UUID) error {
	rows, err := r.queries.DeleteClient(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete client: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("client %s: %w", id, ErrClientNotFound)
	}
	return nil
}

// CreateScope registers a new grantable scope
func (r *PostgresClientRepository) CreateScope(ctx context.Context, params CreateScopeParams) (*Scope, error) {
	row, err := r.queries.CreateScope(ctx, clientdb.CreateScopeParams{
		ScopeName:   params.Name,
		Description: toPgText(params.Description),
		IsDefault:   params.IsDefault,
	})
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("scope name %q: %w", params.Name, ErrDuplicate)
		}
		return nil, fmt.Errorf("failed to create scope: %w", err)
	}

	scope := fromScopeRow(row)
	return &scope, nil
}

// GetScopeByName retrieves a scope by its unique name
func (r *PostgresClientRepository) GetScopeByName(ctx context.Context, name string) (*Scope, error) {
	row, err := r.queries.GetScopeByName(ctx, name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("scope %q: %w", name, ErrScopeNotFound)
		}
		return nil, fmt.Errorf("failed to get scope: %w", err)
	}

	scope := fromScopeRow(row)
	return &scope, nil
}

// ListScopes returns all registered scopes ordered by name
func (r *PostgresClientRepository) ListScopes(ctx context.Context) ([]Scope, error) {
	rows, err := r.queries.ListScopes(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list scopes: %w", err)
	}

	scopes := make([]Scope, 0, len(rows))
	for _, row := range rows {
		scopes = append(scopes, fromScopeRow(row))
	}
	return scopes, nil
}

func toCreateClientRow(params CreateClientParams) clientdb.CreateClientParams {
	row := clientdb.CreateClientParams{
		ClientSecret:              toPgText(params.Secret),
		ClientName:                params.Name,
		ClientType:                clientdb.ClientTypeEnum(params.Type),
		ApplicationType:           clientdb.ApplicationTypeEnum(params.ApplicationType),
		TokenEndpointAuthMethod:   clientdb.TokenEndpointAuthMethodEnum(params.TokenEndpointAuthMethod),
		ClientDescription:         toPgText(params.Description),
		ClientUri:                 toPgText(params.ClientURI),
		LogoUri:                   toPgText(params.LogoURI),
		TosUri:                    toPgText(params.TosURI),
		PolicyUri:                 toPgText(params.PolicyURI),
		RequirePkce:               true,
		AccessTokenLifetime:       DefaultAccessTokenLifetime,
		RefreshTokenLifetime:      DefaultRefreshTokenLifetime,
		IDTokenLifetime:           DefaultIDTokenLifetime,
		AuthorizationCodeLifetime: DefaultAuthorizationCodeLifetime,
		CreatedBy:                 toPgText(params.CreatedBy),
	}
	if params.RequirePKCE != nil {
		row.RequirePkce = *params.RequirePKCE
	}
	if params.AccessTokenLifetime != nil {
		row.AccessTokenLifetime = *params.AccessTokenLifetime
	}
	if params.RefreshTokenLifetime != nil {
		row.RefreshTokenLifetime = *params.RefreshTokenLifetime
	}
	if params.IDTokenLifetime != nil {
		row.IDTokenLifetime = *params.IDTokenLifetime
	}
	if params.AuthorizationCodeLifetime != nil {
		row.AuthorizationCodeLifetime = *params.AuthorizationCodeLifetime
	}
	return row
}

func fromClientRow(row clientdb.OauthClient) Client {
	return Client{
		ID:                        row.ID,
		Secret:                    fromPgText(row.ClientSecret),
		Name:                      row.ClientName,
		Type:                      string(row.ClientType),
		ApplicationType:           string(row.ApplicationType),
		TokenEndpointAuthMethod:   string(row.TokenEndpointAuthMethod),
		Description:               fromPgText(row.ClientDescription),
		ClientURI:                 fromPgText(row.ClientUri),
		LogoURI:                   fromPgText(row.LogoUri),
		TosURI:                    fromPgText(row.TosUri),
		PolicyURI:                 fromPgText(row.PolicyUri),
		RequirePKCE:               row.RequirePkce,
		AccessTokenLifetime:       row.AccessTokenLifetime,
		RefreshTokenLifetime:      row.RefreshTokenLifetime,
		IDTokenLifetime:           row.IDTokenLifetime,
		AuthorizationCodeLifetime: row.AuthorizationCodeLifetime,
		IsActive:                  row.IsActive,
		CreatedBy:                 fromPgText(row.CreatedBy),
		CreatedAt:                 row.CreatedAt.Time,
		UpdatedAt:                 row.UpdatedAt.Time,
	}
}

func fromScopeRow(row clientdb.OauthScope) Scope {
	return Scope{
		ID:          row.ID,
		Name:        row.ScopeName,
		Description: fromPgText(row.Description),
		IsDefault:   row.IsDefault,
		IsActive:    row.IsActive,
		CreatedAt:   row.CreatedAt.Time,
		UpdatedAt:   row.UpdatedAt.Time,
	}
}

func toPgText(s *string) pgtype.Text {
	if s == nil {
		return pgtype.Text{}
	}
	return pgtype.Text{String: *s, Valid: true}
}

func fromPgText(t pgtype.Text) *string {
	if !t.Valid {
		return nil
	}
	s := t.String
	return &s
}

func toPgBool(b *bool) pgtype.Bool {
	if b == nil {
		return pgtype.Bool{}
	}
	return pgtype.Bool{Bool: *b, Valid: true}
}

func toPgInt4(i *int32) pgtype.Int4 {
	if i == nil {
		return pgtype.Int4{}
	}
	return pgtype.Int4{Int32: *i, Valid: true}
}
