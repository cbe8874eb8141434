package oauth2client

import (
	"time"

	"github.com/google/uuid"
)

// Client type constants
const (
	ClientTypeConfidential = "confidential"
	ClientTypePublic       = "public"
)

// Application type constants
const (
	ApplicationTypeWeb    = "web"
	ApplicationTypeNative = "native"
	ApplicationTypeSpa    = "spa"
)

// Token endpoint auth method constants
const (
	TokenEndpointAuthClientSecretBasic = "client_secret_basic"
	TokenEndpointAuthClientSecretPost  = "client_secret_post"
	TokenEndpointAuthClientSecretJwt   = "client_secret_jwt"
	TokenEndpointAuthNone              = "none"
)

// Default token lifetimes in seconds
const (
	DefaultAccessTokenLifetime       = 3600
	DefaultRefreshTokenLifetime      = 2592000
	DefaultIDTokenLifetime           = 3600
	DefaultAuthorizationCodeLifetime = 600
)

// Client is a registered OAuth2 client.
//
// Secret holds the encrypted client secret envelope for confidential
// clients and is nil for public clients. The plaintext secret is only
// ever returned once, at creation time, via CreateClientResult.
type Client struct {
	ID                        uuid.UUID `json:"id"`
	Secret                    *string   `json:"clientSecret,omitempty"`
	Name                      string    `json:"clientName"`
	Type                      string    `json:"clientType"`
	ApplicationType           string    `json:"applicationType"`
	TokenEndpointAuthMethod   string    `json:"tokenEndpointAuthMethod"`
	Description               *string   `json:"clientDescription,omitempty"`
	ClientURI                 *string   `json:"clientUri,omitempty"`
	LogoURI                   *string   `json:"logoUri,omitempty"`
	TosURI                    *string   `json:"tosUri,omitempty"`
	PolicyURI                 *string   `json:"policyUri,omitempty"`
	RequirePKCE               bool      `json:"requirePkce"`
	AccessTokenLifetime       int32     `json:"accessTokenLifetime"`
	RefreshTokenLifetime      int32     `json:"refreshTokenLifetime"`
	IDTokenLifetime           int32     `json:"idTokenLifetime"`
	AuthorizationCodeLifetime int32     `json:"authorizationCodeLifetime"`
	IsActive                  bool      `json:"isActive"`
	CreatedBy                 *string   `json:"createdBy,omitempty"`
	CreatedAt                 time.Time `json:"createdAt"`
	UpdatedAt                 time.Time `json:"updatedAt"`
}

// Scope is a grantable OAuth2 scope.
type Scope struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"scopeName"`
	Description *string   `json:"description,omitempty"`
	IsDefault   bool      `json:"isDefault"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ClientScope links a client to a granted scope. Scope carries the
// joined scope row when the grant was loaded through GetClient.
type ClientScope struct {
	ID        uuid.UUID `json:"id"`
	ClientID  uuid.UUID `json:"clientId"`
	ScopeID   uuid.UUID `json:"scopeId"`
	GrantedAt time.Time `json:"grantedAt"`
	GrantedBy *string   `json:"grantedBy,omitempty"`
	Scope     *Scope    `json:"scope,omitempty"`
}

// ClientRedirectURI is a registered redirect URI for a client.
type ClientRedirectURI struct {
	ID          uuid.UUID `json:"id"`
	ClientID    uuid.UUID `json:"clientId"`
	RedirectURI string    `json:"redirectUri"`
	IsPrimary   bool      `json:"isPrimary"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ClientGrantType is a grant type enabled for a client.
type ClientGrantType struct {
	ID        uuid.UUID `json:"id"`
	ClientID  uuid.UUID `json:"clientId"`
	GrantType string    `json:"grantType"`
}

// ClientAggregate is a client together with all of its child rows.
type ClientAggregate struct {
	Client       Client              `json:"client"`
	Scopes       []ClientScope       `json:"scopes"`
	RedirectURIs []ClientRedirectURI `json:"redirectURIs"`
	GrantTypes   []ClientGrantType   `json:"grantTypes"`
}

// ScopeGrant names a scope to grant at client creation time.
type ScopeGrant struct {
	ScopeID   uuid.UUID `json:"scopeId"`
	GrantedBy *string   `json:"grantedBy,omitempty"`
}

// RedirectURIParam names a redirect URI to register at client creation time.
type RedirectURIParam struct {
	RedirectURI string `json:"redirectUri"`
	IsPrimary   bool   `json:"isPrimary"`
}

// CreateClientParams represents parameters for creating a new OAuth2 client.
// Secret is set by the service layer for confidential clients and holds the
// encrypted secret envelope; it is never accepted from API callers.
type CreateClientParams struct {
	Secret                    *string `json:"-"`
	Name                      string  `json:"clientName"`
	Type                      string  `json:"clientType"`
	ApplicationType           string  `json:"applicationType"`
	TokenEndpointAuthMethod   string  `json:"tokenEndpointAuthMethod"`
	Description               *string `json:"clientDescription,omitempty"`
	ClientURI                 *string `json:"clientUri,omitempty"`
	LogoURI                   *string `json:"logoUri,omitempty"`
	TosURI                    *string `json:"tosUri,omitempty"`
	PolicyURI                 *string `json:"policyUri,omitempty"`
	RequirePKCE               *bool   `json:"requirePkce,omitempty"`
	AccessTokenLifetime       *int32  `json:"accessTokenLifetime,omitempty"`
	RefreshTokenLifetime      *int32  `json:"refreshTokenLifetime,omitempty"`
	IDTokenLifetime           *int32  `json:"idTokenLifetime,omitempty"`
	AuthorizationCodeLifetime *int32  `json:"authorizationCodeLifetime,omitempty"`
	CreatedBy                 *string `json:"createdBy,omitempty"`
}

// ClientData bundles a client with the child rows to create alongside it.
// CreateClient persists the whole bundle atomically.
type ClientData struct {
	Client       CreateClientParams `json:"client"`
	Scopes       []ScopeGrant       `json:"scopes,omitempty"`
	RedirectURIs []RedirectURIParam `json:"redirectURIs,omitempty"`
	GrantTypes   []string           `json:"grantTypes,omitempty"`
}

// UpdateClientParams represents parameters for updating an OAuth2 client.
// Nil fields are left unchanged.
type UpdateClientParams struct {
	Name                      *string `json:"clientName,omitempty"`
	TokenEndpointAuthMethod   *string `json:"tokenEndpointAuthMethod,omitempty"`
	Description               *string `json:"clientDescription,omitempty"`
	ClientURI                 *string `json:"clientUri,omitempty"`
	LogoURI                   *string `json:"logoUri,omitempty"`
	TosURI                    *string `json:"tosUri,omitempty"`
	PolicyURI                 *string `json:"policyUri,omitempty"`
	RequirePKCE               *bool   `json:"requirePkce,omitempty"`
	AccessTokenLifetime       *int32  `json:"accessTokenLifetime,omitempty"`
	RefreshTokenLifetime      *int32  `json:"refreshTokenLifetime,omitempty"`
	IDTokenLifetime           *int32  `json:"idTokenLifetime,omitempty"`
	AuthorizationCodeLifetime *int32  `json:"authorizationCodeLifetime,omitempty"`
	IsActive                  *bool   `json:"isActive,omitempty"`
}

// ListClientsParams represents pagination parameters for listing clients
type ListClientsParams struct {
	Page  int32 `json:"page"`
	Limit int32 `json:"limit"`
}

// ListMetadata describes the page a ClientList holds.
type ListMetadata struct {
	ItemsPerPage int32 `json:"itemsPerPage"`
	TotalItems   int64 `json:"totalItems"`
	CurrentPage  int32 `json:"currentPage"`
	TotalPages   int32 `json:"totalPages"`
}

// ClientList is one page of clients plus pagination metadata.
type ClientList struct {
	Data     []Client     `json:"data"`
	Metadata ListMetadata `json:"metadata"`
}

// CreateScopeParams represents parameters for creating a new scope
type CreateScopeParams struct {
	Name        string  `json:"scopeName"`
	Description *string `json:"description,omitempty"`
	IsDefault   bool    `json:"isDefault"`
}
