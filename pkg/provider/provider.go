package provider

import (
	"fmt"
	"net/url"
)

// Options holds the static configuration for an OpenID Connect provider.
// The four endpoint URLs and the scope/claim lists are required; the
// remaining supported-lists receive defaults when left empty (see
// NewProvider).
type Options struct {
	Issuer                string
	AuthorizationEndpoint string
	TokenEndpoint         string
	UserinfoEndpoint      string
	JwksURI               string

	ScopesSupported []string
	ClaimsSupported []string

	// Optional capability lists. Defaults applied when empty:
	//   ResponseTypesSupported:            ["code"]
	//   GrantTypesSupported:               ["authorization_code", "client_credentials", "refresh_token"]
	//   SubjectTypesSupported:             ["pairwise", "public"]
	//   IDTokenSigningAlgValuesSupported:  ["RS256", "ES256"]
	//   TokenEndpointAuthMethodsSupported: ["client_secret_basic"]
	//   CodeChallengeMethodsSupported:     ["S256", "plain"]
	ResponseTypesSupported            []string
	GrantTypesSupported               []string
	SubjectTypesSupported             []string
	IDTokenSigningAlgValuesSupported  []string
	TokenEndpointAuthMethodsSupported []string
	CodeChallengeMethodsSupported     []string
}

// Provider is an immutable OpenID Connect provider configuration. Build
// one with NewProvider at startup, call Validate before serving
// discovery, then treat it as read-only.
type Provider struct {
	options Options

	issuer                string
	authorizationEndpoint string
	tokenEndpoint         string
	userinfoEndpoint      string
	jwksURI               string

	scopesSupported                   []string
	claimsSupported                   []string
	responseTypesSupported            []string
	grantTypesSupported               []string
	subjectTypesSupported             []string
	idTokenSigningAlgValuesSupported  []string
	tokenEndpointAuthMethodsSupported []string
	codeChallengeMethodsSupported     []string
}

// DiscoveryDocument is the published description of the provider's
// endpoints and capabilities, per OpenID Connect Discovery 1.0.
type DiscoveryDocument struct {
	Issuer                            string   `json:"issuer"`
	AuthorizationEndpoint             string   `json:"authorization_endpoint"`
	TokenEndpoint                     string   `json:"token_endpoint"`
	JwksURI                           string   `json:"jwks_uri"`
	UserinfoEndpoint                  string   `json:"userinfo_endpoint"`
	ScopesSupported                   []string `json:"scopes_supported"`
	ClaimsSupported                   []string `json:"claims_supported"`
	ResponseTypesSupported            []string `json:"response_types_supported"`
	GrantTypesSupported               []string `json:"grant_types_supported"`
	SubjectTypesSupported             []string `json:"subject_types_supported"`
	IDTokenSigningAlgValuesSupported  []string `json:"id_token_signing_alg_values_supported"`
	TokenEndpointAuthMethodsSupported []string `json:"token_endpoint_auth_methods_supported"`
	CodeChallengeMethodsSupported     []string `json:"code_challenge_methods_supported"`
}

// NewProvider builds a Provider from the given options, filling every
// empty optional capability list with its documented default. It does
// not validate; call Validate before serving the discovery document.
func NewProvider(options Options) *Provider {
	return &Provider{
		options:                           options,
		issuer:                            options.Issuer,
		authorizationEndpoint:             options.AuthorizationEndpoint,
		tokenEndpoint:                     options.TokenEndpoint,
		userinfoEndpoint:                  options.UserinfoEndpoint,
		jwksURI:                           options.JwksURI,
		scopesSupported:                   options.ScopesSupported,
		claimsSupported:                   options.ClaimsSupported,
		responseTypesSupported:            defaultIfEmpty(options.ResponseTypesSupported, []string{"code"}),
		grantTypesSupported:               defaultIfEmpty(options.GrantTypesSupported, []string{"authorization_code", "client_credentials", "refresh_token"}),
		subjectTypesSupported:             defaultIfEmpty(options.SubjectTypesSupported, []string{"pairwise", "public"}),
		idTokenSigningAlgValuesSupported:  defaultIfEmpty(options.IDTokenSigningAlgValuesSupported, []string{"RS256", "ES256"}),
		tokenEndpointAuthMethodsSupported: defaultIfEmpty(options.TokenEndpointAuthMethodsSupported, []string{"client_secret_basic"}),
		codeChallengeMethodsSupported:     defaultIfEmpty(options.CodeChallengeMethodsSupported, []string{"S256", "plain"}),
	}
}

func defaultIfEmpty(values, defaults []string) []string {
	if len(values) == 0 {
		return defaults
	}
	return values
}

// Validate runs the configuration checks in a fixed order and returns
// the first failure as a *ConfigurationError. The order is part of the
// contract: issuer, authorization endpoint, token endpoint, userinfo
// endpoint and jwks URI are each checked for presence then URL
// validity; then scopes_supported non-empty, claims_supported
// non-empty, and finally the openid scope membership.
func (p *Provider) Validate() error {
	if p.options.Issuer == "" {
		return newConfigurationError(ErrCodeMissingIssuer,
			"The 'issuer' value is missing in the OIDC provider configuration.", 1001)
	}
	if !IsValidURL(p.options.Issuer) {
		return newConfigurationError(ErrCodeInvalidIssuerURL,
			fmt.Sprintf("The provided 'issuer' value (%q) is not a valid URL.", p.options.Issuer), 1002)
	}
	if p.options.AuthorizationEndpoint == "" {
		return newConfigurationError(ErrCodeMissingAuthorizationEndpoint,
			"The 'authorization_endpoint' is missing in the OIDC provider configuration.", 1003)
	}
	if !IsValidURL(p.options.AuthorizationEndpoint) {
		return newConfigurationError(ErrCodeInvalidAuthorizationEndpointURL,
			fmt.Sprintf("The 'authorization_endpoint' value (%q) is not a valid URL.", p.options.AuthorizationEndpoint), 1004)
	}
	if p.options.TokenEndpoint == "" {
		return newConfigurationError(ErrCodeMissingTokenEndpoint,
			"The 'token_endpoint' is missing in the OIDC provider configuration.", 1005)
	}
	if !IsValidURL(p.options.TokenEndpoint) {
		return newConfigurationError(ErrCodeInvalidTokenEndpointURL,
			fmt.Sprintf("The 'token_endpoint' value (%q) is not a valid URL.", p.options.TokenEndpoint), 1006)
	}
	if p.options.UserinfoEndpoint == "" {
		return newConfigurationError(ErrCodeMissingUserinfoEndpoint,
			"The 'userinfo_endpoint' is missing in the OIDC provider configuration.", 1007)
	}
	if !IsValidURL(p.options.UserinfoEndpoint) {
		return newConfigurationError(ErrCodeInvalidUserinfoEndpointURL,
			fmt.Sprintf("The 'userinfo_endpoint' value (%q) is not a valid URL.", p.options.UserinfoEndpoint), 1008)
	}
	if p.options.JwksURI == "" {
		return newConfigurationError(ErrCodeMissingJwksURI,
			"The 'jwks_uri' is missing in the OIDC provider configuration.", 1009)
	}
	if !IsValidURL(p.options.JwksURI) {
		return newConfigurationError(ErrCodeInvalidJwksURI,
			fmt.Sprintf("The 'jwks_uri' value (%q) is not a valid URL.", p.options.JwksURI), 1010)
	}

	// List checks run after all endpoint checks. Emptiness is checked
	// before openid membership so an empty scope list reports
	// empty_scopes, not missing_openid_scope.
	if len(p.scopesSupported) == 0 {
		return newConfigurationError(ErrCodeEmptyScopes,
			"The scopes_supported field requires at least one valid scope entry.", 1011)
	}
	if len(p.claimsSupported) == 0 {
		return newConfigurationError(ErrCodeEmptyClaims,
			"The claims_supported field requires at least one valid claim entry.", 1012)
	}
	if !contains(p.scopesSupported, "openid") {
		return newConfigurationError(ErrCodeMissingOpenIDScope,
			"scopes_supported must include 'openid'.", 1013)
	}

	return nil
}

// DiscoveryDocument projects the provider configuration into the wire
// document. It performs no validation; callers are expected to have run
// Validate first.
func (p *Provider) DiscoveryDocument() DiscoveryDocument {
	return DiscoveryDocument{
		Issuer:                            p.issuer,
		AuthorizationEndpoint:             p.authorizationEndpoint,
		TokenEndpoint:                     p.tokenEndpoint,
		JwksURI:                           p.jwksURI,
		UserinfoEndpoint:                  p.userinfoEndpoint,
		ScopesSupported:                   p.scopesSupported,
		ClaimsSupported:                   p.claimsSupported,
		ResponseTypesSupported:            p.responseTypesSupported,
		GrantTypesSupported:               p.grantTypesSupported,
		SubjectTypesSupported:             p.subjectTypesSupported,
		IDTokenSigningAlgValuesSupported:  p.idTokenSigningAlgValuesSupported,
		TokenEndpointAuthMethodsSupported: p.tokenEndpointAuthMethodsSupported,
		CodeChallengeMethodsSupported:     p.codeChallengeMethodsSupported,
	}
}

// IsValidURL reports whether s parses as an absolute http or https URL.
func IsValidURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return false
	}
	return u.Host != ""
}

func contains(values []string, target string) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}
