// Package provider validates OpenID Connect provider configuration and
// publishes the discovery document.
//
// The provider configuration is built once at startup from static
// options, validated eagerly, and never mutated afterward. Discovery
// responses are pure projections of the validated configuration.
//
// # Basic Usage
//
//	import "github.com/tendant/simple-oidc/pkg/provider"
//
//	p := provider.NewProvider(provider.Options{
//		Issuer:                "https://auth.example.com",
//		AuthorizationEndpoint: "https://auth.example.com/oauth2/authorize",
//		TokenEndpoint:         "https://auth.example.com/oauth2/token",
//		UserinfoEndpoint:      "https://auth.example.com/oauth2/userinfo",
//		JwksURI:               "https://auth.example.com/oauth2/jwks",
//		ScopesSupported:       []string{"openid", "profile", "email"},
//		ClaimsSupported:       []string{"sub", "name", "email"},
//	})
//
//	if err := p.Validate(); err != nil {
//		// *provider.ConfigurationError carries the failing check's code
//		log.Fatal(err)
//	}
//
//	handler := provider.NewHandler(p)
//	handler.RegisterRoutesWithPrefix(func(pattern string, h http.HandlerFunc) {
//		r.Get(pattern, h)
//	})
//
// # Validation Order
//
// Validate runs its checks in a fixed order and reports the first
// failure: each required endpoint is checked for presence then URL
// validity (issuer, authorization_endpoint, token_endpoint,
// userinfo_endpoint, jwks_uri), then scopes_supported and
// claims_supported are checked for non-emptiness, and finally
// scopes_supported must include "openid". A configuration missing
// everything therefore always reports missing_issuer.
//
// Optional capability lists (response types, grant types, subject
// types, signing algorithms, token endpoint auth methods, PKCE code
// challenge methods) are filled with documented defaults when omitted.
package provider
