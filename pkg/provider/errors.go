package provider

import "encoding/json"

// ErrorCode identifies the validation check that rejected a provider
// configuration.
type ErrorCode string

const (
	ErrCodeMissingIssuer                   ErrorCode = "missing_issuer"
	ErrCodeInvalidIssuerURL                ErrorCode = "invalid_issuer_url"
	ErrCodeMissingAuthorizationEndpoint    ErrorCode = "missing_authorization_endpoint"
	ErrCodeInvalidAuthorizationEndpointURL ErrorCode = "invalid_authorization_endpoint_url"
	ErrCodeMissingTokenEndpoint            ErrorCode = "missing_token_endpoint"
	ErrCodeInvalidTokenEndpointURL         ErrorCode = "invalid_token_endpoint_url"
	ErrCodeMissingUserinfoEndpoint         ErrorCode = "missing_userinfo_endpoint"
	ErrCodeInvalidUserinfoEndpointURL      ErrorCode = "invalid_userinfo_endpoint_url"
	ErrCodeMissingJwksURI                  ErrorCode = "missing_jwks_uri"
	ErrCodeInvalidJwksURI                  ErrorCode = "invalid_jwks_uri"
	ErrCodeEmptyScopes                     ErrorCode = "empty_scopes"
	ErrCodeEmptyClaims                     ErrorCode = "empty_claims"
	ErrCodeMissingOpenIDScope              ErrorCode = "missing_openid_scope"
)

// ConfigurationError is returned by Provider validation. Each validation
// check produces a distinct code so callers can report failures
// deterministically. A zero StatusCode serializes as 400.
type ConfigurationError struct {
	Code        ErrorCode
	Description string
	StatusCode  int
	URI         string
}

func (e *ConfigurationError) Error() string {
	if e.Description != "" {
		return e.Description
	}
	return string(e.Code)
}

// MarshalJSON serializes the error as {error, description, statusCode?, uri?}.
func (e *ConfigurationError) MarshalJSON() ([]byte, error) {
	type response struct {
		Error       string `json:"error"`
		Description string `json:"description"`
		StatusCode  int    `json:"statusCode,omitempty"`
		URI         string `json:"uri,omitempty"`
	}
	return json.Marshal(response{
		Error:       string(e.Code),
		Description: e.Description,
		StatusCode:  e.statusCode(),
		URI:         e.URI,
	})
}

func (e *ConfigurationError) statusCode() int {
	if e.StatusCode == 0 {
		return 400
	}
	return e.StatusCode
}

func newConfigurationError(code ErrorCode, description string, statusCode int) *ConfigurationError {
	return &ConfigurationError{
		Code:        code,
		Description: description,
		StatusCode:  statusCode,
	}
}
