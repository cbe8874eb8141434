package provider

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// Handler serves the OpenID Connect discovery endpoint for a validated
// Provider.
type Handler struct {
	provider *Provider
}

// NewHandler creates a discovery endpoint handler. The provider must
// already have passed Validate; the handler serves a pure projection
// and never revalidates.
func NewHandler(provider *Provider) *Handler {
	return &Handler{
		provider: provider,
	}
}

// OpenIDConfiguration handles GET /.well-known/openid-configuration
func (h *Handler) OpenIDConfiguration(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", "GET")
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}

	document := h.provider.DiscoveryDocument()

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "public, max-age=3600") // Cache for 1 hour
	w.Header().Set("Access-Control-Allow-Origin", "*")      // Allow CORS for discovery

	if err := json.NewEncoder(w).Encode(document); err != nil {
		slog.Error("Failed to encode discovery document", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
}

// RegisterRoutes registers the discovery route with the provided mux.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/.well-known/openid-configuration", h.OpenIDConfiguration)
}

// RegisterRoutesWithPrefix registers the discovery route with a custom
// registration function, for integration with chi or other routers.
func (h *Handler) RegisterRoutesWithPrefix(registerFunc func(pattern string, handler http.HandlerFunc)) {
	registerFunc("/.well-known/openid-configuration", h.OpenIDConfiguration)
}
