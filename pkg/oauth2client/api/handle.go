// Package api exposes the OAuth2 client registry over HTTP.
package api

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/google/uuid"
	"github.com/tendant/simple-oidc/pkg/client"
	"github.com/tendant/simple-oidc/pkg/oauth2client"
)

// Handle serves the OAuth2 client registry endpoints
type Handle struct {
	clientService *oauth2client.ClientService
}

// NewHandle creates a new client registry API handler
func NewHandle(clientService *oauth2client.ClientService) *Handle {
	return &Handle{
		clientService: clientService,
	}
}

// ErrorResponse is the JSON error body returned by every endpoint
type ErrorResponse struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description,omitempty"`
}

// Routes returns a router with all client registry endpoints mounted
func (h *Handle) Routes() chi.Router {
	r := chi.NewRouter()
	r.Post("/", h.CreateClient)
	r.Get("/", h.ListClients)
	r.Route("/{clientId}", func(r chi.Router) {
		r.Get("/", h.GetClient)
		r.Put("/", h.UpdateClient)
		r.Delete("/", h.DeleteClient)
	})
	r.Post("/scopes", h.CreateScope)
	r.Get("/scopes", h.ListScopes)
	return r
}

// CreateClient registers a new client with its scopes, redirect URIs, and
// grant types in one atomic operation. The response carries the plaintext
// secret for confidential clients; it is not retrievable afterwards.
func (h *Handle) CreateClient(w http.ResponseWriter, r *http.Request) {
	var data oauth2client.ClientData
	if err := render.DecodeJSON(r.Body, &data); err != nil {
		slog.Error("Failed to parse client registration request", "error", err)
		badRequest(w, r, "Invalid request body")
		return
	}

	if authUser, ok := client.FromContext(r.Context()); ok {
		data.Client.CreatedBy = &authUser.UserId
		for i := range data.Scopes {
			if data.Scopes[i].GrantedBy == nil {
				data.Scopes[i].GrantedBy = &authUser.UserId
			}
		}
	}

	result, err := h.clientService.CreateClient(r.Context(), data)
	if err != nil {
		slog.Error("Failed to create client", "error", err, "client_name", data.Client.Name)
		writeServiceError(w, r, err)
		return
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, result)
}

// GetClient returns a client with its scopes, redirect URIs, and grant types
func (h *Handle) GetClient(w http.ResponseWriter, r *http.Request) {
	id, ok := clientIDParam(w, r)
	if !ok {
		return
	}

	aggregate, err := h.clientService.GetClient(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	render.JSON(w, r, aggregate)
}

// ListClients returns one page of clients. Query parameters: page, limit.
func (h *Handle) ListClients(w http.ResponseWriter, r *http.Request) {
	params := oauth2client.ListClientsParams{}
	if page, err := strconv.ParseInt(r.URL.Query().Get("page"), 10, 32); err == nil {
		params.Page = int32(page)
	}
	if limit, err := strconv.ParseInt(r.URL.Query().Get("limit"), 10, 32); err == nil {
		params.Limit = int32(limit)
	}

	list, err := h.clientService.ListClients(r.Context(), params)
	if err != nil {
		slog.Error("Failed to list clients", "error", err)
		writeServiceError(w, r, err)
		return
	}

	render.JSON(w, r, list)
}

// UpdateClient applies a partial update to a client
func (h *Handle) UpdateClient(w http.ResponseWriter, r *http.Request) {
	id, ok := clientIDParam(w, r)
	if !ok {
		return
	}

	var params oauth2client.UpdateClientParams
	if err := render.DecodeJSON(r.Body, &params); err != nil {
		slog.Error("Failed to parse client update request", "error", err)
		badRequest(w, r, "Invalid request body")
		return
	}

	updated, err := h.clientService.UpdateClient(r.Context(), id, params)
	if err != nil {
		slog.Error("Failed to update client", "error", err, "client_id", id)
		writeServiceError(w, r, err)
		return
	}

	render.JSON(w, r, updated)
}

// DeleteClient removes a client and all of its child rows
func (h *Handle) DeleteClient(w http.ResponseWriter, r *http.Request) {
	id, ok := clientIDParam(w, r)
	if !ok {
		return
	}

	if err := h.clientService.DeleteClient(r.Context(), id); err != nil {
		slog.Error("Failed to delete client", "error", err, "client_id", id)
		writeServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// CreateScope registers a new grantable scope
func (h *Handle) CreateScope(w http.ResponseWriter, r *http.Request) {
	var params oauth2client.CreateScopeParams
	if err := render.DecodeJSON(r.Body, &params); err != nil {
		slog.Error("Failed to parse scope request", "error", err)
		badRequest(w, r, "Invalid request body")
		return
	}

	scope, err := h.clientService.CreateScope(r.Context(), params)
	if err != nil {
		slog.Error("Failed to create scope", "error", err, "scope_name", params.Name)
		writeServiceError(w, r, err)
		return
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, scope)
}

// ListScopes returns all registered scopes
func (h *Handle) ListScopes(w http.ResponseWriter, r *http.Request) {
	scopes, err := h.clientService.ListScopes(r.Context())
	if err != nil {
		slog.Error("Failed to list scopes", "error", err)
		writeServiceError(w, r, err)
		return
	}

	render.JSON(w, r, scopes)
}

func clientIDParam(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "clientId"))
	if err != nil {
		badRequest(w, r, "Invalid client ID")
		return uuid.Nil, false
	}
	return id, true
}

func badRequest(w http.ResponseWriter, r *http.Request, description string) {
	render.Status(r, http.StatusBadRequest)
	render.JSON(w, r, ErrorResponse{
		Error:            "invalid_request",
		ErrorDescription: description,
	})
}

func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case oauth2client.IsNotFound(err):
		render.Status(r, http.StatusNotFound)
		render.JSON(w, r, ErrorResponse{
			Error:            "not_found",
			ErrorDescription: err.Error(),
		})
	case oauth2client.IsDuplicate(err):
		render.Status(r, http.StatusConflict)
		render.JSON(w, r, ErrorResponse{
			Error:            "conflict",
			ErrorDescription: err.Error(),
		})
	default:
		badRequest(w, r, err.Error())
	}
}
