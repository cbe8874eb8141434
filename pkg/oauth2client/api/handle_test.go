package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tendant/simple-oidc/pkg/oauth2client"
)

func newTestHandle(t *testing.T) http.Handler {
	t.Helper()
	repo := oauth2client.NewInMemClientRepository()
	service, err := oauth2client.NewClientService(repo, "test-encryption-key")
	require.NoError(t, err)
	return NewHandle(service).Routes()
}

func doJSON(t *testing.T, handler http.Handler, method, target string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestCreateClientEndpoint(t *testing.T) {
	handler := newTestHandle(t)

	rec := doJSON(t, handler, http.MethodPost, "/", map[string]interface{}{
		"client": map[string]interface{}{
			"clientName": "Backend App",
			"clientType": "confidential",
		},
		"redirectURIs": []map[string]interface{}{
			{"redirectUri": "https://app.example.com/callback", "isPrimary": true},
		},
		"grantTypes": []string{"authorization_code"},
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var result struct {
		Client      oauth2client.Client `json:"client"`
		PlainSecret *string             `json:"plainSecret"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, "Backend App", result.Client.Name)
	require.NotNil(t, result.PlainSecret)
	assert.NotEmpty(t, *result.PlainSecret)

	t.Run("DuplicateNameConflicts", func(t *testing.T) {
		rec := doJSON(t, handler, http.MethodPost, "/", map[string]interface{}{
			"client": map[string]interface{}{"clientName": "Backend App"},
		})
		assert.Equal(t, http.StatusConflict, rec.Code)

		var errResp ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errResp))
		assert.Equal(t, "conflict", errResp.Error)
	})

	t.Run("InvalidBody", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString("{not json"))
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("GetCreatedClient", func(t *testing.T) {
		rec := doJSON(t, handler, http.MethodGet, fmt.Sprintf("/%s", result.Client.ID), nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var aggregate oauth2client.ClientAggregate
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &aggregate))
		assert.Equal(t, result.Client.ID, aggregate.Client.ID)
		assert.Len(t, aggregate.RedirectURIs, 1)
	})
}

func TestGetClientEndpointErrors(t *testing.T) {
	handler := newTestHandle(t)

	t.Run("NotFound", func(t *testing.T) {
		rec := doJSON(t, handler, http.MethodGet, "/0b4f7f6a-9a1e-4b38-b6dd-111111111111", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("InvalidID", func(t *testing.T) {
		rec := doJSON(t, handler, http.MethodGet, "/not-a-uuid", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestListClientsEndpoint(t *testing.T) {
	handler := newTestHandle(t)

	for i := 0; i < 12; i++ {
		rec := doJSON(t, handler, http.MethodPost, "/", map[string]interface{}{
			"client": map[string]interface{}{"clientName": fmt.Sprintf("Client %02d", i)},
		})
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	rec := doJSON(t, handler, http.MethodGet, "/?page=2&limit=5", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var list oauth2client.ClientList
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	assert.Len(t, list.Data, 5)
	assert.EqualValues(t, 12, list.Metadata.TotalItems)
	assert.EqualValues(t, 2, list.Metadata.CurrentPage)
	assert.EqualValues(t, 3, list.Metadata.TotalPages)
}

func TestUpdateAndDeleteClientEndpoints(t *testing.T) {
	handler := newTestHandle(t)

	rec := doJSON(t, handler, http.MethodPost, "/", map[string]interface{}{
		"client": map[string]interface{}{"clientName": "Mutable App"},
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var result struct {
		Client oauth2client.Client `json:"client"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	target := fmt.Sprintf("/%s", result.Client.ID)

	t.Run("Update", func(t *testing.T) {
		rec := doJSON(t, handler, http.MethodPut, target, map[string]interface{}{
			"clientName": "Renamed App",
		})
		require.Equal(t, http.StatusOK, rec.Code)

		var updated oauth2client.Client
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
		assert.Equal(t, "Renamed App", updated.Name)
	})

	t.Run("UpdateNotFound", func(t *testing.T) {
		rec := doJSON(t, handler, http.MethodPut, "/0b4f7f6a-9a1e-4b38-b6dd-222222222222", map[string]interface{}{
			"clientName": "Ghost",
		})
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("Delete", func(t *testing.T) {
		rec := doJSON(t, handler, http.MethodDelete, target, nil)
		assert.Equal(t, http.StatusNoContent, rec.Code)

		rec = doJSON(t, handler, http.MethodDelete, target, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestScopeEndpoints(t *testing.T) {
	handler := newTestHandle(t)

	rec := doJSON(t, handler, http.MethodPost, "/scopes", map[string]interface{}{
		"scopeName": "openid",
		"isDefault": true,
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	t.Run("DuplicateConflicts", func(t *testing.T) {
		rec := doJSON(t, handler, http.MethodPost, "/scopes", map[string]interface{}{
			"scopeName": "openid",
		})
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("List", func(t *testing.T) {
		rec := doJSON(t, handler, http.MethodGet, "/scopes", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var scopes []oauth2client.Scope
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &scopes))
		require.Len(t, scopes, 1)
		assert.Equal(t, "openid", scopes[0].Name)
	})
}
