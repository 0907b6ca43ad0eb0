package graph_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Arthur-Gab/graphql-task-api/internal/testutil"
)

type gqlResponse struct {
	Data   map[string]json.RawMessage `json:"data"`
	Errors []struct {
		Message    string         `json:"message"`
		Extensions map[string]any `json:"extensions"`
	} `json:"errors"`
}

func post(t *testing.T, h *testutil.Harness, token, query string) gqlResponse {
	t.Helper()

	body, err := json.Marshal(map[string]string{"query": query})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/graphql", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", token)
	}

	w := httptest.NewRecorder()
	h.Handler.ServeHTTP(w, req)

	var resp gqlResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestHTTPSignInThenCreateTodo(t *testing.T) {
	h := testutil.NewHarness(t)
	user := h.CreateUser(t, "owner@example.com", "s3cret-pass", "owner")
	token := h.SignIn(t, "owner@example.com", "s3cret-pass")

	resp := post(t, h, token,
		`mutation { createTodo(userId: "`+user.ID+`", title: "over http") { id title } }`)
	require.Empty(t, resp.Errors)

	var todo struct {
		ID    string `json:"id"`
		Title string `json:"title"`
	}
	require.NoError(t, json.Unmarshal(resp.Data["createTodo"], &todo))
	assert.NotEmpty(t, todo.ID)
	assert.Equal(t, "over http", todo.Title)
}

func TestHTTPForbiddenWithoutToken(t *testing.T) {
	h := testutil.NewHarness(t)
	user := h.CreateUser(t, "owner@example.com", "s3cret-pass", "owner")

	resp := post(t, h, "",
		`mutation { createTodo(userId: "`+user.ID+`", title: "nope") { id } }`)
	require.NotEmpty(t, resp.Errors)
	assert.Equal(t, "FORBIDDEN", resp.Errors[0].Extensions["code"])
}

func TestHTTPErrorsCarryNoStackTrace(t *testing.T) {
	h := testutil.NewHarness(t)

	resp := post(t, h, "", `query { user(userId: "missing") { id } }`)
	require.NotEmpty(t, resp.Errors)
	assert.Equal(t, "BAD_USER_INPUT", resp.Errors[0].Extensions["code"])
	assert.NotContains(t, resp.Errors[0].Message, ".go:", "no source locations leak into messages")
}
