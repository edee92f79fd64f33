package testutils

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

type TestServer struct {
	*httptest.Server
	t *testing.T
}

func NewTestServer(t *testing.T, handler http.Handler) *TestServer {
	server := httptest.NewServer(handler)
	return &TestServer{
		Server: server,
		t:      t,
	}
}

// Do issues a request with an optional bearer token and JSON body.
func (ts *TestServer) Do(method, path, token string, body interface{}) *http.Response {
	var bodyReader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		require.NoError(ts.t, err)
		bodyReader = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequest(method, ts.URL+path, bodyReader)
	require.NoError(ts.t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(ts.t, err)
	return resp
}

func (ts *TestServer) GET(path, token string) *http.Response {
	return ts.Do("GET", path, token, nil)
}

func (ts *TestServer) POST(path, token string, body interface{}) *http.Response {
	return ts.Do("POST", path, token, body)
}

func (ts *TestServer) PUT(path, token string, body interface{}) *http.Response {
	return ts.Do("PUT", path, token, body)
}

func (ts *TestServer) DELETE(path, token string) *http.Response {
	return ts.Do("DELETE", path, token, nil)
}

// PostForm issues a form-encoded POST, as the login endpoint expects.
func (ts *TestServer) PostForm(path string, values url.Values) *http.Response {
	resp, err := http.Post(ts.URL+path, "application/x-www-form-urlencoded",
		strings.NewReader(values.Encode()))
	require.NoError(ts.t, err)
	return resp
}

// PutRaw issues a PUT with a raw JSON body, for payloads a Go value cannot
// express (e.g. explicit nulls next to absent keys).
func (ts *TestServer) PutRaw(path, token, rawJSON string) *http.Response {
	req, err := http.NewRequest("PUT", ts.URL+path, strings.NewReader(rawJSON))
	require.NoError(ts.t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(ts.t, err)
	return resp
}

func AssertJSONResponse(t *testing.T, resp *http.Response, expectedStatus int, target interface{}) {
	require.Equal(t, expectedStatus, resp.StatusCode)

	if target != nil {
		defer resp.Body.Close()
		err := json.NewDecoder(resp.Body).Decode(target)
		require.NoError(t, err)
	}
}

func AssertErrorResponse(t *testing.T, resp *http.Response, expectedStatus int, expectedMessage string) {
	require.Equal(t, expectedStatus, resp.StatusCode)

	defer resp.Body.Close()
	var errorResp map[string]interface{}
	err := json.NewDecoder(resp.Body).Decode(&errorResp)
	require.NoError(t, err)

	if expectedMessage != "" {
		require.Contains(t, errorResp["error"], expectedMessage)
	}
}
