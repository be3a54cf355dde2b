package bigip

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"strings"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maxpoint/icontrol-go/pkg/bigip/internal/mock"
)

// localRoundTripper serves requests straight from a handler, no network.
type localRoundTripper struct {
	handler http.Handler
}

func (l localRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	// A server-side request always has a non-nil Body; client-side requests
	// without a payload do not, so normalize before handing it to the handler.
	if req.Body == nil {
		req.Body = http.NoBody
	}

	w := httptest.NewRecorder()
	l.handler.ServeHTTP(w, req)

	return w.Result(), nil
}

type capturedRequest struct {
	Method string
	Path   string
	Query  string
	Body   string
}

// fakeBigIP captures every request it serves so tests can assert on the exact
// wire traffic, writes included.
type fakeBigIP struct {
	mux      *http.ServeMux
	requests []capturedRequest
}

func newFakeBigIP() *fakeBigIP {
	return &fakeBigIP{mux: http.NewServeMux()}
}

func (f *fakeBigIP) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	body, _ := io.ReadAll(req.Body)
	req.Body = io.NopCloser(bytes.NewReader(body))

	f.requests = append(f.requests, capturedRequest{
		Method: req.Method,
		Path:   req.URL.Path,
		Query:  req.URL.RawQuery,
		Body:   string(body),
	})

	f.mux.ServeHTTP(w, req)
}

func (f *fakeBigIP) handle(pattern string, h http.HandlerFunc) {
	f.mux.HandleFunc(pattern, h)
}

func (f *fakeBigIP) newClient(opts ...Option) *Client {
	opts = append(opts, WithHTTPClient(&http.Client{Transport: localRoundTripper{handler: f}}))
	return NewClient("bigip.test", "admin", "secret", opts...)
}

// writes counts the requests that could mutate server state.
func (f *fakeBigIP) writes() []capturedRequest {
	var w []capturedRequest

	for _, r := range f.requests {
		if r.Method != http.MethodGet {
			w = append(w, r)
		}
	}

	return w
}

func respondJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, body)
}

const notFoundJSON = `{"code": 404, "message": "01020036:3: The requested object was not found.", "errorStack": []}`

func newMockClient(respJSON string, respCode int, opts ...Option) *Client {
	mockCli := &mock.HTTPClient{}
	mockCli.DoFunc = func(*http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode: respCode,
			Body:       io.NopCloser(strings.NewReader(respJSON)),
		}, nil
	}

	opts = append(opts, WithHTTPClient(mockCli))

	return NewClient("bigip.test", "admin", "secret", opts...)
}

func TestRequestHeaders(t *testing.T) {
	t.Parallel()

	f := newFakeBigIP()
	f.handle("/mgmt/tm/ltm/node", func(w http.ResponseWriter, req *http.Request) {
		user, pwd, ok := req.BasicAuth()
		assert.True(t, ok)
		assert.Equal(t, "admin", user)
		assert.Equal(t, "secret", pwd)
		assert.Equal(t, "application/json", req.Header.Get("Content-Type"))

		respondJSON(w, http.StatusOK, `{"items": []}`)
	})

	res, err := f.newClient().GetNodes(context.Background())
	require.NoError(t, err)
	assert.Nil(t, res.APIError())
}

func TestPartitionFilterQuery(t *testing.T) {
	t.Parallel()

	f := newFakeBigIP()
	f.handle("/mgmt/tm/ltm/pool", func(w http.ResponseWriter, req *http.Request) {
		respondJSON(w, http.StatusOK, `{"items": []}`)
	})

	_, err := f.newClient().GetPoolsInPartition(context.Background(), "Dev")
	require.NoError(t, err)

	require.Len(t, f.requests, 1)
	assert.Equal(t, "$filter=partition%20eq%20Dev", f.requests[0].Query)
}

func TestStrictMode(t *testing.T) {
	t.Parallel()

	t.Run("non-2xx is returned as a StatusError", func(t *testing.T) {
		t.Parallel()

		cli := newMockClient(notFoundJSON, http.StatusNotFound, WithStrictErrors())

		res, err := cli.GetNode(context.Background(), "bogus", "")
		require.Error(t, err)
		assert.Nil(t, res)

		var statusErr *StatusError
		require.ErrorAs(t, err, &statusErr)
		assert.Equal(t, http.StatusNotFound, statusErr.StatusCode)
		assert.Contains(t, statusErr.Body, "was not found")
	})

	t.Run("default mode returns the decoded body as data", func(t *testing.T) {
		t.Parallel()

		cli := newMockClient(notFoundJSON, http.StatusNotFound)

		res, err := cli.GetNode(context.Background(), "bogus", "")
		require.NoError(t, err)

		apiErr := res.APIError()
		require.NotNil(t, apiErr)
		assert.Equal(t, 404, apiErr.Code)
	})
}

func TestTransportError(t *testing.T) {
	t.Parallel()

	mockCli := &mock.HTTPClient{}
	mockCli.DoFunc = func(*http.Request) (*http.Response, error) {
		return nil, errors.New("dial tcp: connection refused")
	}

	cli := NewClient("bigip.test", "admin", "secret", WithHTTPClient(mockCli))

	res, err := cli.GetPools(context.Background())
	require.Error(t, err)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, ErrTransport)

	// Strict mode makes no difference for transport failures.
	cli = NewClient("bigip.test", "admin", "secret", WithHTTPClient(mockCli), WithStrictErrors())

	_, err = cli.GetPools(context.Background())
	assert.ErrorIs(t, err, ErrTransport)
}

func TestEmptyResponseBody(t *testing.T) {
	t.Parallel()

	cli := newMockClient("", http.StatusOK)

	res, err := cli.ModifyNode(context.Background(), "n1", "", Attributes{"description": "x"})
	require.NoError(t, err)
	assert.Empty(t, res)
}

func TestUndecodableResponse(t *testing.T) {
	t.Parallel()

	cli := newMockClient("<html>gateway timeout</html>", http.StatusOK)

	res, err := cli.GetPools(context.Background())
	require.Error(t, err)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, errDecodeResponse)
}

func mustUnmarshal(t *testing.T, body string) map[string]any {
	t.Helper()

	var m map[string]any
	require.NoError(t, json.Unmarshal([]byte(body), &m))

	return m
}
