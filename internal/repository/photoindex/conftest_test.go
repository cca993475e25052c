package photoindex

import (
	"io"
	"net/http"
	"strings"
	"testing"
)

// mockTransport implements Transport for tests.
type mockTransport struct {
	performFn func(req *http.Request) (*http.Response, error)
	lastReq   *http.Request
	lastBody  string
}

func (m *mockTransport) Perform(req *http.Request) (*http.Response, error) {
	m.lastReq = req
	if req.Body != nil {
		b, _ := io.ReadAll(req.Body)
		m.lastBody = string(b)
	}
	if m.performFn != nil {
		return m.performFn(req)
	}
	return jsonResponse(http.StatusOK, `{}`), nil
}

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Header:     http.Header{"Content-Type": []string{"application/json"}},
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}

func newTestRepo(t *testing.T) (*Repo, *mockTransport) {
	t.Helper()
	mt := &mockTransport{}
	return New(mt, "photos"), mt
}
