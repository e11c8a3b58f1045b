package cas

import (
	"io"
	"log/slog"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"
)

// Pages the mock portal serves. The titles are the live portal's exact
// strings; everything else is minimal scaffolding around them.
const (
	testLT = "LT-123456-abcdefgh0000-tpass"

	loginFormPage = `<html><head><title>智慧东大--统一身份认证</title></head>
<body><form><input type="hidden" name="lt" value="` + testLT + `"/></form></body></html>`

	activePage = `<html><head><title>Personal Center</title></head>
<body><script>var id_number = "20180001";</script></body></html>`

	rejectedPage = `<html><head><title>智慧东大--统一身份认证</title></head><body></body></html>`

	needResetPage = `<html><head><title>智慧东大</title></head><body></body></html>`

	bannedPage = `<html><head><title>系统提示</title></head><body></body></html>`
)

// newTestSession builds a Session whose debug logging goes nowhere.
func newTestSession(t *testing.T) *Session {
	t.Helper()

	s, err := New(WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
	require.NoError(t, err)
	return s
}

// newTestEndpoint points an endpoint record at a mock portal.
func newTestEndpoint(t *testing.T, srv *httptest.Server) *endpoint {
	t.Helper()

	scope, err := url.Parse(srv.URL + "/tpass/")
	require.NoError(t, err)

	return &endpoint{
		name:       "test",
		loginURL:   srv.URL + "/tpass/login",
		statusURL:  srv.URL + "/tpass/login",
		cookieName: "CASTGC",
		cookieURL:  scope,
		verifyURL:  srv.URL + "/tpass/checkQRCodeScan",
	}
}
