package cas

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCredential_Equality(t *testing.T) {
	t.Parallel()

	a := NewCredential("20180000", "password")
	b := NewCredential("20180000", "pass_word")
	c := NewCredential("20170000", "password")
	d := NewCredential("20180000", "password")

	require.NotEqual(t, a, b)
	require.NotEqual(t, a, c)
	require.NotEqual(t, b, c)
	require.Equal(t, a, d)
	require.Equal(t, a, a)
	require.NotEqual(t, a, a.WithRedirectGuard())
}

func TestCredential_StringHidesPassword(t *testing.T) {
	t.Parallel()

	c := NewCredential("20180000", "hunter2")
	require.Equal(t, "credential#20180000", c.String())
	require.NotContains(t, c.String(), "hunter2")
}

// mockPortal is a stateful stand-in for the login form flow: GET serves
// the form until a POST flips it to the logged-in page.
type mockPortal struct {
	mu       sync.Mutex
	loggedIn bool
	lastForm string
	lastCT   string
	lastUA   string
	result   string // page served once logged in
}

func (p *mockPortal) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/tpass/login", func(w http.ResponseWriter, r *http.Request) {
		p.mu.Lock()
		defer p.mu.Unlock()

		switch r.Method {
		case http.MethodGet:
			if p.loggedIn {
				fmt.Fprint(w, p.result)
				return
			}
			fmt.Fprint(w, loginFormPage)
		case http.MethodPost:
			body, _ := io.ReadAll(r.Body)
			p.lastForm = string(body)
			p.lastCT = r.Header.Get("Content-Type")
			p.lastUA = r.Header.Get("User-Agent")
			http.SetCookie(w, &http.Cookie{Name: "CASTGC", Value: "TGT-mock-session-tpass", Path: "/"})
			p.loggedIn = true
		}
	})
	return mux
}

func TestCredential_LoginSucceeds(t *testing.T) {
	t.Parallel()

	portal := &mockPortal{result: activePage}
	srv := httptest.NewServer(portal.handler())
	defer srv.Close()

	s := newTestSession(t)
	ep := newTestEndpoint(t, srv)

	status, err := s.run(context.Background(), NewCredential("20180001", "password"), ep)
	require.NoError(t, err)

	require.True(t, status.IsActive())
	require.Equal(t, "20180001", status.Username())
	require.Equal(t, "TGT-mock-session-tpass", status.Token())

	// The form layout is dictated by the portal's client-side script and
	// must be byte exact.
	wantForm := "rsa=20180001password" + testLT +
		"&ul=8&pl=8&lt=" + testLT + "&execution=e1s1&_eventId=submit"
	require.Equal(t, wantForm, portal.lastForm)
	require.Equal(t, "application/x-www-form-urlencoded", portal.lastCT)
	require.Equal(t, userAgent, portal.lastUA)
}

func TestCredential_BannedAccount(t *testing.T) {
	t.Parallel()

	portal := &mockPortal{result: bannedPage}
	srv := httptest.NewServer(portal.handler())
	defer srv.Close()

	s := newTestSession(t)
	ep := newTestEndpoint(t, srv)

	status, err := s.run(context.Background(), NewCredential("20180001", "password"), ep)
	require.NoError(t, err)

	require.Equal(t, StatusBanned, status.Kind())
	require.Equal(t, "TGT-mock-session-tpass", status.Token())
}

func TestCredential_WrongPassword(t *testing.T) {
	t.Parallel()

	// The portal answers a failed login with the form page again.
	portal := &mockPortal{result: rejectedPage}
	srv := httptest.NewServer(portal.handler())
	defer srv.Close()

	s := newTestSession(t)
	ep := newTestEndpoint(t, srv)

	status, err := s.run(context.Background(), NewCredential("20180001", "wrong"), ep)
	require.NoError(t, err)
	require.True(t, status.IsRejected())
}

func TestCredential_MissingLTIsParsePageError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<html><head><title>maintenance</title></head><body>be right back</body></html>`)
	}))
	defer srv.Close()

	s := newTestSession(t)
	ep := newTestEndpoint(t, srv)

	_, err := s.run(context.Background(), NewCredential("20180001", "password"), ep)

	var parseErr *ParsePageError
	require.ErrorAs(t, err, &parseErr)
	require.Contains(t, parseErr.URL, "/tpass/login")
}

func TestCredential_RedirectGuard(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("/tpass/login", func(w http.ResponseWriter, r *http.Request) {
		// An authenticated session gets bounced off the login form.
		http.Redirect(w, r, "/tpass/home", http.StatusFound)
	})
	mux.HandleFunc("/tpass/home", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, activePage)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	s := newTestSession(t)
	ep := newTestEndpoint(t, srv)

	t.Run("guard on fails fast", func(t *testing.T) {
		_, err := s.run(context.Background(), NewCredential("20180001", "password").WithRedirectGuard(), ep)
		require.ErrorIs(t, err, ErrStatusConflict)
	})

	t.Run("guard off keeps scraping", func(t *testing.T) {
		// Without the guard the redirect target simply has no LT token,
		// which surfaces as a parse failure instead.
		_, err := s.run(context.Background(), NewCredential("20180001", "password"), ep)
		var parseErr *ParsePageError
		require.True(t, errors.As(err, &parseErr))
	})
}
