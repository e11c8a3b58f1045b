package cas

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"strings"
	"time"
)

// userAgent identifies this library on every request it issues.
const userAgent = "neupass/0.3"

// defaultTimeout bounds a single portal round trip when the caller does
// not override it.
const defaultTimeout = 30 * time.Second

// Session owns one HTTP client and one cookie jar. Every request issued
// through the session shares the jar, so repeated logins accumulate
// cookies; that is deliberate and guards against confusing one route's
// session with the other's. A fresh Session starts with an empty jar.
//
// A Session is not reset automatically. It is expected to be driven by
// one goroutine at a time; concurrent use races on the jar with
// last-write-wins semantics.
type Session struct {
	client *http.Client
	jar    *cookiejar.Jar
	logger *slog.Logger
}

type settings struct {
	transport http.RoundTripper
	timeout   time.Duration
	logger    *slog.Logger
}

// Option customises the session's HTTP client. Cookie handling is fixed
// by the Session and cannot be overridden.
type Option func(*settings)

// WithTransport replaces the underlying round tripper, e.g. to add a
// proxy or TLS configuration.
func WithTransport(rt http.RoundTripper) Option {
	return func(s *settings) { s.transport = rt }
}

// WithTimeout bounds every request issued through the session. Zero
// disables the bound.
func WithTimeout(d time.Duration) Option {
	return func(s *settings) { s.timeout = d }
}

// WithLogger sets the structured logger the session emits debug events
// to. Defaults to slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(s *settings) { s.logger = l }
}

// New builds a Session with an empty cookie jar. It fails only when the
// jar cannot be initialised, which is fatal and not recoverable.
func New(opts ...Option) (*Session, error) {
	cfg := settings{
		timeout: defaultTimeout,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("cas: failed to initialise cookie jar: %w", err)
	}

	return &Session{
		client: &http.Client{
			Transport: cfg.transport,
			Jar:       jar,
			Timeout:   cfg.timeout,
		},
		jar:    jar,
		logger: cfg.logger,
	}, nil
}

// Client returns the session's HTTP client. It shares the session cookie
// jar, so it can reach protected services after a successful login (pair
// it with webvpn.EncryptURL for intranet hosts behind the proxy).
func (s *Session) Client() *http.Client { return s.client }

// Jar returns the shared cookie jar. Handing the jar around shares the
// cookie state, not a copy of it.
func (s *Session) Jar() http.CookieJar { return s.jar }

// Login runs the method against the direct portal route.
func (s *Session) Login(ctx context.Context, m Method) (UserStatus, error) {
	return s.run(ctx, m, endpointDirect)
}

// LoginWebVPN runs the method against the portal through the WebVPN
// proxy. The proxy keeps its own session cookie; logging in here does not
// authenticate the direct route and vice versa.
func (s *Session) LoginWebVPN(ctx context.Context, m Method) (UserStatus, error) {
	return s.run(ctx, m, endpointWebVPN)
}

// CheckStatus probes the direct route for the current session state
// without authenticating. A fresh session yields Rejected.
func (s *Session) CheckStatus(ctx context.Context) (UserStatus, error) {
	return s.checkStatus(ctx, endpointDirect)
}

// CheckStatusWebVPN probes the WebVPN route for the current session
// state without authenticating.
func (s *Session) CheckStatusWebVPN(ctx context.Context) (UserStatus, error) {
	return s.checkStatus(ctx, endpointWebVPN)
}

func (s *Session) run(ctx context.Context, m Method, ep *endpoint) (UserStatus, error) {
	s.logger.Debug("executing auth method",
		slog.String("method", m.String()),
		slog.String("endpoint", ep.name),
	)
	return m.execute(ctx, s, ep)
}

// checkStatus is the shared tail of every method: fetch the protected
// page, read the route's session cookie out of the jar and classify the
// HTML. The cookie may be absent; classification still proceeds with an
// empty token.
func (s *Session) checkStatus(ctx context.Context, ep *endpoint) (UserStatus, error) {
	body, _, err := s.get(ctx, ep.statusURL)
	if err != nil {
		return UserStatus{}, err
	}

	token, _ := findCookieValue(cookieHeader(s.jar, ep.cookieURL), ep.cookieName)

	status := classifyStatus(body, token)
	s.logger.Debug("classified portal response",
		slog.String("endpoint", ep.name),
		slog.String("status", status.String()),
	)
	return status, nil
}

// get issues a GET with the library user agent and returns the body and
// the final resolved URL after redirects.
func (s *Session) get(ctx context.Context, rawURL string) (body, finalURL string, err error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", "", fmt.Errorf("cas: failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", "", fmt.Errorf("cas: request to %s failed: %w", rawURL, err)
	}
	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", "", fmt.Errorf("cas: failed to read response body: %w", err)
	}

	return string(b), resp.Request.URL.String(), nil
}

// postForm submits a pre-encoded form body and discards the response.
func (s *Session) postForm(ctx context.Context, rawURL, form string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, rawURL, strings.NewReader(form))
	if err != nil {
		return fmt.Errorf("cas: failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("User-Agent", userAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("cas: request to %s failed: %w", rawURL, err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	return nil
}
