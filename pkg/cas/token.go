package cas

import "context"

// Token resumes a session from a previously issued session token, usually
// extracted from an earlier logged-in session via UserStatus.Token. The
// token is injected into the jar under the route's cookie name and then
// verified with a status probe; no other network round trip happens.
//
// Values compare with ==; the display form never shows the token.
type Token struct {
	value string
}

// NewToken creates a Token.
func NewToken(value string) Token {
	return Token{value: value}
}

// String returns "token"; the value is never shown.
func (t Token) String() string { return "token" }

func (t Token) execute(ctx context.Context, s *Session, ep *endpoint) (UserStatus, error) {
	s.setSessionCookie(ep, t.value)
	return s.checkStatus(ctx, ep)
}

// Cookie injects a raw cookie value verbatim, exactly like Token. It
// exists as a separate method so callers can state their intent when the
// value came from outside this library (e.g. a browser export) rather
// than from UserStatus.Token.
type Cookie struct {
	value string
}

// NewCookie creates a Cookie.
func NewCookie(value string) Cookie {
	return Cookie{value: value}
}

// String returns "cookie"; the value is never shown.
func (c Cookie) String() string { return "cookie" }

func (c Cookie) execute(ctx context.Context, s *Session, ep *endpoint) (UserStatus, error) {
	s.setSessionCookie(ep, c.value)
	return s.checkStatus(ctx, ep)
}
