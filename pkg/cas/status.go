package cas

import "regexp"

// StatusKind enumerates the outcomes a portal probe can produce.
type StatusKind uint8

const (
	// StatusRejected means authentication failed or no session is active.
	// The portal gives no signal to distinguish the two cases; callers
	// must track which operation produced the value.
	StatusRejected StatusKind = iota

	// StatusActive means the session is authenticated.
	StatusActive

	// StatusNeedReset means the account must reset its password before
	// the session becomes usable.
	StatusNeedReset

	// StatusBanned means the account is locked out by the portal.
	StatusBanned
)

// UserStatus is the outcome of running an authentication method or a
// status probe. Values compare with ==; two statuses are equal when the
// kind, token and username all match.
type UserStatus struct {
	kind     StatusKind
	token    string
	username string
}

// Kind returns which outcome this status represents.
func (s UserStatus) Kind() StatusKind { return s.kind }

// IsActive reports whether the session is authenticated.
func (s UserStatus) IsActive() bool { return s.kind == StatusActive }

// IsRejected reports whether the portal rejected the attempt or no
// session is active.
func (s UserStatus) IsRejected() bool { return s.kind == StatusRejected }

// Username returns the scraped account identifier for active sessions.
// It may be empty if the portal page carried no id_number field.
func (s UserStatus) Username() string { return s.username }

// Token returns the session token read from the cookie jar. It is empty
// for Rejected statuses and may be empty on other kinds if the cookie was
// missing (degraded but non-fatal).
func (s UserStatus) Token() string { return s.token }

// String returns a short display form. It includes the username but never
// the token value.
func (s UserStatus) String() string {
	switch s.kind {
	case StatusActive:
		return "active#" + s.username
	case StatusNeedReset:
		return "need reset"
	case StatusBanned:
		return "banned"
	default:
		return "rejected"
	}
}

var (
	titlePattern    = regexp.MustCompile(`<title>(.+?)</title>`)
	usernamePattern = regexp.MustCompile(`var id_number = "(.+?)"`)
)

// Exact page titles the portal serves for each non-active outcome. This is
// a lookup table reverse engineered from the live portal, not logic.
const (
	titleRejected  = "智慧东大--统一身份认证"
	titleNeedReset = "智慧东大"
	titleBanned    = "系统提示"
)

// classifyStatus maps a portal HTML body and an optional session token to
// a UserStatus. Any title outside the table, or a missing title, counts as
// an active session.
func classifyStatus(html, token string) UserStatus {
	title := ""
	if m := titlePattern.FindStringSubmatch(html); m != nil {
		title = m[1]
	}

	username := ""
	if m := usernamePattern.FindStringSubmatch(html); m != nil {
		username = m[1]
	}

	switch title {
	case titleRejected:
		return UserStatus{kind: StatusRejected}
	case titleNeedReset:
		return UserStatus{kind: StatusNeedReset, token: token}
	case titleBanned:
		return UserStatus{kind: StatusBanned, token: token}
	default:
		return UserStatus{kind: StatusActive, token: token, username: username}
	}
}
