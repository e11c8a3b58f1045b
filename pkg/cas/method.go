package cas

import "context"

// Method is one authentication protocol against a portal route. The set
// of implementations is fixed: Credential, Token, Cookie and Wechat. The
// execute method is unexported on purpose so that packages outside cas
// cannot add protocols — the portal contract is owned here.
type Method interface {
	// String returns a short display form that never contains the
	// password or a raw token value.
	String() string

	execute(ctx context.Context, s *Session, ep *endpoint) (UserStatus, error)
}
