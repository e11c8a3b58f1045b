package cas

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"time"
)

// wechatAuthURL is the page a user opens in Wechat to approve a login
// identified by a correlation id.
const wechatAuthURL = "https://pass.neu.edu.cn/tpass/qyQrLogin"

// Wechat authenticates through the portal's QR/Wechat approval flow: the
// user opens AuthURL out of band and approves the login on their phone,
// while the caller polls the portal with the same correlation id.
//
// A single execute is one verify round trip, not a loop: it returns
// Rejected while the approval is pending. Use Session.AwaitWechat to poll
// until the user approves. Values compare with ==.
type Wechat struct {
	uuid string
}

// NewWechat creates a Wechat authorization with a fresh correlation id.
func NewWechat() Wechat {
	return Wechat{uuid: newCorrelationID()}
}

// NewWechatWithID reuses an existing correlation id, e.g. when the auth
// URL was already handed to the user by another process. An empty id
// falls back to a fresh one.
func NewWechatWithID(uuid string) Wechat {
	if uuid == "" {
		return NewWechat()
	}
	return Wechat{uuid: uuid}
}

// AuthURL returns the URL the user must open and approve in Wechat. It is
// informational only; the library never requests it.
func (w Wechat) AuthURL() string {
	return fmt.Sprintf("%s?uuid=%s", wechatAuthURL, w.uuid)
}

// String returns "wechat#<uuid>". The correlation id is not a secret.
func (w Wechat) String() string {
	return "wechat#" + w.uuid
}

func (w Wechat) verifyURL(base string) string {
	return fmt.Sprintf("%s?random=%v&uuid=%s", base, rand.Float64(), w.uuid)
}

func (w Wechat) execute(ctx context.Context, s *Session, ep *endpoint) (UserStatus, error) {
	body, _, err := s.get(ctx, w.verifyURL(ep.verifyURL))
	if err != nil {
		return UserStatus{}, err
	}

	// An empty verify body means the user has not approved yet. That is a
	// pending outcome, not an error, and no status probe is issued.
	if len(body) == 0 {
		return UserStatus{kind: StatusRejected}, nil
	}

	return s.checkStatus(ctx, ep)
}

// newCorrelationID builds the 36-character id the portal expects: hex
// digits drawn from the current epoch milliseconds, each mixed with a
// random nibble, with hyphens at positions 8, 13, 18 and 23. The server
// only relies on uniqueness, not on the exact derivation.
func newCorrelationID() string {
	const hexDigits = "0123456789abcdef"

	d := float64(time.Now().UnixMilli())

	var b [36]byte
	for i := range b {
		switch i {
		case 8, 13, 18, 23:
			b[i] = '-'
		default:
			r := int64(d+rand.Float64()*16) % 16
			d = math.Floor(d / 16)
			b[i] = hexDigits[r]
		}
	}
	return string(b[:])
}
