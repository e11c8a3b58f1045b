package cas

import (
	"errors"
	"fmt"
)

// ErrStatusConflict is returned when the session state does not match the
// precondition of the requested login: the portal redirected away from the
// login form, which means a session is already established or mid-flow on
// that route.
var ErrStatusConflict = errors.New("cas: session state conflicts with the requested login")

// ParsePageError is returned when a portal page no longer matches the
// structure this package scrapes. There is no recovery strategy: it means
// the external site changed and the lookup tables need updating.
type ParsePageError struct {
	// URL is the final resolved URL of the page that failed to parse.
	URL string
}

// Error implements the error interface.
func (e *ParsePageError) Error() string {
	return fmt.Sprintf("cas: cannot parse the page at %s", e.URL)
}
