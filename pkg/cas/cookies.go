package cas

import (
	"net/http"
	"net/url"
	"strings"
)

// setSessionCookie injects a raw session token into the jar under the
// route's cookie name, scoped to the route's cookie URL.
func (s *Session) setSessionCookie(ep *endpoint, value string) {
	s.jar.SetCookies(ep.cookieURL, []*http.Cookie{{
		Name:  ep.cookieName,
		Value: value,
		Path:  "/",
	}})
}

// cookieHeader rebuilds the Cookie header value the client would send
// for u from the jar's current contents.
func cookieHeader(jar http.CookieJar, u *url.URL) string {
	cookies := jar.Cookies(u)
	pairs := make([]string, 0, len(cookies))
	for _, c := range cookies {
		pairs = append(pairs, c.Name+"="+c.Value)
	}
	return strings.Join(pairs, "; ")
}

// findCookieValue extracts the value of the named cookie from a raw
// Cookie header string: everything after "name=" up to the next ';'
// segment boundary or the end of the string. The second result reports
// whether the name was present at all.
func findCookieValue(raw, name string) (string, bool) {
	i := strings.Index(raw, name)
	if i < 0 {
		return "", false
	}

	start := i + len(name) + 1
	if start > len(raw) {
		return "", false
	}

	rest := raw[start:]
	if j := strings.IndexByte(rest, ';'); j >= 0 {
		rest = rest[:j]
	}
	return rest, true
}
