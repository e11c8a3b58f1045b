// Package webvpn rewrites intranet service URLs into the form the campus
// WebVPN front end expects, so an authenticated session can reach hosts
// that are only routable on the university network.
package webvpn

import (
	"crypto/aes"
	"crypto/cipher"
	"encoding/hex"
	"fmt"
	"strings"
)

// Host is the WebVPN front end every rewritten URL goes through.
const Host = "webvpn.neu.edu.cn"

// urlKey is the fixed key the front end uses for hostname obfuscation.
// It doubles as the CFB IV and is prepended (hex encoded) to every
// obfuscated hostname, so this is deliberately not confidentiality —
// only the token format the proxy parses.
var urlKey = []byte("wrdvpnisthebest!")

var hostCipher = func() cipher.Block {
	block, err := aes.NewCipher(urlKey)
	if err != nil {
		panic("webvpn: invalid url key: " + err.Error())
	}
	return block
}()

// EncryptURL maps a plain service URL to its WebVPN form. The scheme is
// inferred: "https://" means https; "http://", "//" or no prefix mean
// http. Only the hostname is obfuscated — the port survives in the path
// prefix ("/<scheme>-<port>/") and the path and query pass through
// untouched. The transform is deterministic: the same input always yields
// the same output.
func EncryptURL(rawURL string) string {
	scheme := "http"
	u := rawURL
	if v, ok := strings.CutPrefix(rawURL, "https://"); ok {
		scheme = "https"
		u = v
	} else if v, ok := strings.CutPrefix(rawURL, "http://"); ok {
		u = v
	} else if v, ok := strings.CutPrefix(rawURL, "//"); ok {
		u = v
	}

	// Split an optional port off the host. Only the part before the query
	// is inspected, but the port is cut from the full remainder so the
	// path and query stay intact.
	pre, _, _ := strings.Cut(u, "?")
	port := ""
	if i := strings.IndexByte(pre, ':'); i >= 0 {
		port = pre[i+1:]
		if j := strings.IndexByte(port, '/'); j >= 0 {
			port = port[:j]
		}
		u = u[:i] + u[i+len(port)+1:]
	}

	var encoded string
	if i := strings.IndexByte(u, '/'); i >= 0 {
		encoded = encryptHost(u[:i]) + u[i:]
	} else {
		encoded = encryptHost(u)
	}

	if port != "" {
		return fmt.Sprintf("https://%s/%s-%s/%s", Host, scheme, port, encoded)
	}
	return fmt.Sprintf("https://%s/%s/%s", Host, scheme, encoded)
}

// encryptHost obfuscates a hostname with AES-128-CFB, keyed and IV'd by
// urlKey, and returns hex(key) + hex(ciphertext) — the token layout the
// front end parses.
func encryptHost(host string) string {
	ciphertext := make([]byte, len(host))
	stream := cipher.NewCFBEncrypter(hostCipher, urlKey)
	stream.XORKeyStream(ciphertext, []byte(host))

	return hex.EncodeToString(urlKey) + hex.EncodeToString(ciphertext)
}
