package cas

import "net/url"

// endpoint describes one access route to the portal: where to POST the
// login form, where to probe the session state, which cookie carries the
// session token and the URL scope that cookie lives under.
//
// Exactly two records exist (direct and WebVPN) and neither is mutated
// after initialisation.
type endpoint struct {
	name       string
	loginURL   string
	statusURL  string
	cookieName string
	cookieURL  *url.URL
	verifyURL  string
}

var endpointDirect = &endpoint{
	name:       "cas",
	loginURL:   "https://pass.neu.edu.cn/tpass/login",
	statusURL:  "https://pass.neu.edu.cn/tpass/login",
	cookieName: "CASTGC",
	cookieURL:  mustParseURL("https://pass.neu.edu.cn/tpass/"),
	verifyURL:  "https://pass.neu.edu.cn/tpass/checkQRCodeScan",
}

var endpointWebVPN = &endpoint{
	name:       "webvpn",
	loginURL:   "https://webvpn.neu.edu.cn/https/77726476706e69737468656265737421e0f6528f693e6d45300d8db9d6562d/tpass/login",
	statusURL:  "https://webvpn.neu.edu.cn/https/77726476706e69737468656265737421e0f6528f693e6d45300d8db9d6562d/tpass/login",
	cookieName: "wengine_vpn_ticketwebvpn_neu_edu_cn",
	cookieURL:  mustParseURL("https://webvpn.neu.edu.cn/"),
	verifyURL:  "https://webvpn.neu.edu.cn/https/77726476706e69737468656265737421e0f6528f693e6d45300d8db9d6562d/tpass/checkQRCodeScan",
}

func mustParseURL(raw string) *url.URL {
	u, err := url.Parse(raw)
	if err != nil {
		panic("cas: invalid endpoint url: " + err.Error())
	}
	return u
}
