/*
Package cas is a client for the NEU unified identity portal (a CAS-style
single sign-on service), reachable either directly or through the campus
WebVPN proxy.

# Session and Methods

The package is organised around two types:

  - Session: owns the HTTP client and the cookie jar shared by every
    request made through it
  - Method: one of a fixed set of authentication protocols that drive a
    Session to a UserStatus

Create a Session, pick a Method, and run it against one of the two
portal routes:

	session, err := cas.New()
	if err != nil {
		return err
	}

	status, err := session.Login(ctx, cas.NewCredential("20180001", "password"))
	if err != nil {
		return err
	}
	if status.IsActive() {
		fmt.Println(status.Username(), status.Token())
	}

The Method set is closed: Credential (form login), Token and Cookie
(session resumption by cookie injection), and Wechat (out-of-band
approval polled by correlation id). Outside packages cannot add new
Methods; the portal protocol is owned by this package.

# Routes

Login and CheckStatus talk to the portal directly. LoginWebVPN and
CheckStatusWebVPN talk to the same portal through the WebVPN front end,
which keeps its own session cookie. Logging in on both routes is
independent; a WebVPN login normally follows a successful direct login.

# Outcomes

Every Method produces a UserStatus: Active (with username and session
token), NeedReset, Banned, or Rejected. Rejected covers both "wrong
credentials" and "no active session" — the portal gives no signal to
tell them apart, so callers must track which operation they asked for.

# Wechat approval

The Wechat method is a single verify round trip. Callers poll it until
the user approves on their phone; AwaitWechat wraps that loop:

	w := cas.NewWechat()
	fmt.Println("open and approve:", w.AuthURL())

	ctx, cancel := context.WithTimeout(ctx, time.Minute)
	defer cancel()
	status, err := session.AwaitWechat(ctx, w, 2*time.Second)

# WebVPN service access

After a WebVPN login the session client can reach intranet services by
rewriting their URLs with the webvpn package:

	resp, err := session.Client().Get(webvpn.EncryptURL("http://219.216.96.4/eams/homeExt.action"))

The portal pages this package scrapes are an external, uncontrolled
surface. The title strings and field patterns used for classification
are a fixed lookup table reverse engineered from the live portal; when
the portal changes, ParsePageError is the expected failure mode.
*/
package cas
