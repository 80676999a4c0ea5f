// Package server provides HTTP routing, middleware, and the OAuth redirect handler used by the CLI login flow.
//
// # Router Infrastructure
//
// The [Router] interface defines HTTP routing with middleware support.
//
// [Middleware] added first is outermost and sees each request first.
// [RequestLogger] logs each request without its query string.
//
// The [BasicRouter] implementation uses [http.ServeMux] internally with method filtering.
//
// # OAuth Callback Handler
//
// [OAuthHandler] receives the redirect from the SoundCloud connect page.
//
// The handler validates the state parameter when one was issued, exchanges the authorization code through a
// [TokenExchanger], and sends the result through a channel.
//
// It only processes one callback to prevent replay attacks.
//
// # Current Usage
//
// "scx auth login" starts a temporary HTTP server on the configured host and port, opens the connect URL in the
// browser, handles the callback, and shuts down after receiving the token.
package server
