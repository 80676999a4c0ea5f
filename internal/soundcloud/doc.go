// Package soundcloud implements a client for the SoundCloud REST API.
//
// # Request Pipeline
//
// Every operation assembles a fresh [Params] value, picks the target URL, and performs exactly one
// HTTP request. Defaults (client_id, client_secret, redirect_uri) are merged with the operation's
// own values, which win on key collision, and named keys can be excluded afterwards.
//
// # Hosts
//
// Production requests go to soundcloud.com and sandbox requests to sandbox-soundcloud.com.
// API endpoints are served from the api. subdomain; the connect (authorization) page is not.
//
// # Authentication
//
// [Client.AuthorizationURL] produces the connect URL the user visits. The redirect callback
// delivers a code which [Client.ExchangeCodeForToken] trades for an access token.
// [Client.SetAccessToken] installs the token as an "OAuth <token>" Authorization header on
// subsequent calls. [Client.CurrentUser] sends its token as the oauth_token query parameter instead.
//
// # Errors
//
// Transport failures and non-2xx responses are reported as [*RemoteAPIError]. Use
// errors.Is(err, [ErrRemoteAPI]) or errors.As to inspect them.
//
// # Concurrency
//
// The session and sandbox flag are guarded by a mutex. Each operation reads one snapshot of them
// when it starts.
package soundcloud
