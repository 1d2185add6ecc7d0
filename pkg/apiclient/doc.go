// Package apiclient is the shared HTTP request pipeline for the booking
// backend. Every API module goes through it and inherits its behavior:
// a fixed base URL, a 10 second default timeout, automatic bearer token
// injection, and global unauthorized-response handling.
//
// # Token injection
//
// A TokenSource supplies the current bearer token. The pipeline consults it
// on every outgoing request; a non-empty token is attached verbatim as the
// Authorization header, an empty one means no header. The session store
// satisfies TokenSource by reading its durable storage, so the pipeline
// always sends the persisted token.
//
// # Unauthorized handling
//
// When any response comes back with HTTP 401, the configured unauthorized
// handler runs (the application uses it to clear the persisted token and
// force navigation to the login screen) and the call still fails with an
// error matching ErrUnauthorized. Callers keep responsibility for their own
// user-facing messaging.
//
// # Envelope
//
// The backend wraps every response in a uniform envelope:
//
//	{"code": 0, "message": "ok", "data": ...}
//
// On 2xx the data field is decoded into the caller's type. On any other
// status the call fails with *Error carrying the HTTP status plus the
// envelope's code and message; errors.Is classifies it against
// ErrUnauthorized, ErrConflict and ErrNotFound.
//
// # Usage
//
//	client, err := apiclient.New("https://api.example.com/api",
//		apiclient.WithTokenSource(store),
//		apiclient.WithUnauthorizedHandler(onSessionExpired),
//	)
//
//	cinemas, err := apiclient.Get[[]Cinema](ctx, client, "/cinemas")
package apiclient
