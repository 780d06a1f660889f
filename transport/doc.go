// Package transport provides the shared HTTP dispatch layer of the SDK:
// request construction, authentication headers, response capture, and the
// error classification contract used by every endpoint.
//
// The underlying HTTP client is an injected capability (the Doer interface),
// so TLS and certificate policy stay outside this module.
//
//	t, err := transport.New(transport.Config{
//	    BaseURL: "https://push.example.com/api/v1/",
//	    Auth:    transport.TokenAuth("abc123"),
//	})
//
//	resp, err := t.Do(ctx, transport.Request{
//	    Method: http.MethodPost,
//	    Path:   "accounts",
//	    Body:   map[string]string{"username": "alice"},
//	})
package transport
