package transport

// Request describes an outbound HTTP request.
type Request struct {
	// Method is the HTTP method (GET, POST, PUT, DELETE, etc).
	Method string
	// Path is appended to the client's BaseURL. Can be a full URL, in which
	// case BaseURL is ignored.
	Path string
	// Headers are request-specific headers (merged with client defaults).
	Headers map[string]string
	// Query are URL query parameters.
	Query map[string]string
	// Body is the request body. Accepts io.Reader, []byte, or any value
	// that will be JSON-encoded.
	Body any
	// Auth overrides the client-level auth for this request.
	Auth *AuthConfig
	// Anonymous suppresses all authentication for this request, including
	// client-level auth.
	Anonymous bool
}

// Response is the result of an HTTP exchange.
type Response struct {
	// StatusCode is the HTTP status code.
	StatusCode int
	// Headers are the response headers.
	Headers map[string]string
	// Body is the raw response body.
	Body []byte
}

// IsSuccess returns true for status codes below 400.
func (r *Response) IsSuccess() bool {
	return r.StatusCode >= 100 && r.StatusCode < 400
}

// IsError returns true for status codes of 400 and above.
func (r *Response) IsError() bool {
	return r.StatusCode >= 400
}
