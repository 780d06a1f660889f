package transport

import "net/http"

// Scheme is the Authorization header scheme.
type Scheme string

const (
	// SchemeToken is the backend's capability token scheme
	// ("Authorization: Token <value>").
	SchemeToken Scheme = "Token"
	// SchemeBearer is standard bearer token authentication.
	SchemeBearer Scheme = "Bearer"
)

// AuthConfig configures request authentication.
type AuthConfig struct {
	// Scheme is the Authorization header scheme.
	Scheme Scheme
	// Token is the credential value.
	Token string
}

// TokenAuth creates a Token-scheme auth config.
func TokenAuth(token string) *AuthConfig {
	return &AuthConfig{Scheme: SchemeToken, Token: token}
}

// BearerAuth creates a Bearer-scheme auth config.
func BearerAuth(token string) *AuthConfig {
	return &AuthConfig{Scheme: SchemeBearer, Token: token}
}

// apply sets the Authorization header on an HTTP request.
func (a *AuthConfig) apply(req *http.Request) {
	if a == nil || a.Token == "" {
		return
	}
	req.Header.Set("Authorization", string(a.Scheme)+" "+a.Token)
}
