package push

import (
	"net/http"

	"github.com/relaypush/relay-go/transport"
)

// RegisterUserParams are the inputs to account registration.
type RegisterUserParams struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
	Email    string `json:"email" validate:"omitempty,email"`
}

// buildAccountCreate produces the POST accounts request. The body carries
// exactly username and password, plus email when present.
func buildAccountCreate(p RegisterUserParams) (transport.Request, error) {
	if err := checkParams(p); err != nil {
		return transport.Request{}, err
	}
	body := map[string]any{
		"username": p.Username,
		"password": p.Password,
	}
	if p.Email != "" {
		body["email"] = p.Email
	}
	return transport.Request{
		Method: http.MethodPost,
		Path:   resourceAccounts.path(""),
		Body:   body,
	}, nil
}

// parseAccount decodes an account payload.
func parseAccount(resp *transport.Response) (*Account, error) {
	var a Account
	if err := decodeBody(resp, &a); err != nil {
		return nil, err
	}
	if err := checkShape(&a); err != nil {
		return nil, err
	}
	return &a, nil
}
