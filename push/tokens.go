package push

import (
	"net/http"

	"github.com/relaypush/relay-go/transport"
)

// CreateTokenParams are the inputs to whitelist token issuance. DeviceID
// names the issuing device and travels as apns_device_key on the wire.
type CreateTokenParams struct {
	DeviceID string `json:"apns_device_key" validate:"required"`
	Name     string `json:"name" validate:"omitempty"`
}

// buildTokenCreate produces the POST tokens request.
func buildTokenCreate(p CreateTokenParams) (transport.Request, error) {
	if err := checkParams(p); err != nil {
		return transport.Request{}, err
	}
	body := map[string]any{"apns_device_key": p.DeviceID}
	if p.Name != "" {
		body["name"] = p.Name
	}
	return transport.Request{
		Method: http.MethodPost,
		Path:   resourceTokens.path(""),
		Body:   body,
	}, nil
}

// buildTokenList produces the GET tokens request, scoped to a single token
// when id is non-empty.
func buildTokenList(id string) (transport.Request, error) {
	return transport.Request{
		Method: http.MethodGet,
		Path:   resourceTokens.path(id),
	}, nil
}

// buildTokenRevoke produces the DELETE tokens/{id} request.
func buildTokenRevoke(id string) (transport.Request, error) {
	if id == "" {
		return transport.Request{}, transport.NewInvalidRequestError("token id is required", nil)
	}
	return transport.Request{
		Method: http.MethodDelete,
		Path:   resourceTokens.path(id),
	}, nil
}

// parseToken decodes a single token payload.
func parseToken(resp *transport.Response) (*Token, error) {
	var tok Token
	if err := decodeBody(resp, &tok); err != nil {
		return nil, err
	}
	if err := checkShape(&tok); err != nil {
		return nil, err
	}
	return &tok, nil
}

// parseTokenList decodes a results-wrapped token list.
func parseTokenList(resp *transport.Response) ([]Token, error) {
	return decodeList[Token](resp)
}
