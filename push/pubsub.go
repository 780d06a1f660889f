package push

import (
	"net/http"

	"github.com/relaypush/relay-go/transport"
)

// buildPubsubGet produces the GET pubsub discovery request. Discovery is
// anonymous.
func buildPubsubGet() (transport.Request, error) {
	return transport.Request{
		Method:    http.MethodGet,
		Path:      resourcePubsub.path(""),
		Anonymous: true,
	}, nil
}

// parsePubsub extracts the pubsub endpoint JID from the response.
func parsePubsub(resp *transport.Response) (string, error) {
	var payload struct {
		JID string `json:"jid"`
	}
	if err := decodeBody(resp, &payload); err != nil {
		return "", err
	}
	if payload.JID == "" {
		return "", transport.NewInvalidResponseError("missing jid")
	}
	return payload.JID, nil
}
