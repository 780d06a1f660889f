package push

import (
	"net/http"

	"github.com/relaypush/relay-go/transport"
)

// buildMessageSend produces the POST messages request. The message's URL
// override, when set, replaces the default endpoint. Message sending is
// anonymous: it is typically performed by a third party holding a whitelist
// token rather than the account owner.
func buildMessageSend(m Message) (transport.Request, error) {
	if err := checkParams(&m); err != nil {
		return transport.Request{}, err
	}
	path := resourceMessages.path("")
	if m.URL != "" {
		path = m.URL
	}
	return transport.Request{
		Method:    http.MethodPost,
		Path:      path,
		Body:      map[string]any{"data": m.Data},
		Anonymous: true,
	}, nil
}

// parseMessage decodes the mirrored message echo.
func parseMessage(resp *transport.Response) (*Message, error) {
	var m Message
	if err := decodeBody(resp, &m); err != nil {
		return nil, err
	}
	if err := checkShape(&m); err != nil {
		return nil, err
	}
	return &m, nil
}
