package push

import (
	"encoding/json"

	"github.com/relaypush/relay-go/transport"
	"github.com/relaypush/relay-go/validation"
)

// Platform identifies the push platform a device registers under.
type Platform string

const (
	// PlatformAPNS is Apple Push Notification service.
	PlatformAPNS Platform = "apns"
	// PlatformGCM is Google Cloud Messaging.
	PlatformGCM Platform = "gcm"
)

// resource is a backend REST resource path, relative to the API root.
type resource string

const (
	resourceAccounts   resource = "accounts"
	resourceDeviceAPNS resource = "device/apns"
	resourceDeviceGCM  resource = "device/gcm"
	resourceTokens     resource = "tokens"
	resourceMessages   resource = "messages"
	resourcePubsub     resource = "pubsub"
)

// path joins the resource with an optional suffix segment.
func (r resource) path(suffix string) string {
	if suffix == "" {
		return string(r)
	}
	return string(r) + "/" + suffix
}

// deviceResource maps a platform to its device resource. APNS is the
// default for an unset platform.
func deviceResource(p Platform) resource {
	if p == PlatformGCM {
		return resourceDeviceGCM
	}
	return resourceDeviceAPNS
}

// checkParams validates request parameters before any network work.
func checkParams(p any) error {
	if err := validation.Validate(p); err != nil {
		return transport.NewInvalidRequestError(err.Error(), err)
	}
	return nil
}

// decodeBody parses a required JSON body into dst. An empty body is a
// NoData error; undecodable JSON is an InvalidJSON error.
func decodeBody(resp *transport.Response, dst any) error {
	if resp == nil || len(resp.Body) == 0 {
		return transport.NewNoDataError()
	}
	if err := json.Unmarshal(resp.Body, dst); err != nil {
		return transport.NewInvalidJSONError(err)
	}
	return nil
}

// checkShape verifies a decoded value against its model constraints.
func checkShape(v any) error {
	if err := validation.Validate(v); err != nil {
		return transport.NewInvalidResponseError(err.Error())
	}
	return nil
}

// resultsPage is the wrapper the backend uses for list payloads.
type resultsPage[T any] struct {
	Results []T `json:"results"`
}

// decodeList parses a list payload wrapped under the results key. Every
// element must satisfy the model constraints; a single malformed element
// fails the whole call. The returned slice is never nil.
func decodeList[T any](resp *transport.Response) ([]T, error) {
	var page resultsPage[T]
	if err := decodeBody(resp, &page); err != nil {
		return nil, err
	}
	if page.Results == nil {
		return nil, transport.NewInvalidResponseError("missing results key")
	}
	for i := range page.Results {
		if err := checkShape(&page.Results[i]); err != nil {
			return nil, err
		}
	}
	return page.Results, nil
}
