package push

import (
	"net/http"

	"github.com/relaypush/relay-go/transport"
)

// RegisterDeviceParams are the inputs to device registration. Platform
// defaults to APNS.
type RegisterDeviceParams struct {
	Token    string   `json:"registration_id" validate:"required"`
	Name     string   `json:"name" validate:"omitempty"`
	DeviceID string   `json:"device_id" validate:"omitempty"`
	Platform Platform `json:"-" validate:"omitempty,oneof=apns gcm"`
}

// UpdateDeviceParams are the inputs to a device update. The update is
// partial: only non-nil optional fields are serialized.
type UpdateDeviceParams struct {
	ServerID string   `json:"id" validate:"required"`
	Token    string   `json:"registration_id" validate:"required"`
	Name     *string  `json:"name"`
	DeviceID *string  `json:"device_id"`
	Platform Platform `json:"-" validate:"omitempty,oneof=apns gcm"`
}

// buildDeviceRegister produces the POST device/{platform} request.
func buildDeviceRegister(p RegisterDeviceParams) (transport.Request, error) {
	if err := checkParams(p); err != nil {
		return transport.Request{}, err
	}
	body := map[string]any{"registration_id": p.Token}
	if p.Name != "" {
		body["name"] = p.Name
	}
	if p.DeviceID != "" {
		body["device_id"] = p.DeviceID
	}
	return transport.Request{
		Method: http.MethodPost,
		Path:   deviceResource(p.Platform).path(""),
		Body:   body,
	}, nil
}

// buildDeviceUpdate produces the PUT device/{platform}/{id} request.
func buildDeviceUpdate(p UpdateDeviceParams) (transport.Request, error) {
	if err := checkParams(p); err != nil {
		return transport.Request{}, err
	}
	body := map[string]any{"registration_id": p.Token}
	if p.Name != nil {
		body["name"] = *p.Name
	}
	if p.DeviceID != nil {
		body["device_id"] = *p.DeviceID
	}
	return transport.Request{
		Method: http.MethodPut,
		Path:   deviceResource(p.Platform).path(p.ServerID),
		Body:   body,
	}, nil
}

// parseDevice decodes a device payload.
func parseDevice(resp *transport.Response) (*Device, error) {
	var d Device
	if err := decodeBody(resp, &d); err != nil {
		return nil, err
	}
	if err := checkShape(&d); err != nil {
		return nil, err
	}
	return &d, nil
}
