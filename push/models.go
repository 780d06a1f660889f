package push

import "time"

// Account is a backend account. Password is write-only: it is sent on
// registration and never echoed back by the server. Token is assigned by
// the server and authenticates subsequent calls.
type Account struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password,omitempty"`
	Email    string `json:"email,omitempty"`
	Token    string `json:"token,omitempty"`
}

// Device is a registered push device. ID, Active and the timestamps are
// server-assigned; Token carries the platform push token and travels as
// registration_id on the wire.
type Device struct {
	ID          string     `json:"id,omitempty"`
	Token       string     `json:"registration_id" validate:"required"`
	Name        string     `json:"name,omitempty"`
	DeviceID    string     `json:"device_id,omitempty"`
	Active      *bool      `json:"active,omitempty"`
	DateCreated *time.Time `json:"date_created,omitempty"`
	DateExpires *time.Time `json:"date_expires,omitempty"`
}

// Token is a whitelist capability token: its bearer may send push messages
// to the owning account without full credentials. On creation the id names
// the issuing device; on list responses it is the token value itself.
type Token struct {
	ID   string `json:"id" validate:"required"`
	Name string `json:"name,omitempty"`
}

// Message is a push message payload. Data is arbitrary nested JSON. URL,
// when set, overrides the client's default message endpoint and is not
// part of the wire payload.
type Message struct {
	Data map[string]any `json:"data" validate:"required"`
	URL  string         `json:"-"`
}
