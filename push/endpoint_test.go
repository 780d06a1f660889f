package push

import (
	"encoding/json"
	"net/http"
	"reflect"
	"sort"
	"testing"

	"github.com/relaypush/relay-go/transport"
)

func bodyKeys(t *testing.T, req transport.Request) []string {
	t.Helper()
	data, err := json.Marshal(req.Body)
	if err != nil {
		t.Fatalf("marshal body: %v", err)
	}
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatalf("body is not a JSON object: %s", data)
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func TestBuildAccountCreate_ExactFields(t *testing.T) {
	req, err := buildAccountCreate(RegisterUserParams{Username: "alice", Password: "hunter2"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.Method != http.MethodPost || req.Path != "accounts" {
		t.Errorf("unexpected request line: %s %s", req.Method, req.Path)
	}
	if got := bodyKeys(t, req); !reflect.DeepEqual(got, []string{"password", "username"}) {
		t.Errorf("body keys = %v, want exactly password+username", got)
	}
}

func TestBuildAccountCreate_EmailIncludedWhenPresent(t *testing.T) {
	req, err := buildAccountCreate(RegisterUserParams{
		Username: "alice",
		Password: "hunter2",
		Email:    "alice@example.com",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := bodyKeys(t, req); !reflect.DeepEqual(got, []string{"email", "password", "username"}) {
		t.Errorf("body keys = %v", got)
	}
}

func TestBuildAccountCreate_MissingParams(t *testing.T) {
	_, err := buildAccountCreate(RegisterUserParams{Username: "alice"})
	if err == nil {
		t.Fatal("expected error for missing password")
	}
	if !transport.IsInvalidRequest(err) {
		t.Errorf("expected invalid-request error, got %v", err)
	}
}

func TestBuildDeviceRegister_Paths(t *testing.T) {
	req, err := buildDeviceRegister(RegisterDeviceParams{Token: "pushtoken"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.Path != "device/apns" {
		t.Errorf("default platform path = %q, want device/apns", req.Path)
	}

	req, err = buildDeviceRegister(RegisterDeviceParams{Token: "pushtoken", Platform: PlatformGCM})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.Path != "device/gcm" {
		t.Errorf("gcm path = %q, want device/gcm", req.Path)
	}
}

func TestBuildDeviceUpdate_PartialBody(t *testing.T) {
	name := "kitchen ipad"
	req, err := buildDeviceUpdate(UpdateDeviceParams{
		ServerID: "42",
		Token:    "pushtoken",
		Name:     &name,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.Method != http.MethodPut || req.Path != "device/apns/42" {
		t.Errorf("unexpected request line: %s %s", req.Method, req.Path)
	}
	if got := bodyKeys(t, req); !reflect.DeepEqual(got, []string{"name", "registration_id"}) {
		t.Errorf("body keys = %v, want name+registration_id only", got)
	}
}

func TestBuildDeviceUpdate_AllFields(t *testing.T) {
	name, deviceID := "n", "d"
	req, err := buildDeviceUpdate(UpdateDeviceParams{
		ServerID: "42",
		Token:    "pushtoken",
		Name:     &name,
		DeviceID: &deviceID,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := bodyKeys(t, req); !reflect.DeepEqual(got, []string{"device_id", "name", "registration_id"}) {
		t.Errorf("body keys = %v", got)
	}
}

func TestBuildTokenCreate_WireFieldName(t *testing.T) {
	req, err := buildTokenCreate(CreateTokenParams{DeviceID: "dev-1", Name: "ci"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	data, _ := json.Marshal(req.Body)
	var m map[string]any
	json.Unmarshal(data, &m)
	if m["apns_device_key"] != "dev-1" {
		t.Errorf("apns_device_key = %v", m["apns_device_key"])
	}
	if m["name"] != "ci" {
		t.Errorf("name = %v", m["name"])
	}
}

func TestBuildTokenList_OptionalScope(t *testing.T) {
	req, _ := buildTokenList("")
	if req.Path != "tokens" {
		t.Errorf("path = %q", req.Path)
	}
	req, _ = buildTokenList("tok-1")
	if req.Path != "tokens/tok-1" {
		t.Errorf("scoped path = %q", req.Path)
	}
}

func TestBuildTokenRevoke(t *testing.T) {
	req, err := buildTokenRevoke("tok-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.Method != http.MethodDelete || req.Path != "tokens/tok-1" {
		t.Errorf("unexpected request line: %s %s", req.Method, req.Path)
	}

	if _, err := buildTokenRevoke(""); !transport.IsInvalidRequest(err) {
		t.Errorf("empty id should be rejected locally, got %v", err)
	}
}

func TestBuildMessageSend_Anonymous(t *testing.T) {
	req, err := buildMessageSend(Message{Data: map[string]any{"aps": map[string]any{"alert": "hi"}}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !req.Anonymous {
		t.Error("message sending must be anonymous")
	}
	if req.Path != "messages" {
		t.Errorf("path = %q", req.Path)
	}
}

func TestBuildMessageSend_URLOverride(t *testing.T) {
	req, err := buildMessageSend(Message{
		Data: map[string]any{"k": "v"},
		URL:  "https://other.example.com/api/v1/messages",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.Path != "https://other.example.com/api/v1/messages" {
		t.Errorf("path = %q", req.Path)
	}
}

func TestBuildPubsubGet_Anonymous(t *testing.T) {
	req, _ := buildPubsubGet()
	if !req.Anonymous || req.Method != http.MethodGet || req.Path != "pubsub" {
		t.Errorf("unexpected request: %+v", req)
	}
}

// --- parsing ---

func TestParseAccount_EmptyBodyIsNoData(t *testing.T) {
	_, err := parseAccount(&transport.Response{StatusCode: 200})
	if !transport.IsNoData(err) {
		t.Errorf("expected NoData, got %v", err)
	}
}

func TestParseAccount_MalformedJSON(t *testing.T) {
	_, err := parseAccount(&transport.Response{StatusCode: 200, Body: []byte(`{nope`)})
	if !transport.IsInvalidJSON(err) {
		t.Errorf("expected InvalidJSON, got %v", err)
	}
}

func TestParseAccount_ShapeMismatch(t *testing.T) {
	_, err := parseAccount(&transport.Response{StatusCode: 200, Body: []byte(`{"email":"a@example.com"}`)})
	if !transport.IsInvalidResponse(err) {
		t.Errorf("expected InvalidResponse for missing username, got %v", err)
	}
}

func TestParseTokenList(t *testing.T) {
	resp := &transport.Response{StatusCode: 200, Body: []byte(`{"results":[{"id":"a"},{"id":"b"}]}`)}
	tokens, err := parseTokenList(resp)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tokens) != 2 || tokens[0].ID != "a" || tokens[1].ID != "b" {
		t.Errorf("unexpected tokens: %+v", tokens)
	}
}

func TestParseTokenList_EmptyIsNotNil(t *testing.T) {
	resp := &transport.Response{StatusCode: 200, Body: []byte(`{"results":[]}`)}
	tokens, err := parseTokenList(resp)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tokens == nil {
		t.Fatal("empty list must decode to an empty slice, not nil")
	}
	if len(tokens) != 0 {
		t.Errorf("expected 0 tokens, got %d", len(tokens))
	}
}

func TestParseTokenList_NoPartialSuccess(t *testing.T) {
	resp := &transport.Response{StatusCode: 200, Body: []byte(`{"results":[{"id":"a"},{"name":"missing id"}]}`)}
	_, err := parseTokenList(resp)
	if !transport.IsInvalidResponse(err) {
		t.Errorf("one malformed element must fail the whole call, got %v", err)
	}
}

func TestParseTokenList_MissingResultsKey(t *testing.T) {
	resp := &transport.Response{StatusCode: 200, Body: []byte(`{"tokens":[]}`)}
	_, err := parseTokenList(resp)
	if !transport.IsInvalidResponse(err) {
		t.Errorf("expected InvalidResponse, got %v", err)
	}
}

func TestParsePubsub(t *testing.T) {
	jid, err := parsePubsub(&transport.Response{StatusCode: 200, Body: []byte(`{"jid":"pubsub.push.example.com"}`)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if jid != "pubsub.push.example.com" {
		t.Errorf("jid = %q", jid)
	}

	if _, err := parsePubsub(&transport.Response{StatusCode: 200, Body: []byte(`{}`)}); !transport.IsInvalidResponse(err) {
		t.Errorf("missing jid should be InvalidResponse, got %v", err)
	}
}

func TestParseDevice_Timestamps(t *testing.T) {
	body := []byte(`{"id":"7","registration_id":"tok","date_created":"2026-08-01T10:00:00Z"}`)
	d, err := parseDevice(&transport.Response{StatusCode: 200, Body: body})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.DateCreated == nil || d.DateCreated.Year() != 2026 {
		t.Errorf("date_created not parsed: %+v", d.DateCreated)
	}
	if d.DateExpires != nil {
		t.Error("absent date_expires should stay nil")
	}
}
