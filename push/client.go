package push

import (
	"context"
	"time"

	"github.com/relaypush/relay-go/executor"
	"github.com/relaypush/relay-go/logger"
	"github.com/relaypush/relay-go/transport"
)

// Config configures the push client.
type Config struct {
	// BaseURL is the API root, scheme://host/api/version/.
	BaseURL string `yaml:"base_url" mapstructure:"base_url"`

	// Timeout is the per-exchange timeout of the built-in HTTP client.
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout"`

	// HTTPClient optionally injects the HTTP transport capability
	// (custom TLS, certificate policy, test doubles).
	HTTPClient transport.Doer `yaml:"-" mapstructure:"-"`

	// Executor is the callback context results are delivered on. Defaults
	// to a dedicated serial executor owned (and closed) by the client, so
	// completions never run on the transport goroutine and never run
	// concurrently with each other.
	Executor executor.Executor `yaml:"-" mapstructure:"-"`

	// Logger receives SDK debug logging. Defaults to a no-op.
	Logger *logger.Logger `yaml:"-" mapstructure:"-"`
}

// Client wraps the backend's REST endpoints. It is stateless between calls
// apart from the session account: once RegisterNewUser succeeds (or
// SetAccount is called), the account token authenticates subsequent calls.
//
// The account field is read by concurrent calls but never written by them;
// replacing it mid-flight is the caller's responsibility to serialize.
type Client struct {
	transport *transport.Client
	exec      executor.Executor
	ownsExec  bool
	log       *logger.Logger
	account   *Account
}

// New creates a push client.
func New(cfg Config) (*Client, error) {
	log := cfg.Logger
	if log == nil {
		log = logger.Nop()
	}

	t, err := transport.New(transport.Config{
		BaseURL:    cfg.BaseURL,
		Timeout:    cfg.Timeout,
		HTTPClient: cfg.HTTPClient,
		Logger:     log,
	})
	if err != nil {
		return nil, err
	}

	c := &Client{
		transport: t,
		exec:      cfg.Executor,
		log:       log.WithComponent("push"),
	}
	if c.exec == nil {
		c.exec = executor.NewSerial()
		c.ownsExec = true
	}
	return c, nil
}

// Close releases the client's default executor. It must not be called while
// calls are in flight. A caller-supplied executor is left untouched.
func (c *Client) Close() {
	if c.ownsExec {
		c.exec.(*executor.Serial).Close()
	}
}

// SetAccount installs the session account, typically one persisted from an
// earlier RegisterNewUser. Not synchronized against in-flight calls.
func (c *Client) SetAccount(a *Account) {
	c.account = a
}

// Account returns the session account, or nil.
func (c *Client) Account() *Account {
	return c.account
}

// auth returns the session auth config, or nil when no token is held. A
// missing token never blocks a call; the request simply goes out without
// an Authorization header.
func (c *Client) auth() *transport.AuthConfig {
	if c.account == nil || c.account.Token == "" {
		return nil
	}
	return transport.TokenAuth(c.account.Token)
}

// RegisterNewUser registers an account and, on success, installs it as the
// session account before delivering it to the callback.
func (c *Client) RegisterNewUser(ctx context.Context, p RegisterUserParams, cb func(*Account, error)) {
	dispatch(c, ctx, "register_user",
		func() (transport.Request, error) { return buildAccountCreate(p) },
		func(resp *transport.Response) (*Account, error) {
			a, err := parseAccount(resp)
			if err != nil {
				return nil, err
			}
			c.account = a
			return a, nil
		},
		cb)
}

// RegisterDevice registers a push device under the session account.
func (c *Client) RegisterDevice(ctx context.Context, p RegisterDeviceParams, cb func(*Device, error)) {
	dispatch(c, ctx, "register_device",
		func() (transport.Request, error) { return buildDeviceRegister(p) },
		parseDevice,
		cb)
}

// UpdateDevice partially updates a registered device: only non-nil
// optional fields are sent.
func (c *Client) UpdateDevice(ctx context.Context, p UpdateDeviceParams, cb func(*Device, error)) {
	dispatch(c, ctx, "update_device",
		func() (transport.Request, error) { return buildDeviceUpdate(p) },
		parseDevice,
		cb)
}

// CreateToken issues a whitelist token against the given device.
func (c *Client) CreateToken(ctx context.Context, p CreateTokenParams, cb func(*Token, error)) {
	dispatch(c, ctx, "create_token",
		func() (transport.Request, error) { return buildTokenCreate(p) },
		parseToken,
		cb)
}

// ListTokens lists the account's whitelist tokens. A non-empty id scopes
// the request to that token; the result is still a list (zero or one
// element). The delivered slice is never nil on success.
func (c *Client) ListTokens(ctx context.Context, id string, cb func([]Token, error)) {
	dispatch(c, ctx, "list_tokens",
		func() (transport.Request, error) { return buildTokenList(id) },
		parseTokenList,
		cb)
}

// RevokeToken deletes a whitelist token by id.
func (c *Client) RevokeToken(ctx context.Context, id string, cb func(error)) {
	dispatch(c, ctx, "revoke_token",
		func() (transport.Request, error) { return buildTokenRevoke(id) },
		func(*transport.Response) (struct{}, error) { return struct{}{}, nil },
		func(_ struct{}, err error) { cb(err) })
}

// SendMessage sends a push message. The call is anonymous: no bearer token
// is attached even when a session account is set.
func (c *Client) SendMessage(ctx context.Context, m Message, cb func(*Message, error)) {
	dispatch(c, ctx, "send_message",
		func() (transport.Request, error) { return buildMessageSend(m) },
		parseMessage,
		cb)
}

// PubsubEndpoint discovers the backend's pubsub endpoint JID. Anonymous.
func (c *Client) PubsubEndpoint(ctx context.Context, cb func(string, error)) {
	dispatch(c, ctx, "pubsub_endpoint",
		func() (transport.Request, error) { return buildPubsubGet() },
		parsePubsub,
		cb)
}

// dispatch is the shared request pipeline: build, authenticate, exchange,
// parse, deliver. Construction failures short-circuit to the callback
// context without touching the transport. The calling goroutine is never
// blocked and the callback never runs on the transport goroutine (unless
// the configured executor runs work inline).
func dispatch[T any](c *Client, ctx context.Context, op string, build func() (transport.Request, error), parse func(*transport.Response) (T, error), cb func(T, error)) {
	var zero T

	req, err := build()
	if err != nil {
		c.log.Debug("request rejected", logger.ErrorFields(op, err))
		c.exec.Execute(func() { cb(zero, err) })
		return
	}

	if !req.Anonymous {
		req.Auth = c.auth()
	}

	go func() {
		resp, err := c.transport.Do(ctx, req)
		if err != nil {
			c.exec.Execute(func() { cb(zero, err) })
			return
		}
		v, err := parse(resp)
		if err != nil {
			c.log.Debug("parse failed", logger.ErrorFields(op, err))
			c.exec.Execute(func() { cb(zero, err) })
			return
		}
		c.exec.Execute(func() { cb(v, nil) })
	}()
}
