package transport

import (
	"net/http"
	"time"

	"github.com/relaypush/relay-go/logger"
	"github.com/relaypush/relay-go/validation"
)

const defaultTimeout = 30 * time.Second

// Doer executes a single HTTP exchange. It is the injected transport
// capability; callers who need custom TLS or certificate policy supply
// their own *http.Client (or equivalent) here.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Config configures the transport client.
type Config struct {
	// BaseURL is the API root, scheme://host/api/version/.
	BaseURL string `yaml:"base_url" mapstructure:"base_url" validate:"required,url"`

	// Timeout is the default request timeout applied to the built-in HTTP
	// client. Ignored when HTTPClient is supplied. Defaults to 30s.
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout"`

	// Headers are default headers applied to all requests.
	Headers map[string]string `yaml:"headers" mapstructure:"headers"`

	// Auth is the default authentication applied to non-anonymous requests.
	Auth *AuthConfig `yaml:"-" mapstructure:"-"`

	// HTTPClient executes the exchanges. Defaults to a stdlib client with
	// the configured timeout.
	HTTPClient Doer `yaml:"-" mapstructure:"-"`

	// Logger receives per-exchange debug logging. Defaults to a no-op.
	Logger *logger.Logger `yaml:"-" mapstructure:"-"`
}

// ApplyDefaults fills in zero-value fields with sensible defaults.
func (c *Config) ApplyDefaults() {
	if c.Timeout <= 0 {
		c.Timeout = defaultTimeout
	}
	if c.Logger == nil {
		c.Logger = logger.Nop()
	}
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	return validation.Validate(c)
}
