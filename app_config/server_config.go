package app_config

import (
	"fmt"
	"io/ioutil"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

const (
	DefaultPort            = 4000
	DefaultUpstreamURL     = "https://www.reddit.com/hot/.json"
	DefaultRequestCount    = 20
	DefaultUpstreamTimeout = 10 * time.Second
	DefaultUserAgent       = "feedql/1.0"
)

// This is the server config for the graphql api server.
type ServerConfig struct {
	// Port the http server listens on.
	PORT int `yaml:"PORT"`
	// Listing endpoint wrapped by the items query.
	UPSTREAM_URL string `yaml:"UPSTREAM_URL"`
	// Number of items requested from upstream through the count parameter.
	REQUEST_COUNT int `yaml:"REQUEST_COUNT"`
	// Timeout of a single upstream request, 0 disables it.
	UPSTREAM_TIMEOUT time.Duration `yaml:"UPSTREAM_TIMEOUT"`
	// User-Agent header sent upstream.
	USER_AGENT string `yaml:"USER_AGENT"`
	// Serve the interactive explorer on / and on GET /graphql.
	EXPLORER bool `yaml:"EXPLORER"`
}

// Option names shared by env variables (prefixed with EnvPrefix) and flags.
const (
	EnvPrefix = "FEEDQL_"

	PortOption            = "port"
	UpstreamURLOption     = "upstream_url"
	RequestCountOption    = "request_count"
	UpstreamTimeoutOption = "upstream_timeout"
	UserAgentOption       = "user_agent"
	ExplorerOption        = "explorer"
)

var options = []string{
	PortOption,
	UpstreamURLOption,
	RequestCountOption,
	UpstreamTimeoutOption,
	UserAgentOption,
	ExplorerOption,
}

func DefaultServerConfig() ServerConfig {
	return ServerConfig{
		PORT:             DefaultPort,
		UPSTREAM_URL:     DefaultUpstreamURL,
		REQUEST_COUNT:    DefaultRequestCount,
		UPSTREAM_TIMEOUT: DefaultUpstreamTimeout,
		USER_AGENT:       DefaultUserAgent,
		EXPLORER:         true,
	}
}

// LoadServerConfig resolves the server config with precedence
// flags > env > yaml file at path > defaults. path may be empty. lookupEnv is
// usually os.LookupEnv, flags holds explicitly set flags keyed by option
// name.
func LoadServerConfig(path string, lookupEnv func(string) (string, bool), flags map[string]string) (ServerConfig, error) {
	c := DefaultServerConfig()

	if path != "" {
		yamlFile, err := ioutil.ReadFile(path)
		if err != nil {
			return c, errors.Wrap(err, "fail to read server config")
		}
		if err = yaml.UnmarshalStrict(yamlFile, &c); err != nil {
			return c, errors.Wrapf(err, "fail to parse server config %s", path)
		}
	}

	for _, option := range options {
		if v, ok := lookupEnv(EnvName(option)); ok {
			if err := c.set(option, v); err != nil {
				return c, errors.Wrapf(err, "env %s", EnvName(option))
			}
		}
	}
	for _, option := range options {
		if v, ok := flags[option]; ok {
			if err := c.set(option, v); err != nil {
				return c, errors.Wrapf(err, "flag -%s", option)
			}
		}
	}

	return c, c.Validate()
}

// EnvName returns the env variable overriding option.
func EnvName(option string) string {
	return EnvPrefix + strings.ToUpper(option)
}

func (c *ServerConfig) set(option string, v string) error {
	var err error
	switch option {
	case PortOption:
		c.PORT, err = strconv.Atoi(v)
	case UpstreamURLOption:
		c.UPSTREAM_URL = v
	case RequestCountOption:
		c.REQUEST_COUNT, err = strconv.Atoi(v)
	case UpstreamTimeoutOption:
		c.UPSTREAM_TIMEOUT, err = time.ParseDuration(v)
	case UserAgentOption:
		c.USER_AGENT = v
	case ExplorerOption:
		c.EXPLORER, err = strconv.ParseBool(v)
	default:
		err = fmt.Errorf("unknown option %s", option)
	}
	return err
}

// Validate returns an error describing the first invalid value.
func (c ServerConfig) Validate() error {
	if c.PORT < 1 || c.PORT > 65535 {
		return fmt.Errorf("port %d out of range", c.PORT)
	}
	if c.REQUEST_COUNT < 1 {
		return fmt.Errorf("request count must be positive, got %d", c.REQUEST_COUNT)
	}
	if c.UPSTREAM_TIMEOUT < 0 {
		return fmt.Errorf("upstream timeout must not be negative, got %s", c.UPSTREAM_TIMEOUT)
	}
	u, err := url.Parse(c.UPSTREAM_URL)
	if err != nil {
		return errors.Wrap(err, "invalid upstream url")
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("upstream url must be an absolute http(s) url, got %q", c.UPSTREAM_URL)
	}
	return nil
}

// Addr is the listen address of the http server.
func (c ServerConfig) Addr() string {
	return fmt.Sprintf(":%d", c.PORT)
}
