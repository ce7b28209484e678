/*
flag Package set up cli flags shared across services

Usage:

	Flags listed in this package are registered at init time but only parsed
	when the entry point calls Parse, so that test binaries can register their
	own flags first.

	Server options (port, upstream_url, ...) are only applied on top of the
	config file and environment when they are explicitly set on the command
	line, see Overrides.
*/

package flag

import (
	"flag"
	"time"

	"github.com/Luismorlan/feedql/app_config"
)

const (
	APIServer = "api_server"
)

// Names of the flags that map onto server config options.
const (
	PortFlag            = app_config.PortOption
	UpstreamURLFlag     = app_config.UpstreamURLOption
	RequestCountFlag    = app_config.RequestCountOption
	UpstreamTimeoutFlag = app_config.UpstreamTimeoutOption
	UserAgentFlag       = app_config.UserAgentOption
	ExplorerFlag        = app_config.ExplorerOption
)

var (
	IsDevelopment bool
	ServiceName   string
	ConfigPath    string

	// Placeholders only, values are read back as strings in Overrides.
	port            int
	upstreamURL     string
	requestCount    int
	upstreamTimeout time.Duration
	userAgent       string
	explorer        bool
)

func init() {
	flag.BoolVar(&IsDevelopment, "dev", true, "set to true if the current run is for development. default value is true")
	flag.StringVar(&ServiceName, "service", APIServer, "service name reported in logs and traces")
	flag.StringVar(&ConfigPath, "config", "", "path to a yaml server config file")

	defaults := app_config.DefaultServerConfig()
	flag.IntVar(&port, PortFlag, defaults.PORT, "port the graphql server listens on")
	flag.StringVar(&upstreamURL, UpstreamURLFlag, defaults.UPSTREAM_URL, "upstream listing endpoint")
	flag.IntVar(&requestCount, RequestCountFlag, defaults.REQUEST_COUNT, "number of items requested from upstream")
	flag.DurationVar(&upstreamTimeout, UpstreamTimeoutFlag, defaults.UPSTREAM_TIMEOUT, "timeout of a single upstream request, 0 disables it")
	flag.StringVar(&userAgent, UserAgentFlag, defaults.USER_AGENT, "user agent sent to upstream")
	flag.BoolVar(&explorer, ExplorerFlag, defaults.EXPLORER, "serve the interactive graphql explorer")
}

// Parse parses the command line. Must be called from main before flag values
// are read.
func Parse() {
	flag.Parse()
}

// Overrides returns the server option flags that were explicitly set on the
// command line, keyed by flag name, as their string form.
func Overrides() map[string]string {
	res := map[string]string{}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case PortFlag, UpstreamURLFlag, RequestCountFlag, UpstreamTimeoutFlag, UserAgentFlag, ExplorerFlag:
			res[f.Name] = f.Value.String()
		}
	})
	return res
}
