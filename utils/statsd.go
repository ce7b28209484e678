package utils

import (
	"net"
	"os"

	"github.com/DataDog/datadog-go/statsd"
	. "github.com/Luismorlan/feedql/utils/log"
)

const (
	ddDogStatsdPortEnv   = "DD_DOGSTATSD_PORT"
	defaultDogStatsdPort = "8125"
)

// DogStatsdAddr returns the agent's dogstatsd address, empty if no agent is
// configured.
func DogStatsdAddr() string {
	if !TracingEnabled() {
		return ""
	}
	port := os.Getenv(ddDogStatsdPortEnv)
	if port == "" {
		port = defaultDogStatsdPort
	}
	return net.JoinHostPort(os.Getenv(ddAgentHostEnv), port)
}

// NewDogStatsdClient returns a client bound to the agent, or nil if no agent
// is configured or the client cannot be built. The caller closes it.
func NewDogStatsdClient(service string) *statsd.Client {
	addr := DogStatsdAddr()
	if addr == "" {
		return nil
	}
	client, err := statsd.New(addr, statsd.WithTags([]string{"service:" + service}))
	if err != nil {
		Log.Error("fail to create dogstatsd client: ", err)
		return nil
	}
	return client
}
