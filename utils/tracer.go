package utils

import (
	"os"

	"github.com/Luismorlan/feedql/utils/dotenv"
	. "github.com/Luismorlan/feedql/utils/log"
	"github.com/sirupsen/logrus"
	"gopkg.in/DataDog/dd-trace-go.v1/ddtrace/tracer"
)

// ddAgentHostEnv must be set for traces and profiles to be collected, without
// an agent there is nothing to report to.
const ddAgentHostEnv = "DD_AGENT_HOST"

// TracingEnabled returns true iff a Datadog agent is configured.
func TracingEnabled() bool {
	return os.Getenv(ddAgentHostEnv) != ""
}

func ddEnv() string {
	if dotenv.IsProdEnv() {
		return "production"
	}
	return "development"
}

// StartTracer starts the Datadog tracer for the given service. No-op if no
// agent is configured.
func StartTracer(service string) {
	if !TracingEnabled() {
		return
	}
	tracer.Start(
		tracer.WithService(service),
		tracer.WithEnv(ddEnv()),
	)

	Log.WithFields(
		logrus.Fields{"env": ddEnv()},
	).Info("tracer initialized")
}

// Stop tracer, OK to be closed multiple times
func CloseTracer() {
	tracer.Stop()
}
