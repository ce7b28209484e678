package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Luismorlan/feedql/app_config"
	"github.com/Luismorlan/feedql/collector"
	"github.com/Luismorlan/feedql/server"
	"github.com/Luismorlan/feedql/server/resolver"
	. "github.com/Luismorlan/feedql/utils"
	"github.com/Luismorlan/feedql/utils/dotenv"
	. "github.com/Luismorlan/feedql/utils/flag"
	. "github.com/Luismorlan/feedql/utils/log"
	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const shutdownTimeout = 5 * time.Second

func cleanup() {
	CloseProfiler()
	CloseTracer()
	Log.Info("api server shutdown")
}

func main() {
	Parse()
	if err := dotenv.LoadDotEnvs(); err != nil {
		panic(err)
	}
	// Pick up the service name flag and the dotenv settings.
	InitLogger()

	if ConfigPath == "" {
		ConfigPath = os.Getenv(app_config.EnvPrefix + "CONFIG")
	}
	config, err := app_config.LoadServerConfig(ConfigPath, os.LookupEnv, Overrides())
	if err != nil {
		Log.Fatal("invalid server config: ", err)
	}

	if !IsDevelopment {
		gin.SetMode(gin.ReleaseMode)
	}

	traceService := ""
	if TracingEnabled() {
		traceService = ServiceName
	}
	StartTracer(ServiceName)
	StartProfiler(ServiceName)
	defer cleanup()

	settings := collector.FeedCollectorSettings{
		UpstreamURL:  config.UPSTREAM_URL,
		RequestCount: config.REQUEST_COUNT,
		Timeout:      config.UPSTREAM_TIMEOUT,
		UserAgent:    config.USER_AGENT,
	}
	// Keep Metrics a nil interface when there is no agent.
	if statsd := NewDogStatsdClient(ServiceName); statsd != nil {
		defer statsd.Close()
		settings.Metrics = statsd
	}
	feed := collector.NewFeedCollector(settings)
	schema := server.ParseGraphQLSchema(&resolver.Resolver{Feed: feed})
	router := server.NewRouter(schema, server.RouterOptions{
		Explorer:     config.EXPLORER,
		TraceService: traceService,
	})

	srv := &http.Server{Addr: config.Addr(), Handler: router}

	Log.WithFields(logrus.Fields{
		"addr":          config.Addr(),
		"upstream_url":  config.UPSTREAM_URL,
		"request_count": config.REQUEST_COUNT,
		"explorer":      config.EXPLORER,
	}).Info("Running a GraphQL API server at localhost" + config.Addr() + server.GraphqlPath)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	if err := serve(srv, quit); err != nil {
		Log.Error("api server stopped: ", err)
	}
}

// serve runs srv until it fails or a signal arrives on quit, then drains
// in-flight requests for up to shutdownTimeout. It returns the listen error,
// or the shutdown error after a signal.
func serve(srv *http.Server, quit <-chan os.Signal) error {
	errc := make(chan error, 1)
	go func() {
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-quit:
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return errors.Wrap(err, "api server forced to shutdown")
	}
	return nil
}
