package collector

import (
	"context"
	"net/http"
	"strconv"
	"time"

	clients "github.com/Luismorlan/feedql/collector/clients"
	"github.com/Luismorlan/feedql/model"
	"github.com/Luismorlan/feedql/utils"
	Logger "github.com/Luismorlan/feedql/utils/log"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const (
	countParam = "count"

	childrenPath  = "data.children"
	childDataPath = "data.children[].data"
)

// Datadog metrics reported once per CollectFeedItems call.
const (
	DDOG_UPSTREAM_FETCH_COUNTER = "feedql.upstream.fetch"
	DDOG_UPSTREAM_FETCH_LATENCY = "feedql.upstream.fetch.latency"

	OutcomeOK         = "ok"
	OutcomeFetchError = "upstream_fetch_error"
	OutcomeShapeError = "upstream_shape_error"
)

// MetricsReporter is the subset of *statsd.Client used by the collector.
type MetricsReporter interface {
	Incr(name string, tags []string, rate float64) error
	Timing(name string, value time.Duration, tags []string, rate float64) error
}

// FeedCollectorSettings configures where and how a FeedCollector reads the
// upstream listing.
type FeedCollectorSettings struct {
	UpstreamURL  string
	RequestCount int
	// Zero means no timeout.
	Timeout   time.Duration
	UserAgent string
	// Optional, nothing is reported when nil.
	Metrics MetricsReporter
}

// FeedCollector fetches the upstream listing and flattens it into feed items.
// It holds no mutable state and is safe for concurrent use.
type FeedCollector struct {
	client   *clients.HttpClient
	settings FeedCollectorSettings
}

func NewFeedCollector(settings FeedCollectorSettings) *FeedCollector {
	header := http.Header{}
	header.Set("Content-Type", "application/json")
	if settings.UserAgent != "" {
		header.Set("User-Agent", settings.UserAgent)
	}
	return &FeedCollector{
		client:   clients.NewHttpClient(header, settings.Timeout),
		settings: settings,
	}
}

// CollectFeedItems issues exactly one upstream request and returns the items
// under data.children[].data in upstream order. ctx cancels the request.
func (c *FeedCollector) CollectFeedItems(ctx context.Context) ([]*model.FeedItem, error) {
	uri := c.settings.UpstreamURL
	params := map[string]string{countParam: strconv.Itoa(c.settings.RequestCount)}

	start := time.Now()
	items, err := c.collect(ctx, uri, params)
	c.reportResultState(err, time.Since(start))
	if err != nil {
		return nil, err
	}

	Logger.Log.WithFields(logrus.Fields{
		"upstream_url": uri,
		"item_count":   len(items),
	}).Debug("collected feed items")
	return items, nil
}

func (c *FeedCollector) collect(ctx context.Context, uri string, params map[string]string) ([]*model.FeedItem, error) {
	var listing model.Listing
	if err := HttpGetAndParseJsonResponse(ctx, c.client, uri, params, &listing); err != nil {
		return nil, err
	}
	return flattenListing(uri, &listing)
}

// OutcomeOf classifies the error returned by CollectFeedItems.
func OutcomeOf(err error) string {
	var shapeErr *utils.UpstreamShapeError
	switch {
	case err == nil:
		return OutcomeOK
	case errors.As(err, &shapeErr):
		return OutcomeShapeError
	default:
		return OutcomeFetchError
	}
}

// Report fetch outcome and latency to datadog.
func (c *FeedCollector) reportResultState(err error, latency time.Duration) {
	if c.settings.Metrics == nil {
		return
	}
	tags := []string{"outcome:" + OutcomeOf(err)}
	if err := c.settings.Metrics.Incr(DDOG_UPSTREAM_FETCH_COUNTER, tags, 1); err != nil {
		Logger.Log.Infoln("cannot report fetch outcome")
	}
	if err := c.settings.Metrics.Timing(DDOG_UPSTREAM_FETCH_LATENCY, latency, tags, 1); err != nil {
		Logger.Log.Infoln("cannot report fetch latency")
	}
}

func flattenListing(uri string, listing *model.Listing) ([]*model.FeedItem, error) {
	if listing.Data == nil || listing.Data.Children == nil {
		return nil, &utils.UpstreamShapeError{URL: uri, Path: childrenPath}
	}

	children := *listing.Data.Children
	items := make([]*model.FeedItem, 0, len(children))
	for _, child := range children {
		if child.Data == nil {
			return nil, &utils.UpstreamShapeError{URL: uri, Path: childDataPath}
		}
		items = append(items, child.Data)
	}
	return items, nil
}
