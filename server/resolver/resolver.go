package resolver

import (
	"context"

	"github.com/Luismorlan/feedql/model"
)

// FeedSource produces the items of the upstream listing. One call must issue
// one upstream request, results are never shared between calls.
type FeedSource interface {
	CollectFeedItems(ctx context.Context) ([]*model.FeedItem, error)
}

// Resolver is the graphql root value. It is built once and never mutated.
type Resolver struct {
	Feed FeedSource
}
