package resolver

import (
	"context"

	Logger "github.com/Luismorlan/feedql/utils/log"
	"github.com/sirupsen/logrus"
)

// Items resolves Query.items. Upstream failures are returned as is so that
// graphql-go reports them as an error on this field with data.items = null.
func (r *Resolver) Items(ctx context.Context) (*[]*FeedItemResolver, error) {
	items, err := r.Feed.CollectFeedItems(ctx)
	if err != nil {
		Logger.Log.WithFields(logrus.Fields{"field": "items"}).Error("fail to resolve items: ", err)
		return nil, err
	}

	res := make([]*FeedItemResolver, 0, len(items))
	for _, item := range items {
		res = append(res, &FeedItemResolver{item: item})
	}
	return &res, nil
}
