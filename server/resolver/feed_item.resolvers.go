package resolver

import (
	"github.com/Luismorlan/feedql/model"
)

// FeedItemResolver projects a model.FeedItem onto the FeedItem graphql type,
// one method per field listed in model.FeedItemFields. graphql-go refuses to
// parse the schema if a field has no method here.
type FeedItemResolver struct {
	item *model.FeedItem
}

func (r *FeedItemResolver) Score() *int32 {
	return r.item.Score.Ptr()
}

func (r *FeedItemResolver) Subreddit() *string {
	return r.item.Subreddit.Ptr()
}

func (r *FeedItemResolver) Selftext() *string {
	return r.item.Selftext.Ptr()
}

func (r *FeedItemResolver) Author() *string {
	return r.item.Author.Ptr()
}

func (r *FeedItemResolver) Thumbnail() *string {
	return r.item.Thumbnail.Ptr()
}

func (r *FeedItemResolver) Permalink() *string {
	return r.item.Permalink.Ptr()
}

func (r *FeedItemResolver) Url() *string {
	return r.item.Url.Ptr()
}

func (r *FeedItemResolver) Title() *string {
	return r.item.Title.Ptr()
}

func (r *FeedItemResolver) NumComments() *int32 {
	return r.item.NumComments.Ptr()
}

func (r *FeedItemResolver) Preview() *PreviewResolver {
	if r.item.Preview == nil || !r.item.Preview.Valid {
		return nil
	}
	return &PreviewResolver{preview: r.item.Preview}
}

type PreviewResolver struct {
	preview *model.Preview
}

func (r *PreviewResolver) Images() *[]*ImageResolver {
	if r.preview.Images == nil {
		return nil
	}
	res := make([]*ImageResolver, 0, len(r.preview.Images))
	for i := range r.preview.Images {
		res = append(res, &ImageResolver{image: &r.preview.Images[i]})
	}
	return &res
}

type ImageResolver struct {
	image *model.PreviewImage
}

func (r *ImageResolver) Source() *ImageSourceResolver {
	if r.image.Source == nil {
		return nil
	}
	return &ImageSourceResolver{source: r.image.Source}
}

type ImageSourceResolver struct {
	source *model.ImageSource
}

func (r *ImageSourceResolver) Url() *string {
	return r.source.Url.Ptr()
}

func (r *ImageSourceResolver) Width() *int32 {
	return r.source.Width.Ptr()
}

func (r *ImageSourceResolver) Height() *int32 {
	return r.source.Height.Ptr()
}
