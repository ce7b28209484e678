package model

import (
	"bytes"
	"encoding/json"
)

/*

FeedItem is one post of the upstream listing, restricted to the properties
exposed through graphql. Each json tag is the upstream property name and
matches the graphql field name, see FeedItemFields.

Score: net votes, integer upstream
Subreddit: community name without the "r/" prefix
Selftext: body of a text post, empty for link posts
Author: user name of the poster
Thumbnail: thumbnail url, or a marker such as "self" / "default"
Permalink: path of the discussion page, relative to the upstream host
Url: link target, equals the discussion page for text posts
Title: post title
NumComments: comment count, integer upstream
Preview: optional image previews

Every scalar uses a Flex type so that a missing or mistyped property only
nulls out that field of that item.
*/
type FeedItem struct {
	Score       FlexInt    `json:"score"`
	Subreddit   FlexString `json:"subreddit"`
	Selftext    FlexString `json:"selftext"`
	Author      FlexString `json:"author"`
	Thumbnail   FlexString `json:"thumbnail"`
	Permalink   FlexString `json:"permalink"`
	Url         FlexString `json:"url"`
	Title       FlexString `json:"title"`
	NumComments FlexInt    `json:"num_comments"`
	Preview     *Preview   `json:"preview"`
}

// Preview holds image previews of a post. A preview that fails to decode is
// kept with Valid unset and exposed as null.
type Preview struct {
	Images []PreviewImage `json:"images"`
	Valid  bool           `json:"-"`
}

type PreviewImage struct {
	Source *ImageSource `json:"source"`
}

type ImageSource struct {
	Url    FlexString `json:"url"`
	Width  FlexInt    `json:"width"`
	Height FlexInt    `json:"height"`
}

func (p *Preview) UnmarshalJSON(b []byte) error {
	*p = Preview{}
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		return nil
	}
	// Alias drops the method set, otherwise Unmarshal recurses.
	type preview Preview
	var v preview
	if err := json.Unmarshal(b, &v); err != nil {
		return nil
	}
	*p = Preview(v)
	p.Valid = true
	return nil
}
