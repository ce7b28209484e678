package model

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestFeedItemDecode(t *testing.T) {
	raw := `{
		"score": 42, "subreddit": "test", "selftext": "", "author": "alice",
		"thumbnail": "self", "permalink": "/r/test/1", "url": "https://example.com",
		"title": "Hello", "num_comments": "3", "ups": 40, "over_18": false,
		"preview": {"images": [{"source": {"url": "https://i.example.com/a.jpg", "width": 800, "height": 600}}]}
	}`
	var item FeedItem
	require.NoError(t, json.Unmarshal([]byte(raw), &item))

	want := FeedItem{
		Score:       NewFlexInt(42),
		Subreddit:   NewFlexString("test"),
		Selftext:    NewFlexString(""),
		Author:      NewFlexString("alice"),
		Thumbnail:   NewFlexString("self"),
		Permalink:   NewFlexString("/r/test/1"),
		Url:         NewFlexString("https://example.com"),
		Title:       NewFlexString("Hello"),
		NumComments: NewFlexInt(3),
		Preview: &Preview{
			Valid: true,
			Images: []PreviewImage{{Source: &ImageSource{
				Url:    NewFlexString("https://i.example.com/a.jpg"),
				Width:  NewFlexInt(800),
				Height: NewFlexInt(600),
			}}},
		},
	}
	if diff := cmp.Diff(want, item); diff != "" {
		t.Errorf("FeedItem mismatch (-want +got):\n%s", diff)
	}
}

func TestFeedItemMistypedPreview(t *testing.T) {
	var item FeedItem
	require.NoError(t, json.Unmarshal([]byte(`{"title": "t", "preview": "nope"}`), &item))
	require.Equal(t, NewFlexString("t"), item.Title)
	require.NotNil(t, item.Preview)
	require.False(t, item.Preview.Valid)

	item = FeedItem{}
	require.NoError(t, json.Unmarshal([]byte(`{"preview": null}`), &item))
	require.Nil(t, item.Preview)
}

func TestListingDecodeKeepsMissingPaths(t *testing.T) {
	var l Listing
	require.NoError(t, json.Unmarshal([]byte(`{}`), &l))
	require.Nil(t, l.Data)

	require.NoError(t, json.Unmarshal([]byte(`{"data": {}}`), &l))
	require.NotNil(t, l.Data)
	require.Nil(t, l.Data.Children)

	require.NoError(t, json.Unmarshal([]byte(`{"data": {"children": []}}`), &l))
	require.NotNil(t, l.Data.Children)
	require.Empty(t, *l.Data.Children)
}

func TestValidateFieldMappings(t *testing.T) {
	require.NoError(t, ValidateFieldMappings())
}

func TestValidateFieldMappingsDetectsDrift(t *testing.T) {
	saved := FeedItemFields
	defer func() { FeedItemFields = saved }()

	FeedItemFields = append([]FieldMapping{}, saved...)
	FeedItemFields = append(FeedItemFields, FieldMapping{Field: "ups", JSONPath: "ups"})
	require.Error(t, ValidateFieldMappings())
}
