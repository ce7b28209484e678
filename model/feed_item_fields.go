package model

import (
	"fmt"
	"reflect"
	"strings"
)

// FieldMapping binds a graphql field to the upstream JSON path it is read
// from, relative to the object holding it.
type FieldMapping struct {
	Field    string
	JSONPath string
}

// FeedItemFields lists every field of the FeedItem graphql type.
var FeedItemFields = []FieldMapping{
	{Field: "score", JSONPath: "score"},
	{Field: "subreddit", JSONPath: "subreddit"},
	{Field: "selftext", JSONPath: "selftext"},
	{Field: "author", JSONPath: "author"},
	{Field: "thumbnail", JSONPath: "thumbnail"},
	{Field: "permalink", JSONPath: "permalink"},
	{Field: "url", JSONPath: "url"},
	{Field: "title", JSONPath: "title"},
	{Field: "num_comments", JSONPath: "num_comments"},
	{Field: "preview", JSONPath: "preview"},
}

var PreviewFields = []FieldMapping{
	{Field: "images", JSONPath: "images"},
}

var PreviewImageFields = []FieldMapping{
	{Field: "source", JSONPath: "source"},
}

var ImageSourceFields = []FieldMapping{
	{Field: "url", JSONPath: "url"},
	{Field: "width", JSONPath: "width"},
	{Field: "height", JSONPath: "height"},
}

// ValidateFieldMappings checks that every mapped JSON path is decoded by the
// corresponding model struct. It returns the first mismatch.
func ValidateFieldMappings() error {
	tables := []struct {
		name     string
		t        reflect.Type
		mappings []FieldMapping
	}{
		{"FeedItem", reflect.TypeOf(FeedItem{}), FeedItemFields},
		{"Preview", reflect.TypeOf(Preview{}), PreviewFields},
		{"PreviewImage", reflect.TypeOf(PreviewImage{}), PreviewImageFields},
		{"ImageSource", reflect.TypeOf(ImageSource{}), ImageSourceFields},
	}
	for _, table := range tables {
		tags := jsonTags(table.t)
		for _, m := range table.mappings {
			if !tags[m.JSONPath] {
				return fmt.Errorf("%s.%s maps to %q which %s does not decode", table.name, m.Field, m.JSONPath, table.t.Name())
			}
		}
	}
	return nil
}

func jsonTags(t reflect.Type) map[string]bool {
	res := map[string]bool{}
	for i := 0; i < t.NumField(); i++ {
		name := strings.Split(t.Field(i).Tag.Get("json"), ",")[0]
		if name != "" && name != "-" {
			res[name] = true
		}
	}
	return res
}
