package model

// Listing is the upstream response envelope:
//
//	{ "data": { "children": [ { "data": <FeedItem> }, ... ] } }
//
// Pointers distinguish a missing path from an empty one.
type Listing struct {
	Data *ListingData `json:"data"`
}

type ListingData struct {
	Children *[]ListingChild `json:"children"`
}

type ListingChild struct {
	Data *FeedItem `json:"data"`
}
