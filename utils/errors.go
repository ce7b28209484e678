package utils

import (
	"fmt"
)

// Error codes reported in graphql error extensions.
const (
	ErrorUpstreamFetch = "UPSTREAM_FETCH_ERROR"
	ErrorUpstreamShape = "UPSTREAM_SHAPE_ERROR"
)

// UpstreamFetchError is returned when the upstream could not be reached, or
// answered with a non-2xx status or a body that is not JSON.
type UpstreamFetchError struct {
	URL string
	// StatusCode is 0 when no response was received.
	StatusCode int
	Err        error
}

func (e *UpstreamFetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("upstream fetch failed: %s returned status %d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("upstream fetch failed: %s: %v", e.URL, e.Err)
}

func (e *UpstreamFetchError) Unwrap() error {
	return e.Err
}

// Extensions is picked up by graphql-go and attached to the field error.
func (e *UpstreamFetchError) Extensions() map[string]interface{} {
	ext := map[string]interface{}{"code": ErrorUpstreamFetch}
	if e.StatusCode != 0 {
		ext["status"] = e.StatusCode
	}
	return ext
}

// UpstreamShapeError is returned when the upstream JSON does not contain the
// data.children[].data path.
type UpstreamShapeError struct {
	URL  string
	Path string
	Err  error
}

func (e *UpstreamShapeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("unexpected upstream response shape from %s at %s: %v", e.URL, e.Path, e.Err)
	}
	return fmt.Sprintf("unexpected upstream response shape from %s: missing %s", e.URL, e.Path)
}

func (e *UpstreamShapeError) Unwrap() error {
	return e.Err
}

func (e *UpstreamShapeError) Extensions() map[string]interface{} {
	return map[string]interface{}{"code": ErrorUpstreamShape, "path": e.Path}
}
