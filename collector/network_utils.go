package collector

import (
	"bytes"
	"context"
	"encoding/json"
	"io/ioutil"
	"reflect"

	clients "github.com/Luismorlan/feedql/collector/clients"
	"github.com/Luismorlan/feedql/utils"
	Logger "github.com/Luismorlan/feedql/utils/log"
	"github.com/pkg/errors"
)

// HttpGetAndParseJsonResponse will make an HTTP GET request to the specified
// URI with params appended as query values. Then, it will parse the body as
// JSON into the specified response.
// Network failures, non 2XX status codes and bodies that are not JSON are
// returned as *utils.UpstreamFetchError. JSON whose structure does not fit res
// is returned as *utils.UpstreamShapeError.
// The response passed in must be a pointer.
func HttpGetAndParseJsonResponse(ctx context.Context, client *clients.HttpClient, uri string, params map[string]string, res interface{}) error {
	if reflect.ValueOf(res).Type().Kind() != reflect.Ptr {
		return errors.New("the passed in variable must be a pointer")
	}

	httpResponse, err := client.GetWithQueryParams(ctx, uri, params)
	if err != nil {
		fetchErr := &utils.UpstreamFetchError{URL: uri, Err: err}
		var statusErr *clients.HttpStatusError
		if errors.As(err, &statusErr) {
			fetchErr.StatusCode = statusErr.StatusCode
		}
		return fetchErr
	}
	defer httpResponse.Body.Close()

	body, err := ioutil.ReadAll(httpResponse.Body)
	if err != nil {
		return &utils.UpstreamFetchError{URL: uri, Err: errors.Wrap(err, "fail to read response body")}
	}

	// Remove BOM before parsing, see https://en.wikipedia.org/wiki/Byte_order_mark for details.
	body = bytes.TrimPrefix(body, []byte("\xef\xbb\xbf"))
	err = json.Unmarshal(body, res)
	if err == nil {
		return nil
	}

	Logger.Log.Errorf("fail to parse response from %s, type: %T, error: %s", uri, res, err)
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return &utils.UpstreamShapeError{URL: uri, Path: typeErr.Field, Err: err}
	}
	return &utils.UpstreamFetchError{URL: uri, Err: errors.Wrap(err, "malformed json")}
}
