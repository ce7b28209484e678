package clients

import (
	"context"
	"fmt"
	"io"
	"io/ioutil"
	"net/http"
	"time"

	Logger "github.com/Luismorlan/feedql/utils/log"
	"github.com/pkg/errors"
)

// Longest response body excerpt kept on non-2xx errors.
const maxErrorBodyBytes = 512

type HttpClient struct {
	header http.Header

	client *http.Client
}

// HttpStatusError is returned for any response with a status code outside
// 2XX. The response body is already consumed and closed.
type HttpStatusError struct {
	StatusCode int
	Body       string
}

func (e *HttpStatusError) Error() string {
	return fmt.Sprintf("non-200 http code: %d", e.StatusCode)
}

func NewDefaultHttpClient() *HttpClient {
	return &HttpClient{header: http.Header{}, client: &http.Client{}}
}

// NewHttpClient returns a client sending header on every request. A zero
// timeout keeps the net/http default of no timeout.
func NewHttpClient(header http.Header, timeout time.Duration) *HttpClient {
	return &HttpClient{header: header, client: &http.Client{Timeout: timeout}}
}

func (c *HttpClient) Get(ctx context.Context, uri string) (*http.Response, error) {
	return c.GetWithQueryParams(ctx, uri, nil)
}

// This method takes in an additional map from query key to query value, which
// will be appended to query uri as ?${KEY}=${VALUE}. Existing query values of
// uri are kept. The caller owns the body of the returned response.
func (c *HttpClient) GetWithQueryParams(ctx context.Context, uri string, params map[string]string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, uri, nil)
	if err != nil {
		return nil, errors.Wrap(err, "fail to build request")
	}
	req.Header = c.header.Clone()
	if len(params) > 0 {
		q := req.URL.Query()
		for k, v := range params {
			q.Set(k, v)
		}
		req.URL.RawQuery = q.Encode()
	}

	res, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	if IsNon200HttpResponse(res) {
		defer res.Body.Close()
		return nil, newHttpStatusError(res)
	}
	return res, nil
}

func newHttpStatusError(res *http.Response) *HttpStatusError {
	body, _ := ioutil.ReadAll(io.LimitReader(res.Body, maxErrorBodyBytes))
	Logger.Log.WithField("status", res.StatusCode).Errorln("non-200 response body is: ", string(body))
	return &HttpStatusError{StatusCode: res.StatusCode, Body: string(body)}
}

func IsNon200HttpResponse(res *http.Response) bool {
	return res.StatusCode < 200 || res.StatusCode >= 300
}
