package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/Luismorlan/feedql/model"
	"github.com/Luismorlan/feedql/server/middlewares"
	"github.com/Luismorlan/feedql/server/resolver"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

type staticFeed []*model.FeedItem

func (f staticFeed) CollectFeedItems(ctx context.Context) ([]*model.FeedItem, error) {
	return f, nil
}

func newTestRouter(explorer bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	schema := ParseGraphQLSchema(&resolver.Resolver{Feed: staticFeed{
		{Title: model.NewFlexString("hello"), Score: model.NewFlexInt(3)},
	}})
	return NewRouter(schema, RouterOptions{Explorer: explorer})
}

func serve(router http.Handler, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

type itemsResponse struct {
	Data struct {
		Items []struct {
			Title string `json:"title"`
			Score int    `json:"score"`
		} `json:"items"`
	} `json:"data"`
	Errors []json.RawMessage `json:"errors"`
}

func TestPostGraphql(t *testing.T) {
	router := newTestRouter(true)

	req := httptest.NewRequest(http.MethodPost, GraphqlPath, strings.NewReader(`{"query":"{ items { title score } }"}`))
	req.Header.Set("Content-Type", "application/json")
	w := serve(router, req)
	require.Equal(t, http.StatusOK, w.Code)

	var resp itemsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Empty(t, resp.Errors)
	require.Len(t, resp.Data.Items, 1)
	require.Equal(t, "hello", resp.Data.Items[0].Title)
	require.Equal(t, 3, resp.Data.Items[0].Score)
}

func TestGetGraphqlWithQuery(t *testing.T) {
	router := newTestRouter(true)

	q := url.Values{}
	q.Set("query", "query Feed { items { title } }")
	q.Set("operationName", "Feed")
	q.Set("variables", "{}")
	w := serve(router, httptest.NewRequest(http.MethodGet, GraphqlPath+"?"+q.Encode(), nil))
	require.Equal(t, http.StatusOK, w.Code)

	var resp itemsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Data.Items, 1)
	require.Equal(t, "hello", resp.Data.Items[0].Title)
}

func TestGetGraphqlBadVariables(t *testing.T) {
	router := newTestRouter(true)

	q := url.Values{}
	q.Set("query", "{ items { title } }")
	q.Set("variables", "[1]")
	w := serve(router, httptest.NewRequest(http.MethodGet, GraphqlPath+"?"+q.Encode(), nil))
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGraphqlValidationError(t *testing.T) {
	router := newTestRouter(true)

	req := httptest.NewRequest(http.MethodPost, GraphqlPath, strings.NewReader(`{"query":"{ items { ups } }"}`))
	w := serve(router, req)
	require.Equal(t, http.StatusOK, w.Code)

	var resp itemsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Errors)
}

func TestExplorer(t *testing.T) {
	router := newTestRouter(true)

	w := serve(router, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Header().Get("Content-Type"), "text/html")
	require.Contains(t, w.Body.String(), GraphqlPath)

	req := httptest.NewRequest(http.MethodGet, GraphqlPath, nil)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")
	w = serve(router, req)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Header().Get("Content-Type"), "text/html")

	w = serve(router, httptest.NewRequest(http.MethodGet, GraphqlPath, nil))
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestExplorerDisabled(t *testing.T) {
	router := newTestRouter(false)

	w := serve(router, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusNotFound, w.Code)

	req := httptest.NewRequest(http.MethodGet, GraphqlPath, nil)
	req.Header.Set("Accept", "text/html")
	w = serve(router, req)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPingAndRequestID(t *testing.T) {
	router := newTestRouter(true)

	w := serve(router, httptest.NewRequest(http.MethodGet, "/ping", nil))
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"message":"pong"}`, w.Body.String())
	require.NotEmpty(t, w.Header().Get(middlewares.RequestIDHeader))

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(middlewares.RequestIDHeader, "req-1")
	w = serve(router, req)
	require.Equal(t, "req-1", w.Header().Get(middlewares.RequestIDHeader))
}

func TestParseGraphQLSchemaPanicsOnMappingDrift(t *testing.T) {
	saved := model.FeedItemFields
	defer func() { model.FeedItemFields = saved }()
	model.FeedItemFields = append(append([]model.FieldMapping{}, saved...), model.FieldMapping{Field: "ups", JSONPath: "ups"})

	require.Panics(t, func() {
		ParseGraphQLSchema(&resolver.Resolver{Feed: staticFeed{}})
	})
}

func TestRequestsAreLoggedOnce(t *testing.T) {
	var ginLog bytes.Buffer
	saved := gin.DefaultWriter
	gin.DefaultWriter = &ginLog
	defer func() { gin.DefaultWriter = saved }()

	router := newTestRouter(true)
	w := serve(router, httptest.NewRequest(http.MethodGet, "/ping", nil))
	require.Equal(t, http.StatusOK, w.Code)

	// Access logs go through the RequestID middleware only.
	require.Empty(t, ginLog.String())
}
