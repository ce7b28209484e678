package server

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/99designs/gqlgen/graphql/playground"
	"github.com/Luismorlan/feedql/model"
	gqlschema "github.com/Luismorlan/feedql/server/graphql"
	"github.com/Luismorlan/feedql/server/resolver"
	"github.com/gin-gonic/gin"
	"github.com/graph-gophers/graphql-go"
	"github.com/graph-gophers/graphql-go/relay"
)

const GraphqlPath = "/graphql"

// ParseGraphQLSchema builds the executable schema around root. It panics if
// the field mapping tables drift from the model or if any schema field has
// no resolver method, so that such mistakes surface at start up.
func ParseGraphQLSchema(root *resolver.Resolver) *graphql.Schema {
	if err := model.ValidateFieldMappings(); err != nil {
		panic(err)
	}
	return graphql.MustParseSchema(gqlschema.GetGQLSchema(), root)
}

// GraphqlHandler is the universal handler for all GraphQL queries issued from
// client, by default it binds to a POST method.
func GraphqlHandler(schema *graphql.Schema) gin.HandlerFunc {
	h := &relay.Handler{Schema: schema}

	return func(c *gin.Context) {
		h.ServeHTTP(c.Writer, c.Request)
	}
}

// GraphqlGetHandler executes queries passed as url parameters. A browser
// navigating to the endpoint without a query gets the explorer instead, if
// enabled.
func GraphqlGetHandler(schema *graphql.Schema, explorer bool) gin.HandlerFunc {
	explorerHandler := ExplorerHandler()

	return func(c *gin.Context) {
		query := c.Query("query")
		if query == "" {
			if explorer && acceptsHTML(c.Request) {
				explorerHandler(c)
				return
			}
			c.JSON(http.StatusBadRequest, gin.H{"errors": []gin.H{{"message": "missing query parameter"}}})
			return
		}

		var variables map[string]interface{}
		if raw := c.Query("variables"); raw != "" {
			if err := json.Unmarshal([]byte(raw), &variables); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"errors": []gin.H{{"message": "variables must be a JSON object"}}})
				return
			}
		}

		response := schema.Exec(c.Request.Context(), query, c.Query("operationName"), variables)
		c.JSON(http.StatusOK, response)
	}
}

// ExplorerHandler serves the interactive query explorer bound to GraphqlPath.
func ExplorerHandler() gin.HandlerFunc {
	h := playground.Handler("feedql", GraphqlPath)

	return func(c *gin.Context) {
		h.ServeHTTP(c.Writer, c.Request)
	}
}

func acceptsHTML(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Accept"), "text/html")
}
