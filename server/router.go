package server

import (
	"net/http"

	"github.com/Luismorlan/feedql/server/middlewares"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/graph-gophers/graphql-go"
	gintrace "gopkg.in/DataDog/dd-trace-go.v1/contrib/gin-gonic/gin"
)

// RouterOptions toggles the optional parts of the router.
type RouterOptions struct {
	Explorer bool
	// Service name reported by the tracing middleware, tracing is off when
	// empty.
	TraceService string
}

// NewRouter wires every route of the api server around schema.
func NewRouter(schema *graphql.Schema, opts RouterOptions) *gin.Engine {
	// RequestID logs every request, so gin's own Logger is left out.
	router := gin.New()
	router.Use(gin.Recovery())

	router.Use(cors.Default())
	router.Use(middlewares.RequestID())
	if opts.TraceService != "" {
		router.Use(gintrace.Middleware(opts.TraceService))
	}

	router.POST(GraphqlPath, GraphqlHandler(schema))
	router.GET(GraphqlPath, GraphqlGetHandler(schema, opts.Explorer))

	// Setup graphql playground for debugging
	if opts.Explorer {
		router.GET("/", ExplorerHandler())
	}

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	return router
}
