package graphql

import (
	_ "embed"
)

//go:embed schema.graphql
var schema string

// GetGQLSchema returns the SDL served by the api server.
func GetGQLSchema() string {
	return schema
}
