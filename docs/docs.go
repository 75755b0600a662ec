// Package docs holds the OpenAPI document generated from the handler
// annotations with `swag init -g cmd/server/main.go`.
package docs

import _ "embed"

//go:embed swagger.json
var SwaggerJSON []byte
