// Package schema describes forms declaratively. Definitions are read from
// YAML or JSON documents, or derived from the request body of an OpenAPI
// operation, and turn into form.Config values with a matching rule set.
package schema
