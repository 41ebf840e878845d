// Package middleware holds the http.Handler wrappers a listener enables from
// its configuration: a handler deadline and a request body limit.
package middleware
