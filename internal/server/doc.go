// Package server runs the HTTP transport and shuts it down gracefully on
// SIGTERM, SIGINT or SIGQUIT.
package server
