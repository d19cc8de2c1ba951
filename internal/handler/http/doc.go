// Package http implements the HTTP transport layer of the application.
//
// It serves the front-end environment record (as JSON and as an Angular
// module), the Auth0 login and logout redirects derived from it, a token
// inspection endpoint and the application version. Request tracing, access
// logging, compression and panic recovery are handled here before requests
// reach the service layer.
package http
