// Package config provides configuration loading, merging, and validation
// facilities for the application.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Built-in variant defaults (development, production)
//  2. .env file
//  3. Environment variables
//  4. Command-line flags
//  5. JSON or YAML config file
//
// The main entry points are [Load] and [GetStructuredConfig]; the front-end
// record itself is obtained with [StructuredConfig.Environment].
package config
