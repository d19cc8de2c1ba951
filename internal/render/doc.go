// Package render turns the front-end environment record into the artifacts a
// front-end build consumes: an Angular environment module or a JSON file.
package render
