// Package config provides configuration loading, merging, and validation
// facilities for the application.
//
// Configuration is assembled from multiple sources in the following priority
// order (the first source that sets a field wins):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// The configuration also carries the backend selector: USE_DOCUMENT_STORE is
// read once, resolved into [Storage.Backend], and the resulting value is
// passed to the storage layer by the caller. Nothing in the application reads
// it from package state.
//
// The main entry point is [GetStructuredConfig].
package config
