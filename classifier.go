// Package classifier is a runtime group-by/aggregate engine. The classify
// package holds the composition engine, pipeline builds nested classifiers
// from declarative definitions, and server/store expose them over HTTP with
// persisted definitions.
package classifier

// Version is the current release version.
const Version = "v0.1.0"
