// Package types defines the persisted row shapes, resolved domain objects,
// schema, language set, and standard errors for the Chronicler catalogue.
//
// Rows are the flat foreign-key form stored in the database file. Domain
// objects are the fully resolved graphs produced by the mapper; they are
// rebuilt on every read and never persisted directly.
package types
