package types

import "errors"

// Store errors.
var (
	// ErrLocation reports that the database file location could not be
	// resolved or created.
	ErrLocation = errors.New("database location cannot be resolved")

	// ErrUnknownTable reports an access to a table the schema does not
	// declare, or a declared table missing from the database file.
	ErrUnknownTable = errors.New("unknown table")

	// ErrDuplicateID reports more than one row sharing an id within a
	// table. This is a data corruption signal and is always fatal.
	ErrDuplicateID = errors.New("duplicate row id")

	// ErrNotFound reports that the target row of an update or required
	// lookup does not exist.
	ErrNotFound = errors.New("row not found")
)

// Mapper and export errors.
var (
	// ErrMissingReference reports that a required foreign key resolved to
	// no row. Wrapping errors name the owning entity and the reference role.
	ErrMissingReference = errors.New("missing reference")

	// ErrExport reports a failure while generating or packaging addon files.
	ErrExport = errors.New("export failed")
)
