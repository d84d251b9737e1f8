package types

import "errors"

// Config holds the settings a session needs to open a database and generate
// addon output.
type Config struct {
	Database   string `json:"database" yaml:"database"`     // Database file or directory.
	DBName     string `json:"dbname" yaml:"dbname"`         // File name stem inside a directory target.
	Output     string `json:"output" yaml:"output"`         // Default archive path for export.
	Compressed bool   `json:"compressed" yaml:"compressed"` // Compact JSON on save.
	LogLevel   string `json:"log_level" yaml:"log_level"`   // zap level name; empty means info.
}

// Config validation errors.
var (
	ErrDatabaseEmpty = errors.New("database location must not be empty")
	ErrDBNameEmpty   = errors.New("dbname must not be empty")
)

// Validate checks that the Config is well-formed.
func (c Config) Validate() error {
	if c.Database == "" {
		return ErrDatabaseEmpty
	}
	if c.DBName == "" {
		return ErrDBNameEmpty
	}
	return nil
}

// Schema returns the database schema described by the config.
func (c Config) Schema() Schema {
	s := DefaultSchema()
	s.Name = c.DBName
	s.Compressed = c.Compressed
	return s
}
