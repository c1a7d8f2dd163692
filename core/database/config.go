package database

import "time"

// Config holds configuration for the document database connection.
type Config struct {
	// URI is the MongoDB connection string.
	URI string `mapstructure:"uri" default:"mongodb://localhost:27017"`
	// Name is the database name.
	Name string `mapstructure:"name" default:"asset_management_db"`
	// Collection is the collection holding asset documents.
	Collection string `mapstructure:"collection" default:"assets"`
	// TimeoutSeconds bounds connection setup and each driver operation.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"10"`
	// MaxPoolSize caps the number of pooled connections per server.
	MaxPoolSize uint64 `mapstructure:"max_pool_size" default:"50"`
}

// Timeout returns the configured timeout, defaulting to 10 seconds.
func (c Config) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return 10 * time.Second
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}
