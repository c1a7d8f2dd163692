// Package config provides configuration management for the asset tracker.
//
// It utilizes Viper for loading configuration from environment variables and an
// optional .env file. Defaults live next to each field in 'default' struct tags.
//
// # Configuration Structure
//
//   - Server: HTTP port, read/write timeouts, body limit (SERVER_*)
//   - Database: MongoDB URI, database and collection names, timeouts (DATABASE_*)
//   - Log: level and format (LOG_*)
//
// MONGODB_URI is honoured as an alias for DATABASE_URI.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Database.URI)
package config
