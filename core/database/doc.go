// Package database handles the document database connection.
//
// It wraps the official MongoDB driver: Connect builds a pooled client from the
// application's configuration and verifies it with a ping, Collection resolves
// the configured asset collection, and EnsureIndexes creates the secondary
// index used by per-employee lookups.
//
// # Usage
//
//	client, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
//	defer database.Disconnect(client, cfg.Database)
//
//	coll := database.Collection(client, cfg.Database)
//	_, err = database.EnsureIndexes(ctx, coll)
package database
