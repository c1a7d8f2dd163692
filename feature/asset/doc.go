// Package asset implements the employee asset records feature.
//
// Records are stored in a single MongoDB collection and addressed by a
// database-generated ObjectID, distinct from the user-supplied asset_id list.
//
// # Components
//
//   - Store: persistence interface; MongoStore implements it over a collection.
//   - Service: validates input, parses identifiers and calls the store once per operation.
//   - Handler: maps HTTP requests to the service and errors to status codes.
//   - Feature: registers the handler with the loader.
//
// # HTTP Endpoints
//
//   - POST   /assets/                         : Create an asset (201).
//   - GET    /assets/:id                      : Get an asset (400 bad id, 404 missing).
//   - GET    /employees/:employee_id/assets/  : List an employee's assets (always 200).
//   - PUT    /assets/:id                      : Overwrite the supplied fields (400 empty update).
//   - DELETE /assets/:id                      : Delete an asset.
package asset
