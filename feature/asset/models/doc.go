// Package models defines the asset record and its sparse update.
//
// Asset embeds Fields, the user-supplied attributes. Fields doubles as the
// create payload and as the closed set of keys an Update may overwrite;
// ParseUpdate derives that set from the struct tags.
package models
