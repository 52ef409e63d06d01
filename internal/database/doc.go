// Package database provides the sqlite storage used for glossary snapshots.
//
// # Architecture
//
//	database/
//	├── database.go      # Connection setup and migrations
//	└── snapshots/       # Snapshot and snapshot entry operations
//
// # Usage
//
//	db, err := database.NewDatabase("./glossary.db")
//	repo := snapshots.NewRepository(db.DB)
//	snap, err := repo.SaveSnapshot("before cleanup", "./glossary.txt", entries)
//
// The text file stays the primary format; snapshots are an additional copy
// that can be restored into a text file later.
package database
