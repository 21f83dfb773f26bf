// Package sqlite implements the card catalog on a local SQLite file
// using the pure-Go modernc.org/sqlite driver. The schema is managed
// with embedded goose migrations; catalog content is loaded from the
// scraped Piltover Archive JSON export.
package sqlite
