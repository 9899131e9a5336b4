// Package repository implements data access against SurrealDB.
//
// Entity ids are generated at the service layer as uuids and stored as
// the record id (table:uuid) via type::thing; readers strip the table
// prefix so the rest of the application only ever sees the bare uuid.
// Lookups return (nil, nil) when no record matches.
package repository
