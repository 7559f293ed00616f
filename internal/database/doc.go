// Package database owns the SQLite connection, schema migration, and the
// change notifier that backs live queries.
//
// Each entity has its own repository package underneath this one
// (analyses, sessions, poses, settings, progress). Repositories hold no
// state of their own; they translate between entities and table rows and
// publish a change notification after every committed write so that
// watchers can re-evaluate their queries.
package database
