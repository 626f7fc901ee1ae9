// Package repositories provides the persistence layer for the local
// operation journal.
//
// The journal is an append-only audit log of completed catalog workflows
// (saves, deletes, author moves). It never serves catalog reads; the
// in-memory stores remain the only source of catalog state.
package repositories
