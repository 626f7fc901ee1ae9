// Package store holds the normalized client-side state of the catalog: one
// keyed collection per entity type (videos, authors, categories) plus sync
// metadata for the two bulk-fetched collections.
//
// Workflows never reach into the catalog directly. They read an immutable
// [Snapshot], decide what should change, and hand a list of [Mutation] values
// to [Catalog.Apply], which applies them serially under a single lock. This
// keeps the single-writer invariant without ambient global state: a
// workflow's mutations land atomically once its awaited backend calls have
// resolved.
package store
