// Package models defines the data model for the video catalog client.
//
// Each catalog object exists in up to three representations:
//
// 1. Response: the wire format exchanged with the REST backend. An
// [AuthorResponse] embeds its videos inline.
//
// 2. Entity: the normalized, store-resident form. A [VideoEntity] is the
// single source of truth for a video and references its author by id; an
// [AuthorEntity] retains only the ids of its videos. Categories need no
// transform, the response is the entity.
//
// 3. View: the denormalized, read-only form assembled for display by joining
// entities across stores. Views are produced lazily and never persisted.
//
// All transform functions in this package are pure: they never mutate their
// inputs, perform I/O, or raise on dangling references. Missing foreign keys
// are skipped (or, for [VideoEntityToView], reported via the ok result) and
// the caller decides what to surface.
package models
