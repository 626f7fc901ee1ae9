// Package tasks implements the catalog synchronization workflows.
//
// The core abstraction is [CatalogEngine], which orchestrates bulk refreshes,
// searches, and video saves/deletes against the REST backend. A workflow
// reads a store snapshot, computes the minimal set of author-update calls
// that keep the author/video relationship consistent, issues them, and fans
// the results back into the stores through the serializing dispatcher.
// Operations emit progress updates via channels for non-blocking status
// reporting to CLI/UI layers.
package tasks
