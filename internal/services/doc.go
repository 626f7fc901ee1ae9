// Package services implements HTTP clients for the video catalog backend.
//
// [CatalogAPI] is the contract the workflows consume: bulk and search reads
// of authors (with videos embedded), bulk reads of categories, and author
// updates. [HTTPCatalog] implements it against a json-server compatible REST
// backend. [APIService] is a raw passthrough client for debugging.
package services
