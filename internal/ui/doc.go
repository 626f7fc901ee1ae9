// Package ui implements an interactive terminal interface using bubbletea's Elm architecture.
//
// The TUI mirrors the routes of a classic CRUD admin screen as view states:
//  1. [VideoTableView] : Browse the catalog with search-as-you-type
//  2. [FormView] : Create or edit a video (name, author, categories)
//  3. [ConfirmDeleteView] : Confirm removal of a video
//  4. [ErrorView] : Display a workflow failure
//
// The (view) [Model] implements bubbletea/Elm's standard Init/Update/View
// pattern. Search input is debounced before a backend search is issued;
// saves and deletes run as [tasks.CatalogEngine] workflows off the update
// loop and report back via messages.
//
// Keyboard navigation uses vim-style bindings (j/k, enter, esc, y/n, q) with
// contextual help displayed via charmbracelet/bubbles/help.
package ui
