package constants

// Paging defaults applied at the API boundary before a filter is built.
// The query engine itself never falls back to defaults.
const (
	DefaultPageIndex = 1
	DefaultPageSize  = 10
	MaxPageSize      = 100
)
