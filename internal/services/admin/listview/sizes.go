package listview

// Page sizes per resource list.
const (
	DefaultPageSize = 6
	CallsPageSize   = 10
)
