// Package listview holds the list-page mechanics shared by every admin
// resource: search filtering, pagination, query parsing, and the modal state
// that selects at most one entity.
package listview
