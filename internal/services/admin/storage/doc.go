// Package storage defines persistence contracts for the admin console.
//
// The console keeps no domain data of its own; the only local state is the
// session table that maps a browser cookie to the API bearer token.
package storage
