package listview

import (
	"net/url"
	"strconv"
	"strings"
)

// Query parameter names shared by list pages and their fragments.
const (
	ParamSearch = "q"
	ParamStatus = "status"
	ParamPage   = "page"
	ParamModal  = "modal"
	ParamID     = "id"
)

// Query is the list state carried in the URL.
type Query struct {
	Search string
	Status string
	Page   int
	Modal  Modal
}

// ParseQuery reads list state from request query values. Invalid page
// numbers fall back to 1.
func ParseQuery(values url.Values) Query {
	page, err := strconv.Atoi(strings.TrimSpace(values.Get(ParamPage)))
	if err != nil || page < 1 {
		page = 1
	}
	return Query{
		Search: strings.TrimSpace(values.Get(ParamSearch)),
		Status: strings.TrimSpace(values.Get(ParamStatus)),
		Page:   page,
		Modal:  ParseModal(values.Get(ParamModal), values.Get(ParamID)),
	}
}

// Values encodes the query, omitting defaults.
func (q Query) Values() url.Values {
	values := url.Values{}
	if q.Search != "" {
		values.Set(ParamSearch, q.Search)
	}
	if q.Status != "" && q.Status != StatusAll {
		values.Set(ParamStatus, q.Status)
	}
	if q.Page > 1 {
		values.Set(ParamPage, strconv.Itoa(q.Page))
	}
	if q.Modal.IsOpen() {
		values.Set(ParamModal, string(q.Modal.Kind))
		if q.Modal.ID != "" {
			values.Set(ParamID, q.Modal.ID)
		}
	}
	return values
}

// URL renders the query onto base.
func (q Query) URL(base string) string {
	encoded := q.Values().Encode()
	if encoded == "" {
		return base
	}
	return base + "?" + encoded
}

// WithPage moves to page n and changes nothing else.
func (q Query) WithPage(n int) Query {
	q.Page = n
	return q
}

// WithStatus changes the status filter and returns to page 1.
func (q Query) WithStatus(status string) Query {
	q.Status = status
	q.Page = 1
	return q
}

// WithSearch changes the search term and returns to page 1.
func (q Query) WithSearch(term string) Query {
	q.Search = strings.TrimSpace(term)
	q.Page = 1
	return q
}

// WithModal opens a modal over the current list state.
func (q Query) WithModal(kind ModalKind, id string) Query {
	q.Modal = ParseModal(string(kind), id)
	return q
}

// List drops the modal, which is where a finished action returns to.
func (q Query) List() Query {
	q.Modal = Closed
	return q
}

// StatusOrAll returns the effective status filter.
func (q Query) StatusOrAll() string {
	if q.Status == "" {
		return StatusAll
	}
	return q.Status
}
