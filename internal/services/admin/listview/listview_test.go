package listview

import (
	"context"
	"errors"
	"net/url"
	"reflect"
	"testing"
)

type person struct {
	id    string
	name  string
	email string
}

func personFields(p person) []string {
	return []string{p.name, p.email}
}

func people() []person {
	return []person{
		{id: "1", name: "Asha Rao", email: "asha@example.com"},
		{id: "2", name: "Bilal", email: "bilal@example.com"},
		{id: "3", name: "Chitra", email: "CHITRA@EXAMPLE.COM"},
	}
}

func TestFilterCaseInsensitiveSubset(t *testing.T) {
	t.Parallel()

	source := people()
	before := append([]person(nil), source...)

	tests := []struct {
		term string
		want []string
	}{
		{term: "", want: []string{"1", "2", "3"}},
		{term: "   ", want: []string{"1", "2", "3"}},
		{term: "ASHA", want: []string{"1"}},
		{term: "chitra@", want: []string{"3"}},
		{term: "example", want: []string{"1", "2", "3"}},
		{term: "zzz", want: []string{}},
	}
	for _, tc := range tests {
		got := Filter(source, tc.term, personFields)
		ids := make([]string, 0, len(got))
		for _, p := range got {
			ids = append(ids, p.id)
		}
		if !reflect.DeepEqual(ids, tc.want) {
			t.Fatalf("Filter(%q) = %v, want %v", tc.term, ids, tc.want)
		}
	}
	if !reflect.DeepEqual(source, before) {
		t.Fatal("Filter modified its source")
	}
}

func TestMatchStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		value, filter string
		want          bool
	}{
		{"pending", "all", true},
		{"pending", "", true},
		{"pending", "pending", true},
		{"approved", "pending", false},
		{"Pending", "pending", false},
	}
	for _, tc := range tests {
		if got := MatchStatus(tc.value, tc.filter); got != tc.want {
			t.Fatalf("MatchStatus(%q, %q) = %v, want %v", tc.value, tc.filter, got, tc.want)
		}
	}
}

func TestPaginateArithmetic(t *testing.T) {
	t.Parallel()

	for n := 0; n <= 25; n++ {
		items := make([]int, n)
		for i := range items {
			items[i] = i
		}
		for _, size := range []int{1, 6, 10} {
			wantPages := (n + size - 1) / size
			if wantPages < 1 {
				wantPages = 1
			}
			for page := -1; page <= wantPages+2; page++ {
				got := Paginate(items, page, size)
				if got.TotalPages != wantPages {
					t.Fatalf("n=%d size=%d: TotalPages = %d, want %d", n, size, got.TotalPages, wantPages)
				}
				if got.Page < 1 || got.Page > got.TotalPages {
					t.Fatalf("n=%d size=%d page=%d: clamped page = %d", n, size, page, got.Page)
				}
				if got.PrevDisabled != (got.Page == 1) {
					t.Fatalf("PrevDisabled = %v on page %d", got.PrevDisabled, got.Page)
				}
				if got.NextDisabled != (got.Page == got.TotalPages) {
					t.Fatalf("NextDisabled = %v on page %d of %d", got.NextDisabled, got.Page, got.TotalPages)
				}
				if len(got.Items) > size {
					t.Fatalf("page holds %d items, size %d", len(got.Items), size)
				}
				if len(got.Items) > 0 && got.Items[0] != got.Offset() {
					t.Fatalf("first item = %d, want offset %d", got.Items[0], got.Offset())
				}
			}
		}
	}
}

func TestPaginateScenario(t *testing.T) {
	t.Parallel()

	items := make([]int, 13)
	got := Paginate(items, 3, 6)
	if got.TotalPages != 3 || len(got.Items) != 1 || !got.NextDisabled || got.PrevDisabled {
		t.Fatalf("page = %+v", got)
	}
	empty := Paginate([]int{}, 1, 6)
	if empty.TotalPages != 1 || !empty.PrevDisabled || !empty.NextDisabled {
		t.Fatalf("empty page = %+v", empty)
	}
}

func TestParseQuery(t *testing.T) {
	t.Parallel()

	values, _ := url.ParseQuery("q=%20asha%20&status=pending&page=2&modal=edit&id=u1")
	got := ParseQuery(values)
	want := Query{Search: "asha", Status: "pending", Page: 2, Modal: Modal{Kind: ModalEditing, ID: "u1"}}
	if got != want {
		t.Fatalf("ParseQuery = %+v, want %+v", got, want)
	}

	values, _ = url.ParseQuery("page=abc&modal=delete")
	got = ParseQuery(values)
	if got.Page != 1 || got.Modal.IsOpen() {
		t.Fatalf("ParseQuery invalid = %+v", got)
	}
}

func TestQueryLinks(t *testing.T) {
	t.Parallel()

	q := Query{Search: "asha", Status: "pending", Page: 3}
	if got := q.WithPage(4).URL("/withdrawals"); got != "/withdrawals?page=4&q=asha&status=pending" {
		t.Fatalf("WithPage URL = %q", got)
	}
	if got := q.WithStatus("approved").URL("/withdrawals"); got != "/withdrawals?q=asha&status=approved" {
		t.Fatalf("WithStatus URL = %q", got)
	}
	if got := q.WithSearch("bilal").URL("/withdrawals"); got != "/withdrawals?q=bilal&status=pending" {
		t.Fatalf("WithSearch URL = %q", got)
	}
	if got := q.WithStatus(StatusAll).URL("/withdrawals"); got != "/withdrawals?q=asha" {
		t.Fatalf("status all URL = %q", got)
	}
	opened := q.WithModal(ModalDeleting, "w1")
	if got := opened.URL("/wallets"); got != "/wallets?id=w1&modal=delete&page=3&q=asha&status=pending" {
		t.Fatalf("modal URL = %q", got)
	}
	if got := opened.List().URL("/wallets"); got != "/wallets?page=3&q=asha&status=pending" {
		t.Fatalf("List URL = %q", got)
	}
	if got := (Query{Page: 1}).URL("/users"); got != "/users" {
		t.Fatalf("default URL = %q", got)
	}
}

func TestParseModal(t *testing.T) {
	t.Parallel()

	tests := []struct {
		kind, id string
		want     Modal
	}{
		{"create", "ignored", Modal{Kind: ModalCreating}},
		{"edit", "u1", Modal{Kind: ModalEditing, ID: "u1"}},
		{"view", "", Closed},
		{"approve", "w1", Modal{Kind: ModalApproving, ID: "w1"}},
		{"explode", "u1", Closed},
		{"", "", Closed},
	}
	for _, tc := range tests {
		if got := ParseModal(tc.kind, tc.id); got != tc.want {
			t.Fatalf("ParseModal(%q, %q) = %+v, want %+v", tc.kind, tc.id, got, tc.want)
		}
	}
}

func TestSelect(t *testing.T) {
	t.Parallel()

	idOf := func(p person) string { return p.id }
	modal, selected := Select(Modal{Kind: ModalEditing, ID: "2"}, people(), idOf)
	if !modal.Is(ModalEditing) || selected == nil || selected.name != "Bilal" {
		t.Fatalf("Select = %+v, %+v", modal, selected)
	}

	modal, selected = Select(Modal{Kind: ModalViewing, ID: "missing"}, people(), idOf)
	if modal.IsOpen() || selected != nil {
		t.Fatalf("Select missing = %+v, %+v", modal, selected)
	}

	modal, selected = Select(Modal{Kind: ModalCreating}, people(), idOf)
	if !modal.Is(ModalCreating) || selected != nil {
		t.Fatalf("Select create = %+v, %+v", modal, selected)
	}
}

func TestLoad(t *testing.T) {
	t.Parallel()

	ok := Load(context.Background(), func(context.Context) ([]int, error) { return []int{1, 2}, nil })
	if ok.State != StateReady || len(ok.Items) != 2 {
		t.Fatalf("Load ok = %+v", ok)
	}
	failure := errors.New("boom")
	failed := Load(context.Background(), func(context.Context) ([]int, error) { return nil, failure })
	if failed.State != StateError || !errors.Is(failed.Err, failure) {
		t.Fatalf("Load failed = %+v", failed)
	}
	if failed.State.String() != "error" || StateIdle.String() != "idle" {
		t.Fatalf("state strings = %q / %q", failed.State, StateIdle)
	}
}
