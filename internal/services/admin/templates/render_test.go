package templates

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"github.com/doubtsclear/console/internal/platform/branding"
	"github.com/doubtsclear/console/internal/services/admin/forms"
	"github.com/doubtsclear/console/internal/services/admin/integration/consultapi"
	"github.com/doubtsclear/console/internal/services/admin/listview"
	"golang.org/x/net/html"
	"golang.org/x/text/message"
)

// keyLocalizer echoes message keys so tests can assert on them.
type keyLocalizer struct{}

func (keyLocalizer) Sprintf(key message.Reference, args ...any) string {
	s, _ := key.(string)
	if len(args) == 0 {
		return s
	}
	return s + fmt.Sprint(args...)
}

func testPage(path string) PageContext {
	return PageContext{Lang: "en-US", Loc: keyLocalizer{}, CurrentPath: path}
}

func renderDoc(t *testing.T, c templ.Component) (*html.Node, string) {
	t.Helper()
	var buf bytes.Buffer
	if err := c.Render(context.Background(), &buf); err != nil {
		t.Fatalf("render: %v", err)
	}
	doc, err := html.Parse(strings.NewReader(buf.String()))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	return doc, buf.String()
}

func attr(n *html.Node, name string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == name {
			return a.Val, true
		}
	}
	return "", false
}

func findAll(n *html.Node, match func(*html.Node) bool) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && match(n) {
			out = append(out, n)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return out
}

func byTag(tag string) func(*html.Node) bool {
	return func(n *html.Node) bool { return n.Data == tag }
}

func textOf(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.TrimSpace(b.String())
}

func TestLayoutNavigationOrder(t *testing.T) {
	t.Parallel()

	doc, _ := renderDoc(t, Layout(testPage("/users"), "Users", nil))
	var labels []string
	for _, span := range findAll(doc, func(n *html.Node) bool {
		class, _ := attr(n, "class")
		return n.Data == "span" && class == "nav-label"
	}) {
		labels = append(labels, textOf(span))
	}
	want := []string{
		"core.nav.dashboard", "core.nav.users", "core.nav.experts",
		"core.nav.all_experts", "core.nav.verified_experts", "core.nav.unverified_experts",
		"core.nav.expertise", "core.nav.qualification", "core.nav.designation",
		"core.nav.withdrawals", "core.nav.payouts", "core.nav.wallets", "core.nav.reviews",
		"core.nav.logout", "core.nav.logout",
	}
	if strings.Join(labels, ",") != strings.Join(want, ",") {
		t.Fatalf("nav labels = %v", labels)
	}
	if len(findAll(doc, byTag("main"))) != 1 {
		t.Fatal("layout must render exactly one main element")
	}
}

func TestLayoutExpertsGroupOpenState(t *testing.T) {
	t.Parallel()

	for path, open := range map[string]bool{"/expertise": true, "/experts/verified": true, "/designations": true, "/users": false, "/": false} {
		doc, _ := renderDoc(t, Layout(testPage(path), "X", nil))
		groups := findAll(doc, byTag("details"))
		if len(groups) == 0 {
			t.Fatal("missing nav group")
		}
		_, isOpen := attr(groups[0], "open")
		if isOpen != open {
			t.Fatalf("path %s open = %v, want %v", path, isOpen, open)
		}
	}
}

func TestActiveNavPathPrefersLongestMatch(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"/":                       "/",
		"/dashboard/content":      "/",
		"/experts":                "/experts",
		"/experts/verified":       "/experts/verified",
		"/experts/abc/review":     "/experts",
		"/wallets":                "/wallets",
		"/expertise":              "/expertise",
		"/payouts/export.csv":     "/payouts",
		"/unknown":                "",
		"/withdrawals/w1/approve": "/withdrawals",
	}
	for path, want := range tests {
		if got := ActiveNavPath(path); got != want {
			t.Fatalf("ActiveNavPath(%q) = %q, want %q", path, got, want)
		}
	}
}

func TestLayoutTopbarTitleDropsProductName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		title string
		want  string
	}{
		{title: "Users", want: "Users"},
		{title: "Users | " + branding.AppName, want: "Users"},
		{title: "Users - " + branding.AppName, want: "Users"},
	}
	for _, tc := range tests {
		t.Run(tc.title, func(t *testing.T) {
			t.Parallel()
			doc, _ := renderDoc(t, Layout(testPage("/users"), tc.title, nil))
			titles := findAll(doc, func(n *html.Node) bool {
				class, _ := attr(n, "class")
				return class == "topbar-title"
			})
			if len(titles) != 1 || textOf(titles[0]) != tc.want {
				t.Fatalf("topbar titles = %d, want one %q", len(titles), tc.want)
			}
			if got := textOf(findAll(doc, byTag("title"))[0]); got != tc.want+" | "+branding.AppName {
				t.Fatalf("document title = %q", got)
			}
		})
	}
}

func TestLayoutCollapsedSidebar(t *testing.T) {
	t.Parallel()

	page := testPage("/")
	page.SidebarCollapsed = true
	doc, _ := renderDoc(t, Layout(page, "Dashboard", nil))
	body := findAll(doc, byTag("body"))[0]
	if class, _ := attr(body, "class"); !strings.Contains(class, "sidebar-collapsed") {
		t.Fatalf("body class = %q", class)
	}
}

func usersView(n int) UsersView {
	users := make([]consultapi.User, n)
	for i := range users {
		users[i] = consultapi.User{ID: fmt.Sprintf("u%d", i+1), Name: fmt.Sprintf("User %d", i+1), Email: fmt.Sprintf("u%d@example.com", i+1), Role: "user"}
	}
	q := listview.Query{Page: 1, Search: "user"}
	return UsersView{List: ListView[consultapi.User]{
		State: listview.StateReady,
		Page:  listview.Paginate(users, q.Page, listview.DefaultPageSize),
		Query: q,
	}}
}

func TestUsersTablePagination(t *testing.T) {
	t.Parallel()

	doc, _ := renderDoc(t, UsersTable(testPage("/users"), usersView(8)))
	if rows := findAll(doc, byTag("tr")); len(rows) != 7 {
		t.Fatalf("rows = %d, want header + 6", len(rows))
	}
	nav := findAll(doc, func(n *html.Node) bool { v, _ := attr(n, "class"); return v == "pagination" })[0]
	prev := findAll(nav, byTag("span"))[0]
	if v, _ := attr(prev, "aria-disabled"); v != "true" {
		t.Fatal("previous should be disabled on page 1")
	}
	next := findAll(nav, func(n *html.Node) bool { v, _ := attr(n, "rel"); return v == "next" })
	if len(next) != 1 {
		t.Fatal("next link missing")
	}
	if href, _ := attr(next[0], "href"); href != "/users?page=2&q=user" {
		t.Fatalf("next href = %q", href)
	}
	if hx, _ := attr(next[0], "hx-get"); hx != "/users/table?page=2&q=user" {
		t.Fatalf("next hx-get = %q", hx)
	}
}

func TestListErrorReplacesTable(t *testing.T) {
	t.Parallel()

	view := UsersView{List: ListView[consultapi.User]{State: listview.StateError, ErrorMessage: "Something went wrong. Please try again."}}
	doc, out := renderDoc(t, UsersTable(testPage("/users"), view))
	if len(findAll(doc, byTag("table"))) != 0 {
		t.Fatal("error state rendered a table")
	}
	if !strings.Contains(out, "Something went wrong") {
		t.Fatalf("missing error message: %s", out)
	}
}

func TestUsersEditModalKeepsListQuery(t *testing.T) {
	t.Parallel()

	view := usersView(2)
	view.Modal = ModalState{Modal: listview.Modal{Kind: listview.ModalEditing, ID: "u1"}}
	view.Selected = &view.List.Page.Items[0]
	view.Form = forms.UserFormFrom(*view.Selected)
	view.Errors = forms.Errors{"email": "validation.email_invalid"}

	doc, out := renderDoc(t, UsersPage(testPage("/users"), view))
	formNodes := findAll(doc, func(n *html.Node) bool { v, _ := attr(n, "method"); return n.Data == "form" && v == "post" })
	if len(formNodes) != 1 {
		t.Fatalf("post forms = %d", len(formNodes))
	}
	if action, _ := attr(formNodes[0], "action"); action != "/users/u1?q=user" {
		t.Fatalf("action = %q", action)
	}
	if !strings.Contains(out, "validation.email_invalid") {
		t.Fatal("field error not rendered")
	}
}

func TestDeleteModalCarriesConfirmation(t *testing.T) {
	t.Parallel()

	view := usersView(1)
	view.Modal = ModalState{Modal: listview.Modal{Kind: listview.ModalDeleting, ID: "u1"}}
	view.Selected = &view.List.Page.Items[0]
	doc, _ := renderDoc(t, UsersPage(testPage("/users"), view))
	confirm := findAll(doc, func(n *html.Node) bool { v, _ := attr(n, "name"); return v == "confirm" })
	if len(confirm) != 1 {
		t.Fatal("confirm input missing")
	}
	if v, _ := attr(confirm[0], "value"); v != "yes" {
		t.Fatalf("confirm value = %q", v)
	}
}

func TestExpertiseFormAddIsFirstSubmit(t *testing.T) {
	t.Parallel()

	form := forms.ExpertiseForm{Name: "Maths", Categories: forms.NewCategorySet("Algebra"), Pending: "Algebra", Notice: "validation.category_duplicate"}
	view := ExpertiseView{
		List:  ListView[consultapi.Expertise]{State: listview.StateReady, Page: listview.Paginate([]consultapi.Expertise{}, 1, 6), Query: listview.Query{Page: 1}},
		Modal: ModalState{Modal: listview.Modal{Kind: listview.ModalCreating}},
		Form:  form,
	}
	doc, out := renderDoc(t, ExpertisePage(testPage("/expertise"), view))
	buttons := findAll(doc, func(n *html.Node) bool { v, _ := attr(n, "type"); return n.Data == "button" && v == "submit" })
	if len(buttons) < 3 {
		t.Fatalf("submit buttons = %d", len(buttons))
	}
	if v, _ := attr(buttons[0], "value"); v != forms.ActionAddCategory {
		t.Fatalf("first submit value = %q", v)
	}
	input := findAll(doc, func(n *html.Node) bool { v, _ := attr(n, "name"); return v == "category_input" })[0]
	if v, _ := attr(input, "value"); v != "Algebra" {
		t.Fatalf("pending input = %q", v)
	}
	if !strings.Contains(out, "validation.category_duplicate") {
		t.Fatal("duplicate notice missing")
	}
}

func TestPayoutFormHidesInactiveMethod(t *testing.T) {
	t.Parallel()

	view := PayoutsView{
		List:  ListView[consultapi.Payout]{State: listview.StateReady, Page: listview.Paginate([]consultapi.Payout{}, 1, 6), Query: listview.Query{Page: 1}},
		Modal: ModalState{Modal: listview.Modal{Kind: listview.ModalCreating}},
		Form:  forms.NewPayoutForm(),
	}
	doc, _ := renderDoc(t, PayoutsPage(testPage("/payouts"), view))
	for _, fs := range findAll(doc, byTag("fieldset")) {
		method, _ := attr(fs, "data-method")
		_, hidden := attr(fs, "hidden")
		if (method == consultapi.MethodBankTransfer) != hidden {
			t.Fatalf("fieldset %q hidden = %v", method, hidden)
		}
	}
}

func TestCallsTableDisplayHelpers(t *testing.T) {
	t.Parallel()

	calls := []consultapi.Call{{ID: "65f0c0ffee0000000000abcd", Caller: consultapi.CallParty{Type: "user"}, Duration: 125, Status: consultapi.CallEnded}}
	view := CallsView{List: ListView[consultapi.Call]{State: listview.StateReady, Page: listview.Paginate(calls, 1, listview.CallsPageSize), Query: listview.Query{Page: 1}}}
	_, out := renderDoc(t, CallsTable(testPage("/calls"), view))
	for _, want := range []string{"65f0c0ff…", "Unknown (user)", "2m 5s"} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q", want)
		}
	}
}

func TestLazyLoadTargetsDashboardContent(t *testing.T) {
	t.Parallel()

	doc, _ := renderDoc(t, DashboardPage(testPage("/")))
	lazy := findAll(doc, func(n *html.Node) bool { _, ok := attr(n, "hx-get"); return ok })
	if len(lazy) != 1 {
		t.Fatal("lazy loader missing")
	}
	if v, _ := attr(lazy[0], "hx-get"); v != "/dashboard/content" {
		t.Fatalf("hx-get = %q", v)
	}
}

func within(n *html.Node, ancestor *html.Node) bool {
	for p := n.Parent; p != nil; p = p.Parent {
		if p == ancestor {
			return true
		}
	}
	return false
}

func TestModalFormDisablesEverySubmitInFlight(t *testing.T) {
	t.Parallel()

	view := ExpertiseView{
		List:  ListView[consultapi.Expertise]{State: listview.StateReady, Page: listview.Paginate([]consultapi.Expertise{}, 1, 6), Query: listview.Query{Page: 1}},
		Modal: ModalState{Modal: listview.Modal{Kind: listview.ModalCreating}},
		Form:  forms.ExpertiseForm{Name: "Maths", Categories: forms.NewCategorySet("Algebra", "Calculus")},
	}
	doc, _ := renderDoc(t, ExpertisePage(testPage("/expertise"), view))
	posts := findAll(doc, func(n *html.Node) bool { v, _ := attr(n, "method"); return n.Data == "form" && v == "post" })
	if len(posts) != 1 {
		t.Fatalf("post forms = %d", len(posts))
	}
	form := posts[0]
	if v, _ := attr(form, "hx-disabled-elt"); v != "find fieldset" {
		t.Fatalf("hx-disabled-elt = %q", v)
	}
	body := findAll(form, byTag("fieldset"))[0]
	submits := findAll(form, func(n *html.Node) bool { v, _ := attr(n, "type"); return n.Data == "button" && v == "submit" })
	var values []string
	for _, button := range submits {
		if !within(button, body) {
			v, _ := attr(button, "value")
			t.Fatalf("submit %q is outside the disabled fieldset", v)
		}
		v, _ := attr(button, "value")
		values = append(values, v)
	}
	want := []string{forms.ActionAddCategory, "Algebra", "Calculus", forms.ActionSave}
	if strings.Join(values, ",") != strings.Join(want, ",") {
		t.Fatalf("submit values = %v, want %v", values, want)
	}
}

func TestInputFieldAttributes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		field  Field
		errs   forms.Errors
		want   map[string]string
		absent []string
	}{
		{
			name:   "text defaults",
			field:  Field{Name: "bankDetails.ifscCode", Label: "IFSC", Value: "HDFC0001"},
			want:   map[string]string{"id": "field-bankDetails-ifscCode", "type": "text", "value": "HDFC0001"},
			absent: []string{"required", "aria-invalid", "step", "placeholder"},
		},
		{
			name:   "password never echoes its value",
			field:  Field{Name: "password", Label: "Password", Type: "password", Value: "secret", Required: true},
			want:   map[string]string{"type": "password", "required": ""},
			absent: []string{"value"},
		},
		{
			name:  "invalid number",
			field: Field{Name: "money", Label: "Money", Type: "number", Step: "any", Value: "-5"},
			errs:  forms.Errors{"money": "validation.amount_positive"},
			want:  map[string]string{"step": "any", "aria-invalid": "true", "value": "-5"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			doc, out := renderDoc(t, inputField(testPage("/"), tt.field, tt.errs))
			input := findAll(doc, byTag("input"))[0]
			for key, want := range tt.want {
				got, ok := attr(input, key)
				if !ok || got != want {
					t.Fatalf("%s = %q (present %v), want %q", key, got, ok, want)
				}
			}
			for _, key := range tt.absent {
				if _, ok := attr(input, key); ok {
					t.Fatalf("unexpected %s attribute", key)
				}
			}
			if key := tt.errs.Get(tt.field.Name); key != "" && !strings.Contains(out, key) {
				t.Fatalf("field error %q not rendered", key)
			}
		})
	}
}
