package forms

import (
	"net/url"
	"reflect"
	"testing"

	"github.com/doubtsclear/console/internal/services/admin/integration/consultapi"
)

func TestCategorySet(t *testing.T) {
	t.Parallel()

	set := NewCategorySet(" Algebra ", "", "Calculus", "Algebra")
	if !reflect.DeepEqual(set.Items(), []string{"Algebra", "Calculus"}) {
		t.Fatalf("items = %v", set.Items())
	}
	if set.Add("  ") || set.Add("Calculus") {
		t.Fatal("Add accepted blank or duplicate")
	}
	if !set.Add("Geometry") || set.Len() != 3 {
		t.Fatalf("Add Geometry failed: %v", set.Items())
	}
	if !set.Remove("Algebra") || set.Remove("Algebra") {
		t.Fatal("Remove mismatch")
	}
	items := set.Items()
	items[0] = "mutated"
	if set.Items()[0] != "Calculus" {
		t.Fatal("Items leaked internal slice")
	}
}

func TestExpertiseEnterAddsTagAndDuplicateKeepsText(t *testing.T) {
	t.Parallel()

	values := url.Values{
		"name":           {"Maths"},
		"category":       {"Algebra"},
		"category_input": {" Calculus "},
		"action":         {ActionAddCategory},
	}
	form := ParseExpertiseForm(values)
	if !form.ApplyTagAction() {
		t.Fatal("add action not handled")
	}
	if !reflect.DeepEqual(form.Categories.Items(), []string{"Algebra", "Calculus"}) || form.Pending != "" {
		t.Fatalf("after add: %v pending %q", form.Categories.Items(), form.Pending)
	}

	values.Set("category_input", "Algebra")
	form = ParseExpertiseForm(values)
	form.ApplyTagAction()
	if form.Categories.Len() != 1 || form.Pending != "Algebra" || form.Notice != "validation.category_duplicate" {
		t.Fatalf("after duplicate: %v pending %q notice %q", form.Categories.Items(), form.Pending, form.Notice)
	}
}

func TestExpertiseRemoveAndSave(t *testing.T) {
	t.Parallel()

	form := ParseExpertiseForm(url.Values{
		"name":               {"Maths"},
		"category":           {"Algebra", "Calculus"},
		ActionRemoveCategory: {"Algebra"},
	})
	if form.Action != ActionRemoveCategory || !form.ApplyTagAction() {
		t.Fatalf("remove not handled: %+v", form)
	}
	if !reflect.DeepEqual(form.Categories.Items(), []string{"Calculus"}) {
		t.Fatalf("after remove: %v", form.Categories.Items())
	}

	save := ParseExpertiseForm(url.Values{"name": {""}})
	if save.ApplyTagAction() {
		t.Fatal("save treated as tag action")
	}
	if save.Validate().Get("name") != "validation.name_required" {
		t.Fatalf("errors = %v", save.Validate())
	}
	if got := ExpertiseFormFrom(consultapi.Expertise{Name: "M"}).Input().Category; got == nil || len(got) != 0 {
		t.Fatalf("empty categories = %#v", got)
	}
}
