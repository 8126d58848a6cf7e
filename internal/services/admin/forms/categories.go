package forms

import (
	"net/url"
	"slices"
	"strings"

	"github.com/doubtsclear/console/internal/services/admin/integration/consultapi"
)

// CategorySet is an insertion-ordered set of category tags.
type CategorySet struct {
	items []string
}

// NewCategorySet builds a set from tags, dropping blanks and duplicates.
func NewCategorySet(tags ...string) CategorySet {
	var set CategorySet
	for _, tag := range tags {
		set.Add(tag)
	}
	return set
}

// Add appends the trimmed tag. It reports false for blank or duplicate tags.
func (s *CategorySet) Add(tag string) bool {
	tag = strings.TrimSpace(tag)
	if tag == "" || s.Contains(tag) {
		return false
	}
	s.items = append(s.items, tag)
	return true
}

// Remove deletes tag and reports whether it was present.
func (s *CategorySet) Remove(tag string) bool {
	tag = strings.TrimSpace(tag)
	index := slices.Index(s.items, tag)
	if index < 0 {
		return false
	}
	s.items = slices.Delete(s.items, index, index+1)
	return true
}

func (s CategorySet) Contains(tag string) bool {
	return slices.Contains(s.items, strings.TrimSpace(tag))
}

// Items returns a copy of the tags in insertion order.
func (s CategorySet) Items() []string {
	return slices.Clone(s.items)
}

func (s CategorySet) Len() int {
	return len(s.items)
}

// Expertise form actions. The add button is the form's first submit button,
// so pressing Enter in the tag input posts ActionAddCategory.
const (
	ActionAddCategory    = "add_category"
	ActionRemoveCategory = "remove_category"
	ActionSave           = "save"
)

// ExpertiseForm creates or edits an expertise with its category tags.
type ExpertiseForm struct {
	Name       string      `form:"name" validate:"required"`
	Categories CategorySet `form:"-"`
	// Pending is the text in the tag input that has not been added yet.
	Pending string `form:"-"`
	Action  string `form:"-"`
	// RemoveTag is the tag targeted by ActionRemoveCategory.
	RemoveTag string `form:"-"`
	// Notice is a message key describing the last tag action, if any.
	Notice string `form:"-"`
}

func ParseExpertiseForm(values url.Values) ExpertiseForm {
	form := ExpertiseForm{
		Name:       field(values, "name"),
		Categories: NewCategorySet(values["category"]...),
		Pending:    values.Get("category_input"),
		Action:     field(values, "action"),
	}
	if tag := values.Get(ActionRemoveCategory); tag != "" {
		form.Action = ActionRemoveCategory
		form.RemoveTag = tag
	}
	if form.Action == "" {
		form.Action = ActionSave
	}
	return form
}

func ExpertiseFormFrom(expertise consultapi.Expertise) ExpertiseForm {
	return ExpertiseForm{
		Name:       expertise.Name,
		Categories: NewCategorySet(expertise.Category...),
		Action:     ActionSave,
	}
}

// ApplyTagAction performs an add or remove tag action on the draft. It
// reports false when the form was submitted for saving instead.
//
// A successful add clears the tag input; a rejected duplicate keeps its
// text so the admin can correct it.
func (f *ExpertiseForm) ApplyTagAction() bool {
	switch f.Action {
	case ActionAddCategory:
		pending := strings.TrimSpace(f.Pending)
		switch {
		case pending == "":
			f.Pending = ""
		case f.Categories.Add(pending):
			f.Pending = ""
		default:
			f.Notice = "validation.category_duplicate"
		}
		return true
	case ActionRemoveCategory:
		f.Categories.Remove(f.RemoveTag)
		return true
	default:
		return false
	}
}

func (f ExpertiseForm) Validate() Errors {
	return check(f, map[string]string{"name.required": "validation.name_required"})
}

func (f ExpertiseForm) Input() consultapi.ExpertiseInput {
	categories := f.Categories.Items()
	if categories == nil {
		categories = []string{}
	}
	return consultapi.ExpertiseInput{Name: f.Name, Category: categories}
}
