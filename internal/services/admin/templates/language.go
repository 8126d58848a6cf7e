package templates

import (
	"net/url"

	admini18n "github.com/doubtsclear/console/internal/services/admin/i18n"
	"golang.org/x/text/language"
)

// LanguageOption represents a supported language option in the admin UI.
type LanguageOption struct {
	Tag    string
	Label  string
	Active bool
}

// LanguageOptions returns supported language options with active selection.
func LanguageOptions(page PageContext) []LanguageOption {
	active := normalizeTag(page.Lang).String()
	tags := admini18n.Supported()
	options := make([]LanguageOption, 0, len(tags))
	for _, tag := range tags {
		options = append(options, LanguageOption{
			Tag:    tag.String(),
			Label:  page.T("core.language." + tag.String()),
			Active: tag.String() == active,
		})
	}
	return options
}

// LanguageURL returns the current URL with the language param updated.
func LanguageURL(page PageContext, tag string) string {
	values, err := url.ParseQuery(page.CurrentQuery)
	if err != nil {
		values = url.Values{}
	}
	values.Set(admini18n.LangParam, tag)
	path := page.CurrentPath
	if path == "" {
		path = "/"
	}
	return path + "?" + values.Encode()
}

// normalizeTag coerces unknown tags to the default supported language.
func normalizeTag(value string) language.Tag {
	tag, err := language.Parse(value)
	if err != nil {
		return admini18n.Default()
	}
	for _, supported := range admini18n.Supported() {
		if supported == tag {
			return tag
		}
	}
	return admini18n.Default()
}
