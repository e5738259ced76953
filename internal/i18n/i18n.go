package i18n

import (
	"embed"
	"encoding/json"
	"fmt"

	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed locales/*.json
var localeFS embed.FS

// Supported site languages. English is the default and lives at unprefixed
// URLs; Arabic pages are served under the /ar/ prefix.
const (
	LangEnglish = "en"
	LangArabic  = "ar"
)

// Languages lists every supported language tag.
var Languages = []string{LangEnglish, LangArabic}

// Known reports whether lang is a supported language tag.
func Known(lang string) bool {
	for _, l := range Languages {
		if l == lang {
			return true
		}
	}
	return false
}

// Translator owns the message catalogs. Messages are keyed by their English
// source string, gettext style, so a missing translation falls back to the
// source text.
type Translator struct {
	bundle *goi18n.Bundle
}

// New loads the embedded locale catalogs.
func New() (*Translator, error) {
	bundle := goi18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)

	for _, lang := range Languages {
		name := fmt.Sprintf("locales/%s.json", lang)
		if _, err := bundle.LoadMessageFileFS(localeFS, name); err != nil {
			return nil, fmt.Errorf("load locale %s: %w", lang, err)
		}
	}

	return &Translator{bundle: bundle}, nil
}

// Localizer returns a localizer preferring the given language tags in order.
func (t *Translator) Localizer(langs ...string) *goi18n.Localizer {
	return goi18n.NewLocalizer(t.bundle, langs...)
}

// T translates the message identified by its English source string, falling
// back to the source itself when no translation exists.
func T(loc *goi18n.Localizer, src string) string {
	if loc == nil {
		return src
	}
	msg, err := loc.Localize(&goi18n.LocalizeConfig{MessageID: src})
	if err != nil {
		return src
	}
	return msg
}

// English labels for the service type enums, as shown in form selects and
// notification emails.
var serviceLabels = map[string]string{
	"general":     "General Inquiry",
	"thesis":      "Master's & PhD Thesis Preparation",
	"review":      "Research Paper Reviewing",
	"statistics":  "Statistical Analysis",
	"translation": "Scientific Translation",
	"formatting":  "Academic Formatting",
}

// ServiceLabel returns the English label of a service type code.
func ServiceLabel(code string) string {
	if label, ok := serviceLabels[code]; ok {
		return label
	}
	return code
}

// LocalizedServiceLabel returns the service type label in the localizer's
// language.
func LocalizedServiceLabel(loc *goi18n.Localizer, code string) string {
	return T(loc, ServiceLabel(code))
}
