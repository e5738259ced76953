package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"

	"github.com/academiq/academiq/internal/i18n"
	"github.com/academiq/academiq/internal/server/http/middleware"
)

// View is the data every HTML template receives. Translation happens at
// render time through the request localizer.
type View struct {
	// Lang is the resolved language tag, Dir its writing direction.
	Lang string
	Dir  string
	// Prefix is the URL prefix of the current language, empty for the
	// default language.
	Prefix string
	Path   string
	Data   gin.H

	defaultLang string
	loc         *goi18n.Localizer
}

// T translates an English source string into the request language.
func (v View) T(src string) string {
	return i18n.T(v.loc, src)
}

// ServiceLabel translates a service type code into its display label.
func (v View) ServiceLabel(code string) string {
	return i18n.LocalizedServiceLabel(v.loc, code)
}

// AltURL returns the current path in another language, for the language
// switcher.
func (v View) AltURL(lang string) string {
	base := v.Path
	for _, l := range i18n.Languages {
		if l == v.defaultLang {
			continue
		}
		if cut, ok := strings.CutPrefix(base, "/"+l+"/"); ok {
			base = "/" + cut
			break
		}
	}
	if lang == v.defaultLang {
		return base
	}
	return "/" + lang + base
}

// Choice pairs an enum code with its localized label for form selects.
type Choice struct {
	Code  string
	Label string
}

func newView(c *gin.Context, defaultLang string, data gin.H) View {
	if data == nil {
		data = gin.H{}
	}

	lang := defaultLang
	if v, ok := c.Get(middleware.LangContextKey); ok {
		if s, ok := v.(string); ok && s != "" {
			lang = s
		}
	}

	var loc *goi18n.Localizer
	if v, ok := c.Get(middleware.LocalizerContextKey); ok {
		loc, _ = v.(*goi18n.Localizer)
	}

	dir := "ltr"
	if lang == i18n.LangArabic {
		dir = "rtl"
	}

	prefix := ""
	if lang != defaultLang {
		prefix = "/" + lang
	}

	return View{
		Lang:        lang,
		Dir:         dir,
		Prefix:      prefix,
		Path:        c.Request.URL.Path,
		Data:        data,
		defaultLang: defaultLang,
		loc:         loc,
	}
}

func localizerFrom(c *gin.Context) *goi18n.Localizer {
	if v, ok := c.Get(middleware.LocalizerContextKey); ok {
		if loc, ok := v.(*goi18n.Localizer); ok {
			return loc
		}
	}
	return nil
}

func contactChoices(loc *goi18n.Localizer) []Choice {
	codes := []string{"general", "thesis", "review", "statistics", "translation", "formatting"}
	return choices(loc, codes)
}

func orderChoices(loc *goi18n.Localizer) []Choice {
	codes := []string{"thesis", "review", "statistics", "translation", "formatting"}
	return choices(loc, codes)
}

func choices(loc *goi18n.Localizer, codes []string) []Choice {
	out := make([]Choice, 0, len(codes))
	for _, code := range codes {
		out = append(out, Choice{Code: code, Label: i18n.LocalizedServiceLabel(loc, code)})
	}
	return out
}
