package middleware

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/academiq/academiq/internal/i18n"
)

const (
	// LangContextKey is the gin context key holding the resolved language tag.
	LangContextKey = "lang"
	// LocalizerContextKey is the gin context key holding the request localizer.
	LocalizerContextKey = "localizer"
	// LangCookieName stores the visitor's explicit language choice.
	LangCookieName = "academiq_lang"
)

// Locale resolves the request language and installs a localizer in the gin
// context. Routes mounted under a language prefix pass that language. The
// default-language routes pass an empty string: a stored cookie choice for a
// non-default language sends GET requests to the prefixed tree, so each
// language keeps a single canonical URL; otherwise the cookie, the
// Accept-Language header, then the configured default decide.
func Locale(translator *i18n.Translator, routeLang, defaultLang string) gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := routeLang
		if lang == "" {
			if cookie, err := c.Cookie(LangCookieName); err == nil && i18n.Known(cookie) {
				if cookie != defaultLang && c.Request.Method == http.MethodGet {
					if target, ok := prefixedPath(c.Request.URL, cookie); ok {
						c.Redirect(http.StatusFound, target)
						c.Abort()
						return
					}
				}
				lang = cookie
			}
		}
		if lang == "" {
			lang = defaultLang
		}

		accept := c.GetHeader("Accept-Language")
		c.Set(LangContextKey, lang)
		c.Set(LocalizerContextKey, translator.Localizer(lang, accept, defaultLang))
		c.Next()
	}
}

// prefixedPath returns the language-prefixed variant of the request URL, or
// false when the path already lives under that prefix.
func prefixedPath(u *url.URL, lang string) (string, bool) {
	prefix := "/" + lang
	if u.Path == prefix || strings.HasPrefix(u.Path, prefix+"/") {
		return "", false
	}
	target := prefix + u.Path
	if u.RawQuery != "" {
		target += "?" + u.RawQuery
	}
	return target, true
}
