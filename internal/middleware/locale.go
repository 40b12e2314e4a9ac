package middleware

import (
	"net/http"

	"github.com/kyoma102/AI-tools-navigation/internal/i18n"
)

// LangParam is the query parameter that overrides Accept-Language.
const LangParam = "hl"

// Locale resolves the page language from the `hl` query parameter or the
// Accept-Language header and surfaces it as Content-Language. Unsupported
// overrides fall through to header negotiation.
func Locale(bundle *i18n.Bundle) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			lang, ok := bundle.Normalize(r.URL.Query().Get(LangParam))
			if !ok {
				lang = bundle.Resolve(r.Header.Get("Accept-Language"))
			}
			if lang != "" {
				w.Header().Set("Content-Language", lang)
			}
			next.ServeHTTP(w, r.WithContext(WithLang(r.Context(), lang)))
		})
	}
}

// Lang returns the language chosen by Locale, or fallback when the request
// did not pass through it.
func Lang(r *http.Request, fallback string) string {
	if lang, ok := LangFromContext(r.Context()); ok {
		return lang
	}
	return fallback
}

// VaryLocale sets Vary header for Accept-Language on dynamic responses
func VaryLocale(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// append to existing Vary if any
		w.Header().Add("Vary", "Accept-Language")
		next.ServeHTTP(w, r)
	})
}
