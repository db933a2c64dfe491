package middleware

import (
	"net/http"
	"strings"
)

// TrimSlash returns middleware that redirects requests with trailing slashes
// to their canonical form without the slash. The root path "/" is preserved.
// Safe methods get 301; others get 308 so the request body is replayed.
// The redirect target comes from the original request URI so it stays
// correct beneath a module prefix that has been stripped from URL.Path.
func TrimSlash() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if len(r.URL.Path) > 1 && strings.HasSuffix(r.URL.Path, "/") {
				target := r.URL.Path
				if r.RequestURI != "" {
					target, _, _ = strings.Cut(r.RequestURI, "?")
				}
				target = strings.TrimSuffix(target, "/")
				if r.URL.RawQuery != "" {
					target += "?" + r.URL.RawQuery
				}
				status := http.StatusMovedPermanently
				if r.Method != http.MethodGet && r.Method != http.MethodHead {
					status = http.StatusPermanentRedirect
				}
				http.Redirect(w, r, target, status)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
