package middleware

import (
	"net/http"
	"strings"
)

const overrideField = "_method"

// MethodOverride lets HTML forms reach PUT and DELETE routes. A POST whose
// form body carries _method=PUT or _method=DELETE is rewritten before the
// router sees it, which is why this wraps the handler instead of running
// as route middleware.
func MethodOverride(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			switch strings.ToUpper(r.PostFormValue(overrideField)) {
			case http.MethodPut:
				r.Method = http.MethodPut
			case http.MethodDelete:
				r.Method = http.MethodDelete
			}
		}
		next.ServeHTTP(w, r)
	})
}
