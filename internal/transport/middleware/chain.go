package middleware

import "net/http"

// Middleware wraps an http.Handler. It is assignable to the
// func(http.Handler) http.Handler that chi's Use and With expect.
type Middleware func(http.Handler) http.Handler

// Chain folds mws into one Middleware. The first one given is the outermost:
// Chain(a, b)(h) == a(b(h)).
func Chain(mws ...Middleware) Middleware {
	return func(final http.Handler) http.Handler {
		for i := len(mws) - 1; i >= 0; i-- {
			final = mws[i](final)
		}
		return final
	}
}
