package server

import (
	"net/http"
	"strings"
)

// securityHeaders are set on every response. The API only serves JSON, so
// nothing may be framed or loaded from it.
var securityHeaders = [][2]string{
	{HeaderContentTypeOptions, HeaderValueNoSniff},
	{HeaderFrameOptions, HeaderValueDeny},
	{HeaderReferrerPolicy, HeaderValueNoReferrer},
	{HeaderContentSecurity, HeaderValueCSPNone},
}

// SecurityHeadersMiddleware adds securityHeaders to responses
func SecurityHeadersMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			for _, kv := range securityHeaders {
				h.Set(kv[0], kv[1])
			}
			next.ServeHTTP(w, r)
		})
	}
}

// ReadOnlyMiddleware rejects every method that could carry a body. The
// debug surface only reports on a finished run.
func ReadOnlyMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions:
			next.ServeHTTP(w, r)
		default:
			w.Header().Set(HeaderAllow, strings.Join(AllowedMethods, ", "))
			http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		}
	})
}
