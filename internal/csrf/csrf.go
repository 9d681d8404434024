// Package csrf reads the anti-forgery token the resort API expects on mutating requests.
package csrf

import "net/http"

// CookieName is the cookie the resort API sets its CSRF token in.
const CookieName = "csrftoken"

// FromRequest returns the CSRF token carried by the visitor's cookies, or an
// empty string. When the cookie is present more than once the last value wins.
func FromRequest(r *http.Request) string {
	cookies := r.CookiesNamed(CookieName)
	if len(cookies) == 0 {
		return ""
	}
	return cookies[len(cookies)-1].Value
}
