package csrf

import (
	"net/http/httptest"
	"testing"
)

func TestFromRequest(t *testing.T) {
	tests := []struct {
		name    string
		headers []string
		want    string
	}{
		{name: "no cookie", want: ""},
		{name: "only token", headers: []string{"csrftoken=abc"}, want: "abc"},
		{name: "among others", headers: []string{"sessionid=x; csrftoken=abc; theme=dark"}, want: "abc"},
		{name: "last wins", headers: []string{"csrftoken=first; csrftoken=second"}, want: "second"},
		{name: "last wins across headers", headers: []string{"csrftoken=one", "other=1; csrftoken=two"}, want: "two"},
		{name: "missing", headers: []string{"sessionid=x; theme=dark"}, want: ""},
		{name: "similar name", headers: []string{"xcsrftoken=nope"}, want: ""},
		{name: "quoted value", headers: []string{`csrftoken="abc"`}, want: "abc"},
		{name: "value with equals", headers: []string{"csrftoken=a=b"}, want: "a=b"},
		{name: "no spaces", headers: []string{"a=1;csrftoken=tok"}, want: "tok"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("POST", "/login", nil)
			for _, h := range tt.headers {
				r.Header.Add("Cookie", h)
			}
			if got := FromRequest(r); got != tt.want {
				t.Errorf("Expected %q, got %q", tt.want, got)
			}
		})
	}
}
