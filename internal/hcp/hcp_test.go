package hcp

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

func servePage(t *testing.T, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, body)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestFetchFromHcpIndexElement(t *testing.T) {
	srv := servePage(t, `<html><body><span class="hcp-index"> 12,4 </span></body></html>`)

	got, err := Fetch(context.Background(), srv.Client(), srv.URL+"/player/%s", "12345")
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if got != 12.4 {
		t.Errorf("handicap = %v, want 12.4", got)
	}
}

func TestFetchFromTableFallback(t *testing.T) {
	srv := servePage(t, `<html><body><table>
		<tr><td>Name</td><td>Sam Harper</td></tr>
		<tr><td>hcp</td><td>+1.2</td></tr>
	</table></body></html>`)

	got, err := Fetch(context.Background(), srv.Client(), srv.URL+"/player/%s", "12345")
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if got != -1.2 {
		t.Errorf("plus handicap = %v, want -1.2", got)
	}
}

func TestFetchErrors(t *testing.T) {
	srv := servePage(t, `<html><body><p>no handicap here</p></body></html>`)
	if _, err := Fetch(context.Background(), srv.Client(), srv.URL+"/player/%s", "12345"); err == nil {
		t.Error("page without a handicap should fail")
	}

	notFound := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer notFound.Close()
	if _, err := Fetch(context.Background(), notFound.Client(), notFound.URL+"/player/%s", "12345"); err == nil {
		t.Error("non-200 response should fail")
	}
}

func TestParseHandicap(t *testing.T) {
	cases := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"12.4", 12.4, true},
		{"12,4", 12.4, true},
		{"+1.2", -1.2, true},
		{"0", 0, true},
		{"scratch", 0, false},
	}
	for _, c := range cases {
		got, err := parseHandicap(c.in)
		if c.ok && (err != nil || got != c.want) {
			t.Errorf("parseHandicap(%q) = %v, %v; want %v", c.in, got, err, c.want)
		}
		if !c.ok && err == nil {
			t.Errorf("parseHandicap(%q) should fail", c.in)
		}
	}
}
