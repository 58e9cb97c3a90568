package monitor

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/axellelanca/minicrud/internal/models"
)

type staticSource struct {
	links []models.ShortLink
	err   error
}

func (s staticSource) Links(context.Context) ([]models.ShortLink, error) { return s.links, s.err }

func TestLinkChecker_Check(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodHead {
			t.Errorf("method = %s, want HEAD", r.Method)
		}
		switch r.URL.Path {
		case "/ok":
			w.WriteHeader(http.StatusOK)
		case "/moved":
			http.Redirect(w, r, "/ok", http.StatusFound)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	checker := NewLinkChecker(staticSource{links: []models.ShortLink{
		{ShortID: "aaaaaa", FullURL: srv.URL + "/ok"},
		{ShortID: "bbbbbb", FullURL: srv.URL + "/moved"},
		{ShortID: "cccccc", FullURL: srv.URL + "/gone"},
		{ShortID: "dddddd", FullURL: "not a url"},
	}}, time.Second)

	results, err := checker.Check(context.Background())
	if err != nil {
		t.Fatalf("Check: %v", err)
	}

	want := []struct {
		reachable bool
		status    int
	}{
		{true, http.StatusOK},
		{true, http.StatusFound},
		{false, http.StatusNotFound},
		{false, 0},
	}
	if len(results) != len(want) {
		t.Fatalf("got %d results, want %d", len(results), len(want))
	}
	for i, w := range want {
		if results[i].Reachable != w.reachable || results[i].Status != w.status {
			t.Errorf("result %d (%s) = %+v, want reachable=%v status=%d",
				i, results[i].FullURL, results[i], w.reachable, w.status)
		}
	}
}

func TestLinkChecker_SourceError(t *testing.T) {
	boom := errors.New("db closed")
	checker := NewLinkChecker(staticSource{err: boom}, time.Second)

	if _, err := checker.Check(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("err = %v, want %v", err, boom)
	}
}

func TestFormatState(t *testing.T) {
	if FormatState(true) != "ACCESSIBLE" || FormatState(false) != "INACCESSIBLE" {
		t.Fatal("unexpected state labels")
	}
}
