package catalogsync

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ksp-mods/ckanreg"
)

func TestSync_ParsesCatalogIntoRegistry(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"identifier": "FooMod", "version": "1.0", "provides": ["Virtual"]},
			{"identifier": "BarMod", "version": "2.0", "depends": [{"name": "FooMod"}]}
		]`))
	}))
	defer srv.Close()

	s := New([]string{srv.URL}, WithCacheTTL(time.Minute))
	defer s.Close()

	r := ckanreg.New()
	if err := s.Sync(context.Background(), r); err != nil {
		t.Fatalf("Sync: %v", err)
	}

	available := r.Available("")
	if len(available) != 2 {
		t.Fatalf("Available() = %+v, want 2 entries", available)
	}
}

func TestSync_FallsBackToNextMirror(t *testing.T) {
	failing := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer failing.Close()

	working := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		w.Write([]byte(`[{"identifier": "FooMod", "version": "1.0"}]`))
	}))
	defer working.Close()

	s := New([]string{failing.URL, working.URL})
	defer s.Close()

	r := ckanreg.New()
	if err := s.Sync(context.Background(), r); err != nil {
		t.Fatalf("Sync: %v", err)
	}
	if len(r.Available("")) != 1 {
		t.Errorf("Available() = %+v, want 1 entry from the working mirror", r.Available(""))
	}
}

func TestSync_AllMirrorsFail(t *testing.T) {
	failing := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer failing.Close()

	s := New([]string{failing.URL})
	defer s.Close()

	r := ckanreg.New()
	if err := s.Sync(context.Background(), r); err == nil {
		t.Error("Sync should fail when every mirror returns an error")
	}
}
