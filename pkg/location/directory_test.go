package location

import (
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"
)

const gazetteerHTML = `<html><body>
<h2>Maharashtra</h2>
<ul><li>Pune</li><li>Satara</li></ul>
<h2>Kerala</h2>
<ul><li>Kochi</li></ul>
</body></html>`

func TestSeedAvailableOffline(t *testing.T) {
	d := NewDirectory()

	states := d.States()
	want := []string{"Karnataka", "Maharashtra", "Punjab"}
	if !reflect.DeepEqual(states, want) {
		t.Errorf("seed states = %v, want %v", states, want)
	}
	if vs := d.Villages("Maharashtra"); len(vs) == 0 || vs[0] != "Mumbai" {
		t.Errorf("seed villages missing: %v", vs)
	}
	if vs := d.Villages("Nowhere"); len(vs) != 0 {
		t.Errorf("unknown state should have no villages: %v", vs)
	}
}

func TestRefreshReplacesDirectory(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(gazetteerHTML))
	}))
	defer srv.Close()

	d := NewDirectory()
	if err := d.Refresh(srv.URL); err != nil {
		t.Fatalf("refresh: %v", err)
	}

	want := []string{"Kerala", "Maharashtra"}
	if got := d.States(); !reflect.DeepEqual(got, want) {
		t.Errorf("states after refresh = %v, want %v", got, want)
	}
	if vs := d.Villages("Maharashtra"); !reflect.DeepEqual(vs, []string{"Pune", "Satara"}) {
		t.Errorf("villages after refresh = %v", vs)
	}
	// replaced wholesale, seed-only states are gone
	if vs := d.Villages("Punjab"); len(vs) != 0 {
		t.Errorf("stale seed state survived refresh: %v", vs)
	}
}

func TestRefreshFailureKeepsPreviousData(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusInternalServerError)
	}))
	defer srv.Close()

	d := NewDirectory()
	if err := d.Refresh(srv.URL); err == nil {
		t.Fatal("want error from failing gazetteer")
	}
	if vs := d.Villages("Punjab"); len(vs) == 0 {
		t.Error("seed data lost after failed refresh")
	}
}

func TestRefreshEmptyGazetteerRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html><body><p>maintenance</p></body></html>"))
	}))
	defer srv.Close()

	d := NewDirectory()
	if err := d.Refresh(srv.URL); err == nil {
		t.Fatal("want error for gazetteer without states")
	}
	if len(d.States()) != 3 {
		t.Error("seed data lost after rejected refresh")
	}
}
