package location

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// Built-in gazetteer used when the device never managed to refresh. The
// manual-location fallback must work fully offline.
var seedVillages = map[string][]string{
	"Maharashtra": {"Mumbai", "Pune", "Nagpur"},
	"Karnataka":   {"Bangalore", "Mysore", "Hubli"},
	"Punjab":      {"Amritsar", "Ludhiana", "Chandigarh"},
}

// Directory serves the state/village lists behind the manual location entry.
// It starts from the built-in seed and can be refreshed from an HTML
// gazetteer; a failed refresh keeps whatever was loaded before.
type Directory struct {
	mu       sync.RWMutex
	villages map[string][]string
	client   *http.Client
}

func NewDirectory() *Directory {
	v := make(map[string][]string, len(seedVillages))
	for s, vs := range seedVillages {
		v[s] = append([]string(nil), vs...)
	}
	return &Directory{
		villages: v,
		client:   &http.Client{Timeout: 20 * time.Second},
	}
}

func (d *Directory) States() []string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make([]string, 0, len(d.villages))
	for s := range d.villages {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

func (d *Directory) Villages(state string) []string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return append([]string(nil), d.villages[state]...)
}

const maxGazetteerBytes = 2 << 20

// Refresh fetches an HTML gazetteer and swaps the directory contents in one
// step. Expected shape: an h2 per state followed by a list of villages.
func (d *Directory) Refresh(url string) error {
	resp, err := d.client.Get(url)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("gazetteer fetch: %s", resp.Status)
	}
	limited := io.LimitedReader{R: resp.Body, N: maxGazetteerBytes}
	b, err := io.ReadAll(&limited)
	if err != nil {
		return err
	}

	parsed, err := parseGazetteer(b)
	if err != nil {
		return err
	}
	if len(parsed) == 0 {
		return fmt.Errorf("gazetteer at %s had no states", url)
	}

	d.mu.Lock()
	d.villages = parsed
	d.mu.Unlock()
	return nil
}

func parseGazetteer(b []byte) (map[string][]string, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	out := map[string][]string{}
	doc.Find("h2").Each(func(_ int, h *goquery.Selection) {
		state := strings.TrimSpace(h.Text())
		if state == "" {
			return
		}
		var villages []string
		h.NextFilteredUntil("ul, ol", "h2").Find("li").Each(func(_ int, li *goquery.Selection) {
			if v := strings.TrimSpace(li.Text()); v != "" {
				villages = append(villages, v)
			}
		})
		if len(villages) > 0 {
			out[state] = villages
		}
	})
	return out, nil
}
