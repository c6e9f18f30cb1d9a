package catalog

import (
	"context"
	"fmt"
	"net/http"
	"regexp"
	"strings"
)

var (
	editSuffix    = regexp.MustCompile(`/edit.*$`)
	sharingSuffix = regexp.MustCompile(`/usp=sharing.*$`)
)

const exportSuffix = "/export?format=csv"

// ExportURL rewrites a spreadsheet share or edit link to its CSV export URL.
// URLs that already point at the export are returned unchanged.
func ExportURL(sheetURL string) string {
	u := strings.TrimSpace(sheetURL)
	if strings.Contains(u, exportSuffix) {
		return u
	}
	u = editSuffix.ReplaceAllString(u, exportSuffix)
	return sharingSuffix.ReplaceAllString(u, exportSuffix)
}

// Fetcher downloads and parses a published sheet.
type Fetcher struct {
	Client *http.Client
}

func (f Fetcher) client() *http.Client {
	if f.Client != nil {
		return f.Client
	}
	return http.DefaultClient
}

// Fetch downloads sheetURL as CSV and parses it.
func (f Fetcher) Fetch(ctx context.Context, sheetURL string) (Result, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, ExportURL(sheetURL), nil)
	if err != nil {
		return Result{}, fmt.Errorf("fetch sheet: %w", err)
	}
	req.Header.Set("Accept", "text/csv")

	resp, err := f.client().Do(req)
	if err != nil {
		return Result{}, fmt.Errorf("fetch sheet: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Result{}, fmt.Errorf("fetch sheet: unexpected status %s", resp.Status)
	}
	return ParseSheet(resp.Body)
}
