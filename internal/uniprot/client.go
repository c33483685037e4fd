// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package uniprot resolves enzyme EC numbers to reviewed UniProtKB entries
// and their Pfam domain annotations.
// Implements: prd006-enrichment (R1-R3);
//
//	docs/ARCHITECTURE § Enrichment.
package uniprot

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/pdiddy/pathway-engine/internal/httputil"
	"github.com/pdiddy/pathway-engine/pkg/types"
)

// API bases are package-level variables so tests can substitute an
// httptest server.
var (
	uniprotSearchBase = "https://rest.uniprot.org/uniprotkb/search"
	uniprotEntryBase  = "https://rest.uniprot.org/uniprotkb"
)

const (
	defaultTimeout      = 30 * time.Second
	defaultRequestDelay = time.Second
	defaultPageSize     = 500
	defaultUserAgent    = "pathway-engine/0.1"
)

// Client queries the UniProtKB REST API.
type Client struct {
	cfg  types.UniProtConfig
	http *http.Client
	log  *slog.Logger
}

// NewClient builds a client, filling zero config fields with defaults.
// A negative RequestDelay disables batch pacing.
func NewClient(cfg types.UniProtConfig) *Client {
	if cfg.Timeout == 0 {
		cfg.Timeout = defaultTimeout
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = defaultUserAgent
	}
	if cfg.RequestDelay == 0 {
		cfg.RequestDelay = defaultRequestDelay
	}
	if cfg.PageSize == 0 {
		cfg.PageSize = defaultPageSize
	}
	return &Client{
		cfg:  cfg,
		http: &http.Client{Timeout: cfg.Timeout},
		log:  slog.New(slog.DiscardHandler),
	}
}

// SetLogger routes the client's debug logging to l.
func (c *Client) SetLogger(l *slog.Logger) {
	if l != nil {
		c.log = l
	}
}

func (c *Client) getJSON(ctx context.Context, rawURL string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("User-Agent", c.cfg.UserAgent)
	req.Header.Set("Accept", "application/json")

	c.log.Debug("uniprot request", "url", rawURL)
	resp, err := httputil.DoWithRetry(ctx, c.http, req, c.cfg.MaxRetries)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("uniprot returned status %d", resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}

type searchResponse struct {
	Results []Entry `json:"results"`
}

// SearchByEC returns the UniProtKB entries annotated with the EC number.
// Unless the config includes unreviewed entries, the query is restricted
// to Swiss-Prot.
func (c *Client) SearchByEC(ctx context.Context, ec string) ([]Entry, error) {
	query := "ec:" + ec
	if !c.cfg.IncludeUnreviewed {
		query += " AND reviewed:true"
	}
	params := url.Values{
		"query":  {query},
		"format": {"json"},
		"fields": {"accession,protein_name"},
		"size":   {strconv.Itoa(c.cfg.PageSize)},
	}

	var sr searchResponse
	if err := c.getJSON(ctx, uniprotSearchBase+"?"+params.Encode(), &sr); err != nil {
		return nil, fmt.Errorf("searching EC %s: %w", ec, err)
	}
	return sr.Results, nil
}

// Entry fetches the full record for one accession, including its
// cross-references.
func (c *Client) Entry(ctx context.Context, accession string) (*Entry, error) {
	var e Entry
	u := fmt.Sprintf("%s/%s.json", uniprotEntryBase, url.PathEscape(accession))
	if err := c.getJSON(ctx, u, &e); err != nil {
		return nil, fmt.Errorf("fetching entry %s: %w", accession, err)
	}
	return &e, nil
}

// DomainRow is one EC-to-Pfam association in a domain report.
type DomainRow struct {
	EC          string
	Accession   string
	ProteinName string
	PfamID      string
	PfamName    string
}

// DomainReport holds the outcome of a batch EC resolution run.
type DomainReport struct {
	Rows     []DomainRow
	Resolved int
	NoEntry  int
	Failed   int
}

// Total returns the number of EC numbers processed.
func (r DomainReport) Total() int {
	return r.Resolved + r.NoEntry + r.Failed
}

// HasFailures reports whether any EC lookups errored.
func (r DomainReport) HasFailures() bool {
	return r.Failed > 0
}

// DomainsForECs resolves each EC number to its first matching entry and
// collects that entry's Pfam domains, printing per-item status and
// returning a summary. It continues after individual failures and applies
// a delay between consecutive EC numbers (R3.1-R3.4). An entry without
// Pfam cross-references still contributes one row, so the report keeps
// every resolved enzyme.
func (c *Client) DomainsForECs(ctx context.Context, ecs []string, w io.Writer) (DomainReport, error) {
	var report DomainReport
	for i, ec := range ecs {
		if i > 0 && c.cfg.RequestDelay > 0 {
			time.Sleep(c.cfg.RequestDelay)
		}
		if err := ctx.Err(); err != nil {
			return report, err
		}

		rows, err := c.domainsForEC(ctx, ec)
		if err != nil {
			if ctx.Err() != nil {
				return report, ctx.Err()
			}
			fmt.Fprintf(w, "failed:  %s (%v)\n", ec, err)
			report.Failed++
			continue
		}
		if rows == nil {
			fmt.Fprintf(w, "no reviewed entry: %s\n", ec)
			report.NoEntry++
			continue
		}
		fmt.Fprintf(w, "resolved: %s -> %s (%d Pfam domains)\n", ec, rows[0].Accession, countDomains(rows))
		report.Resolved++
		report.Rows = append(report.Rows, rows...)
	}
	fmt.Fprintf(w, "\nBatch summary: %d resolved, %d without entries, %d failed (total: %d)\n",
		report.Resolved, report.NoEntry, report.Failed, report.Total())
	return report, nil
}

func (c *Client) domainsForEC(ctx context.Context, ec string) ([]DomainRow, error) {
	results, err := c.SearchByEC(ctx, ec)
	if err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, nil
	}

	hit := results[0]
	entry, err := c.Entry(ctx, hit.PrimaryAccession)
	if err != nil {
		return nil, err
	}

	name := entry.ProteinName()
	domains := entry.PfamDomains()
	if len(domains) == 0 {
		return []DomainRow{{EC: ec, Accession: entry.PrimaryAccession, ProteinName: name}}, nil
	}
	rows := make([]DomainRow, 0, len(domains))
	for _, d := range domains {
		rows = append(rows, DomainRow{
			EC:          ec,
			Accession:   entry.PrimaryAccession,
			ProteinName: name,
			PfamID:      d.ID,
			PfamName:    d.Name,
		})
	}
	return rows, nil
}

func countDomains(rows []DomainRow) int {
	var n int
	for _, r := range rows {
		if r.PfamID != "" {
			n++
		}
	}
	return n
}
