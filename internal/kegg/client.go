// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package kegg implements the KEGG REST lookup the pipeline stages share:
// link and list queries, flat-file entry parsing, and KGML retrieval, with
// politeness pacing between requests.
// Implements: prd003-lookup (R1-R5);
//
//	docs/ARCHITECTURE § KEGG Lookup.
package kegg

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/pdiddy/pathway-engine/internal/httputil"
	"github.com/pdiddy/pathway-engine/pkg/types"
)

// keggAPIBase is the KEGG REST endpoint. Declared as a var so tests can
// substitute an httptest server.
var keggAPIBase = "https://rest.kegg.jp"

const (
	defaultTimeout      = 30 * time.Second
	defaultRequestDelay = 200 * time.Millisecond
	defaultUserAgent    = "pathway-engine/0.1"
)

// Client queries the KEGG REST API. Consecutive requests are spaced by the
// configured politeness delay; KEGG asks clients to stay under three
// requests per second. Client is not safe for concurrent use.
type Client struct {
	cfg  types.LookupConfig
	http *http.Client
	log  *slog.Logger
	last time.Time
}

// NewClient builds a client, filling unset config fields with defaults:
// 30 s timeout, 200 ms request delay, the standard user agent.
func NewClient(cfg types.LookupConfig) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	if cfg.RequestDelay == 0 {
		cfg.RequestDelay = defaultRequestDelay
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = defaultUserAgent
	}
	return &Client{
		cfg:  cfg,
		http: &http.Client{Timeout: cfg.Timeout},
		log:  slog.New(slog.DiscardHandler),
	}
}

// SetLogger installs a logger for per-request debug tracing.
func (c *Client) SetLogger(l *slog.Logger) {
	if l != nil {
		c.log = l
	}
}

// throttle blocks until the politeness delay since the previous request
// has elapsed.
func (c *Client) throttle() {
	if c.cfg.RequestDelay <= 0 || c.last.IsZero() {
		c.last = time.Now()
		return
	}
	if wait := c.cfg.RequestDelay - time.Since(c.last); wait > 0 {
		c.log.Debug("kegg throttle", "wait", wait)
		time.Sleep(wait)
	}
	c.last = time.Now()
}

// get fetches one KEGG REST path and returns the response body.
func (c *Client) get(ctx context.Context, path string) (string, error) {
	c.throttle()

	url := keggAPIBase + path
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", c.cfg.UserAgent)

	c.log.Debug("kegg request", "path", path)
	resp, err := httputil.DoWithRetry(ctx, c.http, req, c.cfg.MaxRetries)
	if err != nil {
		return "", fmt.Errorf("kegg request %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("kegg %s returned HTTP %d", path, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading kegg response: %w", err)
	}
	c.log.Debug("kegg response", "path", path, "bytes", len(body))
	return string(body), nil
}

// ReactionsForCompound lists the reactions involving a compound, e.g.
// "C00022" for pyruvate.
func (c *Client) ReactionsForCompound(ctx context.Context, compoundID string) ([]string, error) {
	body, err := c.get(ctx, "/link/reaction/"+compoundID)
	if err != nil {
		return nil, fmt.Errorf("reactions for compound %s: %w", compoundID, err)
	}
	return linkedIDs(body, "rn:"), nil
}

// ReactionsForPathway lists the reactions of a pathway map, e.g. "map00720".
func (c *Client) ReactionsForPathway(ctx context.Context, mapID string) ([]string, error) {
	body, err := c.get(ctx, "/link/reaction/"+mapID)
	if err != nil {
		return nil, fmt.Errorf("reactions for pathway %s: %w", mapID, err)
	}
	return linkedIDs(body, "rn:"), nil
}

// PathwaysForCompound lists the pathway maps containing a compound.
func (c *Client) PathwaysForCompound(ctx context.Context, compoundID string) ([]string, error) {
	body, err := c.get(ctx, "/link/pathway/"+compoundID)
	if err != nil {
		return nil, fmt.Errorf("pathways for compound %s: %w", compoundID, err)
	}
	return linkedIDs(body, "path:"), nil
}

// GetReaction fetches and parses one reaction entry.
func (c *Client) GetReaction(ctx context.Context, reactionID string) (*types.Reaction, error) {
	body, err := c.get(ctx, "/get/"+reactionID)
	if err != nil {
		return nil, fmt.Errorf("reaction %s: %w", reactionID, err)
	}
	r := ParseReaction(body)
	if r.ID == "" {
		r.ID = reactionID
	}
	return r, nil
}

// ListReaction returns the printed list line of a reaction: identifier,
// names, and the name-based definition equation.
func (c *Client) ListReaction(ctx context.Context, reactionID string) (string, error) {
	body, err := c.get(ctx, "/list/reaction:"+reactionID)
	if err != nil {
		return "", fmt.Errorf("list reaction %s: %w", reactionID, err)
	}
	return strings.TrimSpace(body), nil
}

// GetEntry fetches one raw flat-file entry, e.g. a module or pathway record.
func (c *Client) GetEntry(ctx context.Context, id string) (string, error) {
	body, err := c.get(ctx, "/get/"+id)
	if err != nil {
		return "", fmt.Errorf("entry %s: %w", id, err)
	}
	return body, nil
}

// CompoundHit is one match of a compound search.
type CompoundHit struct {
	// ID is the compound identifier (e.g. "C00022").
	ID string `json:"id" yaml:"id"`

	// Names lists the compound's names, primary first.
	Names []string `json:"names" yaml:"names"`
}

// FindCompounds searches compounds by name or identifier fragment.
func (c *Client) FindCompounds(ctx context.Context, query string) ([]CompoundHit, error) {
	body, err := c.get(ctx, "/find/compound/"+query)
	if err != nil {
		return nil, fmt.Errorf("find compound %q: %w", query, err)
	}
	var hits []CompoundHit
	for _, line := range strings.Split(body, "\n") {
		fields := strings.Split(line, "\t")
		if len(fields) < 2 {
			continue
		}
		hit := CompoundHit{ID: strings.TrimPrefix(strings.TrimSpace(fields[0]), "cpd:")}
		for _, name := range strings.Split(fields[1], ";") {
			if name = strings.TrimSpace(name); name != "" {
				hit.Names = append(hit.Names, name)
			}
		}
		if hit.ID != "" {
			hits = append(hits, hit)
		}
	}
	return hits, nil
}

// CompoundName resolves a compound identifier to its primary name.
func (c *Client) CompoundName(ctx context.Context, compoundID string) (string, error) {
	body, err := c.get(ctx, "/get/cpd:"+compoundID)
	if err != nil {
		return "", fmt.Errorf("compound %s: %w", compoundID, err)
	}
	return ParseCompoundName(body), nil
}

// Organism is one row of the KEGG organism table.
type Organism struct {
	// TNumber is the KEGG genome identifier (e.g. "T01001").
	TNumber string `json:"t_number" yaml:"t_number"`

	// Code is the three or four letter organism code (e.g. "hsa").
	Code string `json:"code" yaml:"code"`

	// Name is the organism name with strain (e.g. "Homo sapiens (human)").
	Name string `json:"name" yaml:"name"`

	// Lineage is the semicolon-separated taxonomy.
	Lineage string `json:"lineage" yaml:"lineage"`
}

// Organisms fetches the full KEGG organism table.
func (c *Client) Organisms(ctx context.Context) ([]Organism, error) {
	body, err := c.get(ctx, "/list/organism")
	if err != nil {
		return nil, fmt.Errorf("organism table: %w", err)
	}
	var orgs []Organism
	for _, line := range strings.Split(body, "\n") {
		fields := strings.Split(line, "\t")
		if len(fields) < 3 {
			continue
		}
		org := Organism{TNumber: fields[0], Code: fields[1], Name: fields[2]}
		if len(fields) > 3 {
			org.Lineage = fields[3]
		}
		orgs = append(orgs, org)
	}
	return orgs, nil
}

// KOsForEC lists the KEGG Orthology identifiers annotated with an EC
// number, e.g. "1.1.1.1".
func (c *Client) KOsForEC(ctx context.Context, ec string) ([]string, error) {
	body, err := c.get(ctx, "/link/ko/ec:"+ec)
	if err != nil {
		return nil, fmt.Errorf("KOs for EC %s: %w", ec, err)
	}
	return linkedIDs(body, ""), nil
}

// GenesForKO lists the gene entries of a KEGG Orthology group. Entries
// keep their organism prefix ("eco:b0114").
func (c *Client) GenesForKO(ctx context.Context, ko string) ([]string, error) {
	body, err := c.get(ctx, "/link/genes/"+ko)
	if err != nil {
		return nil, fmt.Errorf("genes for %s: %w", ko, err)
	}
	return linkedIDs(body, ""), nil
}

// linkedIDs extracts the target column of a KEGG link or list response,
// stripping the given database prefix.
func linkedIDs(body, prefix string) []string {
	var out []string
	for _, line := range strings.Split(body, "\n") {
		fields := strings.Split(line, "\t")
		if len(fields) < 2 {
			continue
		}
		id := strings.TrimSpace(fields[1])
		if prefix != "" {
			id = strings.TrimPrefix(id, prefix)
		}
		if id != "" {
			out = append(out, id)
		}
	}
	return out
}
