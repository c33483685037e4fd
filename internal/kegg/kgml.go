// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package kegg

import (
	"context"
	"encoding/xml"
	"fmt"
	"strings"
)

// KGML structures for KEGG pathway diagrams. Only the elements the
// pipeline consumes are mapped: entries with their graphics, reactions
// with substrate and product references, and relations.

// KGMLPathway is the root element of a KGML document.
type KGMLPathway struct {
	Name      string         `xml:"name,attr"`
	Org       string         `xml:"org,attr"`
	Number    string         `xml:"number,attr"`
	Title     string         `xml:"title,attr"`
	Entries   []KGMLEntry    `xml:"entry"`
	Reactions []KGMLReaction `xml:"reaction"`
	Relations []KGMLRelation `xml:"relation"`
}

// KGMLEntry is one node of the diagram: a compound, enzyme, or linked map.
type KGMLEntry struct {
	ID       string       `xml:"id,attr"`
	Name     string       `xml:"name,attr"`
	Type     string       `xml:"type,attr"`
	Graphics KGMLGraphics `xml:"graphics"`
}

// KGMLGraphics carries the drawing attributes of an entry.
type KGMLGraphics struct {
	Name    string  `xml:"name,attr"`
	X       float64 `xml:"x,attr"`
	Y       float64 `xml:"y,attr"`
	Width   float64 `xml:"width,attr"`
	Height  float64 `xml:"height,attr"`
	Type    string  `xml:"type,attr"`
	BgColor string  `xml:"bgcolor,attr"`
	FgColor string  `xml:"fgcolor,attr"`
}

// KGMLReaction is a diagram reaction with its compound references.
type KGMLReaction struct {
	ID         string            `xml:"id,attr"`
	Name       string            `xml:"name,attr"`
	Type       string            `xml:"type,attr"`
	Substrates []KGMLCompoundRef `xml:"substrate"`
	Products   []KGMLCompoundRef `xml:"product"`
}

// Reversible reports whether the diagram draws the reaction double-headed.
func (r KGMLReaction) Reversible() bool {
	return r.Type == "reversible"
}

// KGMLCompoundRef points a reaction at a compound entry.
type KGMLCompoundRef struct {
	ID   string `xml:"id,attr"`
	Name string `xml:"name,attr"`
}

// KGMLRelation is an edge between two entries.
type KGMLRelation struct {
	Entry1   string        `xml:"entry1,attr"`
	Entry2   string        `xml:"entry2,attr"`
	Type     string        `xml:"type,attr"`
	Subtypes []KGMLSubtype `xml:"subtype"`
}

// KGMLSubtype refines a relation, e.g. the shared compound of an ECrel.
type KGMLSubtype struct {
	Name  string `xml:"name,attr"`
	Value string `xml:"value,attr"`
}

// ReactionIDs returns the reaction identifiers drawn on the diagram,
// "rn:" prefixes stripped and duplicates removed. A single diagram
// reaction can carry several identifiers in its name attribute.
func (p *KGMLPathway) ReactionIDs() []string {
	var out []string
	seen := map[string]bool{}
	for _, r := range p.Reactions {
		for _, name := range strings.Fields(r.Name) {
			id := strings.TrimPrefix(name, "rn:")
			if id == "" || seen[id] {
				continue
			}
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}

// HasReaction reports whether the diagram draws the given reaction.
func (p *KGMLPathway) HasReaction(reactionID string) bool {
	for _, r := range p.Reactions {
		for _, name := range strings.Fields(r.Name) {
			if strings.TrimPrefix(name, "rn:") == reactionID {
				return true
			}
		}
	}
	return false
}

// ParseKGML decodes a KGML document.
func ParseKGML(raw []byte) (*KGMLPathway, error) {
	var p KGMLPathway
	if err := xml.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("parsing KGML: %w", err)
	}
	return &p, nil
}

// KGML fetches and parses the diagram of a pathway map.
func (c *Client) KGML(ctx context.Context, mapID string) (*KGMLPathway, error) {
	body, err := c.get(ctx, "/get/"+mapID+"/kgml")
	if err != nil {
		return nil, fmt.Errorf("kgml for %s: %w", mapID, err)
	}
	return ParseKGML([]byte(body))
}
