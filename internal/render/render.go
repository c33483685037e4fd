// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package render builds KEGG pathway-diagram URLs with reactions and
// compounds highlighted.
// Implements: prd006-enrichment R5;
//
//	docs/ARCHITECTURE § Rendering.
package render

import (
	"fmt"
	"strings"

	"github.com/pdiddy/pathway-engine/internal/kegg"
)

const showPathwayBase = "https://www.kegg.jp/kegg-bin/show_pathway"

// HighlightURL returns the browser URL of the map diagram with the given
// reactions and the target compound marked in red. The compound segment
// carries an URL-encoded color suffix understood by the KEGG viewer.
func HighlightURL(mapID string, reactionIDs []string, compoundID string) string {
	segments := append([]string{mapID}, reactionIDs...)
	if compoundID != "" {
		segments = append(segments, compoundID+"%20%23ff0000")
	}
	return showPathwayBase + "?" + strings.Join(segments, "/")
}

// CheckAgainstKGML compares the highlighted reactions against the map's
// KGML diagram description and returns a warning per reaction that the
// diagram does not draw. Such reactions still belong to the map but render
// as nothing when the URL is opened.
func CheckAgainstKGML(doc *kegg.KGMLPathway, reactionIDs []string) []string {
	mapName := strings.TrimPrefix(doc.Name, "path:")
	var warnings []string
	for _, rid := range reactionIDs {
		if !doc.HasReaction(rid) {
			warnings = append(warnings, fmt.Sprintf("reaction %s is not drawn on map %s", rid, mapName))
		}
	}
	return warnings
}
