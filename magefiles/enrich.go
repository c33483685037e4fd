//go:build mage

package main

import "fmt"

// Enrich resolves pathway enzymes to UniProt entries and Pfam domains.
// See prd006-enrichment for full requirements.
func Enrich() error {
	fmt.Println("[enrich] Extract pathway EC numbers and resolve UniProt entries with Pfam domains.")
	fmt.Println("[enrich] Not yet implemented.")
	return nil
}
