//go:build mage

package main

import "fmt"

// Explore enumerates and scores subpathways around a target compound.
// See prd005-subpathway for full requirements.
func Explore() error {
	fmt.Println("[explore] Enumerate map subpathways around a target compound and select the cheapest.")
	fmt.Println("[explore] Not yet implemented.")
	return nil
}
