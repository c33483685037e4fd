// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/pathway-engine/internal/render"
)

var renderCmd = &cobra.Command{
	Use:   "render <map-id> <reaction-id>... [compound-id]",
	Short: "Build a KEGG diagram URL highlighting reactions",
	Long: `Render builds the KEGG show_pathway URL that displays a pathway map
with the given reactions highlighted and the target compound marked in
red. With --check the map's KGML is fetched and steps missing from the
diagram are reported.`,
	RunE: runRender,
}

func init() {
	renderCmd.Flags().Bool("check", false, "fetch the KGML and verify every reaction is drawn")

	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("provide a map identifier followed by reaction identifiers")
	}
	mapID := args[0]
	var reactions []string
	var compound string
	for _, arg := range args[1:] {
		switch {
		case reactionIDPattern.MatchString(arg):
			reactions = append(reactions, arg)
		case compoundIDPattern.MatchString(arg):
			if compound != "" {
				return fmt.Errorf("more than one compound identifier given")
			}
			compound = arg
		default:
			return fmt.Errorf("argument %q is neither a reaction nor a compound identifier", arg)
		}
	}
	if len(reactions) == 0 {
		return fmt.Errorf("provide at least one reaction identifier")
	}

	fmt.Println(render.HighlightURL(mapID, reactions, compound))

	if check, _ := cmd.Flags().GetBool("check"); check {
		doc, err := newKEGGClient().KGML(cmd.Context(), mapID)
		if err != nil {
			return err
		}
		warnings := render.CheckAgainstKGML(doc, reactions)
		for _, warning := range warnings {
			fmt.Printf("  warning: %s\n", warning)
		}
		if len(warnings) == 0 {
			fmt.Printf("all %d reactions are drawn on %s\n", len(reactions), mapID)
		}
	}
	return nil
}
