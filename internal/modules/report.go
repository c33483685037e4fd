// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package modules

import (
	"context"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"go.yaml.in/yaml/v3"
)

// Granularity labels for extraction reports.
const (
	GranularityPathway = "pathway"
	GranularityModules = "modules"
	GranularityModule  = "module"
)

// Extraction is the result of one EC extraction run.
type Extraction struct {
	PathwayID   string      `yaml:"pathway_id,omitempty"`
	Granularity string      `yaml:"granularity"`
	Modules     []ModuleECs `yaml:"modules,omitempty"`
	ECNumbers   []string    `yaml:"ec_numbers,omitempty"`
	TotalECs    int         `yaml:"total_ecs"`
}

// ModuleECs pairs a module with its extracted EC numbers.
type ModuleECs struct {
	Info      Info     `yaml:"info"`
	ECNumbers []string `yaml:"ec_numbers"`
}

// ExtractPathway collects EC numbers across a whole pathway without
// module breakdown.
func ExtractPathway(ctx context.Context, lookup Lookup, pathwayID string, w io.Writer) (*Extraction, error) {
	ecs, err := PathwayECNumbers(ctx, lookup, pathwayID, w)
	if err != nil {
		return nil, err
	}
	return &Extraction{
		PathwayID:   StandardizePathwayID(pathwayID),
		Granularity: GranularityPathway,
		ECNumbers:   ecs,
		TotalECs:    len(ecs),
	}, nil
}

// ExtractModules breaks a pathway down into its modules and collects EC
// numbers per module. The total counts each module's ECs separately, so
// an enzyme shared between modules contributes once per module.
func ExtractModules(ctx context.Context, lookup Lookup, pathwayID string, w io.Writer) (*Extraction, error) {
	infos, err := Discover(ctx, lookup, pathwayID, w)
	if err != nil {
		return nil, err
	}

	e := &Extraction{
		PathwayID:   StandardizePathwayID(pathwayID),
		Granularity: GranularityModules,
	}
	for _, info := range infos {
		ecs, err := ECNumbers(ctx, lookup, info.ID)
		if err != nil {
			fmt.Fprintf(w, "  warning: %s EC extraction failed: %v\n", info.ID, err)
			continue
		}
		e.Modules = append(e.Modules, ModuleECs{Info: info, ECNumbers: ecs})
		e.TotalECs += len(ecs)
	}
	return e, nil
}

// ExtractModule collects EC numbers for a single module.
func ExtractModule(ctx context.Context, lookup Lookup, pathwayID, moduleID string, w io.Writer) (*Extraction, error) {
	raw, err := lookup.GetEntry(ctx, moduleID)
	if err != nil {
		return nil, fmt.Errorf("fetching module %s: %w", moduleID, err)
	}
	info := parseInfo(moduleID, raw)
	ecs := uniqueMatches(ecNumberPattern, raw, 0)
	fmt.Fprintf(w, "found %d EC numbers in %s\n", len(ecs), moduleID)

	e := &Extraction{
		Granularity: GranularityModule,
		Modules:     []ModuleECs{{Info: info, ECNumbers: ecs}},
		TotalECs:    len(ecs),
	}
	if pathwayID != "" {
		e.PathwayID = StandardizePathwayID(pathwayID)
	}
	return e, nil
}

// AllECNumbers returns the union of EC numbers across an extraction,
// sorted, regardless of granularity.
func (e *Extraction) AllECNumbers() []string {
	set := map[string]bool{}
	for _, ec := range e.ECNumbers {
		set[ec] = true
	}
	for _, m := range e.Modules {
		for _, ec := range m.ECNumbers {
			set[ec] = true
		}
	}
	out := make([]string, 0, len(set))
	for ec := range set {
		out = append(out, ec)
	}
	sort.Strings(out)
	return out
}

// WriteReport saves an extraction as YAML.
func WriteReport(path string, e *Extraction) error {
	data, err := yaml.Marshal(e)
	if err != nil {
		return fmt.Errorf("marshaling extraction report: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// ReadReport loads an extraction report written by WriteReport.
func ReadReport(path string) (*Extraction, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading extraction report: %w", err)
	}
	var e Extraction
	if err := yaml.Unmarshal(data, &e); err != nil {
		return nil, fmt.Errorf("parsing extraction report: %w", err)
	}
	return &e, nil
}

// WriteECList saves EC numbers one per line, preceded by "# " comment
// lines and a blank separator. The format is the interchange between the
// modules and domains stages.
func WriteECList(path string, comments []string, ecs []string) error {
	var b strings.Builder
	for _, c := range comments {
		fmt.Fprintf(&b, "# %s\n", c)
	}
	if len(comments) > 0 {
		b.WriteString("\n")
	}
	for _, ec := range ecs {
		b.WriteString(ec + "\n")
	}
	return os.WriteFile(path, []byte(b.String()), 0o644)
}

// ReadECList loads an EC list file, skipping blank lines and # comments.
func ReadECList(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading EC list: %w", err)
	}
	var ecs []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		ecs = append(ecs, line)
	}
	return ecs, nil
}
