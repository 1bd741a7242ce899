package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/srcmap-dev/srcmap/internal/fileutil"
	"github.com/srcmap-dev/srcmap/pkg/sourcemap"
)

type sourceReport struct {
	Source    string `json:"source"`
	Positions int    `json:"positions"`
}

type mappingReport struct {
	Source    string                        `json:"source"`
	Line      int                           `json:"line"`
	Col       int                           `json:"col"`
	Generated []sourcemap.GeneratedPosition `json:"generated"`
}

type inspectReport struct {
	File      string          `json:"file,omitempty"`
	Sources   []string        `json:"sources"`
	Names     []string        `json:"names"`
	Positions int             `json:"positions"`
	PerSource []sourceReport  `json:"per_source"`
	Mappings  []mappingReport `json:"mappings,omitempty"`
}

func RunInspect(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	doc, err := loadDocument(args[0])
	if err != nil {
		return err
	}
	idx, err := sourcemap.DecodeDocument(doc)
	if err != nil {
		return fmt.Errorf("%s: %w", args[0], err)
	}

	withMappings, err := cmd.Flags().GetBool("mappings")
	if err != nil {
		return fmt.Errorf("failed to read --mappings flag: %w", err)
	}

	report := inspectReport{
		File:      doc.File,
		Sources:   doc.Sources,
		Names:     doc.Names,
		Positions: idx.Positions(),
	}

	perSource := make(map[string]int, len(doc.Sources))
	_ = idx.Walk(func(source string, _, _ int, positions []sourcemap.GeneratedPosition) error {
		perSource[source] += len(positions)
		return nil
	})
	for _, source := range idx.Sources() {
		report.PerSource = append(report.PerSource, sourceReport{Source: source, Positions: perSource[source]})
	}

	if withMappings {
		_ = idx.Walk(func(source string, line, col int, positions []sourcemap.GeneratedPosition) error {
			report.Mappings = append(report.Mappings, mappingReport{
				Source:    source,
				Line:      line,
				Col:       col,
				Generated: positions,
			})
			return nil
		})
	}

	return fileutil.PrintJSON(cmd.OutOrStdout(), report, cfg.IndentOrDefault())
}
