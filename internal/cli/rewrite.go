package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/srcmap-dev/srcmap/pkg/sourcemap"
)

func RunRewrite(cmd *cobra.Command, args []string) error {
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

	opts, err := encodeOptions(cmd, cfg, doc)
	if err != nil {
		return err
	}
	rewritten, err := sourcemap.Encode(idx, opts)
	if err != nil {
		return fmt.Errorf("failed to re-encode %s: %w", args[0], err)
	}

	outputPath, err := optionalStringFlag(cmd, "output")
	if err != nil {
		return err
	}
	return emitDocument(cmd, rewritten, outputPath, cfg.IndentOrDefault())
}
