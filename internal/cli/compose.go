package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/srcmap-dev/srcmap/pkg/sourcemap"
)

func RunCompose(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	first, err := loadDocument(args[0])
	if err != nil {
		return err
	}
	firstIdx, err := sourcemap.DecodeDocument(first)
	if err != nil {
		return fmt.Errorf("%s: %w", args[0], err)
	}

	second, err := loadDocument(args[1])
	if err != nil {
		return err
	}
	secondIdx, err := sourcemap.DecodeDocument(second)
	if err != nil {
		return fmt.Errorf("%s: %w", args[1], err)
	}

	// The composed map describes the second pass's output file, so its
	// envelope defaults come from the second document.
	opts, err := encodeOptions(cmd, cfg, second)
	if err != nil {
		return err
	}
	merged, err := sourcemap.Encode(sourcemap.Merge(firstIdx, secondIdx), opts)
	if err != nil {
		return fmt.Errorf("failed to encode composed map: %w", err)
	}

	outputPath, err := optionalStringFlag(cmd, "output")
	if err != nil {
		return err
	}
	return emitDocument(cmd, merged, outputPath, cfg.IndentOrDefault())
}
