package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/srcmap-dev/srcmap/internal/config"
	"github.com/srcmap-dev/srcmap/internal/fileutil"
	"github.com/srcmap-dev/srcmap/pkg/sourcemap"
)

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("failed to read --config flag: %w", err)
	}
	return config.Load(strings.TrimSpace(path))
}

func loadDocument(path string) (*sourcemap.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	doc, err := sourcemap.ParseDocument(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

func optionalStringFlag(cmd *cobra.Command, name string) (string, error) {
	if cmd.Flags().Lookup(name) == nil {
		return "", nil
	}
	value, err := cmd.Flags().GetString(name)
	if err != nil {
		return "", fmt.Errorf("failed to read --%s flag: %w", name, err)
	}
	return strings.TrimSpace(value), nil
}

// encodeOptions resolves encoder options from flags, config, and the
// document being rewritten, in that precedence order.
func encodeOptions(cmd *cobra.Command, cfg *config.Config, doc *sourcemap.Document) (sourcemap.Options, error) {
	opts := sourcemap.Options{File: doc.File, LineCount: doc.LineCount}

	if cfg.File != "" {
		opts.File = cfg.File
	}
	file, err := optionalStringFlag(cmd, "file")
	if err != nil {
		return sourcemap.Options{}, err
	}
	if file != "" {
		opts.File = file
	}

	lineCount, err := cmd.Flags().GetInt("line-count")
	if err != nil {
		return sourcemap.Options{}, fmt.Errorf("failed to read --line-count flag: %w", err)
	}
	if lineCount > 0 {
		opts.LineCount = lineCount
	}

	prefix, err := optionalStringFlag(cmd, "strip-prefix")
	if err != nil {
		return sourcemap.Options{}, err
	}
	if prefix == "" {
		prefix = cfg.StripPrefix
	}
	if prefix != "" {
		opts.Relativize = stripPrefix(prefix)
	}

	return opts, nil
}

// stripPrefix is the path-relativization strategy the CLI exposes: drop a
// fixed build-root prefix from each source path.
func stripPrefix(prefix string) func(string) string {
	return func(path string) string {
		return strings.TrimPrefix(path, prefix)
	}
}

// emitDocument prints the document to the command's stdout, or writes it
// to outputPath when set, skipping the write if the file is unchanged.
func emitDocument(cmd *cobra.Command, doc *sourcemap.Document, outputPath, indent string) error {
	if outputPath == "" {
		return fileutil.PrintJSON(cmd.OutOrStdout(), doc, indent)
	}

	wrote, err := fileutil.WriteJSON(outputPath, doc, indent)
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", outputPath, err)
	}
	if wrote {
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", outputPath)
	} else {
		fmt.Fprintf(cmd.OutOrStdout(), "%s unchanged\n", outputPath)
	}
	return nil
}
