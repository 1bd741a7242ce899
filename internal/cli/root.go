package cli

import "github.com/spf13/cobra"

func NewRootCommand(version string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "srcmap",
		Short: "Decode, re-encode, and compose source map v3 files",
		Long: `Srcmap works with the source map v3 format that compilers and
bundlers emit alongside generated output. It decodes the VLQ mappings
into a position index for inspection, re-encodes maps in canonical form,
and composes the maps of two successive build stages into one.`,
		Version:      version,
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().String("config", "", "Path to a .srcmap.yaml config file")

	inspectCmd := &cobra.Command{
		Use:   "inspect <map.json>",
		Short: "Decode a source map and print a position report",
		Args:  cobra.ExactArgs(1),
		RunE:  RunInspect,
	}
	inspectCmd.Flags().Bool("mappings", false, "List every resolved mapping")

	rewriteCmd := &cobra.Command{
		Use:   "rewrite <map.json>",
		Short: "Decode and re-encode a source map in canonical form",
		Args:  cobra.ExactArgs(1),
		RunE:  RunRewrite,
	}
	addOutputFlags(rewriteCmd)

	composeCmd := &cobra.Command{
		Use:   "compose <first.json> <second.json>",
		Short: "Compose two successive source maps into one",
		Long: `Compose chains the map of an original-to-intermediate pass with the
map of an intermediate-to-final pass, producing a single map that points
fully transformed output back at the original sources.`,
		Args: cobra.ExactArgs(2),
		RunE: RunCompose,
	}
	addOutputFlags(composeCmd)

	rootCmd.AddCommand(inspectCmd, rewriteCmd, composeCmd)
	return rootCmd
}

func addOutputFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("output", "o", "", "Write the result to a file instead of stdout")
	cmd.Flags().String("file", "", "Override the declared generated file name")
	cmd.Flags().Int("line-count", 0, "Declare the total generated line count")
	cmd.Flags().String("strip-prefix", "", "Strip this prefix from every source path")
}
