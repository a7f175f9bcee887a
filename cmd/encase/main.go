package main

import (
	"fmt"
	"os"

	"github.com/philipparndt/encase/internal/enclosure"
	"github.com/philipparndt/encase/pkg/solid"
	"github.com/philipparndt/encase/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "encase",
	Short: "Generate the bow thruster controller enclosure as a binary STL",
	Long: `encase generates a 3D-printable enclosure for the bow thruster controller
board: a filleted shell with mounting standoffs and wire-passage slots,
written to ` + enclosure.OutputFile + ` in the working directory.

The geometry is fixed; there are no dimension flags.`,
	Version:       version.GetVersion(),
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runGenerate,
}

func runGenerate(cmd *cobra.Command, args []string) error {
	ctx := solid.DefaultContext()
	dims := enclosure.Default()

	if _, err := enclosure.Generate(ctx, dims, enclosure.OutputFile); err != nil {
		return err
	}

	fmt.Printf("✅ STL written: %s\n", enclosure.OutputFile)
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
