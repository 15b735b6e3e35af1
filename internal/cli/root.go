// Package cli define el arbol de comandos de rankctl, una herramienta para
// probar calibraciones de pesos sobre escenarios locales sin base de datos.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

// NewRootCmd arma el comando raiz; separado de Execute para poder probarlo.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "rankctl",
		Short: "Rank specialists for a client profile offline",
		Long: `rankctl runs the TOPSIS ranking over a TOML scenario file
(a client profile plus a pool of specialists).

Use --weights to try a calibration YAML file before deploying it.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().String("weights", "", "ranking calibration YAML file")

	root.AddCommand(
		newRankCmd(),
		newExplainCmd(),
		newVersionCmd(),
	)
	return root
}

// Execute ejecuta rankctl y termina el proceso con codigo 1 ante error.
func Execute(v string) {
	version = v
	if err := run(NewRootCmd(), os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string, out io.Writer) error {
	cmd.SetArgs(args)
	cmd.SetOut(out)
	return cmd.Execute()
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "rankctl %s\n", version)
		},
	}
}
