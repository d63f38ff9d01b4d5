package cli

import (
	"github.com/npillmayer/edat"
	"github.com/npillmayer/edat/stdtypes"
	"github.com/spf13/cobra"
)

// converters is the converter suite used for all inputs.
var converters = stdtypes.NewSuite()

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "edat [file]",
	Short: "Inspect EDAT data files",
	Long: `Welcome to EDAT V0.1 (experimental)

EDAT files hold named, typed and nested values, e.g.

    base = {
        width:int = "80"
    }
    wide <- base = {
        width:int = "132"
    }

Without a sub-command edat starts an interactive session, optionally
loading a file first.

`,
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	RunE:         runREPLCmd,
}

var dumpCmd = &cobra.Command{
	Use:   "dump <file>...",
	Short: "Parse files and print their tables",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runDumpCmd,
}

var getCmd = &cobra.Command{
	Use:   "get <file> <path>",
	Short: "Print the value at a dotted path, e.g. 'derived.a'",
	Args:  cobra.ExactArgs(2),
	RunE:  runGetCmd,
}

var typesCmd = &cobra.Command{
	Use:   "types",
	Short: "List the type tags known to edat",
	Args:  cobra.NoArgs,
	RunE:  runTypesCmd,
}

var replCmd = &cobra.Command{
	Use:   "repl [file]",
	Short: "Start an interactive session",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runREPLCmd,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called exactly once by main().
func Execute() {
	if rootCmd.Execute() != nil {
		edat.Exit(2)
	}
}

// addGlobalFlags adds the persistent flags which will be global for the
// application.
func addGlobalFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().String("logfile", "stderr", "URL of log output location")
	cmd.PersistentFlags().String("tracelevel", "", "Trace level for all edat packages (Debug|Info|Error)")
}

func init() {
	cobra.OnInitialize(loadConfig)
	addGlobalFlags(rootCmd)
	dumpCmd.Flags().StringP("format", "f", "text", "Output format (text|markdown|csv)")
	rootCmd.AddCommand(dumpCmd, getCmd, typesCmd, replCmd)
}
