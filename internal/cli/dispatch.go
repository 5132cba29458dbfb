package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/harun/toolrouter/pkg/toolrouter"
)

var dispatchCmd = &cobra.Command{
	Use:   "dispatch [raw output]",
	Short: "Parse raw model output and dispatch the decision",
	Long: `Parse a tool decision out of raw model output and execute it against the
demo registry. The raw output is taken from the argument, or from stdin when
no argument is given.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDispatch,
}

func init() {
	rootCmd.AddCommand(dispatchCmd)
}

func runDispatch(cmd *cobra.Command, args []string) error {
	var raw string
	if len(args) == 1 {
		raw = args[0]
	} else {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("failed to read stdin: %w", err)
		}
		raw = string(data)
	}

	decision, err := toolrouter.ParseDecision(raw)
	if err != nil {
		return err
	}

	reg, err := demoRegistry()
	if err != nil {
		return err
	}

	result, err := toolrouter.NewDispatcher(reg).Dispatch(cmd.Context(), decision)
	if err != nil {
		return err
	}

	return printJSON(cmd, result)
}
