package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harun/toolrouter/pkg/toolrouter"
)

var catalogFormat string

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Print the tool catalog",
	Long: `Print the demo tool catalog in the form embedded into a model prompt,
or in a provider's tool wire format.`,
	RunE: runCatalog,
}

func init() {
	catalogCmd.Flags().StringVar(&catalogFormat, "format", "text", "output format (text, anthropic, openai)")
	rootCmd.AddCommand(catalogCmd)
}

func runCatalog(cmd *cobra.Command, args []string) error {
	reg, err := demoRegistry()
	if err != nil {
		return err
	}
	tools := reg.List()

	switch catalogFormat {
	case "text":
		fmt.Fprintln(cmd.OutOrStdout(), toolrouter.Render(tools))
		return nil
	case "anthropic":
		return printJSON(cmd, toolrouter.AnthropicTools(tools))
	case "openai":
		return printJSON(cmd, toolrouter.OpenAITools(tools))
	default:
		return fmt.Errorf("unknown format: %s (valid: text, anthropic, openai)", catalogFormat)
	}
}

func printJSON(cmd *cobra.Command, v interface{}) error {
	encoded, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(encoded))
	return nil
}
