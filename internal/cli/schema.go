package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tilecfg/tilecfg/internal/schema"
)

// NewSchemaCmd creates the schema command.
func NewSchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schema <directive|binding>",
		Short: "Print the JSON schema for an exchange document",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			doc := schema.Document(args[0])
			data, err := schema.Generate(doc)
			if err != nil {
				return fmt.Errorf("failed to generate schema: %w", err)
			}
			_, err = os.Stdout.Write(data)
			return err
		},
	}
}
