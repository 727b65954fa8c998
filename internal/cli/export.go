package cli

import (
	"encoding/json"
	"fmt"
	"os"
)

type ExportCmd struct {
	Output string `short:"o" help:"Write the snapshot to a file instead of stdout."`
}

func (c *ExportCmd) Run(ctx *Context) error {
	export, err := ctx.Store.Export()
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(export, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal export: %w", err)
	}

	if c.Output == "" {
		fmt.Println(string(data))
		return nil
	}

	if err := os.WriteFile(c.Output, data, 0600); err != nil {
		return fmt.Errorf("write export file: %w", err)
	}
	fmt.Printf("Exported data to: %s\n", c.Output)
	return nil
}
