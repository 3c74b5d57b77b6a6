package main

import (
	"encoding/json"
	"fmt"

	"github.com/pagecap/menumap"
)

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	cfg := menumap.Config{
		MinPages:               c.MinPages,
		MaxPages:               c.MaxPages,
		MaxIterations:          c.MaxIterations,
		PrioritizeMainSections: !c.FlatSections,
		IncludeDynamicPages:    c.IncludeDynamic,
		DeviceTypes:            c.Device,
		NormalizeURLs:          !c.NoNormalize,
	}

	st, err := deps.Pipeline.Run(deps.Ctx, cfg, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", menumap.ErrorMessage(err))
		return err
	}

	out, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(deps.Stdout, string(out))

	if st.Status != menumap.StatusCompleted {
		return fmt.Errorf("extraction ended with status %q", st.Status)
	}
	return nil
}
