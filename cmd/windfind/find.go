package main

import (
	"encoding/json"
	"fmt"

	"github.com/sailhq/windfind"
	"github.com/sailhq/windfind/pipeline"
)

// Run executes the find command.
func (c *FindCmd) Run(deps *Dependencies) error {
	progress := func(e pipeline.ProgressEvent) {
		if c.Quiet {
			return
		}
		switch e.Type {
		case pipeline.ProgressStarted:
			fmt.Fprintf(deps.Stderr, "Extracting from %d domains...\n", e.Total)
		case pipeline.ProgressCompleted:
			fmt.Fprintf(deps.Stderr, "  [%d/%d] %s\n", e.Completed, e.Total, e.Domain)
		}
	}

	records, err := deps.Pipeline.Run(deps.Ctx, c.Area, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", windfind.ErrorMessage(err))
		return err
	}

	if len(records) == 0 {
		fmt.Fprintf(deps.Stdout, "No windsurfing businesses found in %q.\n", c.Area)
		return nil
	}

	out := windfind.NewObject()
	for _, r := range records {
		out.Fields = append(out.Fields, windfind.Field{Name: r.Domain, Node: r.Record})
	}
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(deps.Stdout, string(data))

	// Persisting the run is best-effort; the results are already printed.
	run := &windfind.Run{Area: c.Area, Records: records}
	if err := deps.Runs.CreateRun(deps.Ctx, run); err != nil {
		deps.Logger.Warn("could not save run", "area", c.Area, "err", err)
	}

	return nil
}
