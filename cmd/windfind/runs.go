package main

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/sailhq/windfind"
)

// Run executes the runs command.
func (c *RunsCmd) Run(deps *Dependencies) error {
	filter := windfind.RunFilter{}
	if c.Area != "" {
		filter.Area = &c.Area
	}
	if c.ID != "" {
		filter.ID = &c.ID
	}

	runs, err := deps.Runs.FindRuns(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", windfind.ErrorMessage(err))
		return err
	}

	if len(runs) == 0 {
		fmt.Fprintln(deps.Stdout, "No runs found. Use 'windfind find' to create one.")
		return nil
	}

	if c.ID != "" {
		// A single run prints its full records.
		out := windfind.NewObject()
		for _, rec := range runs[0].Records {
			out.Fields = append(out.Fields, windfind.Field{Name: rec.Domain, Node: rec.Record})
		}
		data, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(deps.Stdout, string(data))
		return nil
	}

	for _, run := range runs {
		fmt.Fprintf(deps.Stdout, "%s  %s  %s  %d domains\n",
			run.ID, run.CreatedAt.Format(time.RFC3339), run.Area, len(run.Records))
	}

	return nil
}
