package cli

import (
	"fmt"

	"saleshub-cli/internal/docs"

	"github.com/spf13/cobra"
)

type docsTopics struct {
	Topics []string `json:"topics"`
}

func (d docsTopics) Header() []string { return []string{"Topic"} }

func (d docsTopics) Rows() [][]string {
	rows := make([][]string, 0, len(d.Topics))
	for _, t := range d.Topics {
		rows = append(rows, []string{t})
	}
	return rows
}

func newDocsCmd(app *App) *cobra.Command {
	var raw, asHTML bool

	cmd := &cobra.Command{
		Use:   "docs [topic]",
		Short: "Show built-in documentation",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return writeOut(cmd, app, docsTopics{Topics: docs.Topics()})
			}

			topic := args[0]
			body, ok := docs.Get(topic)
			if !ok {
				return writeErr(cmd, fmt.Errorf("unknown docs topic: %q (run `saleshub docs` to list topics)", topic))
			}
			if asHTML {
				page, err := docs.HTML(topic)
				if err != nil {
					return writeErr(cmd, err)
				}
				_, err = cmd.OutOrStdout().Write(page)
				return err
			}
			if raw {
				_, err := fmt.Fprint(cmd.OutOrStdout(), body)
				return err
			}
			return writeOut(cmd, app, map[string]any{"topic": topic, "markdown": body})
		},
	}

	cmd.Flags().BoolVar(&raw, "raw", false, "Print raw markdown (no JSON envelope)")
	cmd.Flags().BoolVar(&asHTML, "html", false, "Print the topic as a standalone HTML page")
	return cmd
}
