package cli

import (
	"errors"
	"strings"

	"saleshub-cli/internal/crud"
	"saleshub-cli/internal/export"

	"github.com/spf13/cobra"
)

type exportResult struct {
	Path        string `json:"path"`
	Departments int    `json:"departments"`
	Sellers     int    `json:"sellers"`
}

func newExportCmd(app *App) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export departments and sellers to an .xlsx workbook",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out = strings.TrimSpace(out)
			if out == "" {
				return writeErr(cmd, errors.New("--out is required"))
			}
			svc, err := openServices(cmd.Context(), app)
			if err != nil {
				return writeErr(cmd, err)
			}
			defer svc.Close()

			rows, err := departmentController(cmd, svc).Refresh(cmd.Context())
			if err != nil {
				return writeErr(cmd, err)
			}
			deps := make([]export.DepartmentRow, 0, len(rows))
			for _, r := range rows {
				if r.CountErr != nil {
					return writeErr(cmd, r.CountErr)
				}
				deps = append(deps, export.DepartmentRow{Department: r.Entity, Sellers: r.Count})
			}
			sellers, err := svc.sellers.FindAll(cmd.Context())
			if err != nil {
				return writeErr(cmd, err)
			}
			crud.SortByName(sellers)

			// "-" streams the workbook to stdout for piping.
			if out == "-" {
				if err := export.WriteTo(cmd.OutOrStdout(), deps, sellers); err != nil {
					return writeErr(cmd, err)
				}
				return nil
			}
			if err := export.SaveAs(out, deps, sellers); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, exportResult{Path: out, Departments: len(deps), Sellers: len(sellers)})
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "Output file (.xlsx), or - for stdout")
	return cmd
}
