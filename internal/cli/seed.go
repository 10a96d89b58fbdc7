package cli

import (
	"saleshub-cli/internal/service"

	"github.com/spf13/cobra"
)

func newSeedCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Insert demo departments and sellers into an empty database",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := openServices(cmd.Context(), app)
			if err != nil {
				return writeErr(cmd, err)
			}
			defer svc.Close()

			res, err := service.Seed(cmd.Context(), svc.departments, svc.sellers)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, res)
		},
	}
}
