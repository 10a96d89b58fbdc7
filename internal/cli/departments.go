package cli

import (
	"saleshub-cli/internal/crud"
	"saleshub-cli/internal/model"

	"github.com/spf13/cobra"
)

func newDepartmentsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "departments",
		Aliases: []string{"department", "dept"},
		Short:   "Department commands",
	}
	cmd.AddCommand(newDepartmentsListCmd(app))
	cmd.AddCommand(newDepartmentsShowCmd(app))
	cmd.AddCommand(newDepartmentsCreateCmd(app))
	cmd.AddCommand(newDepartmentsUpdateCmd(app))
	cmd.AddCommand(newDepartmentsDeleteCmd(app))
	return cmd
}

func departmentController(cmd *cobra.Command, svc services) *crud.Controller[model.Department] {
	return crud.NewController[model.Department](svc.departments, crud.Options[model.Department]{
		Kind:     "department",
		Count:    svc.sellers.QuantityByDepartment,
		Listener: notifyLog(cmd, "department"),
	})
}

func newDepartmentsListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List departments with their seller counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := openServices(cmd.Context(), app)
			if err != nil {
				return writeErr(cmd, err)
			}
			defer svc.Close()

			rows, err := departmentController(cmd, svc).Refresh(cmd.Context())
			if err != nil {
				return writeErr(cmd, err)
			}
			for _, r := range rows {
				if r.CountErr != nil {
					return writeErr(cmd, r.CountErr)
				}
			}
			return writeOut(cmd, app, departmentViews(rows))
		},
	}
}

func newDepartmentsShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show a department",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("department", args[0])
			if err != nil {
				return writeErr(cmd, err)
			}
			svc, err := openServices(cmd.Context(), app)
			if err != nil {
				return writeErr(cmd, err)
			}
			defer svc.Close()

			d, err := svc.departments.FindByID(cmd.Context(), id)
			if err != nil {
				return writeErr(cmd, notFoundOr(err, "department", id))
			}
			n, err := svc.sellers.QuantityByDepartment(cmd.Context(), d)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, newDepartmentView(d, n))
		},
	}
}

func newDepartmentsCreateCmd(app *App) *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a department",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := openServices(cmd.Context(), app)
			if err != nil {
				return writeErr(cmd, err)
			}
			defer svc.Close()

			saved, err := submit(cmd, departmentController(cmd, svc), "department", model.Department{}, model.Department{Name: name})
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, newDepartmentView(saved, 0))
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Department name")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}

func newDepartmentsUpdateCmd(app *App) *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Rename a department",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("department", args[0])
			if err != nil {
				return writeErr(cmd, err)
			}
			svc, err := openServices(cmd.Context(), app)
			if err != nil {
				return writeErr(cmd, err)
			}
			defer svc.Close()

			cur, err := svc.departments.FindByID(cmd.Context(), id)
			if err != nil {
				return writeErr(cmd, notFoundOr(err, "department", id))
			}
			edited := cur
			edited.Name = name
			saved, err := submit(cmd, departmentController(cmd, svc), "department", cur, edited)
			if err != nil {
				return writeErr(cmd, err)
			}
			n, err := svc.sellers.QuantityByDepartment(cmd.Context(), saved)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, newDepartmentView(saved, n))
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "New department name")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}

func newDepartmentsDeleteCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a department (must have no sellers)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("department", args[0])
			if err != nil {
				return writeErr(cmd, err)
			}
			svc, err := openServices(cmd.Context(), app)
			if err != nil {
				return writeErr(cmd, err)
			}
			defer svc.Close()

			d, err := svc.departments.FindByID(cmd.Context(), id)
			if err != nil {
				return writeErr(cmd, notFoundOr(err, "department", id))
			}
			deleted, err := departmentController(cmd, svc).Gate.ConfirmDelete(cmd.Context(), d, deleteConfirmer(cmd, yes))
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, deleteResult{Kind: "department", ID: d.ID, Deleted: deleted})
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Delete without asking")
	return cmd
}
