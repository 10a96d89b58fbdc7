package cli

import (
	"fmt"
	"strings"

	"saleshub-cli/internal/crud"
	"saleshub-cli/internal/model"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

func newSellersCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "sellers",
		Aliases: []string{"seller"},
		Short:   "Seller commands",
	}
	cmd.AddCommand(newSellersListCmd(app))
	cmd.AddCommand(newSellersShowCmd(app))
	cmd.AddCommand(newSellersCreateCmd(app))
	cmd.AddCommand(newSellersUpdateCmd(app))
	cmd.AddCommand(newSellersDeleteCmd(app))
	return cmd
}

func sellerController(cmd *cobra.Command, svc services) *crud.Controller[model.Seller] {
	return crud.NewController[model.Seller](svc.sellers, crud.Options[model.Seller]{
		Kind:     "seller",
		Listener: notifyLog(cmd, "seller"),
	})
}

func newSellersListCmd(app *App) *cobra.Command {
	var departmentID int64

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List sellers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := openServices(cmd.Context(), app)
			if err != nil {
				return writeErr(cmd, err)
			}
			defer svc.Close()

			if departmentID != 0 {
				d, err := svc.departments.FindByID(cmd.Context(), departmentID)
				if err != nil {
					return writeErr(cmd, notFoundOr(err, "department", departmentID))
				}
				list, err := svc.sellers.FindByDepartment(cmd.Context(), d)
				if err != nil {
					return writeErr(cmd, err)
				}
				crud.SortByName(list)
				return writeOut(cmd, app, sellerViews(list))
			}

			list, err := sellerController(cmd, svc).List.Load(cmd.Context())
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, sellerViews(list))
		},
	}

	cmd.Flags().Int64Var(&departmentID, "department", 0, "Only sellers of this department id")
	return cmd
}

func newSellersShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show a seller",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("seller", args[0])
			if err != nil {
				return writeErr(cmd, err)
			}
			svc, err := openServices(cmd.Context(), app)
			if err != nil {
				return writeErr(cmd, err)
			}
			defer svc.Close()

			s, err := svc.sellers.FindByID(cmd.Context(), id)
			if err != nil {
				return writeErr(cmd, notFoundOr(err, "seller", id))
			}
			return writeOut(cmd, app, newSellerView(s))
		},
	}
}

type sellerFlags struct {
	name         string
	email        string
	birthDate    string
	salary       string
	departmentID int64
}

func (f *sellerFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.name, "name", "", "Seller name")
	cmd.Flags().StringVar(&f.email, "email", "", "Email address")
	cmd.Flags().StringVar(&f.birthDate, "birth-date", "", "Birth date ("+model.DateLayout+")")
	cmd.Flags().StringVar(&f.salary, "salary", "", "Base salary (e.g. 2500.00)")
	cmd.Flags().Int64Var(&f.departmentID, "department", 0, "Department id")
}

// apply copies the flags the user actually set onto s.
func (f *sellerFlags) apply(cmd *cobra.Command, s model.Seller) (model.Seller, error) {
	changed := cmd.Flags().Changed
	if changed("name") {
		s.Name = f.name
	}
	if changed("email") {
		s.Email = f.email
	}
	if changed("birth-date") {
		t, err := model.ParseDate(f.birthDate)
		if err != nil {
			return s, err
		}
		s.BirthDate = t
	}
	if changed("salary") {
		v, err := decimal.NewFromString(strings.TrimSpace(f.salary))
		if err != nil {
			return s, fmt.Errorf("invalid salary %q", f.salary)
		}
		s.BaseSalary = v
	}
	if changed("department") {
		s.DepartmentID = f.departmentID
	}
	return s, nil
}

// checkDepartment turns a missing department into a not-found error instead
// of a constraint failure from the store.
func checkDepartment(cmd *cobra.Command, svc services, id int64) error {
	if id == 0 {
		return nil
	}
	if _, err := svc.departments.FindByID(cmd.Context(), id); err != nil {
		return notFoundOr(err, "department", id)
	}
	return nil
}

func newSellersCreateCmd(app *App) *cobra.Command {
	var f sellerFlags

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a seller",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			edited, err := f.apply(cmd, model.Seller{})
			if err != nil {
				return writeErr(cmd, err)
			}
			svc, err := openServices(cmd.Context(), app)
			if err != nil {
				return writeErr(cmd, err)
			}
			defer svc.Close()

			if err := checkDepartment(cmd, svc, edited.DepartmentID); err != nil {
				return writeErr(cmd, err)
			}
			saved, err := submit(cmd, sellerController(cmd, svc), "seller", model.Seller{}, edited)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, newSellerView(saved))
		},
	}

	f.register(cmd)
	for _, name := range []string{"name", "email", "birth-date", "department"} {
		_ = cmd.MarkFlagRequired(name)
	}
	return cmd
}

func newSellersUpdateCmd(app *App) *cobra.Command {
	var f sellerFlags

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a seller (only the given fields change)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("seller", args[0])
			if err != nil {
				return writeErr(cmd, err)
			}
			svc, err := openServices(cmd.Context(), app)
			if err != nil {
				return writeErr(cmd, err)
			}
			defer svc.Close()

			cur, err := svc.sellers.FindByID(cmd.Context(), id)
			if err != nil {
				return writeErr(cmd, notFoundOr(err, "seller", id))
			}
			edited, err := f.apply(cmd, cur)
			if err != nil {
				return writeErr(cmd, err)
			}
			if err := checkDepartment(cmd, svc, edited.DepartmentID); err != nil {
				return writeErr(cmd, err)
			}
			saved, err := submit(cmd, sellerController(cmd, svc), "seller", cur, edited)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, newSellerView(saved))
		},
	}

	f.register(cmd)
	return cmd
}

func newSellersDeleteCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a seller",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("seller", args[0])
			if err != nil {
				return writeErr(cmd, err)
			}
			svc, err := openServices(cmd.Context(), app)
			if err != nil {
				return writeErr(cmd, err)
			}
			defer svc.Close()

			s, err := svc.sellers.FindByID(cmd.Context(), id)
			if err != nil {
				return writeErr(cmd, notFoundOr(err, "seller", id))
			}
			deleted, err := sellerController(cmd, svc).Gate.ConfirmDelete(cmd.Context(), s, deleteConfirmer(cmd, yes))
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, deleteResult{Kind: "seller", ID: s.ID, Deleted: deleted})
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Delete without asking")
	return cmd
}
