package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/2beens/gymtracker/internal/db"
	"github.com/2beens/gymtracker/internal/profiles"

	"github.com/spf13/cobra"
)

var adminCmd = &cobra.Command{
	Use:   "admin",
	Short: "Manage admin accounts",
	Long: `Admins manage the shared catalog and exercise assignments.
There is no HTTP endpoint for this, the flag is set here.`,
}

var adminGrantCmd = &cobra.Command{
	Use:   "grant <email>",
	Short: "Make a registered user an admin",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return setAdmin(cmd.Context(), args[0], true)
	},
}

var adminRevokeCmd = &cobra.Command{
	Use:   "revoke <email>",
	Short: "Remove admin rights from a user",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return setAdmin(cmd.Context(), args[0], false)
	},
}

var usersListCmd = &cobra.Command{
	Use:   "users",
	Short: "List registered users",
	RunE:  runUsersList,
}

func init() {
	adminCmd.AddCommand(adminGrantCmd)
	adminCmd.AddCommand(adminRevokeCmd)
	adminCmd.AddCommand(usersListCmd)

	rootCmd.AddCommand(adminCmd)
}

func withProfiles(ctx context.Context, fn func(repo *profiles.Repo) error) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	pool, err := db.NewDBPool(ctx, dbParams(cfg))
	if err != nil {
		return err
	}
	defer pool.Close()
	return fn(profiles.NewRepo(pool))
}

func setAdmin(ctx context.Context, email string, isAdmin bool) error {
	return withProfiles(ctx, func(repo *profiles.Repo) error {
		err := repo.SetAdmin(ctx, email, isAdmin)
		if errors.Is(err, profiles.ErrProfileNotFound) {
			return fmt.Errorf("no user registered with email %s", email)
		}
		if err != nil {
			return err
		}
		if isAdmin {
			fmt.Printf("%s is now an admin\n", email)
		} else {
			fmt.Printf("%s is no longer an admin\n", email)
		}
		return nil
	})
}

func runUsersList(cmd *cobra.Command, _ []string) error {
	return withProfiles(cmd.Context(), func(repo *profiles.Repo) error {
		list, err := repo.List(cmd.Context())
		if err != nil {
			return err
		}
		if len(list) == 0 {
			fmt.Println("No users registered")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tEMAIL\tNAME\tADMIN")
		for _, p := range list {
			fmt.Fprintf(w, "%s\t%s\t%s\t%t\n", p.ID, p.Email, p.DisplayName(), p.IsAdmin)
		}
		return w.Flush()
	})
}
