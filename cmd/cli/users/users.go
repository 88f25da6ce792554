package users

import (
	"context"
	"fmt"

	"github.com/sign2voice/sign2voice/cmd/cli/output"
	"github.com/sign2voice/sign2voice/cmd/cli/root"
	"github.com/sign2voice/sign2voice/internal/repo"
	"github.com/spf13/cobra"
)

// ==========================
// CLI Command Init
// ==========================
func init() {
	usersCmd := &cobra.Command{
		Use:   "users",
		Short: "Inspect user accounts",
	}

	usersCmd.AddCommand(listCmd())
	root.GetRoot().AddCommand(usersCmd)
}

// ==========================
// List Users
// ==========================
func listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List registered users",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := root.OpenDB()
			if err != nil {
				return fmt.Errorf("connect to database: %w", err)
			}
			defer db.Close()

			users, err := repo.NewUserRepo(db).List(context.Background())
			if err != nil {
				return fmt.Errorf("list users: %w", err)
			}

			rows := make([][]interface{}, 0, len(users))
			for _, u := range users {
				rows = append(rows, []interface{}{u.ID, u.Username, u.Email, u.CreatedAt.Format("2006-01-02 15:04")})
			}
			output.RenderTable([]string{"ID", "Username", "Email", "Created"}, rows)
			return nil
		},
	}
}
