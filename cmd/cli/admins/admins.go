package admins

import (
	"context"
	"fmt"

	"github.com/lib/pq"
	"github.com/sign2voice/sign2voice/cmd/cli/output"
	"github.com/sign2voice/sign2voice/cmd/cli/root"
	"github.com/sign2voice/sign2voice/internal/models"
	"github.com/sign2voice/sign2voice/internal/repo"
	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
)

// ==========================
// CLI Command Init
// ==========================
func init() {
	adminsCmd := &cobra.Command{
		Use:   "admin",
		Short: "Manage admin accounts",
		Long:  "Create and list admin accounts. Admins cannot self-register through the API.",
	}

	adminsCmd.AddCommand(createCmd(), listCmd())
	root.GetRoot().AddCommand(adminsCmd)
}

// ==========================
// Create Admin
// ==========================
func createCmd() *cobra.Command {
	var email, password, role string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an admin account",
		RunE: func(cmd *cobra.Command, args []string) error {
			if email == "" || password == "" {
				return fmt.Errorf("--email and --password are required")
			}
			if !models.ValidPassword(password) {
				return fmt.Errorf("password must be at least 8 characters long and include a letter, a number, and a special character")
			}

			db, err := root.OpenDB()
			if err != nil {
				return fmt.Errorf("connect to database: %w", err)
			}
			defer db.Close()

			hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
			if err != nil {
				return err
			}

			admin, err := repo.NewAdminRepo(db).Create(context.Background(), email, string(hash), role)
			if err != nil {
				if e, ok := err.(*pq.Error); ok && e.Code == "23505" {
					return fmt.Errorf("admin %s already exists", email)
				}
				return fmt.Errorf("create admin: %w", err)
			}

			fmt.Printf("Admin created: id=%d email=%s role=%s\n", admin.ID, admin.Email, admin.Role)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Admin email (unique)")
	cmd.Flags().StringVar(&password, "password", "", "Admin password")
	cmd.Flags().StringVar(&role, "role", models.RoleAdmin, "Admin role")

	return cmd
}

// ==========================
// List Admins
// ==========================
func listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List admin accounts",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := root.OpenDB()
			if err != nil {
				return fmt.Errorf("connect to database: %w", err)
			}
			defer db.Close()

			admins, err := repo.NewAdminRepo(db).List(context.Background())
			if err != nil {
				return fmt.Errorf("list admins: %w", err)
			}

			rows := make([][]interface{}, 0, len(admins))
			for _, a := range admins {
				rows = append(rows, []interface{}{a.ID, a.Email, a.Role, a.CreatedAt.Format("2006-01-02 15:04")})
			}
			output.RenderTable([]string{"ID", "Email", "Role", "Created"}, rows)
			return nil
		},
	}
}
