package root

import (
	"database/sql"
	"fmt"
	"os"

	"github.com/sign2voice/sign2voice/internal/config"
	"github.com/sign2voice/sign2voice/internal/db"
	"github.com/spf13/cobra"
)

// Exported RootCmd
var RootCmd = &cobra.Command{
	Use:   "s2vadmin",
	Short: "Sign2Voice provisioning CLI",
	Long:  "Operator tool for the Sign2Voice backend. Admin accounts have no registration endpoint and are provisioned here, directly against the database.",
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// Optional helper to return the RootCmd
func GetRoot() *cobra.Command {
	return RootCmd
}

// OpenDB connects to the database using the same environment configuration as
// the API server.
func OpenDB() (*sql.DB, error) {
	cfg := config.Load()
	return db.Connect(
		cfg.DBHost,
		cfg.DBPort,
		cfg.DBName,
		cfg.DBUser,
		cfg.DBPass,
		cfg.DBMaxOpenConns,
		cfg.DBMaxIdleConns,
	)
}
