package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/tally/internal/config"
	"github.com/example/tally/internal/db"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the tally config and database",
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := config.LoadConfig(); err != nil {
			if err := config.SaveConfig(config.DefaultConfig()); err != nil {
				return err
			}
			fmt.Println("✓ Wrote default config")
		} else {
			fmt.Println("Config already exists, leaving it untouched")
		}

		if _, err := db.GetDB(); err != nil {
			return err
		}

		dbPath, err := db.GetDBPath()
		if err != nil {
			return err
		}
		fmt.Printf("✓ Database ready at %s\n", dbPath)
		return nil
	},
}

// InitCmd returns the init command
func InitCmd() *cobra.Command {
	return initCmd
}
