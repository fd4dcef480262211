package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"task-management.com/task-management/internal/seed"
)

var seedFile string

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load seed users and tasks into an empty database",
	RunE: func(cmd *cobra.Command, args []string) error {
		fixtures, err := loadFixtures(seedFile)
		if err != nil {
			return err
		}

		a, err := bootstrap()
		if err != nil {
			return err
		}
		defer a.close()

		res, err := seed.NewSeeder(a.users, a.tasks, a.log).Run(cmd.Context(), fixtures)
		if err != nil {
			return err
		}

		if res.Skipped {
			fmt.Fprintln(cmd.OutOrStdout(), "database already has users, nothing seeded")
			return nil
		}
		fmt.Fprintf(cmd.OutOrStdout(), "seeded %d users and %d tasks\n", res.Users, res.Tasks)
		return nil
	},
}

func loadFixtures(path string) (*seed.Fixtures, error) {
	if path == "" {
		return seed.Default()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixtures: %w", err)
	}
	return seed.Parse(data)
}

func init() {
	seedCmd.Flags().StringVarP(&seedFile, "file", "f", "", "YAML fixtures file (defaults to the built-in data)")
	rootCmd.AddCommand(seedCmd)
}
