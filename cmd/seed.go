package cmd

import (
	"fmt"
	"math"
	"math/rand/v2"
	"time"

	"spendtrack/internal/model"

	"github.com/spf13/cobra"
)

var flagSeedForce bool

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Insert sample expenses into an empty database",
	RunE:  runSeed,
}

func init() {
	seedCmd.Flags().BoolVar(&flagSeedForce, "force", false, "Seed even if expenses already exist")
	rootCmd.AddCommand(seedCmd)
}

func runSeed(cmd *cobra.Command, _ []string) error {
	svc, db, err := openService()
	if err != nil {
		return err
	}
	defer db.Close()

	existing, err := svc.GetAll(cmd.Context())
	if err != nil {
		return err
	}
	if len(existing) > 0 && !flagSeedForce {
		fmt.Printf("  Database already has %d expense(s); use --force to seed anyway\n", len(existing))
		return nil
	}

	categories := model.Categories()
	now := time.Now().UTC()
	for i := 1; i <= 12; i++ {
		e := model.Expense{
			Amount:      math.Round((rand.Float64()*150+5)*100) / 100,
			Category:    categories[rand.IntN(len(categories))],
			Date:        now.AddDate(0, 0, -i),
			Description: fmt.Sprintf("Seed expense %d", i),
		}
		if _, err := svc.Add(cmd.Context(), e); err != nil {
			return fmt.Errorf("seeding expense %d: %w", i, err)
		}
	}

	if !flagQuiet {
		fmt.Println("  Seeded 12 sample expenses")
	}
	return nil
}
