package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"rm"},
	Short:   "Remove an expense",
	Args:    cobra.ExactArgs(1),
	RunE:    runDelete,
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}

func runDelete(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("expense id must be a number, got %q", args[0])
	}

	svc, db, err := openService()
	if err != nil {
		return err
	}
	defer db.Close()

	// Deleting a missing id is not an error; the row is gone either way.
	if err := svc.Delete(cmd.Context(), id); err != nil {
		return err
	}
	if !flagQuiet {
		fmt.Printf("  Expense %d deleted\n", id)
	}
	return nil
}
