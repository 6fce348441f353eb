package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/bevuihoc/bevuihoc/internal/mathgen"
)

var examCmd = &cobra.Command{
	Use:   "exam [id]",
	Short: "Print a fixed exam paper",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("exam id must be a number: %q", args[0])
		}
		questions, err := mathgen.Exam(id)
		if err != nil {
			return err
		}
		fmt.Printf("Đề số %d — %d câu\n\n", id, len(questions))
		printQuestions(questions)
		return nil
	},
}
