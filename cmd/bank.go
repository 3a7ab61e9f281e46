package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dwilk016/quizdrill/internal/bank"
)

var bankCmd = &cobra.Command{
	Use:   "bank",
	Short: "Inspect and rewrite question bank files",
}

var bankValidateCmd = &cobra.Command{
	Use:   "validate <path>",
	Short: "Check a question bank file and summarize its contents",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := bank.Load(args[0])
		if err != nil {
			return err
		}

		byDifficulty := make(map[string]int)
		byType := make(map[bank.QuestionType]int)
		for _, q := range b.Questions {
			byDifficulty[q.Difficulty]++
			byType[q.Type]++
		}

		fmt.Printf("%s: %d questions (%d multiple-choice, %d free-text)\n",
			args[0], b.Len(), byType[bank.TypeMultipleChoice], byType[bank.TypeFreeText])
		for _, diff := range []string{"easy", "medium", "hard"} {
			if n, ok := byDifficulty[diff]; ok {
				fmt.Printf("  %s: %d\n", diff, n)
				delete(byDifficulty, diff)
			}
		}
		for diff, n := range byDifficulty {
			fmt.Printf("  %s: %d\n", diff, n)
		}
		return nil
	},
}

var bankExportCmd = &cobra.Command{
	Use:   "export <in> <out>",
	Short: "Rewrite a bank file in canonical form",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := bank.Load(args[0])
		if err != nil {
			return err
		}
		if err := bank.Save(b, args[1]); err != nil {
			return err
		}
		fmt.Printf("wrote %d questions to %s\n", b.Len(), args[1])
		return nil
	},
}

func init() {
	bankCmd.AddCommand(bankValidateCmd)
	bankCmd.AddCommand(bankExportCmd)
}
