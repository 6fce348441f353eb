package cmd

import (
	"fmt"
	"math/rand/v2"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/bevuihoc/bevuihoc/internal/mathgen"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Print generated math questions without the TUI",
	RunE: func(cmd *cobra.Command, args []string) error {
		topic, _ := cmd.Flags().GetString("topic")
		count, _ := cmd.Flags().GetInt("count")
		seed, _ := cmd.Flags().GetUint64("seed")

		if seed == 0 {
			seed = uint64(time.Now().UnixNano())
		}
		gen := mathgen.New(rand.New(rand.NewPCG(seed, uint64(os.Getpid()))))

		questions := gen.Generate(mathgen.Topic(strings.ToUpper(topic)), count)
		printQuestions(questions)
		return nil
	},
}

func init() {
	previewCmd.Flags().String("topic", string(mathgen.TopicMixed), "Topic: GEOMETRY, NUMBERS, CALCULATION or MIXED")
	previewCmd.Flags().Int("count", 10, "Number of questions to generate")
	previewCmd.Flags().Uint64("seed", 0, "Random seed (0 = time-based)")
}

func printQuestions(questions []mathgen.Question) {
	for i, q := range questions {
		fmt.Printf("%2d. [%s] %s\n", i+1, q.Type, q.Prompt)
		if len(q.Options) > 0 {
			fmt.Printf("    options: %s\n", strings.Join(q.Options, " | "))
		}
		fmt.Printf("    answer:  %s\n", q.Answer)
	}
}
