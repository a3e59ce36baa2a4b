package cli

import (
	"github.com/spf13/cobra"

	"github.com/mihara/courseflow/internal/services/recommend"
)

func newRecommendCmd() *cobra.Command {
	var technical, business, duration string

	cmd := &cobra.Command{
		Use:   "recommend",
		Short: "Evaluate the course recommendation table",
		Long: `Evaluates the course recommendation decision table for the given
answers without touching storage. Useful for sanity-checking table
changes before a deploy.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			result := recommend.New().Recommend(technical, business, duration)
			NewOutput(outputFormat).Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&technical, "technical", "", "Technical interest answer (1-3)")
	cmd.Flags().StringVar(&business, "business", "", "Business interest answer (1-2)")
	cmd.Flags().StringVar(&duration, "duration", "", "Study duration answer (1-2)")

	return cmd
}
