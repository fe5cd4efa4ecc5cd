package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/m04kA/SMC-IntakeService/internal/domain"
	"github.com/m04kA/SMC-IntakeService/internal/ranking"
)

// rankInput candidate as read from the input file
type rankInput struct {
	ID         string   `json:"id"`
	Rating     *float64 `json:"rating"`
	DistanceKm float64  `json:"distanceKm"`
}

// NewRankCommand creates the rank command.
func NewRankCommand(rootOpts *RootOptions) *cobra.Command {
	var top int

	cmd := &cobra.Command{
		Use:   "rank <candidates.json>",
		Short: "Rank candidates by rating tier and distance",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read %s: %w", args[0], err)
			}

			var input []rankInput
			if err := json.Unmarshal(data, &input); err != nil {
				return fmt.Errorf("decode %s: %w", args[0], err)
			}

			candidates := make([]domain.Candidate, 0, len(input))
			for _, in := range input {
				candidates = append(candidates, domain.Candidate{ID: in.ID, Rating: in.Rating, DistanceKm: in.DistanceKm})
			}

			ranked := ranking.Rank(candidates, top)

			out := cmd.OutOrStdout()
			if rootOpts.Format == "json" {
				result := make([]rankInput, 0, len(ranked))
				for _, c := range ranked {
					result = append(result, rankInput{ID: c.ID, Rating: c.Rating, DistanceKm: c.DistanceKm})
				}
				return writeJSON(out, result)
			}

			for i, c := range ranked {
				fmt.Fprintf(out, "%2d. %-12s rating=%-4s distance=%.1fkm\n", i+1, c.ID, formatRating(c.Rating), c.DistanceKm)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&top, "top", 0, "top tier limit (0 = default)")

	return cmd
}
