package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/m04kA/SMC-IntakeService/internal/domain"
	"github.com/m04kA/SMC-IntakeService/internal/integrations/providerservice"
	matchProviders "github.com/m04kA/SMC-IntakeService/internal/usecase/match_providers"
	"github.com/m04kA/SMC-IntakeService/pkg/logger"
)

type matchOptions struct {
	latitude  float64
	longitude float64
	postcode  string
	hours     float64
	dayparts  []string
	top       int
}

// NewMatchCommand creates the match command.
func NewMatchCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &matchOptions{}

	cmd := &cobra.Command{
		Use:   "match <providers.json>",
		Short: "Match and rank providers from a provider service dump",
		Long: `Run availability matching and ranking on a JSON array of providers
in the provider service format and print the ranked candidates.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMatch(cmd, rootOpts, opts, args[0])
		},
	}

	cmd.Flags().Float64Var(&opts.latitude, "lat", 0, "client latitude")
	cmd.Flags().Float64Var(&opts.longitude, "lng", 0, "client longitude")
	cmd.Flags().StringVar(&opts.postcode, "postcode", "", "client postcode")
	cmd.Flags().Float64Var(&opts.hours, "hours", 0, "required hours per visit")
	cmd.Flags().StringSliceVar(&opts.dayparts, "dayparts", nil, "wanted dayparts, e.g. ma-ochtend,di-avond")
	cmd.Flags().IntVar(&opts.top, "top", 0, "top tier limit (0 = default)")

	return cmd
}

// fileProviders serves providers decoded from a local file
type fileProviders struct {
	providers []domain.Provider
}

func (f *fileProviders) FetchCandidates(context.Context, providerservice.Params) ([]domain.Provider, error) {
	return f.providers, nil
}

func loadProviders(path string) (*fileProviders, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	providers, err := providerservice.ParseProviders(data, logger.Nop())
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return &fileProviders{providers: providers}, nil
}

func runMatch(cmd *cobra.Command, rootOpts *RootOptions, opts *matchOptions, path string) error {
	source, err := loadProviders(path)
	if err != nil {
		return err
	}

	uc := matchProviders.NewUseCase(source, opts.top, nil, logger.Nop())
	resp, err := uc.Execute(cmd.Context(), &matchProviders.Request{
		Latitude:      opts.latitude,
		Longitude:     opts.longitude,
		Postcode:      opts.postcode,
		RequiredHours: opts.hours,
		Dayparts:      opts.dayparts,
		TopLimit:      opts.top,
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if rootOpts.Format == "json" {
		return writeJSON(out, resp)
	}

	fmt.Fprintf(out, "%d of %d providers eligible\n", resp.Eligible, resp.Total)
	for i, c := range resp.Candidates {
		fmt.Fprintf(out, "%2d. %-12s rating=%-4s distance=%.1fkm matched=%s\n",
			i+1, c.ID, formatRating(c.Rating), c.DistanceKm, strings.Join(c.Matched, ","))
	}
	return nil
}
