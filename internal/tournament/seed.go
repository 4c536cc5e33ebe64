package tournament

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/padel-cup/internal/padel"
)

// SampleTournaments are created by SeedSampleData.
var SampleTournaments = []padel.CreateTournamentInput{
	{
		Name:        "Torneo de Verano 2024",
		Description: "Torneo de pádel para todos los niveles",
		StartDate:   time.Date(2024, 7, 15, 10, 0, 0, 0, time.UTC),
		EndDate:     time.Date(2024, 7, 20, 18, 0, 0, 0, time.UTC),
		MaxTeams:    16,
		Status:      padel.StatusRegistration,
		Format:      padel.FormatSingleElimination,
		CreatedBy:   "system",
	},
	{
		Name:        "Copa Invierno",
		Description: "Torneo de invierno con formato doble eliminación",
		StartDate:   time.Date(2024, 8, 1, 9, 0, 0, 0, time.UTC),
		EndDate:     time.Date(2024, 8, 5, 17, 0, 0, 0, time.UTC),
		MaxTeams:    8,
		Status:      padel.StatusDraft,
		Format:      padel.FormatDoubleElimination,
		CreatedBy:   "system",
	},
}

// SeedSampleData creates the sample tournaments when the store holds none.
// It reports whether anything was written.
func SeedSampleData(ctx context.Context, store TournamentStore) (bool, error) {
	existing, err := store.List(ctx)
	if err != nil {
		return false, err
	}
	if len(existing) > 0 {
		log.Info("Tournaments already present, skipping sample data", "count", len(existing))
		return false, nil
	}
	for _, in := range SampleTournaments {
		if _, err := store.Create(ctx, in); err != nil {
			return false, err
		}
	}
	log.Info("Sample data initialized", "tournaments", len(SampleTournaments))
	return true, nil
}
