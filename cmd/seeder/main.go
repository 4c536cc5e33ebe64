package main

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/padel-cup/internal/config"
	"github.com/mauv0809/padel-cup/internal/padel"
	"github.com/mauv0809/padel-cup/internal/storage"
	"github.com/mauv0809/padel-cup/internal/team"
	"github.com/mauv0809/padel-cup/internal/tournament"
)

// teamsPerTournament is how many sample teams the seeder registers in each
// sample tournament that is open for registration.
const teamsPerTournament = 8

var samplePlayers = []string{
	"Carlos", "Lucía", "Javier", "Marta", "Pablo", "Elena", "Diego", "Sara",
	"Álvaro", "Paula", "Sergio", "Laura", "Hugo", "Carmen", "Mario", "Irene",
}

func main() {
	log.Info("Starting storage seeder...")
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %s", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	store, err := storage.Open(ctx, cfg.Storage)
	if err != nil {
		log.Fatalf("Failed to open storage: %s", err)
	}
	codec, err := storage.NewCodec(cfg.Storage.Codec)
	if err != nil {
		log.Fatalf("Failed to create storage codec: %s", err)
	}
	runner := storage.NewRunner(store, codec)
	defer runner.Close()
	log.Info("Successfully connected to storage.", "backend", cfg.Storage.Backend)

	tournaments := tournament.New(runner)
	teams := team.New(runner, tournaments)

	startTime := time.Now()
	seeded, err := tournament.SeedSampleData(ctx, tournaments)
	if err != nil {
		log.Fatalf("Failed to seed tournaments: %s", err)
	}
	if !seeded {
		log.Info("Nothing to do.")
		return
	}

	all, err := tournaments.List(ctx)
	if err != nil {
		log.Fatalf("Failed to list tournaments: %s", err)
	}
	registered := 0
	for _, t := range all {
		if t.Status != padel.StatusRegistration {
			continue
		}
		for i := range min(teamsPerTournament, t.MaxTeams) {
			p1 := samplePlayers[(2*i)%len(samplePlayers)]
			p2 := samplePlayers[(2*i+1)%len(samplePlayers)]
			_, err := teams.Create(ctx, padel.CreateTeamInput{
				Name:         fmt.Sprintf("%s y %s", p1, p2),
				Player1:      padel.Player{FirstName: p1, LastName: "Seeder"},
				Player2:      padel.Player{FirstName: p2, LastName: "Seeder"},
				TournamentID: t.ID,
			})
			if err != nil {
				log.Fatalf("Failed to register sample team: %s", err)
			}
			registered++
		}
	}

	log.Info("Successfully seeded sample data.", "tournaments", len(all), "teams", registered, "duration", time.Since(startTime))
}
