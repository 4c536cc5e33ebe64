package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/mauv0809/padel-cup/internal/padel"
	"github.com/spf13/cobra"
)

var (
	tournamentName string
	tournamentDesc string
	startDate      string
	endDate        string
	maxTeams       int
	searchQuery    string

	teamName string
	player1  string
	player2  string

	numberOfGroups int
	teamsPerGroup  int
	advancing      int
	previewGroups  int
)

func init() {
	rootCmd.AddCommand(healthCmd)
	rootCmd.AddCommand(tournamentsCmd)
	rootCmd.AddCommand(createTournamentCmd)
	rootCmd.AddCommand(registerTeamCmd)
	rootCmd.AddCommand(importTeamsCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(structureCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(metricsCmd)

	tournamentsCmd.Flags().StringVarP(&searchQuery, "query", "q", "", "Only list tournaments whose name or description contains this text")

	createTournamentCmd.Flags().StringVar(&tournamentName, "name", "", "Tournament name")
	createTournamentCmd.Flags().StringVar(&tournamentDesc, "description", "", "Tournament description")
	createTournamentCmd.Flags().StringVar(&startDate, "start", "", "Start date (YYYY-MM-DD)")
	createTournamentCmd.Flags().StringVar(&endDate, "end", "", "End date (YYYY-MM-DD)")
	createTournamentCmd.Flags().IntVar(&maxTeams, "max-teams", 16, "Maximum number of teams")
	createTournamentCmd.MarkFlagRequired("name")
	createTournamentCmd.MarkFlagRequired("start")
	createTournamentCmd.MarkFlagRequired("end")

	registerTeamCmd.Flags().StringVar(&teamName, "name", "", "Team name")
	registerTeamCmd.Flags().StringVar(&player1, "player1", "", "First player as \"First Last\"")
	registerTeamCmd.Flags().StringVar(&player2, "player2", "", "Second player as \"First Last\"")
	registerTeamCmd.MarkFlagRequired("name")
	registerTeamCmd.MarkFlagRequired("player1")
	registerTeamCmd.MarkFlagRequired("player2")

	generateCmd.Flags().IntVar(&numberOfGroups, "groups", 2, "Number of groups")
	generateCmd.Flags().IntVar(&teamsPerGroup, "teams-per-group", 4, "Teams in each group")
	generateCmd.Flags().IntVar(&advancing, "advancing", 2, "Teams advancing from each group")

	previewCmd.Flags().IntVar(&previewGroups, "groups", 2, "Number of groups to preview")
}

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check the health of the server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/health")
	},
}

var tournamentsCmd = &cobra.Command{
	Use:   "tournaments",
	Short: "List tournaments",
	RunE: func(cmd *cobra.Command, args []string) error {
		if searchQuery != "" {
			return performGetRequest("/tournaments?q=" + url.QueryEscape(searchQuery))
		}
		return performGetRequest("/tournaments")
	},
}

var createTournamentCmd = &cobra.Command{
	Use:   "create-tournament",
	Short: "Create a tournament",
	RunE: func(cmd *cobra.Command, args []string) error {
		start, err := time.Parse(time.DateOnly, startDate)
		if err != nil {
			return fmt.Errorf("invalid start date: %w", err)
		}
		end, err := time.Parse(time.DateOnly, endDate)
		if err != nil {
			return fmt.Errorf("invalid end date: %w", err)
		}
		return performPostRequest("/tournaments", padel.CreateTournamentInput{
			Name:        tournamentName,
			Description: tournamentDesc,
			StartDate:   start,
			EndDate:     end,
			MaxTeams:    maxTeams,
			CreatedBy:   "cli",
		})
	},
}

var registerTeamCmd = &cobra.Command{
	Use:   "register-team <tournament-id>",
	Short: "Register a team in a tournament",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return performPostRequest("/tournaments/"+args[0]+"/teams", padel.CreateTeamInput{
			Name:    teamName,
			Player1: parsePlayer(player1),
			Player2: parsePlayer(player2),
		})
	},
}

var importTeamsCmd = &cobra.Command{
	Use:   "import-teams <tournament-id>",
	Short: "Register the pairs found in recent Playtomic matches of the configured club",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return performPostRequest("/tournaments/"+args[0]+"/teams/import", nil)
	},
}

var generateCmd = &cobra.Command{
	Use:   "generate <tournament-id>",
	Short: "Generate the groups and elimination brackets of a tournament",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return performPostRequest("/tournaments/"+args[0]+"/structure", padel.TournamentConfig{
			NumberOfGroups:         numberOfGroups,
			TeamsPerGroup:          teamsPerGroup,
			TeamsAdvancingPerGroup: advancing,
		})
	},
}

var previewCmd = &cobra.Command{
	Use:   "preview <tournament-id>",
	Short: "Preview the suggested structure for a number of groups",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/tournaments/" + args[0] + "/structure/preview?groups=" + strconv.Itoa(previewGroups))
	},
}

var structureCmd = &cobra.Command{
	Use:   "structure <tournament-id>",
	Short: "Show the stored groups and brackets of a tournament",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/tournaments/" + args[0] + "/structure")
	},
}

var statsCmd = &cobra.Command{
	Use:   "stats <tournament-id>",
	Short: "Show registration and match statistics of a tournament",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/tournaments/" + args[0] + "/stats")
	},
}

var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Get application metrics",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/metrics")
	},
}

// parsePlayer splits "First Last" at the first space.
func parsePlayer(name string) padel.Player {
	for i, r := range name {
		if r == ' ' {
			return padel.Player{FirstName: name[:i], LastName: name[i+1:]}
		}
	}
	return padel.Player{FirstName: name, LastName: name}
}

func withDryRun(endpoint string) string {
	if !dryRun {
		return endpoint
	}
	u, err := url.Parse(endpoint)
	if err != nil {
		return endpoint
	}
	q := u.Query()
	q.Set("dry_run", "true")
	u.RawQuery = q.Encode()
	return u.String()
}

func performGetRequest(endpoint string) error {
	url := host + withDryRun(endpoint)
	fmt.Printf("Making request to %s\n", url)

	resp, err := http.Get(url)
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}
	return printResponse(resp)
}

func performPostRequest(endpoint string, payload any) error {
	url := host + withDryRun(endpoint)
	fmt.Printf("Making request to %s\n", url)

	var body io.Reader = http.NoBody
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		body = bytes.NewReader(data)
	}
	resp, err := http.Post(url, "application/json", body)
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}
	return printResponse(resp)
}

func printResponse(resp *http.Response) error {
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	fmt.Printf("Status Code: %d\n", resp.StatusCode)
	fmt.Println("Response Body:")
	fmt.Println(string(body))

	return nil
}
