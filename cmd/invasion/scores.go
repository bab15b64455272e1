package main

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/alien-invasion/internal/registry"
	"github.com/vovakirdan/alien-invasion/internal/storage"
)

var (
	flagLimit  int
	flagClear  bool
	flagRecent bool
	flagRunID  string
)

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show the best runs for a mode",
	Long: `Display the best journaled runs for a mode (default: invasion),
followed by a summary of every run played.

Examples:
  invasion scores
  invasion scores invasion_classic --limit 20
  invasion scores --recent
  invasion scores --run 2f1c...
  invasion scores --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete every journaled run for the mode")
	scoresCmd.Flags().BoolVar(&flagRecent, "recent", false, "Show the latest runs of every mode")
	scoresCmd.Flags().StringVar(&flagRunID, "run", "", "Show a single run by ID")
}

func runScores(_ *cobra.Command, args []string) {
	defer closeLog()

	gameID := modeArg(args)

	game, err := registry.Create(gameID)
	if err != nil {
		fail("creating game: %v", err)
	}
	title := game.Title()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fail("opening run journal: %v", err)
	}
	defer store.Close()

	switch {
	case flagRunID != "":
		showRun(store, flagRunID)
		return
	case flagRecent:
		showRecent(store)
		return
	}

	if flagClear {
		if err := store.ClearRuns(gameID); err != nil {
			fail("clearing runs: %v", err)
		}
		fmt.Printf("Cleared every run for %s.\n", title)
		return
	}

	runs, err := store.TopRuns(gameID, flagLimit)
	if err != nil {
		fail("retrieving runs: %v", err)
	}

	fmt.Printf("Best Runs - %s\n", title)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'invasion play %s' to set the first score!\n", gameID)
		return
	}

	printRuns(runs, time.Now())

	sum, err := store.Summarize(gameID)
	if err != nil {
		logger.Warn("summarize runs", "err", err)
		return
	}
	fmt.Println()
	fmt.Printf("Runs: %d  Best: %s (level %d)  Average: %s  Played: %s  Last: %s\n",
		sum.Runs,
		humanize.Comma(int64(sum.BestScore)),
		sum.BestLevel,
		humanize.Comma(int64(sum.AvgScore)),
		sum.TotalDuration.Round(time.Second),
		humanize.Time(sum.LastPlayed),
	)
}

func printRuns(runs []storage.Run, now time.Time) {
	fmt.Printf("  %-4s  %-10s  %-5s  %-8s  %-12s  %s\n", "Rank", "Score", "Level", "Time", "Player", "When")
	fmt.Printf("  %-4s  %-10s  %-5s  %-8s  %-12s  %s\n", "----", "-----", "-----", "----", "------", "----")
	for i, r := range runs {
		player := r.Player
		if player == "" {
			player = "-"
		}
		fmt.Printf("  %-4d  %-10s  %-5d  %-8s  %-12s  %s\n",
			i+1,
			humanize.Comma(int64(r.Score)),
			r.Level,
			r.Duration.Round(time.Second),
			player,
			humanize.RelTime(r.CreatedAt, now, "ago", "from now"),
		)
	}
}

func showRecent(store *storage.Store) {
	runs, err := store.RecentRuns(flagLimit)
	if err != nil {
		fail("retrieving runs: %v", err)
	}
	fmt.Println("Recent Runs")
	fmt.Println()
	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		return
	}
	now := time.Now()
	for _, r := range runs {
		fmt.Printf("  %-18s  %10s  level %-3d  %s\n",
			r.GameID,
			humanize.Comma(int64(r.Score)),
			r.Level,
			humanize.RelTime(r.CreatedAt, now, "ago", "from now"),
		)
	}
}

func showRun(store *storage.Store, id string) {
	run, err := store.RunByID(id)
	if err != nil {
		fail("retrieving run: %v", err)
	}
	if run == nil {
		fail("no run with id %q", id)
	}
	best, err := store.BestScore(run.GameID)
	if err != nil {
		fail("retrieving best score: %v", err)
	}

	fmt.Printf("Run %s\n", run.ID)
	fmt.Printf("  Mode:     %s\n", run.GameID)
	fmt.Printf("  Player:   %s\n", run.Player)
	fmt.Printf("  Score:    %s\n", humanize.Comma(int64(run.Score)))
	fmt.Printf("  Level:    %d\n", run.Level)
	fmt.Printf("  Time:     %s\n", run.Duration.Round(time.Second))
	fmt.Printf("  Played:   %s\n", run.CreatedAt.Format("2006-01-02 15:04"))
	if run.Score >= best {
		fmt.Println("  Best run for this mode")
	} else {
		fmt.Printf("  Best:     %s\n", humanize.Comma(int64(best)))
	}
}
