package cli

import (
	"fmt"
	"time"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"

	"ctchen222/tictactoe/internal/match"
	"ctchen222/tictactoe/internal/player"
)

// tictactoe selfplay
func SelfPlay(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "selfplay",
		Short: "Pit two computer difficulties against each other",
		Args:  cobra.NoArgs,
		Long: heredoc.Doc(`selfplay runs a number of independent rounds between two
			computer players and prints the final score. The --x player
			always moves first.

			Two hard players should draw every round; a hard player
			should never lose to anyone.`),
		RunE: func(cmd *cobra.Command, args []string) error {
			xName, _ := cmd.Flags().GetString("x")
			oName, _ := cmd.Flags().GetString("o")
			rounds, _ := cmd.Flags().GetInt("rounds")
			workers, _ := cmd.Flags().GetInt("workers")

			x, err := player.FromDifficulty(xName)
			if err != nil {
				return fmt.Errorf("--x: %w", err)
			}
			o, err := player.FromDifficulty(oName)
			if err != nil {
				return fmt.Errorf("--o: %w", err)
			}

			s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(cmd.ErrOrStderr()))
			s.Suffix = fmt.Sprintf(" playing %d rounds of %s vs %s...", rounds, x, o)
			s.Start()
			tally, err := match.NewRunner(x, o, match.WithWorkers(workers)).Play(cmd.Context(), rounds)
			s.Stop()
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "X (%s) vs O (%s) after %d rounds\n%s\n", x, o, tally.Rounds(), tally)
			return nil
		},
	}

	cmd.Flags().String("x", "hard", "Difficulty of the X player")
	cmd.Flags().String("o", "hard", "Difficulty of the O player")
	cmd.Flags().IntP("rounds", "n", 100, "Number of rounds to play")
	cmd.Flags().IntP("workers", "w", 0, "Rounds played in parallel (0 means one per CPU)")

	return cmd
}
