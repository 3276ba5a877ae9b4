package cli

import (
	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"ctchen222/tictactoe/internal/bot"
	"ctchen222/tictactoe/internal/session"
)

// tictactoe play
func Play(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play an interactive game in the terminal",
		Args:  cobra.NoArgs,
		Long: heredoc.Doc(`play starts an interactive game. X always moves first and
			is played by you; in pvc mode the computer answers as O.

			Moves are entered as "row col" with rows and columns numbered
			1 to 3. The score is kept across rounds until you reset it
			or leave the game.`),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := a.cfg.Game
			if cmd.Flags().Changed("mode") {
				cfg.Mode, _ = cmd.Flags().GetString("mode")
			}
			if cmd.Flags().Changed("difficulty") {
				cfg.Difficulty, _ = cmd.Flags().GetString("difficulty")
			}
			if cmd.Flags().Changed("delay") {
				cfg.ThinkDelay, _ = cmd.Flags().GetDuration("delay")
			}
			noColor, _ := cmd.Flags().GetBool("no-color")

			mode, err := session.ParseMode(cfg.Mode)
			if err != nil {
				return err
			}
			sc := session.Config{Mode: mode}
			if mode == session.PlayerVsComputer {
				if sc.Difficulty, err = bot.ParseDifficulty(cfg.Difficulty); err != nil {
					return err
				}
			}

			s, err := session.New(sc)
			if err != nil {
				return err
			}

			g := NewGame(s, cmd.InOrStdin(), cmd.OutOrStdout(),
				WithThinkDelay(cfg.ThinkDelay),
				WithColor(!noColor),
			)
			return g.Run(cmd.Context())
		},
	}

	cmd.Flags().StringP("mode", "m", "", "Game mode: pvp or pvc")
	cmd.Flags().StringP("difficulty", "d", "", "Computer difficulty: easy, medium or hard")
	cmd.Flags().Duration("delay", 0, "Pause before the computer's move is shown")
	cmd.Flags().Bool("no-color", false, "Do not colour the winning line")

	return cmd
}
