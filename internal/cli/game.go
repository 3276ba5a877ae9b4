package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/briandowns/spinner"

	"ctchen222/tictactoe/internal/bot"
	"ctchen222/tictactoe/internal/game"
	"ctchen222/tictactoe/internal/session"
)

const helpText = `Enter a move as "row col" (1-3 each), or one of:
  new    start a new round (score is kept)
  reset  reset the score
  hint   suggest a move for the side to play
  quit   leave the game
`

// Game drives a session from a line-oriented terminal.
type Game struct {
	session    *session.Session
	in         *bufio.Scanner
	out        io.Writer
	thinkDelay time.Duration
	color      bool
}

type GameOption func(*Game)

// WithThinkDelay pauses with a spinner before showing the computer's reply.
func WithThinkDelay(d time.Duration) GameOption {
	return func(g *Game) { g.thinkDelay = d }
}

// WithColor highlights the winning line with ANSI colours.
func WithColor(on bool) GameOption {
	return func(g *Game) { g.color = on }
}

func NewGame(s *session.Session, in io.Reader, out io.Writer, opts ...GameOption) *Game {
	g := &Game{
		session: s,
		in:      bufio.NewScanner(in),
		out:     out,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Run plays until the player quits, declines another round, or input ends.
func (g *Game) Run(ctx context.Context) error {
	fmt.Fprint(g.out, helpText)
	g.show()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		switch g.session.State().Phase {
		case session.Ended:
			return nil
		case session.RoundOver:
			done, err := g.askPlayAgain()
			if done || err != nil {
				return err
			}
			continue
		}

		line, ok := g.prompt(fmt.Sprintf("%s> ", g.session.State().Active))
		if !ok {
			return nil
		}

		switch line {
		case "":
			continue
		case "quit", "q", "exit":
			fmt.Fprintln(g.out, g.session.Tally())
			return nil
		case "help", "?":
			fmt.Fprint(g.out, helpText)
		case "new":
			if err := g.session.NewRound(); err != nil {
				return err
			}
			g.show()
		case "reset":
			if err := g.session.ResetTally(); err != nil {
				return err
			}
			fmt.Fprintln(g.out, g.session.Tally())
		case "hint":
			g.hint()
		default:
			if err := g.move(ctx, line); err != nil {
				return err
			}
		}
	}
}

// move parses and plays a "row col" command. Rejected input is reported to
// the player and is not an error.
func (g *Game) move(ctx context.Context, line string) error {
	row, col, err := parseMove(line)
	if err != nil {
		fmt.Fprintf(g.out, "%v. Type help for commands.\n", err)
		return nil
	}

	turn, err := g.session.PlaceMark(ctx, row, col)
	switch {
	case errors.Is(err, session.ErrInvalidMove):
		fmt.Fprintf(g.out, "Rejected: %v\n", err)
		return nil
	case err != nil:
		return err
	}

	if turn.Computer != nil {
		g.think(ctx)
		p := turn.Computer.Position
		fmt.Fprintf(g.out, "Computer (%s) plays %d %d\n", turn.Computer.Mark, p.Row+1, p.Col+1)
	}
	g.show()
	return nil
}

// hint asks the exhaustive strategy for the active mark's best move on a copy
// of the board.
func (g *Game) hint() {
	board, err := game.NewBoardFrom(g.session.Board())
	if err != nil {
		slog.Warn("failed to copy board for hint", "error", err)
		return
	}
	p, err := bot.CalculateNextMove(board, g.session.State().Active, string(bot.Hard))
	if err != nil {
		fmt.Fprintf(g.out, "No hint: %v\n", err)
		return
	}
	fmt.Fprintf(g.out, "Hint: %d %d\n", p.Row+1, p.Col+1)
}

func (g *Game) askPlayAgain() (done bool, err error) {
	for {
		answer, ok := g.prompt("Play again? [y/n] ")
		if !ok {
			return true, nil
		}
		switch strings.ToLower(answer) {
		case "y", "yes":
			if err := g.session.PlayAgain(); err != nil {
				return true, err
			}
			g.show()
			return false, nil
		case "n", "no":
			if err := g.session.Decline(); err != nil {
				return true, err
			}
			fmt.Fprintf(g.out, "Final score: %s\n", g.session.Tally())
			return true, nil
		}
	}
}

func (g *Game) show() {
	st := g.session.State()
	fmt.Fprintln(g.out)
	renderBoard(g.out, g.session.Board(), st.Outcome, g.color)
	if st.Phase == session.RoundOver {
		fmt.Fprintln(g.out, outcomeMessage(st.Outcome, g.session.ComputerMark()))
	}
	fmt.Fprintln(g.out, g.session.Tally())
}

func (g *Game) prompt(p string) (string, bool) {
	fmt.Fprint(g.out, p)
	if !g.in.Scan() {
		if err := g.in.Err(); err != nil {
			slog.Warn("failed to read input", "error", err)
		}
		fmt.Fprintln(g.out)
		return "", false
	}
	return strings.ToLower(strings.TrimSpace(g.in.Text())), true
}

// think shows a spinner for the configured delay.
func (g *Game) think(ctx context.Context) {
	if g.thinkDelay <= 0 {
		return
	}
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(g.out))
	s.Suffix = " thinking..."
	s.Start()
	defer s.Stop()

	t := time.NewTimer(g.thinkDelay)
	defer t.Stop()
	select {
	case <-t.C:
	case <-ctx.Done():
	}
}

// parseMove reads "row col" (1-based, separated by spaces or a comma) into
// zero-based coordinates.
func parseMove(line string) (row, col int, err error) {
	fields := strings.FieldsFunc(line, func(r rune) bool { return r == ' ' || r == ',' || r == '\t' })
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("expected \"row col\", got %q", line)
	}
	row, err = strconv.Atoi(fields[0])
	if err != nil {
		return 0, 0, fmt.Errorf("bad row %q", fields[0])
	}
	col, err = strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, fmt.Errorf("bad column %q", fields[1])
	}
	if row < 1 || row > game.Size || col < 1 || col > game.Size {
		return 0, 0, fmt.Errorf("row and column must be between 1 and %d", game.Size)
	}
	return row - 1, col - 1, nil
}
