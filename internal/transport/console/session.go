package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/rocketscienceinc/mnk-tictactoe/internal/entity"
	"github.com/rocketscienceinc/mnk-tictactoe/internal/tictactoe"
)

const maxLineLength = 4096

type gameController interface {
	Click(input string)
	SetRoundListener(listener tictactoe.RoundListener)

	Board() *entity.Board
	Score() entity.Score
}

// Session reads one input per line. Anything that is not a command is treated as an "x,y" move.
type Session struct {
	logger *slog.Logger
	game   gameController

	handlers map[string]func(writer io.Writer) error
}

func New(logger *slog.Logger, game gameController) *Session {
	session := &Session{
		logger: logger.With("component", "console"),
		game:   game,

		handlers: make(map[string]func(io.Writer) error),
	}

	session.handlers["board"] = session.handleBoard
	session.handlers["score"] = session.handleScore

	return session
}

// Run - processes input until EOF or until ctx is done.
func (that *Session) Run(ctx context.Context, reader io.Reader, writer io.Writer) error {
	log := that.logger.With("method", "Run")

	that.game.SetRoundListener(tictactoe.RoundListenerFunc(func(round tictactoe.Round) {
		if _, err := fmt.Fprintf(writer, "%s\n%s\n\n", round.Board, round.Kind.Message()); err != nil {
			log.Error("failed to write round result", "error", err)
		}
	}))
	defer that.game.SetRoundListener(nil)

	lines := make(chan string)
	scanErr := make(chan error, 1)
	// The reader goroutine stays blocked in Read after ctx is done until the reader returns.
	// RunApp only cancels on shutdown, so a blocked stdin read ends with the process.
	go func() {
		defer close(lines)
		scanErr <- that.readLines(ctx, reader, lines)
	}()

	if err := that.handleBoard(writer); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			log.Info("session canceled")
			return nil
		case line, ok := <-lines:
			if !ok {
				select {
				case err := <-scanErr:
					if err != nil {
						return fmt.Errorf("failed to read input: %w", err)
					}
				default:
				}
				return nil
			}

			if err := that.handleLine(line, writer); err != nil {
				return err
			}
		}
	}
}

// readLines sends every line of reader to lines. Lines longer than maxLineLength are dropped.
func (that *Session) readLines(ctx context.Context, reader io.Reader, lines chan<- string) error {
	log := that.logger.With("method", "readLines")
	buffered := bufio.NewReaderSize(reader, maxLineLength)

	for {
		line, isPrefix, err := buffered.ReadLine()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		if isPrefix {
			for isPrefix {
				if _, isPrefix, err = buffered.ReadLine(); err != nil {
					if errors.Is(err, io.EOF) {
						return nil
					}
					return err
				}
			}

			log.Debug("ignoring overlong line", "max_length", maxLineLength)
			continue
		}

		select {
		case lines <- string(line):
		case <-ctx.Done():
			return nil
		}
	}
}

func (that *Session) handleLine(line string, writer io.Writer) error {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil
	}

	if handler, ok := that.handlers[line]; ok {
		return handler(writer)
	}

	that.game.Click(line)

	return that.handleBoard(writer)
}

func (that *Session) handleBoard(writer io.Writer) error {
	if _, err := fmt.Fprintln(writer, that.game.Board()); err != nil {
		return fmt.Errorf("failed to write board: %w", err)
	}

	return nil
}

func (that *Session) handleScore(writer io.Writer) error {
	score := that.game.Score()
	if _, err := fmt.Fprintf(writer, "player one: %d, player two: %d\n", score.PlayerOne, score.PlayerTwo); err != nil {
		return fmt.Errorf("failed to write score: %w", err)
	}

	return nil
}
