package application

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/mnk-tictactoe/internal/config"
	"github.com/rocketscienceinc/mnk-tictactoe/internal/entity"
	"github.com/rocketscienceinc/mnk-tictactoe/internal/service"
	"github.com/rocketscienceinc/mnk-tictactoe/internal/tictactoe"
	"github.com/rocketscienceinc/mnk-tictactoe/internal/transport/console"
)

// RunApp - runs the application on stdin and stdout.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	return Play(ctx, logger, conf, os.Stdin, os.Stdout)
}

// Play - wires the game from conf and runs one console session.
func Play(ctx context.Context, logger *slog.Logger, conf *config.Config, reader io.Reader, writer io.Writer) error {
	log := logger.With("component", "app")

	game, err := NewGame(logger, conf)
	if err != nil {
		return fmt.Errorf("could not create game: %w", err)
	}

	log.Info("Starting game",
		"game_id", game.ID(),
		"width", conf.Game.Width,
		"height", conf.Game.Height,
		"win_count", conf.Game.WinCount,
		"auto_player", conf.Game.AutoPlayer,
	)

	sessionErrCh := make(chan error, 1)
	go func() {
		sessionErrCh <- console.New(logger, game).Run(ctx, reader, writer)
	}()

	select {
	case err = <-sessionErrCh:
		if err != nil {
			return fmt.Errorf("console session error: %w", err)
		}
		log.Info("Input closed, shutting down", "score", game.Score())
		return nil
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
		return nil
	}
}

func NewGame(logger *slog.Logger, conf *config.Config) (*tictactoe.GameController, error) {
	opts := tictactoe.Options{
		Width:            conf.Game.Width,
		Height:           conf.Game.Height,
		WinCount:         conf.Game.WinCount,
		AutoPlayer:       entity.None,
		StrangeGameAfter: conf.Game.StrangeGameAfter,
	}

	var bot service.BotService
	if conf.Game.HasAutoPlayer() {
		opts.AutoPlayer = entity.PlayerTwo
		bot = service.NewBotService()
	}

	game, err := tictactoe.NewGameController(logger, opts, bot)
	if err != nil {
		return nil, fmt.Errorf("failed to create game controller: %w", err)
	}

	return game, nil
}
