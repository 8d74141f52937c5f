package tictactoe

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/mnk-tictactoe/internal/apperror"
	"github.com/rocketscienceinc/mnk-tictactoe/internal/entity"
)

const (
	defaultSize             = 3
	defaultStrangeGameAfter = 3
)

type botDep interface {
	PickCell(board *entity.Board) (entity.Coord, error)
}

type Options struct {
	Width    int
	Height   int
	WinCount int

	// AutoPlayer is the player moved by the bot: entity.PlayerTwo or entity.None.
	AutoPlayer entity.Player

	// StrangeGameAfter is the draw streak that counts as a strange game.
	StrangeGameAfter int
}

func DefaultOptions() Options {
	return Options{
		Width:            defaultSize,
		Height:           defaultSize,
		WinCount:         defaultSize,
		AutoPlayer:       entity.PlayerTwo,
		StrangeGameAfter: defaultStrangeGameAfter,
	}
}

// GameController owns the board, the turn and the score of one table.
// It is not safe for concurrent use.
type GameController struct {
	id     string
	logger *slog.Logger

	board *entity.Board
	turn  entity.Player
	score entity.Score

	winCount         int
	strangeGameAfter int
	autoPlayer       entity.Player
	bot              botDep

	listener RoundListener
}

func NewGameController(logger *slog.Logger, opts Options, bot botDep) (*GameController, error) {
	if opts.WinCount < 1 {
		return nil, fmt.Errorf("%w: win count %d", apperror.ErrInvalidDimensions, opts.WinCount)
	}

	if opts.AutoPlayer != entity.PlayerTwo && opts.AutoPlayer != entity.None {
		return nil, fmt.Errorf("%w: got %s", apperror.ErrUnsupportedAutoPlayer, opts.AutoPlayer)
	}

	if opts.AutoPlayer != entity.None && bot == nil {
		return nil, fmt.Errorf("%w: no bot for player %s", apperror.ErrUnsupportedAutoPlayer, opts.AutoPlayer)
	}

	board, err := entity.NewBoard(opts.Width, opts.Height)
	if err != nil {
		return nil, fmt.Errorf("failed to create board: %w", err)
	}

	if opts.WinCount > max(opts.Width, opts.Height) {
		return nil, fmt.Errorf("%w: win count %d exceeds %dx%d board",
			apperror.ErrInvalidDimensions, opts.WinCount, opts.Width, opts.Height)
	}

	strangeGameAfter := opts.StrangeGameAfter
	if strangeGameAfter < 1 {
		strangeGameAfter = defaultStrangeGameAfter
	}

	id := uuid.NewString()

	return &GameController{
		id:               id,
		logger:           logger.With("component", "game_controller", "game_id", id),
		board:            board,
		turn:             entity.PlayerOne,
		winCount:         opts.WinCount,
		strangeGameAfter: strangeGameAfter,
		autoPlayer:       opts.AutoPlayer,
		bot:              bot,
	}, nil
}

func (that *GameController) SetRoundListener(listener RoundListener) {
	that.listener = listener
}

// Click - handles a textual "x,y" move. Rejected input is ignored.
func (that *GameController) Click(input string) {
	log := that.logger.With("method", "Click", "input", input)

	coord, err := entity.ParseCoord(input)
	if err != nil {
		log.Debug("ignoring input", "error", err)
		return
	}

	if err = that.MarkPlace(coord); err != nil {
		log.Debug("ignoring move", "error", err)
	}
}

// MarkPlace - places the current player's mark at c and lets the bot answer when it is the bot's turn.
// A rejected move, or a bot that fails to answer, returns an error and leaves the game unchanged.
func (that *GameController) MarkPlace(c entity.Coord) error {
	player := that.turn
	if err := that.board.Place(c, player.Mark()); err != nil {
		return fmt.Errorf("failed to mark place: %w", err)
	}

	if that.applyMove(player, c) || that.turn != that.autoPlayer {
		return nil
	}

	next, err := that.bot.PickCell(that.board)
	if err == nil {
		err = that.board.Place(next, that.autoPlayer.Mark())
	}

	if err != nil {
		that.board.Clear(c)
		that.turn = player

		return fmt.Errorf("bot failed to answer: %w", err)
	}

	that.applyMove(that.autoPlayer, next)

	return nil
}

// applyMove runs win detection for a placed mark and reports whether the round ended.
func (that *GameController) applyMove(player entity.Player, c entity.Coord) bool {
	that.logger.Debug("mark placed", "player", player.String(), "coord", c.String())

	if winner := CheckWinner(that.board, c, that.winCount); winner.IsTerminal() {
		that.finishRound(winner)
		return true
	}

	that.turn = player.Opponent()

	return false
}

func (that *GameController) finishRound(winner entity.Winner) {
	var kind RoundKind

	switch winner {
	case entity.PlayerOneWins:
		that.score.PlayerOne++
		that.score.DrawsInARow = 0
		kind = RoundPlayerOneWin
	case entity.PlayerTwoWins:
		that.score.PlayerTwo++
		that.score.DrawsInARow = 0
		kind = RoundPlayerTwoWin
	case entity.Draw:
		that.score.PlayerOne++
		that.score.PlayerTwo++
		that.score.DrawsInARow++
		kind = RoundStalemate

		if that.score.DrawsInARow >= that.strangeGameAfter {
			that.score.DrawsInARow = 0
			that.score.StrangeGames++
			kind = RoundStrangeGame
		}
	default:
		return
	}

	round := Round{
		Kind:   kind,
		Winner: winner,
		Board:  that.board.Clone(),
		Score:  that.score,
	}

	that.reset()

	that.logger.Info("round finished",
		"result", kind.String(),
		"winner", winner.String(),
		"player_one", that.score.PlayerOne,
		"player_two", that.score.PlayerTwo,
		"draws_in_a_row", that.score.DrawsInARow,
		"strange_games", that.score.StrangeGames,
	)

	if that.listener != nil {
		that.listener.RoundFinished(round)
	}
}

func (that *GameController) reset() {
	that.turn = entity.PlayerOne
	that.board.Reset()
}

func (that *GameController) ID() string {
	return that.id
}

func (that *GameController) Turn() entity.Player {
	return that.turn
}

func (that *GameController) Score() entity.Score {
	return that.score
}

func (that *GameController) WinCount() int {
	return that.winCount
}

func (that *GameController) AutoPlayer() entity.Player {
	return that.autoPlayer
}

// Board returns a copy of the current board.
func (that *GameController) Board() *entity.Board {
	return that.board.Clone()
}
