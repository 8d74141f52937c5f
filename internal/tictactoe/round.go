package tictactoe

import "github.com/rocketscienceinc/mnk-tictactoe/internal/entity"

type RoundKind byte

const (
	RoundPlayerOneWin RoundKind = iota + 1
	RoundPlayerTwoWin
	RoundStalemate
	RoundStrangeGame
)

func (k RoundKind) Message() string {
	switch k {
	case RoundPlayerOneWin:
		return "YOU WIN."
	case RoundPlayerTwoWin:
		return "I WIN."
	case RoundStalemate:
		return "STALEMATE.\nWANT TO PLAY AGAIN?"
	case RoundStrangeGame:
		return "A STRANGE GAME.\nTHE ONLY WINNING MOVE IS\nNOT TO PLAY.\n\nHOW ABOUT A NICE GAME OF CHESS?"
	default:
		return ""
	}
}

func (k RoundKind) String() string {
	switch k {
	case RoundPlayerOneWin:
		return "player_one_win"
	case RoundPlayerTwoWin:
		return "player_two_win"
	case RoundStalemate:
		return "stalemate"
	case RoundStrangeGame:
		return "strange_game"
	default:
		return "unknown"
	}
}

// Round describes a finished round. Score is taken after the round was counted.
type Round struct {
	Kind   RoundKind
	Winner entity.Winner
	Board  *entity.Board
	Score  entity.Score
}

type RoundListener interface {
	RoundFinished(round Round)
}

type RoundListenerFunc func(round Round)

func (f RoundListenerFunc) RoundFinished(round Round) {
	f(round)
}
