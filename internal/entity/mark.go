package entity

// Mark is the state of a single grid cell.
type Mark byte

const (
	Empty Mark = iota
	Nought
	Cross
)

func (m Mark) String() string {
	switch m {
	case Nought:
		return "O"
	case Cross:
		return "X"
	default:
		return ""
	}
}

// ParseMark is the reverse of Mark.String. Unknown input reads as Empty.
func ParseMark(s string) Mark {
	switch s {
	case "O":
		return Nought
	case "X":
		return Cross
	default:
		return Empty
	}
}

type Player byte

const (
	None Player = iota
	PlayerOne
	PlayerTwo
)

// Mark - player one plays crosses, player two plays noughts.
func (p Player) Mark() Mark {
	switch p {
	case PlayerOne:
		return Cross
	case PlayerTwo:
		return Nought
	default:
		return Empty
	}
}

func (p Player) Opponent() Player {
	switch p {
	case PlayerOne:
		return PlayerTwo
	case PlayerTwo:
		return PlayerOne
	default:
		return None
	}
}

func (p Player) String() string {
	switch p {
	case PlayerOne:
		return "one"
	case PlayerTwo:
		return "two"
	default:
		return "none"
	}
}

type Winner byte

const (
	Nobody Winner = iota
	Draw
	PlayerOneWins
	PlayerTwoWins
)

// WinnerOf maps a line of identical marks to the player owning them.
func WinnerOf(m Mark) Winner {
	switch m {
	case Cross:
		return PlayerOneWins
	case Nought:
		return PlayerTwoWins
	default:
		return Nobody
	}
}

// IsTerminal reports whether the round is over.
func (w Winner) IsTerminal() bool {
	return w != Nobody
}

func (w Winner) String() string {
	switch w {
	case Draw:
		return "draw"
	case PlayerOneWins:
		return "player one"
	case PlayerTwoWins:
		return "player two"
	default:
		return "nobody"
	}
}
