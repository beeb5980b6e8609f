package fairy

import "errors"

var (
	ErrUnknownPiece   = errors.New("unknown piece kind")
	ErrUnknownVariant = errors.New("unknown variant")
	ErrInvalidFEN     = errors.New("invalid FEN")
	ErrInvalidSquare  = errors.New("invalid square")
	ErrIllegalMove    = errors.New("illegal move")
	ErrNoPiece        = errors.New("no piece on square")
	ErrWrongTurn      = errors.New("not this side's turn")
	ErrGameOver       = errors.New("game is over")
	ErrNoHistory      = errors.New("no move to undo")
)
