package engine

import "errors"

// Player-originated errors are recoverable: the action is rejected and the
// state is unchanged. ErrEmptyDeck is an invariant breach and never expected
// during correct play.
var (
	ErrIllegalMove     = errors.New("illegal move")
	ErrIllegalBid      = errors.New("illegal bid")
	ErrInvalidAnnounce = errors.New("invalid announce declaration")
	ErrEmptyDeck       = errors.New("deck is empty")
	ErrNotYourTurn     = errors.New("not your turn")
)
