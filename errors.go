package innovation

import "errors"

// Error taxonomy. Primitives and the dogma engine fail fast and loudly;
// callers are expected to prevent illegal calls via upfront validation, so
// a primitive-level failure surfaces to the boundary instead of being
// swallowed. Discriminate with errors.Is.
var (
	// ErrInvalidArgument means a primitive was handed input that makes no sense.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrEmptyCollection means a pick or draw was requested from nothing.
	ErrEmptyCollection = errors.New("empty collection")
	// ErrPreconditionViolation means the state does not satisfy an operation's contract.
	ErrPreconditionViolation = errors.New("precondition violation")
	// ErrInvalidChoice means an answer does not match the pending choice's shape.
	ErrInvalidChoice = errors.New("invalid choice answer")
	// ErrConfiguration means the engine was wired up wrong; fatal at startup.
	ErrConfiguration = errors.New("configuration error")
	// ErrCorrupted means persisted data failed its checksum.
	ErrCorrupted = errors.New("corrupted save data")
	// ErrParseFailure means persisted data could not be decoded.
	ErrParseFailure = errors.New("cannot parse save data")
	// ErrValidation means decoded data failed structural validation.
	ErrValidation = errors.New("game data failed validation")
	// ErrUnsupportedMigration means no migration path exists between versions.
	ErrUnsupportedMigration = errors.New("unsupported migration")
)

// Engine-flow errors.
var (
	// ErrNotYourTurn rejects an action from the player not to move.
	ErrNotYourTurn = errors.New("it's not your turn")
	// ErrAwaitingChoice rejects actions while a choice is pending.
	ErrAwaitingChoice = errors.New("game is awaiting a choice answer")
	// ErrNoPendingChoice rejects an answer when nothing was asked.
	ErrNoPendingChoice = errors.New("no pending choice")
	// ErrGameOver rejects anything but read queries on a finished game.
	ErrGameOver = errors.New("game is over")
)
