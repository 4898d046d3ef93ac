package maze

// Solvability selects how generation treats reachability between start and goal.
type Solvability int

const (
	ForceSolvable   Solvability = iota // ForceSolvable regenerates once if goal is unreachable.
	ForceUnsolvable                    // ForceUnsolvable adds walls until goal is unreachable.
	Unconstrained                      // Unconstrained leaves the carved maze as is.
)

// Generation defaults.
const (
	DefaultWidth            = 20
	DefaultHeight           = 10
	DefaultLoopProb         = 0.05
	DefaultMaxBlockAttempts = 200
)

func (s Solvability) String() string {
	switch s {
	case ForceSolvable:
		return "solvable"
	case ForceUnsolvable:
		return "unsolvable"
	case Unconstrained:
		return "unconstrained"
	}
	return "unknown"
}

// ParseSolvability maps "solvable", "unsolvable" and "unconstrained" to a Solvability.
// The empty string means ForceSolvable.
func ParseSolvability(s string) (Solvability, error) {
	switch s {
	case "", "solvable":
		return ForceSolvable, nil
	case "unsolvable":
		return ForceUnsolvable, nil
	case "unconstrained":
		return Unconstrained, nil
	}
	return 0, ErrInvalidSolvability
}

// Options configures maze generation.
type Options struct {
	Width            int           // Width of the maze (number of columns)
	Height           int           // Height of the maze (number of rows)
	LoopProb         float64       // Probability of removing each remaining wall after carving (0 disables)
	Solvability      Solvability   // Reachability requirement between Start and Goal
	Start            CellPosition  // Start cell
	Goal             *CellPosition // Goal cell; nil means the bottom-right corner
	MaxBlockAttempts int           // Wall insertions allowed when forcing unsolvability; 0 only checks reachability
}

// DefaultOptions returns the standard 20x10 solvable maze configuration.
func DefaultOptions() *Options {
	return &Options{
		Width:            DefaultWidth,
		Height:           DefaultHeight,
		LoopProb:         DefaultLoopProb,
		Solvability:      ForceSolvable,
		MaxBlockAttempts: DefaultMaxBlockAttempts,
	}
}

// goal resolves the goal position for the configured dimensions.
func (o *Options) goal() CellPosition {
	if o.Goal != nil {
		return *o.Goal
	}
	return CellPosition{X: o.Width - 1, Y: o.Height - 1}
}

func (o *Options) validate() error {
	if o.Width <= 0 || o.Height <= 0 {
		return ErrInvalidDimensions
	}
	if o.LoopProb < 0 || o.LoopProb > 1 {
		return ErrInvalidLoopProb
	}
	if o.MaxBlockAttempts < 0 {
		return ErrInvalidBlockAttempts
	}
	goal := o.goal()
	inBound := func(p CellPosition) bool {
		return p.X >= 0 && p.X < o.Width && p.Y >= 0 && p.Y < o.Height
	}
	if !inBound(o.Start) || !inBound(goal) {
		return ErrInvalidPosition
	}
	return nil
}
