/*
Package maze provides tools for creating and solving rectangular mazes.

A Grid holds one Cell per coordinate, each with its standing walls. Walls are
always removed or raised in pairs, so two adjacent cells agree on whether
they are connected.

Mazes are carved as randomized depth-first spanning trees (perfect mazes),
optionally opened further with random loops, and optionally post-processed so
that the goal is guaranteed reachable or unreachable from the start.

The package also renders grids as ASCII or Unicode box drawings.
*/
package maze

import (
	"errors"
	"math/rand"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidDimensions  = errors.New("invalid maze dimensions")
	ErrInvalidLoopProb    = errors.New("loop probability must be between 0 and 1")
	ErrInvalidPosition    = errors.New("start or goal is out of the maze")
	ErrInvalidSolvability = errors.New("invalid solvability mode")

	ErrInvalidBlockAttempts = errors.New("block attempts must not be negative")
)

// Rand is the random source used by generation. *rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
	Float64() float64
}

// Size is a maze dimension pair.
type Size struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Maze is a generated grid together with the parameters it was generated with.
type Maze struct {
	*Grid
	ID          uuid.UUID
	LoopProb    float64
	Solvability Solvability
	Start       CellPosition
	Goal        CellPosition
	// Blocked reports whether ForceUnsolvable managed to cut every path.
	// It is always false for the other modes.
	Blocked bool
}

// NewRand returns a random source seeded with seed, or with the current time when seed is 0.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// Generate builds a new random maze. A nil opts means DefaultOptions and a nil rng
// means a time-seeded source.
func Generate(opts *Options, rng Rand) (*Maze, error) {
	if opts == nil {
		opts = DefaultOptions()
	}
	if err := opts.validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		rng = NewRand(0)
	}

	grid, err := NewGrid(opts.Width, opts.Height)
	if err != nil {
		return nil, err
	}

	m := &Maze{
		Grid:        grid,
		ID:          uuid.New(),
		LoopProb:    opts.LoopProb,
		Solvability: opts.Solvability,
		Start:       opts.Start,
		Goal:        opts.goal(),
	}

	m.Randomize(rng)
	m.AddLoops(m.LoopProb, rng)

	switch m.Solvability {
	case ForceUnsolvable:
		m.Blocked = m.BlockPath(m.Start, m.Goal, opts.MaxBlockAttempts, rng)
	case ForceSolvable:
		// A carved maze is always connected; the retry covers future edits that add walls.
		if !m.PathExists(m.Start, m.Goal) {
			m.reset()
			m.Randomize(rng)
			m.AddLoops(m.LoopProb, rng)
		}
	}

	return m, nil
}

// GenerateMany builds one maze per size, sharing every other option and the random source.
func GenerateMany(sizes []Size, opts *Options, rng Rand) ([]*Maze, error) {
	if opts == nil {
		opts = DefaultOptions()
	}
	if rng == nil {
		rng = NewRand(0)
	}

	mazes := make([]*Maze, 0, len(sizes))
	for _, size := range sizes {
		o := *opts
		o.Width, o.Height = size.Width, size.Height
		m, err := Generate(&o, rng)
		if err != nil {
			return nil, err
		}
		mazes = append(mazes, m)
	}
	return mazes, nil
}
