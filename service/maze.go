package service

import (
	"errors"
	"fmt"

	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/beka-birhanu/vinom-maze/search"
	"github.com/beka-birhanu/vinom-maze/service/i"
)

var (
	ErrNilLogger  = errors.New("logger is required")
	ErrEmptyBatch = errors.New("no maze sizes given")
)

var _ i.MazeService = &Mazes{}

// Mazes generates and solves mazes, logging every call.
type Mazes struct {
	defaults *maze.Options
	logger   i.Logger
}

// NewMazes creates a maze service. defaults is used when a call passes nil options;
// a nil defaults means maze.DefaultOptions.
func NewMazes(defaults *maze.Options, logger i.Logger) (*Mazes, error) {
	if logger == nil {
		return nil, ErrNilLogger
	}
	if defaults == nil {
		defaults = maze.DefaultOptions()
	}

	return &Mazes{
		defaults: defaults,
		logger:   logger,
	}, nil
}

// Generate implements i.MazeService.
func (s *Mazes) Generate(opts *maze.Options, seed int64) (*maze.Maze, error) {
	opts = s.options(opts)
	m, err := maze.Generate(opts, maze.NewRand(seed))
	if err != nil {
		s.logger.Warning(fmt.Sprintf("Rejected maze request %dx%d: %s", opts.Width, opts.Height, err))
		return nil, fmt.Errorf("generating maze: %w", err)
	}

	s.logMaze(m)
	return m, nil
}

// GenerateMany implements i.MazeService.
func (s *Mazes) GenerateMany(sizes []maze.Size, opts *maze.Options, seed int64) ([]*maze.Maze, error) {
	if len(sizes) == 0 {
		return nil, ErrEmptyBatch
	}

	mazes, err := maze.GenerateMany(sizes, s.options(opts), maze.NewRand(seed))
	if err != nil {
		s.logger.Warning(fmt.Sprintf("Rejected batch of %d mazes: %s", len(sizes), err))
		return nil, fmt.Errorf("generating mazes: %w", err)
	}

	for _, m := range mazes {
		s.logMaze(m)
	}
	return mazes, nil
}

// Solve implements i.MazeService.
func (s *Mazes) Solve(m *maze.Maze, algorithm string, start, goal maze.CellPosition) ([]maze.CellPosition, search.Metrics, error) {
	solver, err := search.ByName(algorithm)
	if err != nil {
		return nil, search.Metrics{}, fmt.Errorf("solving maze %s with %q: %w", m.ID, algorithm, err)
	}

	path, metrics := solver.Solve(m, start, goal)
	if metrics.Found {
		s.logger.Info(fmt.Sprintf("Solved maze %s with %s: length=%d expanded=%d generated=%d frontier=%d elapsed=%s",
			m.ID, solver.Name(), metrics.PathLength, metrics.NodesExpanded, metrics.NodesGenerated, metrics.MaxFrontier, metrics.Elapsed))
	} else {
		s.logger.Info(fmt.Sprintf("No path in maze %s with %s: expanded=%d elapsed=%s",
			m.ID, solver.Name(), metrics.NodesExpanded, metrics.Elapsed))
	}
	return path, metrics, nil
}

func (s *Mazes) options(opts *maze.Options) *maze.Options {
	if opts == nil {
		o := *s.defaults
		return &o
	}
	return opts
}

func (s *Mazes) logMaze(m *maze.Maze) {
	msg := fmt.Sprintf("Generated maze %s: %dx%d loop=%.2f mode=%s open_pairs=%d",
		m.ID, m.Width(), m.Height(), m.LoopProb, m.Solvability, m.OpenPairs())
	if m.Solvability == maze.ForceUnsolvable && !m.Blocked {
		s.logger.Warning(msg + " (could not cut every path)")
		return
	}
	s.logger.Info(msg)
}
