// Package mazeapi provides the request and response shapes of the maze endpoints.
package mazeapi

import (
	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/beka-birhanu/vinom-maze/search"
	"github.com/google/uuid"
)

// GenerateRequest describes a maze to generate. Omitted fields take the server defaults.
type GenerateRequest struct {
	Width            *int               `json:"width" binding:"omitempty,min=1,max=200"`
	Height           *int               `json:"height" binding:"omitempty,min=1,max=200"`
	LoopProb         *float64           `json:"loop_prob" binding:"omitempty,min=0,max=1"`
	Solvability      string             `json:"solvability" binding:"omitempty,oneof=solvable unsolvable unconstrained"`
	Start            *maze.CellPosition `json:"start"`
	Goal             *maze.CellPosition `json:"goal"`
	MaxBlockAttempts int                `json:"max_block_attempts" binding:"omitempty,min=1,max=10000"`
	Seed             int64              `json:"seed"`
	Render           string             `json:"render" binding:"omitempty,oneof=ascii unicode none"`
}

// BatchRequest describes several mazes sharing every parameter but their size.
type BatchRequest struct {
	GenerateRequest
	Sizes []maze.Size `json:"sizes" binding:"required,min=1,max=50"`
}

// SolveRequest generates a maze and solves it from its start to its goal.
// The path overlay is ASCII only, so Render accepts "ascii" or "none".
type SolveRequest struct {
	GenerateRequest
	Algorithm string `json:"algorithm" binding:"required,oneof=bfs dfs"`
}

// MazeResponse represents a generated maze.
type MazeResponse struct {
	ID          uuid.UUID         `json:"id"`
	Width       int               `json:"width"`
	Height      int               `json:"height"`
	Start       maze.CellPosition `json:"start"`
	Goal        maze.CellPosition `json:"goal"`
	Solvability string            `json:"solvability"`
	Reachable   bool              `json:"reachable"`
	OpenPairs   int               `json:"open_pairs"`
	Walls       [][]string        `json:"walls"` // Walls lists the standing sides ("ensw" letters) per row and column.
	Render      string            `json:"render,omitempty"`
}

// BatchResponse represents a batch of generated mazes.
type BatchResponse struct {
	Mazes []MazeResponse `json:"mazes"`
}

// SolveResponse represents a solved maze.
type SolveResponse struct {
	Maze      MazeResponse        `json:"maze"`
	Algorithm string              `json:"algorithm"`
	Path      []maze.CellPosition `json:"path"`
	Metrics   search.Metrics      `json:"metrics"`
	Render    string              `json:"render,omitempty"`
}
