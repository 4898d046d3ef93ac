package mazeapi

import (
	"errors"
	"net/http"

	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/beka-birhanu/vinom-maze/search"
	"github.com/beka-birhanu/vinom-maze/service"
	"github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/gin-gonic/gin"
)

var (
	ErrNilService        = errors.New("maze service is required")
	ErrUnsupportedRender = errors.New("solved mazes render as ascii only")
)

// MazeController serves maze generation and solving.
type MazeController struct {
	mazeService i.MazeService
	defaults    maze.Options
}

// NewMazeController initializes a MazeController. defaults fills the fields a request omits;
// nil means maze.DefaultOptions.
func NewMazeController(ms i.MazeService, defaults *maze.Options) (*MazeController, error) {
	if ms == nil {
		return nil, ErrNilService
	}
	if defaults == nil {
		defaults = maze.DefaultOptions()
	}

	return &MazeController{
		mazeService: ms,
		defaults:    *defaults,
	}, nil
}

// Register registers the maze routes.
func (mc *MazeController) Register(route *gin.RouterGroup) {
	mazes := route.Group("/mazes")
	{
		mazes.POST("", mc.generate)
		mazes.POST("/batch", mc.generateMany)
		mazes.POST("/solve", mc.solve)
	}
}

// generate handles single maze generation.
func (mc *MazeController) generate(ctx *gin.Context) {
	var request GenerateRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	opts, err := mc.options(&request)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	m, err := mc.mazeService.Generate(opts, request.Seed)
	if err != nil {
		ctx.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusCreated, toMazeResponse(m, request.Render))
}

// generateMany handles batch generation.
func (mc *MazeController) generateMany(ctx *gin.Context) {
	var request BatchRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	opts, err := mc.options(&request.GenerateRequest)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Each maze gets its own bottom-right goal unless one was given.
	if request.Goal == nil {
		opts.Goal = nil
	}

	mazes, err := mc.mazeService.GenerateMany(request.Sizes, opts, request.Seed)
	if err != nil {
		ctx.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	response := BatchResponse{Mazes: make([]MazeResponse, 0, len(mazes))}
	for _, m := range mazes {
		response.Mazes = append(response.Mazes, toMazeResponse(m, request.Render))
	}
	ctx.JSON(http.StatusCreated, response)
}

// solve generates a maze and searches it from its start to its goal.
func (mc *MazeController) solve(ctx *gin.Context) {
	var request SolveRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if request.Render == "unicode" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": ErrUnsupportedRender.Error()})
		return
	}

	opts, err := mc.options(&request.GenerateRequest)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	m, err := mc.mazeService.Generate(opts, request.Seed)
	if err != nil {
		ctx.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	path, metrics, err := mc.mazeService.Solve(m, request.Algorithm, m.Start, m.Goal)
	if err != nil {
		ctx.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	response := SolveResponse{
		Maze:      toMazeResponse(m, "none"),
		Algorithm: request.Algorithm,
		Path:      path,
		Metrics:   metrics,
	}
	if request.Render != "none" {
		response.Render = maze.RenderPath(m.Grid, path)
	}
	ctx.JSON(http.StatusOK, response)
}

// options merges a request with the controller defaults.
func (mc *MazeController) options(r *GenerateRequest) (*maze.Options, error) {
	solvability, err := maze.ParseSolvability(r.Solvability)
	if err != nil {
		return nil, err
	}

	opts := mc.defaults
	opts.Solvability = solvability
	if r.Width != nil {
		opts.Width = *r.Width
	}
	if r.Height != nil {
		opts.Height = *r.Height
	}
	if r.LoopProb != nil {
		opts.LoopProb = *r.LoopProb
	}
	if r.Start != nil {
		opts.Start = *r.Start
	}
	if r.Goal != nil {
		goal := *r.Goal
		opts.Goal = &goal
	}
	if r.MaxBlockAttempts > 0 {
		opts.MaxBlockAttempts = r.MaxBlockAttempts
	}
	return &opts, nil
}

func toMazeResponse(m *maze.Maze, render string) MazeResponse {
	walls := make([][]string, m.Height())
	for y := range walls {
		walls[y] = make([]string, m.Width())
		for x := range walls[y] {
			walls[y][x] = m.CellAt(x, y).Walls().String()
		}
	}

	response := MazeResponse{
		ID:          m.ID,
		Width:       m.Width(),
		Height:      m.Height(),
		Start:       m.Start,
		Goal:        m.Goal,
		Solvability: m.Solvability.String(),
		Reachable:   m.PathExists(m.Start, m.Goal),
		OpenPairs:   m.OpenPairs(),
		Walls:       walls,
	}

	switch render {
	case "", "ascii":
		response.Render = m.String()
	case "unicode":
		response.Render = maze.Unicode(m.Grid)
	}
	return response
}

// statusFor maps service errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, maze.ErrInvalidDimensions),
		errors.Is(err, maze.ErrInvalidLoopProb),
		errors.Is(err, maze.ErrInvalidPosition),
		errors.Is(err, maze.ErrInvalidSolvability),
		errors.Is(err, maze.ErrInvalidBlockAttempts),
		errors.Is(err, search.ErrUnknownAlgorithm),
		errors.Is(err, service.ErrEmptyBatch):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
