package mazeapi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/beka-birhanu/vinom-maze/service"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Info(string)    {}
func (nopLogger) Warning(string) {}
func (nopLogger) Error(string)   {}

func newEngine(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	defaults := &maze.Options{Width: 6, Height: 5, LoopProb: 0, MaxBlockAttempts: 200}
	svc, err := service.NewMazes(defaults, nopLogger{})
	require.NoError(t, err)
	controller, err := NewMazeController(svc, defaults)
	require.NoError(t, err)

	engine := gin.New()
	controller.Register(engine.Group("/api/v1"))
	return engine
}

func post(t *testing.T, engine *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	return rec
}

func TestNewMazeController(t *testing.T) {
	_, err := NewMazeController(nil, nil)
	assert.ErrorIs(t, err, ErrNilService)
}

func TestGenerateEndpoint(t *testing.T) {
	engine := newEngine(t)

	t.Run("Defaults", func(t *testing.T) {
		rec := post(t, engine, "/api/v1/mazes", gin.H{"seed": 4})
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

		var resp MazeResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, 6, resp.Width)
		assert.Equal(t, 5, resp.Height)
		assert.Equal(t, maze.CellPosition{X: 5, Y: 4}, resp.Goal)
		assert.Equal(t, "solvable", resp.Solvability)
		assert.True(t, resp.Reachable)
		assert.Equal(t, 29, resp.OpenPairs)
		require.Len(t, resp.Walls, 5)
		assert.Len(t, resp.Walls[0], 6)
		assert.Contains(t, resp.Render, "+---+")
	})

	t.Run("Seeded requests match", func(t *testing.T) {
		body := gin.H{"width": 8, "height": 8, "loop_prob": 0.1, "seed": 31}
		first := post(t, engine, "/api/v1/mazes", body)
		second := post(t, engine, "/api/v1/mazes", body)

		var a, b MazeResponse
		require.NoError(t, json.Unmarshal(first.Body.Bytes(), &a))
		require.NoError(t, json.Unmarshal(second.Body.Bytes(), &b))
		assert.Equal(t, a.Walls, b.Walls)
		assert.NotEqual(t, a.ID, b.ID)
	})

	t.Run("Unsolvable with unicode render", func(t *testing.T) {
		rec := post(t, engine, "/api/v1/mazes", gin.H{
			"width": 4, "height": 4, "solvability": "unsolvable", "render": "unicode", "seed": 2,
		})
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

		var resp MazeResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.False(t, resp.Reachable)
		assert.Contains(t, resp.Render, "┌")
	})

	t.Run("Bad requests", func(t *testing.T) {
		bodies := []gin.H{
			{"width": 0},
			{"width": 500},
			{"loop_prob": 2},
			{"solvability": "sometimes"},
			{"goal": gin.H{"x": 30, "y": 1}},
		}
		for _, body := range bodies {
			rec := post(t, engine, "/api/v1/mazes", body)
			assert.Equal(t, http.StatusBadRequest, rec.Code, "%v: %s", body, rec.Body.String())
		}
	})
}

func TestBatchEndpoint(t *testing.T) {
	engine := newEngine(t)

	rec := post(t, engine, "/api/v1/mazes/batch", gin.H{
		"sizes": []gin.H{{"width": 2, "height": 3}, {"width": 5, "height": 5}},
		"seed":  8,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var resp BatchResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Mazes, 2)
	assert.Equal(t, maze.CellPosition{X: 1, Y: 2}, resp.Mazes[0].Goal)
	assert.Equal(t, maze.CellPosition{X: 4, Y: 4}, resp.Mazes[1].Goal)
	assert.Equal(t, 24, resp.Mazes[1].OpenPairs)

	rec = post(t, engine, "/api/v1/mazes/batch", gin.H{"sizes": []gin.H{}})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSolveEndpoint(t *testing.T) {
	engine := newEngine(t)

	for _, algorithm := range []string{"bfs", "dfs"} {
		t.Run(algorithm, func(t *testing.T) {
			rec := post(t, engine, "/api/v1/mazes/solve", gin.H{
				"width": 5, "height": 5, "seed": 13, "algorithm": algorithm,
			})
			require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

			var resp SolveResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, algorithm, resp.Algorithm)
			assert.True(t, resp.Metrics.Found)
			require.NotEmpty(t, resp.Path)
			assert.Equal(t, maze.CellPosition{X: 0, Y: 0}, resp.Path[0])
			assert.Equal(t, maze.CellPosition{X: 4, Y: 4}, resp.Path[len(resp.Path)-1])
			assert.Equal(t, len(resp.Path)-1, resp.Metrics.PathLength)
			assert.Contains(t, resp.Render, " * ")
			assert.Empty(t, resp.Maze.Render)
		})
	}

	t.Run("Unknown algorithm", func(t *testing.T) {
		rec := post(t, engine, "/api/v1/mazes/solve", gin.H{"algorithm": "mdp"})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Unicode render is rejected", func(t *testing.T) {
		rec := post(t, engine, "/api/v1/mazes/solve", gin.H{"algorithm": "bfs", "render": "unicode", "seed": 3})
		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), ErrUnsupportedRender.Error())

		rec = post(t, engine, "/api/v1/mazes/solve", gin.H{"algorithm": "bfs", "render": "none", "seed": 3})
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		var resp SolveResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Empty(t, resp.Render)
	})

	t.Run("Unsolvable maze has no path", func(t *testing.T) {
		rec := post(t, engine, "/api/v1/mazes/solve", gin.H{
			"width": 3, "height": 3, "solvability": "unsolvable", "algorithm": "bfs", "seed": 1,
		})
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		var resp SolveResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.False(t, resp.Metrics.Found)
		assert.Empty(t, resp.Path)
	})
}
