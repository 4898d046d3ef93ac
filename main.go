package main

import (
	"fmt"
	"os"

	"github.com/beka-birhanu/vinom-maze/api"
	api_i "github.com/beka-birhanu/vinom-maze/api/i"
	mazeapi "github.com/beka-birhanu/vinom-maze/api/maze"
	"github.com/beka-birhanu/vinom-maze/config"
	logger "github.com/beka-birhanu/vinom-maze/infrastruture/log"
	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/beka-birhanu/vinom-maze/service"
	"github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/gin-gonic/gin"
)

// Global variables for dependencies
var (
	mazeDefaults   *maze.Options
	mazeService    i.MazeService
	mazeController api_i.Controller
	router         *api.Router
	appLogger      i.Logger
)

func initMazeDefaults() {
	mazeDefaults = &maze.Options{
		Width:            config.Envs.MazeWidth,
		Height:           config.Envs.MazeHeight,
		LoopProb:         config.Envs.LoopProb,
		Solvability:      maze.ForceSolvable,
		MaxBlockAttempts: config.Envs.MaxBlockAttempts,
	}
	appLogger.Info(fmt.Sprintf("Maze defaults: %dx%d loop=%.2f block_attempts=%d",
		mazeDefaults.Width, mazeDefaults.Height, mazeDefaults.LoopProb, mazeDefaults.MaxBlockAttempts))
}

func initMazeService() {
	mazeLogger, err := logger.New("MAZE", config.ColorCyan, os.Stdout)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating maze logger: %v", err))
		os.Exit(1)
	}

	mazeService, err = service.NewMazes(mazeDefaults, mazeLogger)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating maze service: %v", err))
		os.Exit(1)
	}

	appLogger.Info("Maze service initialized")
}

func initMazeController() {
	var err error
	mazeController, err = mazeapi.NewMazeController(mazeService, mazeDefaults)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating maze controller: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Maze controller initialized")
}

func initRouter() {
	gin.SetMode(config.Envs.GinMode)
	router = api.NewRouter(api.Config{
		Addr:        fmt.Sprintf("%s:%v", config.Envs.HostIP, config.Envs.RESTPort),
		BaseURL:     "/api",
		Controllers: []api_i.Controller{mazeController},
	})
	appLogger.Info("Router initialized")
}

func main() {
	var err error
	appLogger, err = logger.New("APP", config.ColorGreen, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "creating app logger: %v\n", err)
		os.Exit(1)
	}

	initMazeDefaults()
	initMazeService()
	initMazeController()
	initRouter()

	// Run HTTP server
	if err := router.Run(); err != nil {
		appLogger.Error(fmt.Sprintf("Starting server: %v", err))
		os.Exit(1)
	}
}
