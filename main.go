package main

import (
	"fmt"
	"os"

	"github.com/beka-birhanu/kruskal-maze/api"
	api_i "github.com/beka-birhanu/kruskal-maze/api/i"
	mazeapi "github.com/beka-birhanu/kruskal-maze/api/maze"
	"github.com/beka-birhanu/kruskal-maze/config"
	"github.com/beka-birhanu/kruskal-maze/generator"
	"github.com/beka-birhanu/kruskal-maze/logger"
	"github.com/beka-birhanu/kruskal-maze/service"
	"github.com/beka-birhanu/kruskal-maze/service/i"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Global variables for dependencies
var (
	appLogger      *logrus.Entry
	mazeGenerator  *generator.Generator
	mazeSession    i.MazeSession
	mazeController api_i.Controller
	router         *api.Router
)

func newLogger(component string) *logrus.Entry {
	l, err := logger.New(component, config.Envs.LogLevel, config.Envs.LogColors, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "[APP] [FATAL] creating %s logger: %v\n", component, err)
		os.Exit(1)
	}
	return l
}

func initGenerator() {
	if config.Envs.MazeSeed != 0 {
		mazeGenerator = generator.New(generator.WithSeed(config.Envs.MazeSeed))
		appLogger.WithField("seed", config.Envs.MazeSeed).Warn("Maze generator is seeded; mazes are reproducible")
		return
	}
	mazeGenerator = generator.New()
	appLogger.Info("Maze generator initialized")
}

func initMazeSession() {
	var err error
	mazeSession, err = service.NewMazeSession(&service.Config{
		Generator: mazeGenerator,
		Limits: service.Limits{
			MinDimension: config.Envs.MinMazeDimension,
			MaxDimension: config.Envs.MaxMazeDimension,
		},
		CycleDivisor: config.Envs.CycleDivisor,
		Logger:       newLogger("MAZE-SESSION"),
	})
	if err != nil {
		appLogger.Errorf("Creating maze session: %v", err)
		os.Exit(1)
	}
	appLogger.Info("Maze session initialized")
}

func initMazeController() {
	var err error
	mazeController, err = mazeapi.NewMazeController(mazeapi.Config{
		Session:            mazeSession,
		GenerationInterval: config.Envs.GenerationFrameInterval,
		SearchInterval:     config.Envs.SearchFrameInterval,
		Logger:             newLogger("REPLAY"),
	})
	if err != nil {
		appLogger.Errorf("Creating maze controller: %v", err)
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
		Logger:      newLogger("HTTP"),
	})
	appLogger.Info("Router initialized")
}

func main() {
	// Initialize dependencies
	appLogger = newLogger("APP")

	initGenerator()
	initMazeSession()
	initMazeController()
	initRouter()

	// Run HTTP server
	if err := router.Run(); err != nil {
		appLogger.Errorf("Starting server: %v", err)
		os.Exit(1)
	}
}
