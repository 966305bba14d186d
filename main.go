package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/beka-birhanu/maze-solver-api/api"
	api_i "github.com/beka-birhanu/maze-solver-api/api/i"
	solveapi "github.com/beka-birhanu/maze-solver-api/api/solve"
	"github.com/beka-birhanu/maze-solver-api/config"
	"github.com/beka-birhanu/maze-solver-api/infrastruture/cache"
	"github.com/beka-birhanu/maze-solver-api/infrastruture/repo"
	"github.com/beka-birhanu/maze-solver-api/logger"
	"github.com/beka-birhanu/maze-solver-api/service"
	"github.com/beka-birhanu/maze-solver-api/service/i"
	goredis "github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Global variables for dependencies
var (
	mongoClient     *mongo.Client
	redisClient     *goredis.Client
	recordRepo      i.RecordRepo
	resultCache     i.ResultCache
	mazeSolver      i.MazeSolver
	solveController api_i.Controller
	router          *api.Router
	appLogger       *logger.Logger
)

func initMongo(ctx context.Context) {
	uri := fmt.Sprintf("mongodb://%s:%s@%s:%v", config.Envs.DBUser, config.Envs.DBPassword, config.Envs.DBHost, config.Envs.DBPort)

	clientOptions := options.Client().ApplyURI(uri)
	var err error
	mongoClient, err = mongo.Connect(ctx, clientOptions)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Failed to connect to MongoDB: %v", err))
		os.Exit(1)
	}
	if err = mongoClient.Ping(ctx, nil); err != nil {
		appLogger.Error(fmt.Sprintf("MongoDB ping failed: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Connected to MongoDB")
}

func initRedis(ctx context.Context) {
	redisClient = goredis.NewClient(&goredis.Options{
		Addr: fmt.Sprintf("%s:%d", config.Envs.RedisHost, config.Envs.RedisPort),
	})
	if err := redisClient.Ping(ctx).Err(); err != nil {
		appLogger.Error(fmt.Sprintf("Redis ping failed: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Connected to Redis")
}

func initRecordRepo(client *mongo.Client) {
	recordRepo = repo.NewSolveRecordRepo(client, config.Envs.DBName, "solves")
	appLogger.Info("Solve record repository initialized")
}

func initResultCache() {
	var err error
	resultCache, err = cache.NewRedisResultCache(redisClient, config.Envs.CacheTTLSeconds)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating result cache: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Result cache initialized")
}

func initMazeSolver() {
	var err error
	mazeSolver, err = service.NewSolver(resultCache, recordRepo)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating maze solver service: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Maze solver service initialized")
}

func initSolveController() {
	var err error
	solveController, err = solveapi.NewSolveController(mazeSolver)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating solve controller: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Solve controller initialized")
}

func initRouter() {
	router = api.NewRouter(api.Config{
		Addr:        fmt.Sprintf("%s:%v", config.Envs.HostIP, config.Envs.RESTPort),
		BaseURL:     "/api",
		Controllers: []api_i.Controller{solveController},
	})
	appLogger.Info("Router initialized")
}

func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel() // Ensure the context is always canceled

	// Initialize dependencies
	appLogger, _ = logger.New("APP", config.ColorGreen, os.Stdout)

	initMongo(ctx)
	defer func() {
		_ = mongoClient.Disconnect(ctx)
	}()

	initRedis(ctx)
	defer func() {
		_ = redisClient.Close()
	}()

	initRecordRepo(mongoClient)
	initResultCache()
	initMazeSolver()
	initSolveController()
	initRouter()

	// Run HTTP server
	if err := router.Run(); err != nil {
		appLogger.Error(fmt.Sprintf("Starting server: %v", err))
		os.Exit(1)
	}
}
