package api

import (
	"github.com/beka-birhanu/maze-solver-api/api/i"
	"github.com/gin-gonic/gin"
)

// Router manages the HTTP server and its dependencies.
type Router struct {
	addr        string
	baseURL     string
	controllers []i.Controller
}

// Config holds configuration settings for creating a new Router instance.
type Config struct {
	Addr        string // Address to listen on
	BaseURL     string // Base URL for API routes
	Controllers []i.Controller
}

// NewRouter creates a new Router instance with the given configuration.
func NewRouter(config Config) *Router {
	return &Router{
		addr:        config.Addr,
		baseURL:     config.BaseURL,
		controllers: config.Controllers,
	}
}

// Run starts the HTTP server and sets up routes.
//
// Routes are grouped and managed under the base URL, versioned under /v1.
func (r *Router) Run() error {
	gin.ForceConsoleColor()
	router := gin.Default()

	// Setting up routes under baseURL
	api := router.Group(r.baseURL)

	{
		routes := api.Group("/v1")
		{
			for _, c := range r.controllers {
				c.Register(routes)
			}
		}
	}

	return router.Run(r.addr)
}
