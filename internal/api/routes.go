package api

import (
	"log"
	"net/http"
	"sort"

	customerrors "github.com/axellelanca/minicrud/internal/errors"
	"github.com/axellelanca/minicrud/internal/services"
	"github.com/gin-gonic/gin"
)

// Titles reported by the root and docs endpoints.
const (
	ShortenerTitle = "URL-Shorter"
	TodoTitle      = "To-Do-Server"
)

// SetupShortenerRoutes configures the URL service on router.
// baseURL prefixes every short_url returned by POST /shorten.
func SetupShortenerRoutes(router *gin.Engine, linkService *services.LinkService, baseURL string) {
	setupCommon(router, ShortenerTitle, "URL-Shorter Server API")

	router.POST("/shorten", ShortenHandler(linkService, baseURL))
	router.GET("/stats/:short_id", StatsHandler(linkService))

	// Catch-all at root level: must stay compatible with the static routes above.
	router.GET("/:short_id", RedirectHandler(linkService))
}

// SetupTodoRoutes configures the to-do service on router.
func SetupTodoRoutes(router *gin.Engine, taskService *services.TaskService) {
	setupCommon(router, TodoTitle, "To-Do Server API")

	tasks := router.Group("/tasks")
	{
		tasks.POST("", CreateTaskHandler(taskService))
		tasks.GET("", ListTasksHandler(taskService))
		tasks.GET("/:id", GetTaskHandler(taskService))
		tasks.PUT("/:id", UpdateTaskHandler(taskService))
		tasks.DELETE("/:id", DeleteTaskHandler(taskService))
	}
}

func setupCommon(router *gin.Engine, title, message string) {
	router.HandleMethodNotAllowed = true
	router.NoRoute(func(c *gin.Context) {
		abortWithDetail(c, http.StatusNotFound, "Not Found")
	})
	router.NoMethod(func(c *gin.Context) {
		abortWithDetail(c, http.StatusMethodNotAllowed, "Method Not Allowed")
	})

	router.GET("/", RootHandler(message))
	router.GET("/docs", DocsHandler(router, title))
}

// RootHandler answers GET / with the service banner.
func RootHandler(message string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": message, "docs": "/docs"})
	}
}

// RouteDoc describes one registered route in the docs listing.
type RouteDoc struct {
	Method string `json:"method"`
	Path   string `json:"path"`
}

// DocsHandler lists every route registered on router.
func DocsHandler(router *gin.Engine, title string) gin.HandlerFunc {
	return func(c *gin.Context) {
		infos := router.Routes()
		routes := make([]RouteDoc, 0, len(infos))
		for _, info := range infos {
			routes = append(routes, RouteDoc{Method: info.Method, Path: info.Path})
		}
		sort.Slice(routes, func(i, j int) bool {
			if routes[i].Path != routes[j].Path {
				return routes[i].Path < routes[j].Path
			}
			return routes[i].Method < routes[j].Method
		})
		c.JSON(http.StatusOK, gin.H{"title": title, "routes": routes})
	}
}

func abortWithDetail(c *gin.Context, status int, detail string) {
	c.AbortWithStatusJSON(status, gin.H{"detail": detail})
}

// abortWithValidationError rejects a request whose body or path failed binding.
func abortWithValidationError(c *gin.Context, err error) {
	abortWithDetail(c, http.StatusUnprocessableEntity, err.Error())
}

// abortWithError maps a service error to its response. Not-found conditions
// use the endpoint's message; anything else is logged and reported as a 500.
func abortWithError(c *gin.Context, err error, notFoundDetail string) {
	if customerrors.IsNotFound(err) {
		detailErr := customerrors.NotFound(notFoundDetail)
		abortWithDetail(c, detailErr.Status, detailErr.Detail)
		return
	}
	abortWithInternal(c, err)
}

// abortWithInternal logs err and answers 500 without exposing it.
func abortWithInternal(c *gin.Context, err error) {
	log.Printf("Error handling %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	abortWithDetail(c, http.StatusInternalServerError, "Internal Server Error")
}
