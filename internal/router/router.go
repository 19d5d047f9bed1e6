package router

import (
	"github.com/fasthttp/router"
	"github.com/valyala/fasthttp"

	apiHandler "github.com/taskboard/backend/api/handler"
)

type Handlers struct {
	Auth     *apiHandler.AuthHandler
	Task     *apiHandler.TaskHandler
	Comment  *apiHandler.CommentHandler
	Activity *apiHandler.ActivityHandler
	Health   *apiHandler.HealthHandler
}

func New(handlers Handlers, authMiddleware func(fasthttp.RequestHandler) fasthttp.RequestHandler) *router.Router {
	r := router.New()

	r.GET("/health", handlers.Health.Check)

	// Public auth routes
	r.POST("/api/v1/register", handlers.Auth.Register)
	r.POST("/api/v1/login", handlers.Auth.Login)
	r.POST("/api/v1/refresh", handlers.Auth.Refresh)
	r.POST("/api/v1/logout", handlers.Auth.Logout)

	// Tasks
	r.GET("/api/v1/tasks", authMiddleware(handlers.Task.List))
	r.POST("/api/v1/tasks", authMiddleware(handlers.Task.Create))
	r.GET("/api/v1/tasks/{id}", authMiddleware(handlers.Task.Get))
	r.PUT("/api/v1/tasks/{id}", authMiddleware(handlers.Task.Update))
	r.PATCH("/api/v1/tasks/{id}", authMiddleware(handlers.Task.Update))
	r.DELETE("/api/v1/tasks/{id}", authMiddleware(handlers.Task.Delete))

	// Comments
	r.GET("/api/v1/tasks/{id}/comments", authMiddleware(handlers.Comment.ListForTask))
	r.POST("/api/v1/tasks/{id}/comments", authMiddleware(handlers.Comment.Create))
	r.GET("/api/v1/comments/{id}", authMiddleware(handlers.Comment.Get))
	r.PUT("/api/v1/comments/{id}", authMiddleware(handlers.Comment.Update))
	r.DELETE("/api/v1/comments/{id}", authMiddleware(handlers.Comment.Delete))

	// Activity log
	r.GET("/api/v1/activities", authMiddleware(handlers.Activity.List))

	return r
}
