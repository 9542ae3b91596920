package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/gotodo/backend/internal/service"
)

// NewRouter assembles the full route table. Register/login and the health
// endpoints are open; everything under /todos sits behind the auth gate.
func NewRouter(auth *AuthHandler, todo *TodoHandler, authSvc *service.AuthService, allowedOrigins []string) *gin.Engine {
	r := gin.Default()
	r.Use(RequestIDMiddleware())
	r.Use(CORSMiddleware(allowedOrigins))

	r.GET("/", Root)
	r.GET("/ping", Ping)
	r.GET("/openapi.json", OpenAPIDoc)

	r.POST("/register", auth.Register)
	r.POST("/login", auth.Login)

	todos := r.Group("/todos")
	todos.Use(AuthMiddleware(authSvc))
	{
		todos.POST("", todo.Create)
		todos.GET("", todo.List)
		todos.PUT("/:id", todo.Update)
		todos.DELETE("/:id", todo.Delete)
	}

	return r
}
