package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gotodo/backend/internal/service"
)

// writeError maps service sentinels onto the status-code contract. Anything
// unrecognized is a datastore or crypto failure: log the detail, answer generic.
func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrDuplicateEmail):
		c.JSON(http.StatusBadRequest, gin.H{"error": "email already registered"})
	case errors.Is(err, service.ErrUnknownEmail):
		c.JSON(http.StatusBadRequest, gin.H{"error": "no account with that email"})
	case errors.Is(err, service.ErrWrongPassword):
		c.JSON(http.StatusBadRequest, gin.H{"error": "incorrect password"})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "todo not found"})
	default:
		log.Printf("request %s: %v", RequestID(c), err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server error"})
	}
}
