package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nmapp/checkbackend/auth/middleware"
	"github.com/nmapp/checkbackend/repository"
)

type Handler struct {
	store repository.Store
}

func New(store repository.Store) *Handler {
	return &Handler{store: store}
}

// serverError logs the underlying failure with the request id and returns a
// generic body. Raw store errors never reach the caller.
func serverError(c *gin.Context, msg string, err error) {
	log.Printf("[%s] %s: %v", c.GetString(middleware.RequestIDKey), msg, err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
}
