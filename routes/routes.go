package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/nmapp/checkbackend/auth/middleware"
	"github.com/nmapp/checkbackend/handlers"
)

// Register wires the API surface. Paths keep the trailing slashes of the
// original contract.
func Register(r *gin.Engine, h *handlers.Handler) {
	r.POST("/register/", h.Register)
	r.POST("/login/", h.Login)
	r.POST("/token/refresh/", h.Refresh)
	r.GET("/me/", middleware.AuthRequired(), h.Me)

	history := r.Group("/history")
	history.POST("/record/", h.RecordHistory)
	history.GET("/list/", h.ListHistory)
	history.DELETE("/clear/", h.ClearHistory)
	history.DELETE("/delete/:id/", h.DeleteHistoryRecord)
}
