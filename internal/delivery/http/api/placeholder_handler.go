package api

import (
	"net/http"

	"github.com/studevo/Studevo/internal/delivery/http/response"

	"github.com/gin-gonic/gin"
)

// Dashboard routes the frontend already calls; they answer 501 on every method.
var placeholderPaths = []string{
	"/applications/recent",
	"/events/upcoming",
	"/applications",
}

func NewPlaceholderHandler(api *gin.RouterGroup) {
	for _, path := range placeholderPaths {
		api.Any(path, notImplemented)
	}
}

func notImplemented(c *gin.Context) {
	response.Error(c, http.StatusNotImplemented, "Not implemented")
}
