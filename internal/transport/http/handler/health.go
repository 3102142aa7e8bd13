package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"accountsvc/internal/bootstrap"
)

const maxCollectionsListed = 10

type DiagnosticsHandler struct {
	app *bootstrap.App
}

func NewDiagnosticsHandler(app *bootstrap.App) *DiagnosticsHandler {
	return &DiagnosticsHandler{app: app}
}

// Check is a best-effort liveness probe. It always answers 200: every
// store interaction is wrapped so failures come back as status strings
// in the body, never as HTTP errors. Configuration is reported as
// set/not-set flags, never as the actual values.
func (h *DiagnosticsHandler) Check(c *gin.Context) {
	resp := gin.H{
		"backend":           "running",
		"database":          "not available",
		"database_url":      setFlag(h.app.Config.Mongo.URI != ""),
		"database_name":     setFlag(h.app.Config.Mongo.Database != ""),
		"connection_status": "Not Connected",
		"collections":       []string{},
	}

	if h.app.Store != nil {
		resp["connection_status"] = "Connected"

		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		names, err := h.app.Store.ListCollectionNames(ctx)
		if err != nil {
			resp["database"] = "connected but error: " + truncate(err.Error(), 50)
		} else {
			if len(names) > maxCollectionsListed {
				names = names[:maxCollectionsListed]
			}
			resp["database"] = "connected"
			resp["collections"] = names
		}
	}

	c.JSON(http.StatusOK, resp)
}

func setFlag(set bool) string {
	if set {
		return "set"
	}
	return "not set"
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
