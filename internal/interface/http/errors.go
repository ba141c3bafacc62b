package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/wishdrop/wishdrop-backend/pkg/apperr"
	"github.com/wishdrop/wishdrop-backend/pkg/response"
)

// writeErr translates service errors into the response envelope. Business
// errors carry their own status and code; anything else becomes a 500.
func writeErr(c *gin.Context, logger *logrus.Logger, err error) {
	var ae *apperr.Error
	if errors.As(err, &ae) {
		response.Error(c, ae.Status, string(ae.Code), ae.Message, nil)
		return
	}
	if logger != nil {
		logger.WithError(err).WithField("path", c.FullPath()).Error("request failed")
	}
	response.Error(c, http.StatusInternalServerError, "internal", "internal server error", nil)
}
