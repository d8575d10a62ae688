package server

import (
	"github.com/gin-gonic/gin"

	apperrors "github.com/kbukum/transcript-gateway/errors"
)

// RespondWithError writes err in the shared JSON error shape. An
// *apperrors.AppError anywhere in the chain decides the status and body;
// anything else becomes a 500.
func RespondWithError(c *gin.Context, err error) {
	appErr := apperrors.From(err)
	c.JSON(appErr.HTTPStatus, appErr.ToResponse())
}
