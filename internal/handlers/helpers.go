package handlers

import (
	"errors"
	"net/http"

	"cancha_reservas_web/internal/clients"
	"cancha_reservas_web/pkg/utils"

	"github.com/gin-gonic/gin"
)

// respondServiceError renders an upstream failure as an inline page error,
// preserving the service's detail text when it sent one. Transport failures
// get a generic fallback; the user retries manually, nothing retries here.
func respondServiceError(c *gin.Context, err error, fallback string) {
	if se, ok := clients.AsServiceError(err); ok {
		utils.RespondWithError(c, utils.NewAPIError(se.StatusCode, codeForStatus(se.StatusCode), fallback, se.Detail))
		return
	}
	if errors.Is(err, clients.ErrServiceUnreachable) {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadGateway, utils.ErrCodeUpstreamError, fallback, ""))
		return
	}
	utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, fallback, ""))
}

func codeForStatus(status int) string {
	switch status {
	case http.StatusBadRequest:
		return utils.ErrCodeBadRequest
	case http.StatusUnauthorized:
		return utils.ErrCodeUnauthorized
	case http.StatusForbidden:
		return utils.ErrCodeForbidden
	case http.StatusNotFound:
		return utils.ErrCodeNotFound
	case http.StatusConflict:
		return utils.ErrCodeConflict
	default:
		return utils.ErrCodeUpstreamError
	}
}

// pathID parses a numeric path parameter, answering 400 itself on failure.
func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := utils.StrToInt64(c.Param(name))
	if err != nil || id <= 0 {
		utils.RespondValidationFailed(c, "invalid "+name)
		return 0, false
	}
	return id, true
}
