package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/storefront/cartsync/internal/domain/cart"
	"github.com/storefront/cartsync/internal/interfaces/http/dto"
)

// BaseHandler provides common handler utilities
type BaseHandler struct{}

// Success sends a success response
func (h *BaseHandler) Success(c *gin.Context, data any) {
	c.JSON(http.StatusOK, dto.NewSuccessResponse(data))
}

// Error sends an error response with the appropriate status code
func (h *BaseHandler) Error(c *gin.Context, statusCode int, code, message string) {
	c.JSON(statusCode, dto.NewErrorResponse(code, message))
}

// BadRequest sends a 400 bad request response
func (h *BaseHandler) BadRequest(c *gin.Context, message string) {
	h.Error(c, http.StatusBadRequest, dto.ErrCodeBadRequest, message)
}

// Unauthorized sends a 401 unauthorized response
func (h *BaseHandler) Unauthorized(c *gin.Context, message string) {
	h.Error(c, http.StatusUnauthorized, dto.ErrCodeUnauthorized, message)
}

// InternalError sends a 500 internal server error response
func (h *BaseHandler) InternalError(c *gin.Context, message string) {
	h.Error(c, http.StatusInternalServerError, dto.ErrCodeInternal, message)
}

// HandleError converts service errors to HTTP responses. Validation errors
// carry a domain code; remote-boundary sentinels map to upstream codes. The
// 401 from the remote cart service surfaces here for foreground actions
// (background suppression happens inside the services, so a 401 reaching a
// handler means the action itself needs a fresh session).
func (h *BaseHandler) HandleError(c *gin.Context, err error) {
	if err == nil {
		return
	}

	var domainErr *cart.Error
	if errors.As(err, &domainErr) {
		code := dto.NormalizeErrorCode(domainErr.Code)
		h.Error(c, dto.GetHTTPStatus(code), code, domainErr.Message)
		return
	}

	switch {
	case errors.Is(err, cart.ErrRemoteUnauthenticated):
		h.Error(c, http.StatusUnauthorized, dto.ErrCodeUnauthorized, "Session is no longer valid")
	case errors.Is(err, cart.ErrRemoteUnavailable):
		h.Error(c, http.StatusBadGateway, dto.ErrCodeUpstreamUnavailable, "Cart service is unavailable")
	case errors.Is(err, cart.ErrRemoteOperationRefused):
		h.Error(c, http.StatusUnprocessableEntity, dto.ErrCodeUpstreamRefused, err.Error())
	case errors.Is(err, cart.ErrRemoteRequestFailed), errors.Is(err, cart.ErrRemoteInvalidResponse):
		h.Error(c, http.StatusBadGateway, dto.ErrCodeUpstreamFailed, "Cart service request failed")
	default:
		h.InternalError(c, "An unexpected error occurred")
	}
}
