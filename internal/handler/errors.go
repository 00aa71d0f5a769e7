package handler

import (
	"errors"
	"net/http"

	"github.com/R-Gerard/Roguelike-sub001/internal/domain"
)

// mapServiceErrorToUserMessage maps domain errors to HTTP status codes and
// messages
func mapServiceErrorToUserMessage(err error) (int, string) {
	switch {
	case err == nil:
		return http.StatusInternalServerError, ErrMsgUnknownError
	case errors.Is(err, domain.ErrTemplateNotFound):
		return http.StatusNotFound, ErrMsgTemplateNotFound
	case errors.Is(err, domain.ErrUnknownRegion):
		return http.StatusNotFound, ErrMsgRegionNotFound
	case errors.Is(err, domain.ErrInvalidArgument):
		return http.StatusBadRequest, ErrMsgInvalidRequest
	default:
		return http.StatusInternalServerError, ErrMsgServerError
	}
}
