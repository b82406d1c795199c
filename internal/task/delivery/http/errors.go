package http

import (
	"errors"
	"net/http"

	"taskkeep/internal/task"
	"taskkeep/internal/task/query"
	"taskkeep/internal/task/repository"
	pkgErrors "taskkeep/pkg/errors"
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, task.ErrValidation):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, query.ErrInvalidQuery):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, task.ErrTaskNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, task.ErrAlreadyDone):
		return pkgErrors.NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, repository.ErrCorruptStore):
		return pkgErrors.NewHTTPError(http.StatusInternalServerError, "task store is corrupt; file left intact for manual recovery")
	case errors.Is(err, repository.ErrStoreWrite):
		return pkgErrors.NewHTTPError(http.StatusInternalServerError, "failed to write task store")
	default:
		return pkgErrors.NewHTTPError(http.StatusInternalServerError, "internal server error")
	}
}
