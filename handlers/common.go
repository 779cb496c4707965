package handlers

import (
	"errors"
	"net/url"

	"github.com/gin-gonic/gin"
	apperrors "github.com/postboard/postboard-backend/errors"
	"github.com/postboard/postboard-backend/internal/store"
	"github.com/postboard/postboard-backend/types"
	"github.com/postboard/postboard-backend/validators"
)

// fail hands err to the ErrorHandler middleware. The handler must return right after.
func fail(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}

// notFoundOr maps a missing entity to a NotFoundError and passes anything else through.
func notFoundOr(err error, entity string) error {
	if errors.Is(err, store.ErrNotFound) {
		return apperrors.NotFound(entity)
	}
	return err
}

func invalid(message string, issues []validators.Issue) *apperrors.AppError {
	return apperrors.ValidationFailed(message, validators.TransformIssues(issues))
}

// readBody returns the raw request body. A failed read is reported as an empty body so
// the validator rejects it as malformed.
func readBody(c *gin.Context) []byte {
	raw, err := c.GetRawData()
	if err != nil {
		return nil
	}
	return raw
}

// pageWindow validates page and limit and applies the defaults.
func pageWindow(query url.Values) (page, limit int, err error) {
	input, issues := validators.ValidatePagination(query)
	if len(issues) > 0 {
		return 0, 0, invalid("Invalid pagination parameters", issues)
	}

	page, limit = types.DefaultPage, types.DefaultLimit
	if input.Page != nil {
		page = *input.Page
	}
	if input.Limit != nil {
		limit = *input.Limit
	}
	return page, limit, nil
}
