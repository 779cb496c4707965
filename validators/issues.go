package validators

import (
	"fmt"
	"strings"

	apperrors "github.com/postboard/postboard-backend/errors"
)

// Issue is a single field-level validation failure. Path segments are strings (object keys)
// or ints (array indices); an empty path refers to the whole payload.
type Issue struct {
	Path    []any
	Message string
}

// Key joins the path segments with ".".
func (i Issue) Key() string {
	parts := make([]string, len(i.Path))
	for idx, seg := range i.Path {
		parts[idx] = fmt.Sprint(seg)
	}
	return strings.Join(parts, ".")
}

// TransformIssues groups issue messages by field path, keeping first-occurrence key order
// and per-key message order.
func TransformIssues(issues []Issue) *apperrors.Details {
	details := apperrors.NewDetails()
	for _, issue := range issues {
		details.Add(issue.Key(), issue.Message)
	}
	return details
}
