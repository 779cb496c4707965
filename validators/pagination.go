package validators

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// Upper bounds for the query parameters. MaxPage keeps (page-1)*limit far from overflowing int.
const (
	MaxPage  = 2147483647
	MaxLimit = 100
)

var paginationMax = map[string]int{"page": MaxPage, "limit": MaxLimit}

// PaginationInput holds the page and limit query parameters. Nil means the parameter was
// not supplied; defaults are the caller's concern. The max tags mirror MaxPage and MaxLimit.
type PaginationInput struct {
	Page  *int `json:"page" validate:"omitempty,min=1,max=2147483647"`
	Limit *int `json:"limit" validate:"omitempty,min=1,max=100"`
}

// ValidatePagination parses page and limit from query values. Values must be base-10
// integers; page lies in 1..MaxPage and limit in 1..MaxLimit.
func ValidatePagination(query url.Values) (PaginationInput, []Issue) {
	var input PaginationInput
	fields := []field{
		{name: "page", dest: &input.Page},
		{name: "limit", dest: &input.Limit},
	}

	typeIssues := make(map[string]Issue)
	for _, f := range fields {
		if !query.Has(f.name) {
			continue
		}
		raw := strings.TrimSpace(query.Get(f.name))
		n, err := strconv.Atoi(raw)
		if err != nil {
			typeIssues[f.name] = Issue{Path: []any{f.name}, Message: coercionMessage(f.name, raw, err)}
			continue
		}
		*(f.dest.(**int)) = &n
	}

	issues := collect(fields, typeIssues, structIssues(&input))
	if len(issues) > 0 {
		return PaginationInput{}, issues
	}
	return input, nil
}

// coercionMessage explains why raw is not an int. Integers outside the int range get the
// same bound message the range rules produce.
func coercionMessage(name, raw string, err error) string {
	if errors.Is(err, strconv.ErrRange) {
		if strings.HasPrefix(raw, "-") {
			return "Number must be greater than or equal to 1"
		}
		return fmt.Sprintf("Number must be less than or equal to %d", paginationMax[name])
	}
	if _, err := strconv.ParseFloat(raw, 64); err == nil {
		return "Expected integer, received float"
	}
	return "Expected number, received nan"
}
