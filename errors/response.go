package errors

const unknownErrorMessage = "Unknown error"

// ErrorResponse is the JSON envelope written for every failed request.
type ErrorResponse struct {
	Success bool     `json:"success"`
	Message string   `json:"message"`
	Details *Details `json:"details,omitempty"`
	Code    string   `json:"code,omitempty"`
}

// ToHTTPResponse renders err into the error envelope. The returned status is always the
// caller-supplied one; use StatusFor to pick it from the error kind.
func ToHTTPResponse(err error, status int) (int, ErrorResponse) {
	resp := ErrorResponse{Success: false, Message: unknownErrorMessage}

	appErr, ok := As(err)
	if !ok {
		return status, resp
	}

	switch appErr.Type {
	case ValidationError:
		resp.Message = appErr.Message
		if appErr.Details.Len() > 0 {
			resp.Details = appErr.Details
		}
	case NotFoundError:
		resp.Message = appErr.Message
	case DatabaseError:
		resp.Message = appErr.Message
		resp.Code = appErr.Code
	}

	return status, resp
}
