package validators

import "github.com/postboard/postboard-backend/types"

const userUpdateRefineMessage = "At least one field (email or name) must be provided for update"

type userCreateBody struct {
	Email *string `json:"email" validate:"required,email"`
	Name  *string `json:"name" validate:"omitempty,min=2,max=100"`
}

type userUpdateBody struct {
	Email *string `json:"email" validate:"omitempty,email"`
	Name  *string `json:"name" validate:"omitempty,min=2,max=100"`
}

func ValidateCreateUser(raw []byte) (types.UserCreate, []Issue) {
	obj, issues := decodeObject(raw)
	if issues != nil {
		return types.UserCreate{}, issues
	}

	var body userCreateBody
	fields := []field{
		{name: "email", expected: "string", dest: &body.Email},
		{name: "name", expected: "string", dest: &body.Name},
	}
	typeIssues := decodeFields(obj, fields)
	issues = collect(fields, typeIssues, structIssues(&body))
	if len(issues) > 0 {
		return types.UserCreate{}, issues
	}

	return types.UserCreate{Email: *body.Email, Name: body.Name}, nil
}

func ValidateUpdateUser(raw []byte) (types.UserUpdate, []Issue) {
	obj, issues := decodeObject(raw)
	if issues != nil {
		return types.UserUpdate{}, issues
	}

	var body userUpdateBody
	fields := []field{
		{name: "email", expected: "string", dest: &body.Email},
		{name: "name", expected: "string", dest: &body.Name},
	}
	typeIssues := decodeFields(obj, fields)
	issues = collect(fields, typeIssues, structIssues(&body))
	if len(issues) > 0 {
		return types.UserUpdate{}, issues
	}

	if body.Email == nil && body.Name == nil {
		return types.UserUpdate{}, []Issue{{Path: []any{}, Message: userUpdateRefineMessage}}
	}

	return types.UserUpdate{Email: body.Email, Name: body.Name}, nil
}
