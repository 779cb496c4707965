package validators

import "github.com/postboard/postboard-backend/types"

const postUpdateRefineMessage = "At least one field (title, content, published, or authorId) must be provided for update"

type postCreateBody struct {
	Title    *string `json:"title" validate:"required,min=1,max=60"`
	Content  *string `json:"content" validate:"omitempty,min=1,max=280"`
	AuthorID *string `json:"authorId" validate:"required,uuid"`
}

type postUpdateBody struct {
	Title     *string `json:"title" validate:"omitempty,min=1,max=60"`
	Content   *string `json:"content" validate:"omitempty,min=1,max=280"`
	Published *bool   `json:"published"`
	AuthorID  *string `json:"authorId" validate:"omitempty,uuid"`
}

// ValidateCreatePost checks a create-post JSON body.
func ValidateCreatePost(raw []byte) (types.PostCreate, []Issue) {
	obj, issues := decodeObject(raw)
	if issues != nil {
		return types.PostCreate{}, issues
	}

	var body postCreateBody
	fields := []field{
		{name: "title", expected: "string", dest: &body.Title},
		{name: "content", expected: "string", dest: &body.Content},
		{name: "authorId", expected: "string", dest: &body.AuthorID},
	}
	typeIssues := decodeFields(obj, fields)
	issues = collect(fields, typeIssues, structIssues(&body))
	if len(issues) > 0 {
		return types.PostCreate{}, issues
	}

	return types.PostCreate{
		Title:    *body.Title,
		Content:  body.Content,
		AuthorID: *body.AuthorID,
	}, nil
}

// ValidateUpdatePost checks a partial post update. At least one field must be present.
func ValidateUpdatePost(raw []byte) (types.PostUpdate, []Issue) {
	obj, issues := decodeObject(raw)
	if issues != nil {
		return types.PostUpdate{}, issues
	}

	var body postUpdateBody
	fields := []field{
		{name: "title", expected: "string", dest: &body.Title},
		{name: "content", expected: "string", dest: &body.Content},
		{name: "published", expected: "boolean", dest: &body.Published},
		{name: "authorId", expected: "string", dest: &body.AuthorID},
	}
	typeIssues := decodeFields(obj, fields)
	issues = collect(fields, typeIssues, structIssues(&body))
	if len(issues) > 0 {
		return types.PostUpdate{}, issues
	}

	if body.Title == nil && body.Content == nil && body.Published == nil && body.AuthorID == nil {
		return types.PostUpdate{}, []Issue{{Path: []any{}, Message: postUpdateRefineMessage}}
	}

	return types.PostUpdate{
		Title:     body.Title,
		Content:   body.Content,
		Published: body.Published,
		AuthorID:  body.AuthorID,
	}, nil
}
