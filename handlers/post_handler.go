package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	apperrors "github.com/postboard/postboard-backend/errors"
	"github.com/postboard/postboard-backend/types"
	"github.com/postboard/postboard-backend/validators"
)

const (
	postEntity         = "Post"
	invalidPostData    = "Invalid post data"
	invalidPostID      = "Invalid post ID"
	postCreatedMessage = "Post created successfully"
	postUpdatedMessage = "Post updated successfully"
)

type PostHandler struct {
	postService PostServiceInterface
}

func NewPostHandler(postService PostServiceInterface) *PostHandler {
	return &PostHandler{postService: postService}
}

// parsePostID returns the id path parameter when it is a positive base-10 integer.
func parsePostID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 1 {
		fail(c, apperrors.ValidationFailed(invalidPostID, nil))
		return 0, false
	}
	return id, true
}

// ListPosts godoc
// @Summary List posts
// @Description Returns a page of posts, newest first
// @Tags posts
// @Produce json
// @Param page query int false "Page number" minimum(1) default(1)
// @Param limit query int false "Page size" minimum(1) maximum(100) default(10)
// @Success 200 {object} types.SuccessResponse{data=[]types.Post} "Page of posts"
// @Failure 400 {object} errors.ErrorResponse "Invalid pagination parameters"
// @Failure 500 {object} errors.ErrorResponse "Database error"
// @Router /posts [get]
func (h *PostHandler) ListPosts(c *gin.Context) {
	page, limit, err := pageWindow(c.Request.URL.Query())
	if err != nil {
		fail(c, err)
		return
	}

	posts, total, err := h.postService.List(c.Request.Context(), types.Offset(page, limit), limit)
	if err != nil {
		fail(c, err)
		return
	}
	if posts == nil {
		posts = []*types.Post{}
	}

	c.JSON(http.StatusOK, types.SuccessResponse{
		Success:    true,
		Data:       posts,
		Pagination: types.NewPaginationInfo(page, limit, total),
	})
}

// CreatePost godoc
// @Summary Create a post
// @Tags posts
// @Accept json
// @Produce json
// @Param request body types.PostCreate true "Post to create"
// @Success 201 {object} types.SuccessResponse{data=types.Post} "Created post"
// @Failure 400 {object} errors.ErrorResponse "Invalid post data"
// @Failure 500 {object} errors.ErrorResponse "Database error, e.g. unknown author"
// @Router /posts [post]
func (h *PostHandler) CreatePost(c *gin.Context) {
	input, issues := validators.ValidateCreatePost(readBody(c))
	if len(issues) > 0 {
		fail(c, invalid(invalidPostData, issues))
		return
	}

	post, err := h.postService.Create(c.Request.Context(), input)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, types.SuccessResponse{
		Success: true,
		Data:    post,
		Message: postCreatedMessage,
	})
}

// GetPost godoc
// @Summary Get a post
// @Tags posts
// @Produce json
// @Param id path int true "Post ID" minimum(1)
// @Success 200 {object} types.SuccessResponse{data=types.Post} "Post"
// @Failure 400 {object} errors.ErrorResponse "Invalid post ID"
// @Failure 404 {object} errors.ErrorResponse "Post not found"
// @Failure 500 {object} errors.ErrorResponse "Database error"
// @Router /posts/{id} [get]
func (h *PostHandler) GetPost(c *gin.Context) {
	id, ok := parsePostID(c)
	if !ok {
		return
	}

	post, err := h.postService.GetByID(c.Request.Context(), id)
	if err != nil {
		fail(c, notFoundOr(err, postEntity))
		return
	}

	c.JSON(http.StatusOK, types.SuccessResponse{Success: true, Data: post})
}

// UpdatePost godoc
// @Summary Update a post
// @Description Updates the supplied fields. At least one of title, content, published or authorId is required.
// @Tags posts
// @Accept json
// @Produce json
// @Param id path int true "Post ID" minimum(1)
// @Param request body types.PostUpdate true "Fields to change"
// @Success 200 {object} types.SuccessResponse{data=types.Post} "Updated post"
// @Failure 400 {object} errors.ErrorResponse "Invalid post ID or data"
// @Failure 404 {object} errors.ErrorResponse "Post not found"
// @Failure 500 {object} errors.ErrorResponse "Database error"
// @Router /posts/{id} [put]
func (h *PostHandler) UpdatePost(c *gin.Context) {
	id, ok := parsePostID(c)
	if !ok {
		return
	}

	update, issues := validators.ValidateUpdatePost(readBody(c))
	if len(issues) > 0 {
		fail(c, invalid(invalidPostData, issues))
		return
	}

	ctx := c.Request.Context()
	if _, err := h.postService.GetByID(ctx, id); err != nil {
		fail(c, notFoundOr(err, postEntity))
		return
	}

	post, err := h.postService.Update(ctx, id, update)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, types.SuccessResponse{
		Success: true,
		Data:    post,
		Message: postUpdatedMessage,
	})
}

// DeletePost godoc
// @Summary Delete a post
// @Tags posts
// @Param id path int true "Post ID" minimum(1)
// @Success 204 "Post deleted successfully"
// @Failure 400 {object} errors.ErrorResponse "Invalid post ID"
// @Failure 404 {object} errors.ErrorResponse "Post not found"
// @Failure 500 {object} errors.ErrorResponse "Database error"
// @Router /posts/{id} [delete]
func (h *PostHandler) DeletePost(c *gin.Context) {
	id, ok := parsePostID(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	if _, err := h.postService.GetByID(ctx, id); err != nil {
		fail(c, notFoundOr(err, postEntity))
		return
	}

	if _, err := h.postService.Delete(ctx, id); err != nil {
		fail(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
