package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	apperrors "github.com/postboard/postboard-backend/errors"
	"github.com/postboard/postboard-backend/types"
	"github.com/postboard/postboard-backend/validators"
)

const (
	userEntity         = "User"
	invalidUserData    = "Invalid user data"
	invalidUserID      = "Invalid user ID"
	userCreatedMessage = "User created successfully"
	userUpdatedMessage = "User updated successfully"
)

type UserHandler struct {
	userService UserServiceInterface
}

func NewUserHandler(userService UserServiceInterface) *UserHandler {
	return &UserHandler{userService: userService}
}

// parseUserID returns the id path parameter when it is a UUID.
func parseUserID(c *gin.Context) (string, bool) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		fail(c, apperrors.ValidationFailed(invalidUserID, nil))
		return "", false
	}
	return id, true
}

// ListUsers godoc
// @Summary List users
// @Description Returns a page of users, newest first
// @Tags users
// @Produce json
// @Param page query int false "Page number" minimum(1) default(1)
// @Param limit query int false "Page size" minimum(1) maximum(100) default(10)
// @Success 200 {object} types.SuccessResponse{data=[]types.User} "Page of users"
// @Failure 400 {object} errors.ErrorResponse "Invalid pagination parameters"
// @Failure 500 {object} errors.ErrorResponse "Database error"
// @Router /users [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	page, limit, err := pageWindow(c.Request.URL.Query())
	if err != nil {
		fail(c, err)
		return
	}

	users, total, err := h.userService.List(c.Request.Context(), types.Offset(page, limit), limit)
	if err != nil {
		fail(c, err)
		return
	}
	if users == nil {
		users = []*types.User{}
	}

	c.JSON(http.StatusOK, types.SuccessResponse{
		Success:    true,
		Data:       users,
		Pagination: types.NewPaginationInfo(page, limit, total),
	})
}

// CreateUser godoc
// @Summary Create a user
// @Tags users
// @Accept json
// @Produce json
// @Param request body types.UserCreate true "User to create"
// @Success 201 {object} types.SuccessResponse{data=types.User} "Created user"
// @Failure 400 {object} errors.ErrorResponse "Invalid user data"
// @Failure 500 {object} errors.ErrorResponse "Database error, e.g. duplicate email"
// @Router /users [post]
func (h *UserHandler) CreateUser(c *gin.Context) {
	input, issues := validators.ValidateCreateUser(readBody(c))
	if len(issues) > 0 {
		fail(c, invalid(invalidUserData, issues))
		return
	}

	user, err := h.userService.Create(c.Request.Context(), input)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, types.SuccessResponse{
		Success: true,
		Data:    user,
		Message: userCreatedMessage,
	})
}

// GetUser godoc
// @Summary Get a user
// @Tags users
// @Produce json
// @Param id path string true "User ID" format(uuid)
// @Success 200 {object} types.SuccessResponse{data=types.User} "User"
// @Failure 400 {object} errors.ErrorResponse "Invalid user ID"
// @Failure 404 {object} errors.ErrorResponse "User not found"
// @Failure 500 {object} errors.ErrorResponse "Database error"
// @Router /users/{id} [get]
func (h *UserHandler) GetUser(c *gin.Context) {
	id, ok := parseUserID(c)
	if !ok {
		return
	}

	user, err := h.userService.GetByID(c.Request.Context(), id)
	if err != nil {
		fail(c, notFoundOr(err, userEntity))
		return
	}

	c.JSON(http.StatusOK, types.SuccessResponse{Success: true, Data: user})
}

// UpdateUser godoc
// @Summary Update a user
// @Description Updates the supplied fields. At least one of email or name is required.
// @Tags users
// @Accept json
// @Produce json
// @Param id path string true "User ID" format(uuid)
// @Param request body types.UserUpdate true "Fields to change"
// @Success 200 {object} types.SuccessResponse{data=types.User} "Updated user"
// @Failure 400 {object} errors.ErrorResponse "Invalid user ID or data"
// @Failure 404 {object} errors.ErrorResponse "User not found"
// @Failure 500 {object} errors.ErrorResponse "Database error"
// @Router /users/{id} [put]
func (h *UserHandler) UpdateUser(c *gin.Context) {
	id, ok := parseUserID(c)
	if !ok {
		return
	}

	update, issues := validators.ValidateUpdateUser(readBody(c))
	if len(issues) > 0 {
		fail(c, invalid(invalidUserData, issues))
		return
	}

	ctx := c.Request.Context()
	if _, err := h.userService.GetByID(ctx, id); err != nil {
		fail(c, notFoundOr(err, userEntity))
		return
	}

	user, err := h.userService.Update(ctx, id, update)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, types.SuccessResponse{
		Success: true,
		Data:    user,
		Message: userUpdatedMessage,
	})
}

// DeleteUser godoc
// @Summary Delete a user
// @Description Deletes the user and, by cascade, their posts
// @Tags users
// @Param id path string true "User ID" format(uuid)
// @Success 204 "User deleted successfully"
// @Failure 400 {object} errors.ErrorResponse "Invalid user ID"
// @Failure 404 {object} errors.ErrorResponse "User not found"
// @Failure 500 {object} errors.ErrorResponse "Database error"
// @Router /users/{id} [delete]
func (h *UserHandler) DeleteUser(c *gin.Context) {
	id, ok := parseUserID(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	if _, err := h.userService.GetByID(ctx, id); err != nil {
		fail(c, notFoundOr(err, userEntity))
		return
	}

	if _, err := h.userService.Delete(ctx, id); err != nil {
		fail(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
