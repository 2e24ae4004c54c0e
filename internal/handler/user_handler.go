package handler

import (
	"errors"
	"net/http"

	"github.com/campusexchange/backend/internal/model"
	"github.com/campusexchange/backend/internal/service"
	"github.com/labstack/echo/v4"
)

type UserHandler struct {
	svc service.UserService
}

func NewUserHandler(svc service.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

type RegisterRequest struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type RegisterResponse struct {
	Message string `json:"message"`
	UserID  uint64 `json:"userId"`
}

type UserResponse struct {
	ID       uint64 `json:"id"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Message string       `json:"message"`
	User    UserResponse `json:"user"`
}

func (h *UserHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "invalid json"))
	}
	if req.FullName == "" || req.Email == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "missing fields"))
	}
	user, err := h.svc.Register(c.Request().Context(), req.FullName, req.Email, req.Password, req.Role)
	if err != nil {
		if err == service.ErrEmailTaken {
			return c.JSON(http.StatusConflict, NewErrorResponse("email_taken", "email already registered"))
		}
		var ve *service.ValidationError
		if errors.As(err, &ve) {
			return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", ve.Reason))
		}
		c.Logger().Errorf("register %s: %v", req.Email, err)
		return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", "failed to register user"))
	}
	return c.JSON(http.StatusCreated, RegisterResponse{Message: "user registered", UserID: user.ID})
}

func (h *UserHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "invalid json"))
	}
	if req.Email == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "missing credentials"))
	}
	user, err := h.svc.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		if err == service.ErrInvalidCredentials {
			return c.JSON(http.StatusUnauthorized, NewErrorResponse("invalid_credentials", "invalid email or password"))
		}
		return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", "login failed"))
	}
	return c.JSON(http.StatusOK, LoginResponse{Message: "login ok", User: toUserResponse(user)})
}

func toUserResponse(u *model.User) UserResponse {
	return UserResponse{
		ID:       u.ID,
		FullName: u.FullName,
		Email:    u.Email,
		Role:     u.Role,
	}
}
