package http

import (
	"log/slog"
	"net/http"

	"github.com/hrflo/hrflo-backend/internal/domain/auth"
	"github.com/hrflo/hrflo-backend/internal/domain/user"
	"github.com/hrflo/hrflo-backend/internal/handler/http/response"
)

type UserHandler interface {
	CreateUser(w http.ResponseWriter, r *http.Request)
}

type userHandlerImpl struct {
	authService auth.AuthService
}

func NewUserHandler(authService auth.AuthService) UserHandler {
	return &userHandlerImpl{authService: authService}
}

// CreateUser implements UserHandler. HR creates accounts with any role.
func (h *userHandlerImpl) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req user.CreateUserRequest
	if !decodeJSON(w, r, "CreateUser", &req) {
		return
	}

	created, err := h.authService.CreateUser(r.Context(), req)
	if err != nil {
		slog.Error("CreateUser service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "User created successfully", created)
}
