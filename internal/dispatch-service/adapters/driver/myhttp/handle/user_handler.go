package handle

import (
	"encoding/json"
	"errors"
	"net/http"

	"cargo-dispatch/internal/dispatch-service/core/domain/dto"
	"cargo-dispatch/internal/dispatch-service/core/myerrors"
	"cargo-dispatch/internal/dispatch-service/core/ports"
	"cargo-dispatch/internal/mylogger"
)

type UserHandler struct {
	authService ports.IAuthService
	mylog       mylogger.Logger
}

func NewUserHandler(authService ports.IAuthService, mylog mylogger.Logger) *UserHandler {
	return &UserHandler{
		authService: authService,
		mylog:       mylog,
	}
}

func (uh *UserHandler) Register() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req dto.UserRequest

		mylog := uh.mylog.Action("Register")

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			mylog.Warn("Failed to parse registration body")
			jsonError(w, http.StatusBadRequest, errors.New("failed to parse JSON"))
			return
		}

		res, err := uh.authService.Register(r.Context(), req)
		if err != nil {
			switch {
			case errors.Is(err, myerrors.ErrInvalidLogin), errors.Is(err, myerrors.ErrInvalidPassword):
				jsonError(w, http.StatusBadRequest, err)
			case errors.Is(err, myerrors.ErrLoginTaken):
				jsonError(w, http.StatusConflict, err)
			default:
				jsonError(w, http.StatusInternalServerError, err)
			}
			return
		}

		jsonResponse(w, http.StatusCreated, res)
	}
}

func (uh *UserHandler) Login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req dto.UserRequest

		mylog := uh.mylog.Action("Login")

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			mylog.Warn("Failed to parse auth body")
			jsonError(w, http.StatusBadRequest, errors.New("failed to parse JSON"))
			return
		}

		res, err := uh.authService.Login(r.Context(), req)
		if err != nil {
			if errors.Is(err, myerrors.ErrInvalidCredentials) {
				jsonError(w, http.StatusUnauthorized, err)
				return
			}
			jsonError(w, http.StatusInternalServerError, err)
			return
		}

		jsonResponse(w, http.StatusOK, res)
	}
}
