package user

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/thirteen-hero/myCats-server/internal/token"
	"github.com/thirteen-hero/myCats-server/internal/web"
)

// Handler exposes HTTP endpoints for user operations (register / login /
// token validation).
type Handler struct {
	svc    *Service
	logger *zap.SugaredLogger
}

func NewHandler(svc *Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{svc: svc, logger: logger}
}

// RegisterRequest request body for the register endpoint.
type RegisterRequest struct {
	Username        string `json:"username"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
	Email           string `json:"email"`
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Debugw("invalid register payload", "err", err)
		web.RespondError(w, web.NewError(http.StatusBadRequest, "invalid payload"))
		return
	}
	created, err := h.svc.Register(r.Context(), req.Username, req.Password, req.ConfirmPassword, req.Email)
	if err != nil {
		h.logger.Debugw("register failed", "username", req.Username, "err", err)
		web.RespondError(w, registerError(err))
		return
	}
	web.RespondJSON(w, http.StatusOK, created)
}

// LoginRequest login payload.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Debugw("invalid login payload", "err", err)
		web.RespondError(w, web.NewError(http.StatusBadRequest, "invalid payload"))
		return
	}
	tok, err := h.svc.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		h.logger.Debugw("login failed", "username", req.Username, "err", err)
		if errors.Is(err, ErrBadCredentials) {
			web.RespondError(w, web.NewError(http.StatusUnauthorized, ErrBadCredentials.Error()))
			return
		}
		web.RespondError(w, err)
		return
	}
	web.RespondJSON(w, http.StatusOK, tok)
}

func (h *Handler) Validate(w http.ResponseWriter, r *http.Request) {
	u, err := h.svc.ValidateToken(r.Context(), r.Header.Get("Authorization"))
	if err != nil {
		h.logger.Debugw("token validation failed", "err", err)
		web.RespondError(w, validateError(err))
		return
	}
	web.RespondJSON(w, http.StatusOK, u)
}

func registerError(err error) error {
	var ve *ValidationError
	switch {
	case errors.As(err, &ve):
		return web.NewFieldError(ve.Error(), ve.Fields)
	case errors.Is(err, ErrDuplicateUsername):
		return web.NewError(http.StatusUnprocessableEntity, ErrDuplicateUsername.Error())
	default:
		return err
	}
}

// validateError maps every token validation failure to 401. The messages stay
// distinct per failure even though the status is uniform.
func validateError(err error) error {
	switch {
	case errors.Is(err, ErrMissingHeader),
		errors.Is(err, ErrMissingToken),
		errors.Is(err, token.ErrInvalidToken),
		errors.Is(err, ErrUserNotFound):
		return web.NewError(http.StatusUnauthorized, err.Error())
	default:
		return err
	}
}
