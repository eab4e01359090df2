package handlers

import (
	"net/http"
	"time"

	"maori_dictionary/internal/middleware"
	"maori_dictionary/internal/model"
	"maori_dictionary/internal/service"
	"maori_dictionary/internal/webutil"
)

type AuthHandler struct {
	authService    service.AuthService
	sessionService service.SessionService
	cookieName     string
	cookieSecure   bool
}

func NewAuthHandler(authService service.AuthService, sessionService service.SessionService, cookieName string, cookieSecure bool) *AuthHandler {
	return &AuthHandler{
		authService:    authService,
		sessionService: sessionService,
		cookieName:     cookieName,
		cookieSecure:   cookieSecure,
	}
}

var errAlreadyLoggedIn = model.NewAppError("ALREADY_LOGGED_IN", "Already logged in", "", model.ErrForbidden)

// Signup は新規ユーザーを登録します。ログイン中は拒否する。
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	if middleware.IdentityFromContext(r.Context()) != nil {
		logger.Warn("Signup rejected: already logged in")
		webutil.HandleError(w, logger, errAlreadyLoggedIn)
		return
	}

	var req model.RegisterRequest
	if err := webutil.DecodeAndValidate(r, &req); err != nil {
		logger.Warn("Invalid signup request", "error", err)
		webutil.HandleError(w, logger, err)
		return
	}

	user, err := h.authService.Register(r.Context(), &req)
	if err != nil {
		logger.Warn("Signup failed", "error", err)
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusCreated, &model.UserResponse{
		UserID:    user.UserID,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
		Role:      user.Role,
		CreatedAt: user.CreatedAt,
	}, logger)
}

// Login はセッションを作成し、トークンを cookie とレスポンスボディの両方で返します
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	if middleware.IdentityFromContext(r.Context()) != nil {
		logger.Warn("Login rejected: already logged in")
		webutil.HandleError(w, logger, errAlreadyLoggedIn)
		return
	}

	var req model.LoginRequest
	if err := webutil.DecodeAndValidate(r, &req); err != nil {
		logger.Warn("Invalid login request", "error", err)
		webutil.HandleError(w, logger, err)
		return
	}

	result, err := h.sessionService.Login(r.Context(), &req)
	if err != nil {
		webutil.HandleLoginError(w, logger, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     h.cookieName,
		Value:    result.Token,
		Path:     "/",
		Expires:  result.ExpiresAt,
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
	webutil.RespondWithJSON(w, http.StatusOK, &model.LoginResponse{
		AccessToken: result.Token,
		ExpiresAt:   result.ExpiresAt,
		Identity:    result.Identity,
	}, logger)
}

// Logout はセッションを削除し cookie を消します。未ログインでも成功を返す。
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	token := middleware.TokenFromRequest(r, h.cookieName)
	if err := h.sessionService.Logout(r.Context(), token); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     h.cookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
	webutil.RespondWithJSON(w, http.StatusOK, map[string]string{"message": "Logged out"}, logger)
}

// Me はログイン状態と teacher 権限の有無を返します
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	identity := middleware.IdentityFromContext(r.Context())
	webutil.RespondWithJSON(w, http.StatusOK, &model.MeResponse{
		LoggedIn:  identity != nil,
		IsTeacher: model.IsTeacher(identity),
		Identity:  identity,
	}, middleware.GetLogger(r.Context()))
}
