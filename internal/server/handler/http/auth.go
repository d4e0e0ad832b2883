package http

import (
	"encoding/json"
	"net/http"

	"github.com/olehsv/videolanding/internal/auth"
)

const msgBadCredentials = "Невірний логін або пароль"

// AuthHandler handles back-office login and logout.
type AuthHandler struct {
	// Sessions issues and invalidates admin session tokens.
	Sessions *auth.Sessions
}

// loginRequest is the JSON payload for admin login.
type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login handles POST /api/login. On success it sets the session cookie
// the catalog-mutation endpoints require.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: msgBadRequest})
		return
	}

	token, ok := h.Sessions.Login(req.Username, req.Password)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: msgBadCredentials})
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     auth.CookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Logout handles POST /api/logout. It invalidates the session and expires
// the cookie. Logging out without a session is not an error.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(auth.CookieName); err == nil {
		h.Sessions.Logout(cookie.Value)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     auth.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
