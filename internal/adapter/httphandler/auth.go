package httphandler

import (
	"log/slog"
	"net/http"

	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/port"
)

// POST v1/auth/login JSON {"username","password"} (200 OK, 401 Unauthorized)
// POST v1/auth/logout (204 No content)
// GET v1/auth/session (200 OK, 204 No content)
// PATCH v1/auth/profile JSON partial user (200 OK, 401 Unauthorized)

type AuthHandler struct {
	auth port.AuthStore
}

func RegisterAuth(mux *http.ServeMux, auth port.AuthStore) {
	h := AuthHandler{auth}
	mux.HandleFunc("POST /v1/auth/login", h.Login)
	mux.HandleFunc("POST /v1/auth/logout", h.Logout)
	mux.HandleFunc("GET /v1/auth/session", h.Session)
	mux.HandleFunc("PATCH /v1/auth/profile", h.UpdateProfile)
}

func (h AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	const op = "AuthHandler.Login"
	log := slog.With("op", op)

	var creds struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if !decodeJSON(w, r, &creds) {
		return
	}

	u, err := h.auth.Login(r.Context(), creds.Username, creds.Password)
	if err != nil {
		log.Warn("login rejected", "username", creds.Username)
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toUser(u))
}

func (h AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.auth.Logout(); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Session reports the booleans the route guards need, plus the
// session identity when present.
func (h AuthHandler) Session(w http.ResponseWriter, r *http.Request) {
	u, ok := h.auth.Current()
	resp := struct {
		Authenticated bool  `json:"authenticated"`
		Admin         bool  `json:"admin"`
		User          *User `json:"user,omitempty"`
	}{
		Authenticated: ok,
		Admin:         h.auth.IsAdmin(),
	}
	if ok {
		du := toUser(u)
		resp.User = &du
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h AuthHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var patch struct {
		Email   *string  `json:"email"`
		Name    *string  `json:"name"`
		Address *Address `json:"address"`
		Phone   *string  `json:"phone"`
	}
	if !decodeJSON(w, r, &patch) {
		return
	}

	dp := domain.UserPatch{
		Email: patch.Email,
		Name:  patch.Name,
		Phone: patch.Phone,
	}
	if patch.Address != nil {
		addr := domain.Address(*patch.Address)
		dp.Address = &addr
	}

	u, err := h.auth.UpdateProfile(dp)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toUser(u))
}
