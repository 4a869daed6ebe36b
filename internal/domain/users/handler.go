package users

import (
	"net/http"

	"pawfect-match/internal/platform/httpjson"
	"pawfect-match/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, log logger.Logger) {
	r.Route("/users", func(ur chi.Router) {
		ur.Post("/register", registerHandler(svc, log))
		ur.Post("/authenticate", authenticateHandler(svc, log))
	})
}

type userResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

type authenticateResponse struct {
	Authenticated bool `json:"authenticated"`
}

// registerHandler godoc
// @Summary Registrar usuario
// @Tags users
// @Accept json
// @Produce json
// @Param payload body Credentials true "Credenciales"
// @Success 201 {object} userResponse
// @Failure 400 {object} httpjson.ErrorResponse
// @Failure 409 {object} httpjson.ErrorResponse "username ya existe"
// @Router /users/register [post]
func registerHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var c Credentials
		if err := httpjson.Decode(r, &c); err != nil {
			httpjson.BadRequest(w, "invalid json")
			return
		}

		u, err := svc.Register(r.Context(), c.Username, c.Password)
		if err != nil {
			httpjson.WriteError(w, log, err)
			return
		}
		httpjson.Write(w, http.StatusCreated, userResponse{ID: u.ID, Username: u.Username, Role: u.Role})
	}
}

// authenticateHandler godoc
// @Summary Autenticar usuario
// @Description Credenciales incorrectas no son error: responde authenticated=false.
// @Tags users
// @Accept json
// @Produce json
// @Param payload body Credentials true "Credenciales"
// @Success 200 {object} authenticateResponse
// @Router /users/authenticate [post]
func authenticateHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var c Credentials
		if err := httpjson.Decode(r, &c); err != nil {
			httpjson.BadRequest(w, "invalid json")
			return
		}

		ok, err := svc.Authenticate(r.Context(), c.Username, c.Password)
		if err != nil {
			httpjson.WriteError(w, log, err)
			return
		}
		httpjson.Write(w, http.StatusOK, authenticateResponse{Authenticated: ok})
	}
}
