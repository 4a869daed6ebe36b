package adoptions

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"pawfect-match/internal/ids"
	"pawfect-match/internal/middleware"
	"pawfect-match/internal/platform/httpjson"
	"pawfect-match/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

// dateLayout: la fecha de creación se muestra como día, sin hora.
const dateLayout = "2006-01-02"

// Lister lo implementa availability.Service.
type Lister interface {
	ListAllAdoptions(ctx context.Context) ([]View, error)
	ListActiveAdoptions(ctx context.Context) ([]View, error)
}

func RegisterRoutes(r chi.Router, svc *Service, lister Lister, log logger.Logger) {
	r.Route("/adoptions", func(ar chi.Router) {
		ar.Post("/", createAdoptionHandler(svc, log))
		ar.Get("/", listAdoptionsHandler(svc, lister, log))

		// Adopciones no Completed
		ar.Get("/active", listActiveAdoptionsHandler(lister, log))

		ar.Get("/{adoptionID}", getAdoptionHandler(svc, log))
		ar.Put("/{adoptionID}/status", setStatusHandler(svc, log))
	})
}

// createAdoptionRequest: los ids llegan crudos para distinguir not_a_number de not_found.
type createAdoptionRequest struct {
	PetID     json.RawMessage `json:"pet_id" swaggertype:"integer"`
	AdopterID json.RawMessage `json:"adopter_id" swaggertype:"integer"`
}

type statusRequest struct {
	Status string `json:"status" example:"Completed"`
}

type adoptionResponse struct {
	ID        int64  `json:"id"`
	PetID     int64  `json:"pet_id"`
	AdopterID int64  `json:"adopter_id"`
	CreatedAt string `json:"created_at" example:"2024-05-01"`
	Status    string `json:"status"`
}

type viewResponse struct {
	adoptionResponse
	PetName     string `json:"pet_name"`
	AdopterName string `json:"adopter_name"`
}

// createAdoptionHandler godoc
// @Summary Crear adopción
// @Description Crea una adopción en estado Pending. Falla con 400 si la mascota o el adoptante no existen o si la mascota ya fue adoptada.
// @Tags adoptions
// @Accept json
// @Produce json
// @Param payload body createAdoptionRequest true "Mascota y adoptante"
// @Success 201 {object} adoptionResponse
// @Failure 400 {object} httpjson.ErrorResponse
// @Router /adoptions [post]
func createAdoptionHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createAdoptionRequest
		if err := httpjson.Decode(r, &req); err != nil {
			httpjson.BadRequest(w, "invalid json")
			return
		}

		a, err := svc.Create(r.Context(), CreateInput{
			PetID:     httpjson.Text(req.PetID),
			AdopterID: httpjson.Text(req.AdopterID),
		})
		if err != nil {
			httpjson.WriteError(w, log, err)
			return
		}
		httpjson.Write(w, http.StatusCreated, toAdoptionResponse(a))
	}
}

// listAdoptionsHandler godoc
// @Summary Listar adopciones
// @Description Todas las adopciones con nombre de mascota y adoptante, por id. Filtros opcionales.
// @Tags adoptions
// @Produce json
// @Param pet_id query int false "Solo de esta mascota"
// @Param adopter_id query int false "Solo de este adoptante"
// @Param status query string false "Estados separados por coma"
// @Success 200 {array} viewResponse
// @Failure 400 {object} httpjson.ErrorResponse
// @Router /adoptions [get]
func listAdoptionsHandler(svc *Service, lister Lister, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("pet_id") == "" && q.Get("adopter_id") == "" && q.Get("status") == "" {
			items, err := lister.ListAllAdoptions(r.Context())
			if err != nil {
				httpjson.WriteError(w, log, err)
				return
			}
			httpjson.Write(w, http.StatusOK, toViewResponses(items))
			return
		}

		var filter ListFilter
		var err error
		if raw := q.Get("pet_id"); raw != "" {
			if filter.PetID, err = ids.Parse(raw); err != nil {
				httpjson.BadRequest(w, "invalid pet_id")
				return
			}
		}
		if raw := q.Get("adopter_id"); raw != "" {
			if filter.AdopterID, err = ids.Parse(raw); err != nil {
				httpjson.BadRequest(w, "invalid adopter_id")
				return
			}
		}
		for _, raw := range strings.Split(q.Get("status"), ",") {
			if strings.TrimSpace(raw) == "" {
				continue
			}
			st, err := ParseStatus(raw)
			if err != nil {
				httpjson.WriteError(w, log, err)
				return
			}
			filter.Statuses = append(filter.Statuses, st)
		}

		items, err := svc.List(r.Context(), filter)
		if err != nil {
			httpjson.WriteError(w, log, err)
			return
		}
		httpjson.Write(w, http.StatusOK, toViewResponses(items))
	}
}

// listActiveAdoptionsHandler godoc
// @Summary Adopciones activas
// @Description Adopciones cuyo estado no es Completed, por id.
// @Tags adoptions
// @Produce json
// @Success 200 {array} viewResponse
// @Router /adoptions/active [get]
func listActiveAdoptionsHandler(lister Lister, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := lister.ListActiveAdoptions(r.Context())
		if err != nil {
			httpjson.WriteError(w, log, err)
			return
		}
		httpjson.Write(w, http.StatusOK, toViewResponses(items))
	}
}

// getAdoptionHandler godoc
// @Summary Obtener adopción
// @Tags adoptions
// @Produce json
// @Param adoptionID path int true "ID de la adopción"
// @Success 200 {object} adoptionResponse
// @Failure 404 {object} httpjson.ErrorResponse
// @Router /adoptions/{adoptionID} [get]
func getAdoptionHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := ids.Parse(chi.URLParam(r, "adoptionID"))
		if err != nil {
			httpjson.BadRequest(w, "invalid adoption id")
			return
		}

		a, err := svc.GetByID(r.Context(), id)
		if err != nil {
			httpjson.WriteError(w, log, err)
			return
		}
		httpjson.Write(w, http.StatusOK, toAdoptionResponse(a))
	}
}

// setStatusHandler godoc
// @Summary Cambiar estado
// @Description Pending, Completed o Cancelled (sin importar mayúsculas). No hay restricciones de transición.
// @Tags adoptions
// @Accept json
// @Produce json
// @Param adoptionID path int true "ID de la adopción"
// @Param payload body statusRequest true "Nuevo estado"
// @Success 200 {object} adoptionResponse
// @Failure 400 {object} httpjson.ErrorResponse
// @Failure 404 {object} httpjson.ErrorResponse
// @Router /adoptions/{adoptionID}/status [put]
func setStatusHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := ids.Parse(chi.URLParam(r, "adoptionID"))
		if err != nil {
			httpjson.BadRequest(w, "invalid adoption id")
			return
		}

		var req statusRequest
		if err := httpjson.Decode(r, &req); err != nil {
			httpjson.BadRequest(w, "invalid json")
			return
		}

		st, err := ParseStatus(req.Status)
		if err != nil {
			httpjson.WriteError(w, log, err)
			return
		}

		a, err := svc.SetStatus(r.Context(), id, st)
		if err != nil {
			httpjson.WriteError(w, log, err)
			return
		}
		if c, ok := middleware.GetClaims(r.Context()); ok {
			log.Info("adoption status set by user", map[string]any{"adoption_id": id, "status": string(st), "username": c.Username})
		}
		httpjson.Write(w, http.StatusOK, toAdoptionResponse(a))
	}
}

func toAdoptionResponse(a Adoption) adoptionResponse {
	return adoptionResponse{
		ID:        a.ID,
		PetID:     a.PetID,
		AdopterID: a.AdopterID,
		CreatedAt: a.CreatedAt.UTC().Format(dateLayout),
		Status:    string(a.Status),
	}
}

func toViewResponses(items []View) []viewResponse {
	out := make([]viewResponse, 0, len(items))
	for _, v := range items {
		out = append(out, viewResponse{
			adoptionResponse: toAdoptionResponse(v.Adoption),
			PetName:          v.PetName,
			AdopterName:      v.AdopterName,
		})
	}
	return out
}
