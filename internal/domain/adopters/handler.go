package adopters

import (
	"context"
	"net/http"

	"pawfect-match/internal/ids"
	"pawfect-match/internal/platform/httpjson"
	"pawfect-match/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

type AvailableLister interface {
	ListAvailableAdopters(ctx context.Context) ([]Adopter, error)
}

func RegisterRoutes(r chi.Router, svc *Service, avail AvailableLister, log logger.Logger) {
	r.Route("/adopters", func(ar chi.Router) {
		ar.Post("/", createAdopterHandler(svc, log))
		ar.Get("/", listAdoptersHandler(svc, log))
		ar.Get("/available", listAvailableAdoptersHandler(avail, log))

		ar.Get("/{adopterID}", getAdopterHandler(svc, log))
		ar.Put("/{adopterID}", updateAdopterHandler(svc, log))
		ar.Delete("/{adopterID}", deleteAdopterHandler(svc, log))
	})
}

type adopterResponse struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone"`
}

type deleteResponse struct {
	RowsAffected int64 `json:"rows_affected"`
}

// createAdopterHandler godoc
// @Summary Registrar adoptante
// @Tags adopters
// @Accept json
// @Produce json
// @Param payload body Input true "Datos del adoptante"
// @Success 201 {object} adopterResponse
// @Failure 400 {object} httpjson.ErrorResponse
// @Router /adopters [post]
func createAdopterHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in Input
		if err := httpjson.Decode(r, &in); err != nil {
			httpjson.BadRequest(w, "invalid json")
			return
		}

		a, err := svc.Create(r.Context(), in)
		if err != nil {
			httpjson.WriteError(w, log, err)
			return
		}
		httpjson.Write(w, http.StatusCreated, toAdopterResponse(a))
	}
}

// listAdoptersHandler godoc
// @Summary Listar adoptantes
// @Tags adopters
// @Produce json
// @Success 200 {array} adopterResponse
// @Router /adopters [get]
func listAdoptersHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context(), ListFilter{})
		if err != nil {
			httpjson.WriteError(w, log, err)
			return
		}
		httpjson.Write(w, http.StatusOK, toAdopterResponses(items))
	}
}

// listAvailableAdoptersHandler godoc
// @Summary Adoptantes disponibles
// @Description Adoptantes sin adopciones Completed.
// @Tags adopters
// @Produce json
// @Success 200 {array} adopterResponse
// @Router /adopters/available [get]
func listAvailableAdoptersHandler(avail AvailableLister, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := avail.ListAvailableAdopters(r.Context())
		if err != nil {
			httpjson.WriteError(w, log, err)
			return
		}
		httpjson.Write(w, http.StatusOK, toAdopterResponses(items))
	}
}

// getAdopterHandler godoc
// @Summary Obtener adoptante
// @Tags adopters
// @Produce json
// @Param adopterID path int true "ID del adoptante"
// @Success 200 {object} adopterResponse
// @Failure 404 {object} httpjson.ErrorResponse
// @Router /adopters/{adopterID} [get]
func getAdopterHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := ids.Parse(chi.URLParam(r, "adopterID"))
		if err != nil {
			httpjson.BadRequest(w, "invalid adopter id")
			return
		}

		a, err := svc.GetByID(r.Context(), id)
		if err != nil {
			httpjson.WriteError(w, log, err)
			return
		}
		httpjson.Write(w, http.StatusOK, toAdopterResponse(a))
	}
}

// updateAdopterHandler godoc
// @Summary Actualizar adoptante
// @Tags adopters
// @Accept json
// @Produce json
// @Param adopterID path int true "ID del adoptante"
// @Param payload body Input true "Datos del adoptante"
// @Success 200 {object} adopterResponse
// @Failure 400 {object} httpjson.ErrorResponse
// @Failure 404 {object} httpjson.ErrorResponse
// @Router /adopters/{adopterID} [put]
func updateAdopterHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := ids.Parse(chi.URLParam(r, "adopterID"))
		if err != nil {
			httpjson.BadRequest(w, "invalid adopter id")
			return
		}

		var in Input
		if err := httpjson.Decode(r, &in); err != nil {
			httpjson.BadRequest(w, "invalid json")
			return
		}

		a, err := svc.Update(r.Context(), id, in)
		if err != nil {
			httpjson.WriteError(w, log, err)
			return
		}
		httpjson.Write(w, http.StatusOK, toAdopterResponse(a))
	}
}

// deleteAdopterHandler godoc
// @Summary Borrar adoptante
// @Tags adopters
// @Produce json
// @Param adopterID path int true "ID del adoptante"
// @Success 200 {object} deleteResponse
// @Failure 409 {object} httpjson.ErrorResponse
// @Router /adopters/{adopterID} [delete]
func deleteAdopterHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := ids.Parse(chi.URLParam(r, "adopterID"))
		if err != nil {
			httpjson.BadRequest(w, "invalid adopter id")
			return
		}

		n, err := svc.Delete(r.Context(), id)
		if err != nil {
			httpjson.WriteError(w, log, err)
			return
		}
		httpjson.Write(w, http.StatusOK, deleteResponse{RowsAffected: n})
	}
}

func toAdopterResponse(a Adopter) adopterResponse {
	return adopterResponse{ID: a.ID, FirstName: a.FirstName, LastName: a.LastName, Phone: a.Phone}
}

func toAdopterResponses(items []Adopter) []adopterResponse {
	out := make([]adopterResponse, 0, len(items))
	for _, a := range items {
		out = append(out, toAdopterResponse(a))
	}
	return out
}
