package pets

import (
	"context"
	"encoding/json"
	"net/http"

	"pawfect-match/internal/ids"
	"pawfect-match/internal/platform/httpjson"
	"pawfect-match/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

// AvailableLister evita importar availability (que importa este paquete).
type AvailableLister interface {
	ListAvailablePets(ctx context.Context) ([]Pet, error)
}

func RegisterRoutes(r chi.Router, svc *Service, avail AvailableLister, log logger.Logger) {
	r.Route("/pets", func(pr chi.Router) {
		pr.Post("/", createPetHandler(svc, log))
		pr.Get("/", listPetsHandler(svc, log))

		// Mascotas sin adopción Completed
		pr.Get("/available", listAvailablePetsHandler(avail, log))

		pr.Get("/{petID}", getPetHandler(svc, log))
		pr.Put("/{petID}", updatePetHandler(svc, log))
		pr.Delete("/{petID}", deletePetHandler(svc, log))
	})
}

// petRequest: age llega crudo para que la validación distinga vacío / no numérico / negativo.
type petRequest struct {
	Name    string          `json:"name"`
	Species string          `json:"species"`
	Age     json.RawMessage `json:"age" swaggertype:"integer"`
}

type petResponse struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Species string `json:"species"`
	Age     int    `json:"age"`
}

type deleteResponse struct {
	RowsAffected int64 `json:"rows_affected"`
}

func (req petRequest) input() Input {
	return Input{
		Name:    req.Name,
		Species: req.Species,
		Age:     httpjson.Text(req.Age),
	}
}

// createPetHandler godoc
// @Summary Registrar mascota
// @Description Crea una mascota. name y species no pueden ser vacíos; age debe ser un entero >= 0.
// @Tags pets
// @Accept json
// @Produce json
// @Param payload body petRequest true "Datos de la mascota"
// @Success 201 {object} petResponse
// @Failure 400 {object} httpjson.ErrorResponse "invalid json / validación por campo"
// @Router /pets [post]
func createPetHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req petRequest
		if err := httpjson.Decode(r, &req); err != nil {
			httpjson.BadRequest(w, "invalid json")
			return
		}

		p, err := svc.Create(r.Context(), req.input())
		if err != nil {
			httpjson.WriteError(w, log, err)
			return
		}

		httpjson.Write(w, http.StatusCreated, toPetResponse(p))
	}
}

// listPetsHandler godoc
// @Summary Listar mascotas
// @Description Todas las mascotas (incluye adoptadas), ordenadas por id. Filtro opcional por especie.
// @Tags pets
// @Produce json
// @Param species query string false "Especie exacta (case-insensitive)"
// @Success 200 {array} petResponse
// @Router /pets [get]
func listPetsHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context(), ListFilter{
			Species: r.URL.Query().Get("species"),
		})
		if err != nil {
			httpjson.WriteError(w, log, err)
			return
		}
		httpjson.Write(w, http.StatusOK, toPetResponses(items))
	}
}

// listAvailablePetsHandler godoc
// @Summary Mascotas disponibles
// @Description Mascotas sin ninguna adopción en estado Completed, ordenadas por id.
// @Tags pets
// @Produce json
// @Success 200 {array} petResponse
// @Router /pets/available [get]
func listAvailablePetsHandler(avail AvailableLister, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := avail.ListAvailablePets(r.Context())
		if err != nil {
			httpjson.WriteError(w, log, err)
			return
		}
		httpjson.Write(w, http.StatusOK, toPetResponses(items))
	}
}

// getPetHandler godoc
// @Summary Obtener mascota
// @Tags pets
// @Produce json
// @Param petID path int true "ID de la mascota"
// @Success 200 {object} petResponse
// @Failure 404 {object} httpjson.ErrorResponse
// @Router /pets/{petID} [get]
func getPetHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := ids.Parse(chi.URLParam(r, "petID"))
		if err != nil {
			httpjson.BadRequest(w, "invalid pet id")
			return
		}

		p, err := svc.GetByID(r.Context(), id)
		if err != nil {
			httpjson.WriteError(w, log, err)
			return
		}
		httpjson.Write(w, http.StatusOK, toPetResponse(p))
	}
}

// updatePetHandler godoc
// @Summary Actualizar mascota
// @Description Reemplaza todos los campos mutables (name, species, age). Todo o nada.
// @Tags pets
// @Accept json
// @Produce json
// @Param petID path int true "ID de la mascota"
// @Param payload body petRequest true "Datos de la mascota"
// @Success 200 {object} petResponse
// @Failure 400 {object} httpjson.ErrorResponse
// @Failure 404 {object} httpjson.ErrorResponse
// @Router /pets/{petID} [put]
func updatePetHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := ids.Parse(chi.URLParam(r, "petID"))
		if err != nil {
			httpjson.BadRequest(w, "invalid pet id")
			return
		}

		var req petRequest
		if err := httpjson.Decode(r, &req); err != nil {
			httpjson.BadRequest(w, "invalid json")
			return
		}

		p, err := svc.Update(r.Context(), id, req.input())
		if err != nil {
			httpjson.WriteError(w, log, err)
			return
		}
		httpjson.Write(w, http.StatusOK, toPetResponse(p))
	}
}

// deletePetHandler godoc
// @Summary Borrar mascota
// @Description Devuelve rows_affected (0 si no existía). 409 si tiene adopciones.
// @Tags pets
// @Produce json
// @Param petID path int true "ID de la mascota"
// @Success 200 {object} deleteResponse
// @Failure 409 {object} httpjson.ErrorResponse
// @Router /pets/{petID} [delete]
func deletePetHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := ids.Parse(chi.URLParam(r, "petID"))
		if err != nil {
			httpjson.BadRequest(w, "invalid pet id")
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

func toPetResponse(p Pet) petResponse {
	return petResponse{
		ID:      p.ID,
		Name:    p.Name,
		Species: p.Species,
		Age:     p.Age,
	}
}

func toPetResponses(items []Pet) []petResponse {
	out := make([]petResponse, 0, len(items))
	for _, p := range items {
		out = append(out, toPetResponse(p))
	}
	return out
}
