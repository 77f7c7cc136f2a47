package handler

import (
	"encoding/json"
	"net/http"

	"github.com/pranjul332/movie-recommender/internal/service"
)

type HealthHandler struct {
	svc *service.MovieService
}

func NewHealthHandler(s *service.MovieService) *HealthHandler {
	return &HealthHandler{svc: s}
}

// @Summary Mensaje de bienvenida
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router / [get]
func (h *HealthHandler) Root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"message": "Movie Recommender ML Service"})
}

// @Summary Healthcheck
// @Description Informa si el modelo está cargado y cuántas películas tiene el catálogo.
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health [get]
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	loaded, total := h.svc.Status()
	writeJSON(w, http.StatusOK, map[string]any{
		"status":       "healthy",
		"model_loaded": loaded,
		"total_movies": total,
	})
}

// Utilidad pequeña para respuestas JSON.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeDetail arma el {"detail": ...} de los errores simples.
func writeDetail(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, map[string]string{"detail": detail})
}
