package handler

import (
	"context"
	"log"
	"net/http"

	"github.com/pranjul332/movie-recommender/internal/repository"

	"github.com/go-chi/chi/v5"
)

// LoadFunc corre la carga de artefactos (archivos o Mongo, lo decide main).
type LoadFunc func(ctx context.Context) (*repository.Dataset, error)

// AdminHandler expone el mantenimiento del dataset.
type AdminHandler struct {
	store *repository.Store
	load  LoadFunc
}

func NewAdminHandler(store *repository.Store, load LoadFunc) *AdminHandler {
	return &AdminHandler{store: store, load: load}
}

// @Summary Recargar artefactos
// @Description Vuelve a cargar catálogo y matriz y los swapea atómicamente. Los requests en vuelo siguen con el dataset viejo.
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} map[string]string "error de carga"
// @Router /admin/reload [post]
func (h *AdminHandler) Reload(w http.ResponseWriter, r *http.Request) {
	ds, err := h.load(r.Context())
	if err != nil {
		log.Printf("[admin] reload falló: %v", err)
		writeDetail(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.store.Set(ds)
	log.Printf("[admin] reload OK: %d películas", ds.Catalog.Size())

	writeJSON(w, http.StatusOK, map[string]any{
		"reloaded":     true,
		"total_movies": ds.Catalog.Size(),
	})
}

// Helper para montar rutas en main.go
func MountAdminRoutes(r chi.Router, h *AdminHandler) {
	r.Route("/admin", func(r chi.Router) {
		r.Post("/reload", h.Reload)
	})
}
