package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/pranjul332/movie-recommender/internal/service"

	"github.com/go-chi/chi/v5"
)

type MovieHandler struct {
	svc *service.MovieService
}

func NewMovieHandler(s *service.MovieService) *MovieHandler { return &MovieHandler{svc: s} }

// @Summary Listar todas las películas
// @Tags movies
// @Produce json
// @Success 200 {object} models.MovieList
// @Failure 500 {object} map[string]string "Model not loaded"
// @Router /movies [get]
func (h *MovieHandler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.List()
	if err != nil {
		writeDetail(w, http.StatusInternalServerError, service.ErrNotLoaded.Error())
		return
	}
	writeJSON(w, http.StatusOK, list)
}

// @Summary Obtener película por id
// @Tags movies
// @Produce json
// @Param movie_id path int true "movieId"
// @Success 200 {object} models.Movie
// @Failure 404 {object} map[string]string "Movie not found"
// @Router /movie/{movie_id} [get]
func (h *MovieHandler) GetMovie(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "movie_id"))
	if err != nil {
		writeDetail(w, http.StatusBadRequest, "movie_id inválido")
		return
	}

	m, err := h.svc.GetByID(id)
	if errors.Is(err, service.ErrNotLoaded) {
		writeDetail(w, http.StatusInternalServerError, service.ErrNotLoaded.Error())
		return
	}
	if m == nil {
		writeDetail(w, http.StatusNotFound, "Movie not found")
		return
	}
	writeJSON(w, http.StatusOK, m)
}

// @Summary Buscar películas por substring del título
// @Tags movies
// @Produce json
// @Param query query string true "texto a buscar en el título"
// @Param limit query int false "máximo de resultados (default 10)"
// @Success 200 {object} models.SearchResponse
// @Failure 400 {object} map[string]string "query requerido"
// @Router /search [get]
func (h *MovieHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")
	if query == "" {
		writeDetail(w, http.StatusBadRequest, "query es requerido")
		return
	}

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	if limit <= 0 {
		limit = 10
	}

	resp, err := h.svc.Search(query, limit)
	if err != nil {
		writeDetail(w, http.StatusInternalServerError, service.ErrNotLoaded.Error())
		return
	}
	writeJSON(w, http.StatusOK, resp)
}
