package handler

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/pranjul332/movie-recommender/internal/models"
	"github.com/pranjul332/movie-recommender/internal/service"

	"github.com/gorilla/websocket"
)

type RecommendHandler struct {
	svc *service.RecommendService
}

func NewRecommendHandler(s *service.RecommendService) *RecommendHandler {
	return &RecommendHandler{svc: s}
}

// @Summary Recomendaciones por título
// @Description Resuelve el título (exacto / contiene / difuso) y devuelve las películas más similares.
// @Tags recommend
// @Accept json
// @Produce json
// @Param body body models.RecommendationRequest true "título y cantidad (default 5)"
// @Param refresh query bool false "si true, ignora cache Redis"
// @Success 200 {object} models.RecommendationResponse
// @Failure 404 {object} models.TitleNotFoundResponse
// @Failure 500 {object} map[string]string "Model not loaded"
// @Router /recommend [post]
func (h *RecommendHandler) Recommend(w http.ResponseWriter, r *http.Request) {
	var req models.RecommendationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || strings.TrimSpace(req.MovieTitle) == "" {
		writeDetail(w, http.StatusBadRequest, "body inválido (movie_title requerido)")
		return
	}

	refresh := r.URL.Query().Get("refresh") == "true"

	resp, err := h.svc.Recommend(r.Context(), service.RecRequest{
		MovieTitle: req.MovieTitle,
		K:          req.NumRecommendations,
		Refresh:    refresh,
	})
	if err != nil {
		h.writeRecommendError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// writeRecommendError mapea los outcomes del servicio al contrato HTTP:
// no-cargado y no-encontrado son respuestas esperadas, el resto es 500
// genérico sin filtrar internals.
func (h *RecommendHandler) writeRecommendError(w http.ResponseWriter, err error) {
	if errors.Is(err, service.ErrNotLoaded) {
		writeDetail(w, http.StatusInternalServerError, service.ErrNotLoaded.Error())
		return
	}

	var nf *service.TitleNotFoundError
	if errors.As(err, &nf) {
		writeJSON(w, http.StatusNotFound, models.TitleNotFoundResponse{
			Error:       nf.Error(),
			Suggestions: nf.Suggestions,
		})
		return
	}

	log.Printf("[recommend] error inesperado: %v", err)
	writeDetail(w, http.StatusInternalServerError, "Error generating recommendations: "+err.Error())
}

// upgrader global (no afecta a swagger)
var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// @Summary Recomendaciones por título (WebSocket)
// @Description Igual que POST /recommend pero con frames de progreso: start, match y el payload final.
// @Tags recommend
// @Produce json
// @Param movie_title query string true "título a resolver"
// @Param num_recommendations query int false "cantidad (default 5)"
// @Success 200 {object} map[string]interface{}
// @Router /ws/recommend [get]
func (h *RecommendHandler) RecommendWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		http.Error(w, "No se pudo abrir WebSocket", 400)
		return
	}
	defer conn.Close()

	title := r.URL.Query().Get("movie_title")
	k, _ := strconv.Atoi(r.URL.Query().Get("num_recommendations"))

	conn.WriteJSON(map[string]any{
		"type": "start",
		"msg":  "Resolviendo título…",
	})

	match, found, err := h.svc.Match(title)
	if err != nil {
		conn.WriteJSON(map[string]any{"type": "error", "error": service.ErrNotLoaded.Error()})
		return
	}
	if found {
		conn.WriteJSON(map[string]any{
			"type":     "match",
			"strategy": match.Strategy,
			"title":    match.Title,
		})
	}

	resp, err := h.svc.Recommend(r.Context(), service.RecRequest{MovieTitle: title, K: k})
	if err != nil {
		var nf *service.TitleNotFoundError
		if errors.As(err, &nf) {
			conn.WriteJSON(map[string]any{
				"type":        "error",
				"error":       nf.Error(),
				"suggestions": nf.Suggestions,
			})
			return
		}
		conn.WriteJSON(map[string]any{"type": "error", "error": err.Error()})
		return
	}

	conn.WriteJSON(map[string]any{
		"type":            "recommendations",
		"matched_movie":   resp.MatchedMovie,
		"recommendations": resp.Recommendations,
	})
}
