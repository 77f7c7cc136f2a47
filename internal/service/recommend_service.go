package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"strings"

	"github.com/pranjul332/movie-recommender/internal/cache"
	"github.com/pranjul332/movie-recommender/internal/models"
	"github.com/pranjul332/movie-recommender/internal/repository"
)

// DefaultRecommendations se usa cuando el body no trae
// num_recommendations (o trae <= 0).
const DefaultRecommendations = 5

// ErrNotLoaded: los artefactos no cargaron, el servicio está degradado.
var ErrNotLoaded = errors.New("Model not loaded")

// TitleNotFoundError es el "no match" del resolver: no es un fallo
// interno, lleva las sugerencias que el handler devuelve en el 404.
type TitleNotFoundError struct {
	Query       string
	Suggestions []string
}

func (e *TitleNotFoundError) Error() string {
	return fmt.Sprintf("Movie '%s' not found", e.Query)
}

type RecommendService struct {
	store    *repository.Store
	cacheTTL int // segundos
}

func NewRecommendService(store *repository.Store, cacheTTLSeconds int) *RecommendService {
	return &RecommendService{store: store, cacheTTL: cacheTTLSeconds}
}

type RecRequest struct {
	MovieTitle string
	K          int
	Refresh    bool // true = saltarse el cache Redis
}

func cacheKey(req RecRequest) string {
	// cachea por título normalizado + k (refresh solo decide si se usa)
	return fmt.Sprintf("rec:title:%s:k:%d", strings.ToLower(strings.TrimSpace(req.MovieTitle)), req.K)
}

// Recommend resuelve el título y rankea la fila de similitud. Todo es
// función pura del dataset inmutable, así que cachear la respuesta no
// cambia nada: requests idénticos dan bytes idénticos, con o sin Redis.
func (s *RecommendService) Recommend(ctx context.Context, req RecRequest) (*models.RecommendationResponse, error) {
	ds, ok := s.store.Dataset()
	if !ok {
		return nil, ErrNotLoaded
	}

	// defaults y clamp de k ANTES de armar la cache key
	if req.K <= 0 {
		req.K = DefaultRecommendations
	}
	if max := ds.Catalog.Size() - 1; max > 0 && req.K > max {
		req.K = max
	}

	if !req.Refresh {
		var cached models.RecommendationResponse
		if ok, err := cache.GetJSON(ctx, cacheKey(req), &cached); err == nil && ok {
			return &cached, nil
		}
	}

	match, ok := MatchTitle(req.MovieTitle, ds.Catalog)
	if !ok {
		return nil, &TitleNotFoundError{
			Query:       req.MovieTitle,
			Suggestions: Suggest(req.MovieTitle, ds.Catalog),
		}
	}
	log.Printf("[recommend] query=%q estrategia=%s match=%q", req.MovieTitle, match.Strategy, match.Title)

	items, err := rank(ds, match.Index, req.K)
	if err != nil {
		return nil, err
	}

	resp := &models.RecommendationResponse{
		Recommendations: items,
		MatchedMovie:    match.Title,
	}

	if err := cache.SetJSON(ctx, cacheKey(req), resp, s.cacheTTL); err != nil {
		log.Printf("[recommend] error cacheando en Redis: %v", err)
	}

	return resp, nil
}

// Match expone la resolución sola (la usa el endpoint WebSocket para el
// frame de progreso). Misma lógica que usa Recommend por dentro.
func (s *RecommendService) Match(title string) (TitleMatch, bool, error) {
	ds, ok := s.store.Dataset()
	if !ok {
		return TitleMatch{}, false, ErrNotLoaded
	}
	m, found := MatchTitle(title, ds.Catalog)
	return m, found, nil
}

// rank ordena la fila por score descendente (empates por columna
// ascendente, para que el orden sea estable) y descarta la PRIMERA
// posición del orden: es la auto-similitud de la película consultada.
// Ojo: se descarta la posición 0 del ranking, no la columna == index;
// coinciden solo porque la diagonal es el máximo de su fila. Es la
// política literal del servicio original y se preserva tal cual.
func rank(ds *repository.Dataset, index, k int) ([]models.RecItem, error) {
	row, err := ds.Matrix.Row(index)
	if err != nil {
		return nil, err
	}

	type pair struct {
		j     int
		score float64
	}
	pairs := make([]pair, len(row))
	for j, sc := range row {
		pairs[j] = pair{j: j, score: sc}
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].score != pairs[j].score {
			return pairs[i].score > pairs[j].score
		}
		return pairs[i].j < pairs[j].j
	})

	pairs = pairs[1:]
	if len(pairs) > k {
		pairs = pairs[:k]
	}

	items := make([]models.RecItem, 0, len(pairs))
	for _, p := range pairs {
		m := ds.Catalog.At(p.j)
		items = append(items, models.RecItem{
			MovieID:         m.MovieID,
			Title:           m.Title,
			SimilarityScore: p.score,
		})
	}
	return items, nil
}
