package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pranjul332/movie-recommender/internal/models"
	"github.com/pranjul332/movie-recommender/internal/repository"
	"github.com/pranjul332/movie-recommender/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func loadedStore(t *testing.T) *repository.Store {
	t.Helper()
	matrix, err := repository.NewMatrix([][]float64{
		{1.0, 0.2, 0.5},
		{0.2, 1.0, 0.4},
		{0.5, 0.4, 1.0},
	})
	require.NoError(t, err)

	store := repository.NewStore()
	store.Set(&repository.Dataset{
		Catalog: repository.NewCatalog([]models.Movie{
			{MovieID: 1, Title: "Avatar"},
			{MovieID: 2, Title: "Titanic"},
			{MovieID: 3, Title: "Inception"},
		}),
		Matrix: matrix,
	})
	return store
}

// newTestRouter arma el mismo router que main, sobre el store que le pasen.
func newTestRouter(store *repository.Store, load LoadFunc) http.Handler {
	movieSvc := service.NewMovieService(store)
	recSvc := service.NewRecommendService(store, 0)

	healthH := NewHealthHandler(movieSvc)
	movieH := NewMovieHandler(movieSvc)
	recH := NewRecommendHandler(recSvc)
	adminH := NewAdminHandler(store, load)

	r := chi.NewRouter()
	r.Get("/", healthH.Root)
	r.Get("/health", healthH.Health)
	r.Get("/movies", movieH.List)
	r.Get("/movie/{movie_id}", movieH.GetMovie)
	r.Get("/search", movieH.Search)
	r.Post("/recommend", recH.Recommend)

	r.Group(func(r chi.Router) {
		r.Use(JWTAuth(testSecret))
		r.Use(AdminOnly())
		MountAdminRoutes(r, adminH)
	})

	return r
}

func doRequest(t *testing.T, h http.Handler, req *http.Request) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var body map[string]any
	if rec.Body.Len() > 0 {
		_ = json.Unmarshal(rec.Body.Bytes(), &body)
	}
	return rec, body
}

func TestRoot(t *testing.T) {
	r := newTestRouter(loadedStore(t), nil)

	rec, body := doRequest(t, r, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Movie Recommender ML Service", body["message"])
}

func TestHealth(t *testing.T) {
	t.Run("modelo cargado", func(t *testing.T) {
		r := newTestRouter(loadedStore(t), nil)

		rec, body := doRequest(t, r, httptest.NewRequest(http.MethodGet, "/health", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "healthy", body["status"])
		assert.Equal(t, true, body["model_loaded"])
		assert.Equal(t, float64(3), body["total_movies"])
	})

	t.Run("modo degradado", func(t *testing.T) {
		r := newTestRouter(repository.NewStore(), nil)

		rec, body := doRequest(t, r, httptest.NewRequest(http.MethodGet, "/health", nil))
		// health siempre responde 200, lo degradado va en el payload
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, false, body["model_loaded"])
		assert.Equal(t, float64(0), body["total_movies"])
	})
}

func TestListMovies(t *testing.T) {
	r := newTestRouter(loadedStore(t), nil)

	rec, body := doRequest(t, r, httptest.NewRequest(http.MethodGet, "/movies", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(3), body["total"])
	assert.Len(t, body["movies"], 3)
}

func TestGetMovie(t *testing.T) {
	r := newTestRouter(loadedStore(t), nil)

	t.Run("existe", func(t *testing.T) {
		rec, body := doRequest(t, r, httptest.NewRequest(http.MethodGet, "/movie/2", nil))
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Titanic", body["title"])
	})

	t.Run("no existe", func(t *testing.T) {
		rec, body := doRequest(t, r, httptest.NewRequest(http.MethodGet, "/movie/999", nil))
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "Movie not found", body["detail"])
	})
}

func TestSearch(t *testing.T) {
	r := newTestRouter(loadedStore(t), nil)

	t.Run("ok", func(t *testing.T) {
		rec, body := doRequest(t, r, httptest.NewRequest(http.MethodGet, "/search?query=titan&limit=10", nil))
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "titan", body["query"])
		assert.Equal(t, float64(1), body["total_found"])
	})

	t.Run("sin query", func(t *testing.T) {
		rec, _ := doRequest(t, r, httptest.NewRequest(http.MethodGet, "/search", nil))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func recommendBody(t *testing.T, title string, k int) *bytes.Reader {
	t.Helper()
	b, err := json.Marshal(models.RecommendationRequest{MovieTitle: title, NumRecommendations: k})
	require.NoError(t, err)
	return bytes.NewReader(b)
}

func TestRecommendEndpoint(t *testing.T) {
	r := newTestRouter(loadedStore(t), nil)

	t.Run("ok", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/recommend", recommendBody(t, "avatar", 2))
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp models.RecommendationResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "Avatar", resp.MatchedMovie)
		require.Equal(t, []models.RecItem{
			{MovieID: 3, Title: "Inception", SimilarityScore: 0.5},
			{MovieID: 2, Title: "Titanic", SimilarityScore: 0.2},
		}, resp.Recommendations)
	})

	t.Run("título no encontrado", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/recommend", recommendBody(t, "zzz-nonexistent", 5))
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		require.Equal(t, http.StatusNotFound, rec.Code)

		var resp models.TitleNotFoundResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "Movie 'zzz-nonexistent' not found", resp.Error)
		assert.NotNil(t, resp.Suggestions)
		assert.LessOrEqual(t, len(resp.Suggestions), 5)
	})

	t.Run("body sin título", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/recommend", bytes.NewReader([]byte(`{}`)))
		rec, _ := doRequest(t, r, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("modelo no cargado", func(t *testing.T) {
		degraded := newTestRouter(repository.NewStore(), nil)
		req := httptest.NewRequest(http.MethodPost, "/recommend", recommendBody(t, "Avatar", 5))
		rec, body := doRequest(t, degraded, req)
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "Model not loaded", body["detail"])
	})
}

func signToken(t *testing.T, role string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"role": role})
	signed, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)
	return signed
}

func TestAdminReload(t *testing.T) {
	store := repository.NewStore()

	load := func(ctx context.Context) (*repository.Dataset, error) {
		matrix, err := repository.NewMatrix([][]float64{{1.0}})
		if err != nil {
			return nil, err
		}
		return &repository.Dataset{
			Catalog: repository.NewCatalog([]models.Movie{{MovieID: 1, Title: "Avatar"}}),
			Matrix:  matrix,
		}, nil
	}
	r := newTestRouter(store, load)

	t.Run("sin token", func(t *testing.T) {
		rec, _ := doRequest(t, r, httptest.NewRequest(http.MethodPost, "/admin/reload", nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("token sin rol admin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/admin/reload", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t, "user"))
		rec, _ := doRequest(t, r, req)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("reload ok", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/admin/reload", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t, "admin"))
		rec, body := doRequest(t, r, req)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, true, body["reloaded"])
		assert.Equal(t, float64(1), body["total_movies"])

		// el dataset quedó swapeado para los requests siguientes
		_, ok := store.Dataset()
		assert.True(t, ok)
	})

	t.Run("reload con error de carga", func(t *testing.T) {
		broken := newTestRouter(repository.NewStore(), func(ctx context.Context) (*repository.Dataset, error) {
			return nil, errors.New("artefactos corruptos")
		})
		req := httptest.NewRequest(http.MethodPost, "/admin/reload", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t, "admin"))
		rec, _ := doRequest(t, broken, req)
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}
