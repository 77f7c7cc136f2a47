package main

import (
	"context"
	"log"
	"net/http"

	_ "github.com/pranjul332/movie-recommender/docs" // swagger docs

	"github.com/pranjul332/movie-recommender/internal/cache"
	"github.com/pranjul332/movie-recommender/internal/config"
	"github.com/pranjul332/movie-recommender/internal/db"
	"github.com/pranjul332/movie-recommender/internal/handler"
	"github.com/pranjul332/movie-recommender/internal/repository"
	"github.com/pranjul332/movie-recommender/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

// @title Movie Recommender ML Service
// @version 1.0
// @description API de recomendaciones por similitud de coseno precalculada
// @host localhost:8000
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Load()

	// Redis es opcional: sin él solo se pierde el cache
	cache.InitRedis(cfg)

	// ============================================
	// Carga de artefactos (catálogo + matriz)
	// ============================================
	loadArtifacts := func(ctx context.Context) (*repository.Dataset, error) {
		if cfg.ArtifactSource == "mongo" {
			database, err := db.Connect(ctx, cfg)
			if err != nil {
				return nil, err
			}
			return repository.LoadFromMongo(ctx, database)
		}
		return repository.LoadFromFiles(cfg.MoviesPath, cfg.SimilarityPath)
	}

	store := repository.NewStore()
	if ds, err := loadArtifacts(context.Background()); err != nil {
		// modo degradado: el proceso arranca igual y responde "Model not loaded"
		log.Printf("✗ Error cargando artefactos: %v", err)
	} else {
		store.Set(ds)
		log.Printf("✓ Loaded %d movies", ds.Catalog.Size())
		log.Printf("✓ Similarity matrix %dx%d", ds.Matrix.Size(), ds.Matrix.Size())
	}

	// services
	movieSvc := service.NewMovieService(store)
	recSvc := service.NewRecommendService(store, cfg.CacheTTL)

	// handlers
	healthH := handler.NewHealthHandler(movieSvc)
	movieH := handler.NewMovieHandler(movieSvc)
	recH := handler.NewRecommendHandler(recSvc)
	adminH := handler.NewAdminHandler(store, loadArtifacts)

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// =============
	// Rutas públicas
	// =============
	r.Get("/", healthH.Root)
	r.Get("/health", healthH.Health)

	r.Get("/movies", movieH.List)
	r.Get("/movie/{movie_id}", movieH.GetMovie)
	r.Get("/search", movieH.Search)

	r.Post("/recommend", recH.Recommend)

	// WebSocket
	r.Get("/ws/recommend", recH.RecommendWS)

	// ===========================
	// Rutas protegidas con JWT
	// ===========================
	r.Group(func(r chi.Router) {
		r.Use(handler.JWTAuth(cfg.JWTSecret))
		r.Use(handler.AdminOnly())

		handler.MountAdminRoutes(r, adminH)
	})

	// Swagger UI
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	log.Printf("HTTP escuchando en :%s", cfg.HTTPPort)
	log.Fatal(http.ListenAndServe(":"+cfg.HTTPPort, r))
}
