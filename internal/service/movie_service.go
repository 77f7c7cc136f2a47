package service

import (
	"github.com/pranjul332/movie-recommender/internal/models"
	"github.com/pranjul332/movie-recommender/internal/repository"
)

// MovieService atiende las lecturas simples del catálogo. Todo es en
// memoria e inmutable, por eso no hay context: nada bloquea.
type MovieService struct {
	store *repository.Store
}

func NewMovieService(store *repository.Store) *MovieService {
	return &MovieService{store: store}
}

// Status para el healthcheck: si hay modelo cargado y cuántas películas.
func (s *MovieService) Status() (loaded bool, total int) {
	ds, ok := s.store.Dataset()
	if !ok {
		return false, 0
	}
	return true, ds.Catalog.Size()
}

func (s *MovieService) List() (*models.MovieList, error) {
	ds, ok := s.store.Dataset()
	if !ok {
		return nil, ErrNotLoaded
	}
	return &models.MovieList{Movies: ds.Catalog.All(), Total: ds.Catalog.Size()}, nil
}

// GetByID devuelve nil, nil si la película no existe (404 del handler).
func (s *MovieService) GetByID(movieID int) (*models.Movie, error) {
	ds, ok := s.store.Dataset()
	if !ok {
		return nil, ErrNotLoaded
	}
	m, found := ds.Catalog.ByID(movieID)
	if !found {
		return nil, nil
	}
	return &m, nil
}

func (s *MovieService) Search(query string, limit int) (*models.SearchResponse, error) {
	ds, ok := s.store.Dataset()
	if !ok {
		return nil, ErrNotLoaded
	}
	results, total := ds.Catalog.Search(query, limit)
	return &models.SearchResponse{Query: query, Results: results, TotalFound: total}, nil
}
