package repository

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/pranjul332/movie-recommender/internal/models"
)

// LoadFromFiles carga catálogo y matriz desde los JSON exportados offline.
// Formatos:
//
//	movies.json     -> [{"movie_id": 1, "title": "Avatar"}, ...]
//	similarity.json -> [[1.0, 0.2, ...], [0.2, 1.0, ...], ...]
//
// Cualquier error (archivo ausente, JSON roto, tamaños que no calzan)
// deja el servicio en modo degradado, nunca tira abajo el proceso.
func LoadFromFiles(moviesPath, similarityPath string) (*Dataset, error) {
	mb, err := os.ReadFile(moviesPath)
	if err != nil {
		return nil, fmt.Errorf("leyendo catálogo %s: %w", moviesPath, err)
	}
	var movies []models.Movie
	if err := json.Unmarshal(mb, &movies); err != nil {
		return nil, fmt.Errorf("parseando catálogo %s: %w", moviesPath, err)
	}

	sb, err := os.ReadFile(similarityPath)
	if err != nil {
		return nil, fmt.Errorf("leyendo matriz %s: %w", similarityPath, err)
	}
	var rows [][]float64
	if err := json.Unmarshal(sb, &rows); err != nil {
		return nil, fmt.Errorf("parseando matriz %s: %w", similarityPath, err)
	}

	return newDataset(movies, rows)
}

// newDataset valida la invariante que une a los dos artefactos:
// filas de la matriz == filas del catálogo. Un mismatch es error de carga,
// jamás se sigue con comportamiento indefinido.
func newDataset(movies []models.Movie, rows [][]float64) (*Dataset, error) {
	matrix, err := NewMatrix(rows)
	if err != nil {
		return nil, err
	}

	catalog := NewCatalog(movies)
	if matrix.Size() != catalog.Size() {
		return nil, fmt.Errorf("catálogo y matriz no calzan: %d películas vs matriz de %d filas",
			catalog.Size(), matrix.Size())
	}

	return &Dataset{Catalog: catalog, Matrix: matrix}, nil
}
