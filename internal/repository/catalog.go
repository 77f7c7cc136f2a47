package repository

import (
	"strings"

	"github.com/pranjul332/movie-recommender/internal/models"
)

// Catalog es la tabla de películas en memoria, inmutable después de cargar.
// El orden de las películas es el mismo que el de la matriz de similitud:
// reordenar acá rompería todas las recomendaciones.
type Catalog struct {
	movies []models.Movie
	byID   map[int]int // movieId -> índice de fila
}

func NewCatalog(movies []models.Movie) *Catalog {
	byID := make(map[int]int, len(movies))
	for i, m := range movies {
		// con ids duplicados gana la primera fila
		if _, ok := byID[m.MovieID]; !ok {
			byID[m.MovieID] = i
		}
	}
	return &Catalog{movies: movies, byID: byID}
}

func (c *Catalog) Size() int {
	return len(c.movies)
}

// At devuelve la película en la fila i. Solo para índices ya validados
// (los índices vienen del propio catálogo o de una fila de la matriz).
func (c *Catalog) At(i int) models.Movie {
	return c.movies[i]
}

func (c *Catalog) ByID(movieID int) (models.Movie, bool) {
	i, ok := c.byID[movieID]
	if !ok {
		return models.Movie{}, false
	}
	return c.movies[i], true
}

// All devuelve el slice interno: los callers NO deben mutarlo.
func (c *Catalog) All() []models.Movie {
	return c.movies
}

// Search hace substring match case-insensitive sobre los títulos,
// respetando el orden del catálogo. Devuelve los primeros `limit`
// resultados y el total de coincidencias sin truncar.
func (c *Catalog) Search(query string, limit int) ([]models.Movie, int) {
	q := strings.ToLower(query)

	results := []models.Movie{}
	total := 0
	for _, m := range c.movies {
		if !strings.Contains(strings.ToLower(m.Title), q) {
			continue
		}
		total++
		if len(results) < limit {
			results = append(results, m)
		}
	}
	return results, total
}
