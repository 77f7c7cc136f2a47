package repository

import (
	"testing"

	"github.com/pranjul332/movie-recommender/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleMovies() []models.Movie {
	return []models.Movie{
		{MovieID: 1, Title: "Avatar"},
		{MovieID: 2, Title: "Titanic"},
		{MovieID: 3, Title: "Inception"},
		{MovieID: 4, Title: "The Titan"},
	}
}

func TestCatalogByID(t *testing.T) {
	cat := NewCatalog(sampleMovies())

	m, ok := cat.ByID(2)
	require.True(t, ok)
	assert.Equal(t, "Titanic", m.Title)

	_, ok = cat.ByID(999)
	assert.False(t, ok)
}

func TestCatalogSearch(t *testing.T) {
	cat := NewCatalog(sampleMovies())

	tests := []struct {
		name       string
		query      string
		limit      int
		wantTitles []string
		wantTotal  int
	}{
		{"case-insensitive", "TITAN", 10, []string{"Titanic", "The Titan"}, 2},
		{"respeta el límite", "titan", 1, []string{"Titanic"}, 2},
		{"sin resultados", "zzz", 10, []string{}, 0},
		{"orden de catálogo", "a", 10, []string{"Avatar", "Titanic", "The Titan"}, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results, total := cat.Search(tt.query, tt.limit)
			assert.Equal(t, tt.wantTotal, total)

			titles := make([]string, 0, len(results))
			for _, m := range results {
				titles = append(titles, m.Title)
			}
			assert.Equal(t, tt.wantTitles, titles)
		})
	}
}

func TestCatalogIDsDuplicados(t *testing.T) {
	// con ids repetidos ByID devuelve la primera fila
	cat := NewCatalog([]models.Movie{
		{MovieID: 7, Title: "Primera"},
		{MovieID: 7, Title: "Segunda"},
	})

	m, ok := cat.ByID(7)
	require.True(t, ok)
	assert.Equal(t, "Primera", m.Title)
}
