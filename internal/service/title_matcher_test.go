package service

import (
	"testing"

	"github.com/pranjul332/movie-recommender/internal/models"
	"github.com/pranjul332/movie-recommender/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCatalog() *repository.Catalog {
	return repository.NewCatalog([]models.Movie{
		{MovieID: 1, Title: "Avatar"},
		{MovieID: 2, Title: "Titanic"},
		{MovieID: 3, Title: "Inception"},
	})
}

func TestSequenceRatio(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want float64
	}{
		{"iguales", "Avatar", "Avatar", 1.0},
		{"vacías", "", "", 1.0},
		{"sin nada en común", "abc", "xyz", 0.0},
		// valores de referencia del SequenceMatcher clásico
		{"abcd vs bcde", "abcd", "bcde", 0.75},
		{"typo corto", "Avatr", "Avatar", 10.0 / 11.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, sequenceRatio(tt.a, tt.b), 1e-9)
		})
	}
}

func TestSequenceRatioSimetrico(t *testing.T) {
	// mismos bloques en las dos direcciones
	assert.InDelta(t, sequenceRatio("Avatr", "Avatar"), sequenceRatio("Avatar", "Avatr"), 1e-9)
}

func TestMatchTitle(t *testing.T) {
	cat := testCatalog()

	tests := []struct {
		name      string
		query     string
		wantIdx   int
		wantTitle string
		wantStrat MatchStrategy
	}{
		{"exacto case-insensitive", "AVATAR", 0, "Avatar", MatchExact},
		{"exacto con espacios", "  avatar  ", 0, "Avatar", MatchExact},
		{"contención", "ncep", 2, "Inception", MatchContains},
		{"contención case-insensitive", "TITAN", 1, "Titanic", MatchContains},
		{"difuso con typo", "Avatr", 0, "Avatar", MatchFuzzy},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, ok := MatchTitle(tt.query, cat)
			require.True(t, ok)
			assert.Equal(t, tt.wantIdx, m.Index)
			assert.Equal(t, tt.wantTitle, m.Title)
			assert.Equal(t, tt.wantStrat, m.Strategy)
		})
	}
}

func TestMatchTitleSinResultado(t *testing.T) {
	_, ok := MatchTitle("zzz", testCatalog())
	assert.False(t, ok)
}

func TestMatchTitleEmpatesPorOrdenDeCatalogo(t *testing.T) {
	// títulos duplicados (colisión de case-fold): gana la fila más baja
	cat := repository.NewCatalog([]models.Movie{
		{MovieID: 10, Title: "The Matrix"},
		{MovieID: 11, Title: "THE MATRIX"},
	})

	m, ok := MatchTitle("the matrix", cat)
	require.True(t, ok)
	assert.Equal(t, 0, m.Index)
	assert.Equal(t, "The Matrix", m.Title)
}

func TestSuggest(t *testing.T) {
	cat := repository.NewCatalog([]models.Movie{
		{MovieID: 1, Title: "Avatar"},
		{MovieID: 2, Title: "Avatar 2"},
		{MovieID: 3, Title: "Titanic"},
	})

	got := Suggest("Avatr", cat)

	// Titanic queda fuera (ratio < 0.3); el resto ordenado por ratio desc
	require.Equal(t, []string{"Avatar", "Avatar 2"}, got)

	for _, title := range got {
		assert.GreaterOrEqual(t, sequenceRatio("Avatr", title), SuggestionCutoff)
	}
}

func TestSuggestVacio(t *testing.T) {
	got := Suggest("zzz", testCatalog())
	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestSuggestMaximoCinco(t *testing.T) {
	movies := make([]models.Movie, 0, 8)
	for i := 0; i < 8; i++ {
		movies = append(movies, models.Movie{MovieID: i, Title: "Avatar"})
	}
	got := Suggest("Avatr", repository.NewCatalog(movies))
	assert.Len(t, got, MaxSuggestions)
}

func TestSuggestDeterminista(t *testing.T) {
	cat := testCatalog()
	first := Suggest("Avatr", cat)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Suggest("Avatr", cat))
	}
}
