package models

// Movie es una fila del catálogo. La posición de la película dentro del
// catálogo (0-based) es a la vez su fila y su columna en la matriz de
// similitud, así que el orden de carga nunca se puede reordenar.
type Movie struct {
	MovieID int    `json:"movie_id" bson:"movieId"`
	Title   string `json:"title" bson:"title"`
}

type MovieList struct {
	Movies []Movie `json:"movies"`
	Total  int     `json:"total"`
}

type SearchResponse struct {
	Query      string  `json:"query"`
	Results    []Movie `json:"results"`
	TotalFound int     `json:"total_found"`
}
