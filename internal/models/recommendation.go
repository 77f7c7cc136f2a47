package models

type RecommendationRequest struct {
	MovieTitle         string `json:"movie_title"`
	NumRecommendations int    `json:"num_recommendations"`
}

type RecItem struct {
	MovieID         int     `json:"movie_id"`
	Title           string  `json:"title"`
	SimilarityScore float64 `json:"similarity_score"`
}

type RecommendationResponse struct {
	Recommendations []RecItem `json:"recommendations"`
	MatchedMovie    string    `json:"matched_movie"`
}

// TitleNotFoundResponse es el 404 de /recommend: el error más hasta 5
// sugerencias de títulos parecidos (lista vacía si no hay nada cercano).
type TitleNotFoundResponse struct {
	Error       string   `json:"error"`
	Suggestions []string `json:"suggestions"`
}
