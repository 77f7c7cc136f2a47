package models

// Documentos Mongo para cuando los artefactos se cargan desde la base
// (ARTIFACT_SOURCE=mongo). iIdx es la fila de la película en la matriz.

type MovieDoc struct {
	MovieID int    `bson:"movieId"`
	Title   string `bson:"title"`
	IIdx    int    `bson:"iIdx"`
}

type SimilarityRowDoc struct {
	IIdx   int       `bson:"iIdx"`
	Scores []float64 `bson:"scores"`
}
