package repository

import (
	"context"
	"fmt"

	"github.com/pranjul332/movie-recommender/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// LoadFromMongo arma el dataset desde las colecciones `movies` y
// `similarity` (una doc por fila, ambas ordenadas por iIdx). Es el mismo
// contenido que los JSON de disco, para despliegues donde los artefactos
// ya viven en Mongo.
func LoadFromMongo(ctx context.Context, database *mongo.Database) (*Dataset, error) {
	movies, err := loadMovies(ctx, database.Collection("movies"))
	if err != nil {
		return nil, err
	}

	rows, err := loadSimilarityRows(ctx, database.Collection("similarity"))
	if err != nil {
		return nil, err
	}

	return newDataset(movies, rows)
}

func loadMovies(ctx context.Context, col *mongo.Collection) ([]models.Movie, error) {
	opts := options.Find().SetSort(bson.D{{Key: "iIdx", Value: 1}})
	cur, err := col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("leyendo colección movies: %w", err)
	}
	defer cur.Close(ctx)

	var movies []models.Movie
	for cur.Next(ctx) {
		var doc models.MovieDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		// iIdx tiene que ser contiguo: es la fila en la matriz
		if doc.IIdx != len(movies) {
			return nil, fmt.Errorf("iIdx no contiguo en movies: esperaba %d, vino %d", len(movies), doc.IIdx)
		}
		movies = append(movies, models.Movie{MovieID: doc.MovieID, Title: doc.Title})
	}
	return movies, cur.Err()
}

func loadSimilarityRows(ctx context.Context, col *mongo.Collection) ([][]float64, error) {
	opts := options.Find().SetSort(bson.D{{Key: "iIdx", Value: 1}})
	cur, err := col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("leyendo colección similarity: %w", err)
	}
	defer cur.Close(ctx)

	var rows [][]float64
	for cur.Next(ctx) {
		var doc models.SimilarityRowDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		if doc.IIdx != len(rows) {
			return nil, fmt.Errorf("iIdx no contiguo en similarity: esperaba %d, vino %d", len(rows), doc.IIdx)
		}
		rows = append(rows, doc.Scores)
	}
	return rows, cur.Err()
}
