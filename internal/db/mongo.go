package db

import (
	"context"
	"log"
	"time"

	"github.com/pranjul332/movie-recommender/internal/config"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Connect abre la conexión a Mongo y devuelve la DB. A diferencia de un
// backend normal acá NO es fatal: si Mongo no está, el servicio arranca
// degradado ("Model not loaded") y se puede reintentar con /admin/reload.
func Connect(ctx context.Context, cfg *config.Config) (*mongo.Database, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		return nil, err
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, err
	}

	log.Printf("[mongo] conectado a %s / DB=%s\n", cfg.MongoURI, cfg.MongoDB)
	return client.Database(cfg.MongoDB), nil
}
