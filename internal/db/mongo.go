package db

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Имена коллекций, используемые репозиториями.
const (
	CollectionUsers    = "users"
	CollectionOTPs     = "otps"
	CollectionProducts = "products"
)

// NewMongo создаёт подключение к MongoDB с заданным URI и проверяет его ping-ом.
func NewMongo(ctx context.Context, uri string) (*mongo.Client, error) {
	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().
		ApplyURI(uri).
		SetMaxPoolSize(100).
		SetConnectTimeout(10*time.Second))
	if err != nil {
		return nil, fmt.Errorf("mongo: не удалось подключиться: %w", err)
	}

	if err := client.Ping(connectCtx, nil); err != nil {
		return nil, fmt.Errorf("mongo: ping не прошёл: %w", err)
	}

	return client, nil
}

// EnsureIndexes создаёт индексы, на которые опираются инварианты хранилища:
// уникальность email у пользователей и один живой OTP на email.
func EnsureIndexes(ctx context.Context, database *mongo.Database) error {
	users := database.Collection(CollectionUsers)
	if _, err := users.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	}); err != nil {
		return fmt.Errorf("mongo: индекс users.email: %w", err)
	}

	otps := database.Collection(CollectionOTPs)
	if _, err := otps.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	}); err != nil {
		return fmt.Errorf("mongo: индекс otps.email: %w", err)
	}

	products := database.Collection(CollectionProducts)
	if _, err := products.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "url", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "categories", Value: 1}},
		},
	}); err != nil {
		return fmt.Errorf("mongo: индексы products: %w", err)
	}

	return nil
}
