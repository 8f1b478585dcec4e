package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/velora-store/admin-backend/internal/db"
	"github.com/velora-store/admin-backend/internal/models"
)

// ErrProductNotFound возвращается, когда товар с указанным id не найден.
var ErrProductNotFound = errors.New("product not found")

// ErrProductExists возвращается при нарушении уникальности id или url товара.
var ErrProductExists = errors.New("product already exists")

// ProductFilter описывает параметры выборки списка товаров.
type ProductFilter struct {
	Page     int64
	Limit    int64
	Category string
	Search   string
}

// ProductRepository отвечает за работу с коллекцией products.
type ProductRepository struct {
	collection *mongo.Collection
}

// NewProductRepository создаёт экземпляр репозитория.
func NewProductRepository(database *mongo.Database) *ProductRepository {
	return &ProductRepository{collection: database.Collection(db.CollectionProducts)}
}

// Create добавляет новый товар.
func (r *ProductRepository) Create(ctx context.Context, product *models.Product) error {
	now := time.Now()
	product.CreatedAt = now
	product.UpdatedAt = now

	res, err := r.collection.InsertOne(ctx, product)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrProductExists
		}
		return fmt.Errorf("product repository: create: %w", err)
	}

	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		product.MongoID = oid
	}

	return nil
}

// List возвращает страницу товаров и общее количество по фильтру.
// Поиск по названию регистронезависимый, сортировка — новые первыми.
func (r *ProductRepository) List(ctx context.Context, filter ProductFilter) ([]models.Product, int64, error) {
	query := bson.M{}
	if filter.Category != "" {
		query["categories"] = bson.M{"$in": bson.A{filter.Category}}
	}
	if filter.Search != "" {
		query["title"] = bson.M{"$regex": filter.Search, "$options": "i"}
	}

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 10
	}

	total, err := r.collection.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("product repository: count: %w", err)
	}

	cursor, err := r.collection.Find(ctx, query, options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip((filter.Page-1)*filter.Limit).
		SetLimit(filter.Limit))
	if err != nil {
		return nil, 0, fmt.Errorf("product repository: list: %w", err)
	}
	defer cursor.Close(ctx)

	products := []models.Product{}
	if err := cursor.All(ctx, &products); err != nil {
		return nil, 0, fmt.Errorf("product repository: decode list: %w", err)
	}

	return products, total, nil
}

// GetByNumericID возвращает товар по его числовому идентификатору.
func (r *ProductRepository) GetByNumericID(ctx context.Context, id int) (*models.Product, error) {
	var product models.Product
	err := r.collection.FindOne(ctx, bson.M{"id": id}).Decode(&product)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("product repository: get by id: %w", err)
	}

	return &product, nil
}

// Update частично обновляет товар через $set и возвращает обновлённую версию.
func (r *ProductRepository) Update(ctx context.Context, id int, fields bson.M) (*models.Product, error) {
	delete(fields, "_id")
	fields["updatedAt"] = time.Now()

	var updated models.Product
	err := r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"id": id},
		bson.M{"$set": fields},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("product repository: update: %w", err)
	}

	return &updated, nil
}

// Delete удаляет товар по числовому идентификатору.
func (r *ProductRepository) Delete(ctx context.Context, id int) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("product repository: delete: %w", err)
	}
	if res.DeletedCount == 0 {
		return ErrProductNotFound
	}

	return nil
}
