package models

import (
	"reflect"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Частичное обновление передаёт ключи JSON-запроса в $set без перевода,
// поэтому имя поля в документе обязано совпадать с именем в API. Расхождение
// тегов превращает обновление в запись поля-сироты, которое модель никогда
// не прочитает.
func TestProduct_BSONTagsMatchJSON(t *testing.T) {
	for _, typ := range []reflect.Type{
		reflect.TypeOf(Product{}),
		reflect.TypeOf(ChildAttribute{}),
		reflect.TypeOf(PriceRecords{}),
	} {
		for i := 0; i < typ.NumField(); i++ {
			field := typ.Field(i)
			bsonName, _, _ := strings.Cut(field.Tag.Get("bson"), ",")
			jsonName, _, _ := strings.Cut(field.Tag.Get("json"), ",")
			if jsonName == "-" {
				// MongoID наружу не отдаётся, в документе живёт как _id.
				continue
			}
			assert.Equal(t, jsonName, bsonName, "%s.%s", typ.Name(), field.Name)
		}
	}
}

func TestIsUpdatableProductField(t *testing.T) {
	updatable := []string{
		"inStock", "plpImages", "priceRecords", "altText",
		"childAttributes", "title", "categories", "discount", "badge_text",
	}
	for _, name := range updatable {
		assert.True(t, IsUpdatableProductField(name), name)
	}

	rejected := []string{
		"_id", "id", "url", "createdAt", "updatedAt", // неизменяемые
		"in_stock", "price", "whatever", "", // вне схемы
	}
	for _, name := range rejected {
		assert.False(t, IsUpdatableProductField(name), name)
	}
}
