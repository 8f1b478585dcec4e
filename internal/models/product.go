package models

import (
	"reflect"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PriceRecords хранит цены товара по поддерживаемым валютам.
type PriceRecords struct {
	INR string `bson:"INR" json:"INR"`
	USD string `bson:"USD" json:"USD"`
	GBP string `bson:"GBP" json:"GBP"`
	SGD string `bson:"SGD" json:"SGD"`
	AED string `bson:"AED" json:"AED"`
}

// ChildAttribute описывает вариант товара (размер/цвет) со своим складом и ценами.
type ChildAttribute struct {
	ID                     int          `bson:"id" json:"id"`
	Size                   string       `bson:"size" json:"size"`
	Stock                  int          `bson:"stock" json:"stock"`
	SKU                    string       `bson:"sku" json:"sku"`
	Color                  string       `bson:"color" json:"color"`
	PriceRecords           PriceRecords `bson:"priceRecords" json:"priceRecords"`
	DiscountedPriceRecords PriceRecords `bson:"discountedPriceRecords" json:"discountedPriceRecords"`
	ShowStockThreshold     bool         `bson:"showStockThreshold" json:"showStockThreshold"`
}

// Product описывает товар каталога. Числовой ID и URL уникальны:
// внешние системы адресуют товары по ним, а не по ObjectID.
//
// Имена полей в документе совпадают с именами в JSON API, поэтому
// частичное обновление может передавать ключи запроса в $set как есть.
type Product struct {
	MongoID                primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	URL                    string             `bson:"url" json:"url"`
	ID                     int                `bson:"id" json:"id"`
	Title                  string             `bson:"title" json:"title"`
	Collections            []string           `bson:"collections,omitempty" json:"collections,omitempty"`
	Collection             string             `bson:"collection,omitempty" json:"collection,omitempty"`
	PLPImages              []string           `bson:"plpImages" json:"plpImages"`
	PLPSliderImages        []string           `bson:"plpSliderImages" json:"plpSliderImages"`
	PriceRecords           PriceRecords       `bson:"priceRecords" json:"priceRecords"`
	DiscountedPriceRecords PriceRecords       `bson:"discountedPriceRecords" json:"discountedPriceRecords"`
	Discount               bool               `bson:"discount" json:"discount"`
	Categories             []string           `bson:"categories" json:"categories"`
	IsNew                  *bool              `bson:"isNew,omitempty" json:"isNew,omitempty"`
	SalesBadgeImage        string             `bson:"salesBadgeImage,omitempty" json:"salesBadgeImage,omitempty"`
	BadgeType              string             `bson:"badgeType,omitempty" json:"badgeType,omitempty"`
	MarkAs                 *string            `bson:"markAs,omitempty" json:"markAs,omitempty"`
	ChildAttributes        []ChildAttribute   `bson:"childAttributes" json:"childAttributes"`
	ProductClass           string             `bson:"productClass" json:"productClass"`
	JustAddedBadge         *string            `bson:"justAddedBadge,omitempty" json:"justAddedBadge,omitempty"`
	InStock                bool               `bson:"inStock" json:"inStock"`
	AltText                string             `bson:"altText" json:"altText"`
	InvisibleFields        []string           `bson:"invisibleFields" json:"invisibleFields"`
	Partner                *string            `bson:"partner,omitempty" json:"partner,omitempty"`
	BadgeText              *string            `bson:"badge_text,omitempty" json:"badge_text,omitempty"`
	Is3DImage              bool               `bson:"is3dimage" json:"is3dimage"`
	CreatedAt              time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt              time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// Поля, которые нельзя трогать через частичное обновление: идентификаторы
// защищены уникальными индексами, метки времени выставляет репозиторий.
var immutableProductFields = map[string]struct{}{
	"_id":       {},
	"id":        {},
	"url":       {},
	"createdAt": {},
	"updatedAt": {},
}

var productFields = collectBSONFields(reflect.TypeOf(Product{}))

func collectBSONFields(t reflect.Type) map[string]struct{} {
	fields := make(map[string]struct{}, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		name, _, _ := strings.Cut(t.Field(i).Tag.Get("bson"), ",")
		if name != "" && name != "-" {
			fields[name] = struct{}{}
		}
	}
	return fields
}

// IsUpdatableProductField сообщает, допустим ли ключ в теле частичного
// обновления товара: поле должно существовать в схеме и быть изменяемым.
func IsUpdatableProductField(name string) bool {
	if _, immutable := immutableProductFields[name]; immutable {
		return false
	}
	_, ok := productFields[name]
	return ok
}
