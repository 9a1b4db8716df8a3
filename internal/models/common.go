// internal/models/common.go
package models

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// Identifier fields. The store owns InternalIDField; responses only ever carry ExternalIDField.
const (
	InternalIDField = "_id"
	ExternalIDField = "id"
)

// Document is a schemaless record as persisted in a collection.
type Document map[string]interface{}

func (d Document) Value() (driver.Value, error) {
	if d == nil {
		return nil, nil
	}
	return json.Marshal(d)
}

func (d *Document) Scan(value interface{}) error {
	if value == nil {
		*d = nil
		return nil
	}

	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into Document", value)
	}

	// Keep integers (paise, stock, rating) as exact numbers instead of float64.
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	return dec.Decode(d)
}

// Clone returns a shallow copy; nested values are shared.
func (d Document) Clone() Document {
	if d == nil {
		return nil
	}
	out := make(Document, len(d)+1)
	for k, v := range d {
		out[k] = v
	}
	return out
}

// String returns the field as a string when it holds one.
func (d Document) String(field string) (string, bool) {
	s, ok := d[field].(string)
	return s, ok
}

// Kind names an entity type. Each kind is persisted in the collection of the same name.
type Kind string

const (
	KindCategory Kind = "category"
	KindVendor   Kind = "vendor"
	KindProduct  Kind = "product"
	KindReview   Kind = "review"
	KindOrder    Kind = "order"
)

// Kinds lists every entity kind in dependency order.
var Kinds = []Kind{KindCategory, KindVendor, KindProduct, KindReview, KindOrder}

func (k Kind) Collection() string {
	return string(k)
}

// Enums
type MembershipStatus string

const (
	MembershipStatusActive  MembershipStatus = "active"
	MembershipStatusExpired MembershipStatus = "expired"
)

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusPaid       OrderStatus = "paid"
	OrderStatusDispatched OrderStatus = "dispatched"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusRefunded   OrderStatus = "refunded"
)
