// internal/models/schema.go
package models

import "strings"

type FieldType string

const (
	FieldString     FieldType = "string"
	FieldInteger    FieldType = "integer"
	FieldBoolean    FieldType = "boolean"
	FieldURL        FieldType = "url"
	FieldURLList    FieldType = "url_list"
	FieldOrderItems FieldType = "order_items"
)

// Field describes one stored attribute of an entity.
type Field struct {
	Name        string
	Type        FieldType
	Required    bool
	Default     interface{}
	Min         *int64
	Max         *int64
	Enum        []string
	Description string
}

func bound(v int64) *int64 { return &v }

var CategoryFields = []Field{
	{Name: "name", Type: FieldString, Required: true, Description: "Display name of the category (e.g., Banarasi)"},
	{Name: "slug", Type: FieldString, Required: true, Description: "URL-safe unique slug (e.g., banarasi)"},
}

var VendorFields = []Field{
	{Name: "store_name", Type: FieldString, Required: true, Description: "Public store name"},
	{Name: "slug", Type: FieldString, Required: true, Description: "URL-safe unique slug for the vendor"},
	{Name: "logo_url", Type: FieldURL, Description: "Public logo URL"},
	{Name: "about", Type: FieldString, Description: "Short story/about the vendor"},
	{Name: "verified", Type: FieldBoolean, Default: false, Description: "Whether vendor is verified"},
	{
		Name:    "membership_status",
		Type:    FieldString,
		Default: string(MembershipStatusActive),
		Enum:    []string{string(MembershipStatusActive), string(MembershipStatusExpired)},
	},
	{Name: "membership_renewal_date", Type: FieldString, Description: "ISO date string for renewal"},
	{Name: "region", Type: FieldString, Description: "Vendor region/city/state"},
}

var ProductFields = []Field{
	{Name: "title", Type: FieldString, Required: true},
	{Name: "slug", Type: FieldString, Required: true},
	{Name: "description", Type: FieldString},
	{Name: "vendor_slug", Type: FieldString, Required: true, Description: "FK to Vendor.slug"},
	{Name: "price_in_paise", Type: FieldInteger, Required: true, Min: bound(0)},
	{Name: "saree_type", Type: FieldString, Required: true, Description: "Category name or type"},
	{Name: "color", Type: FieldString},
	{Name: "material", Type: FieldString},
	{Name: "occasion", Type: FieldString},
	{Name: "care", Type: FieldString},
	{Name: "images", Type: FieldURLList, Default: []string{}},
	{Name: "stock", Type: FieldInteger, Default: int64(10), Min: bound(0)},
}

var ReviewFields = []Field{
	{Name: "product_slug", Type: FieldString, Required: true},
	{Name: "rating", Type: FieldInteger, Required: true, Min: bound(1), Max: bound(5)},
	{Name: "comment", Type: FieldString},
	{Name: "author_name", Type: FieldString},
}

// OrderItemFields describes each element of Order.items.
var OrderItemFields = []Field{
	{Name: "product_slug", Type: FieldString, Required: true},
	{Name: "quantity", Type: FieldInteger, Required: true, Min: bound(1)},
	{Name: "price_in_paise", Type: FieldInteger, Required: true, Min: bound(0)},
}

var OrderFields = []Field{
	{Name: "buyer_name", Type: FieldString, Required: true},
	{Name: "buyer_email", Type: FieldString, Required: true},
	{Name: "vendor_slug", Type: FieldString, Required: true},
	{Name: "items", Type: FieldOrderItems, Required: true, Description: "List of items with product_slug, quantity, price_in_paise"},
	{Name: "total_in_paise", Type: FieldInteger, Required: true, Min: bound(0)},
	{
		Name:    "status",
		Type:    FieldString,
		Default: string(OrderStatusPending),
		Enum: []string{
			string(OrderStatusPending),
			string(OrderStatusPaid),
			string(OrderStatusDispatched),
			string(OrderStatusDelivered),
			string(OrderStatusRefunded),
		},
	},
}

var schemas = map[Kind][]Field{
	KindCategory: CategoryFields,
	KindVendor:   VendorFields,
	KindProduct:  ProductFields,
	KindReview:   ReviewFields,
	KindOrder:    OrderFields,
}

// FieldsOf returns the field table for kind.
func FieldsOf(kind Kind) ([]Field, bool) {
	fields, ok := schemas[kind]
	return fields, ok
}

// JSONSchema renders the field table of kind as a JSON-schema style object for the
// database viewer.
func JSONSchema(kind Kind) map[string]interface{} {
	fields, ok := schemas[kind]
	if !ok {
		return nil
	}
	title := string(kind)
	if title != "" {
		title = strings.ToUpper(title[:1]) + title[1:]
	}
	out := objectSchema(fields)
	out["title"] = title
	return out
}

func objectSchema(fields []Field) map[string]interface{} {
	properties := make(map[string]interface{}, len(fields))
	required := []string{}
	for _, f := range fields {
		properties[f.Name] = propertySchema(f)
		if f.Required {
			required = append(required, f.Name)
		}
	}
	return map[string]interface{}{
		"type":       "object",
		"properties": properties,
		"required":   required,
	}
}

func propertySchema(f Field) map[string]interface{} {
	p := map[string]interface{}{}
	switch f.Type {
	case FieldString:
		p["type"] = "string"
	case FieldInteger:
		p["type"] = "integer"
	case FieldBoolean:
		p["type"] = "boolean"
	case FieldURL:
		p["type"] = "string"
		p["format"] = "uri"
	case FieldURLList:
		p["type"] = "array"
		p["items"] = map[string]interface{}{"type": "string", "format": "uri"}
	case FieldOrderItems:
		p["type"] = "array"
		p["items"] = objectSchema(OrderItemFields)
	}
	if f.Min != nil {
		p["minimum"] = *f.Min
	}
	if f.Max != nil {
		p["maximum"] = *f.Max
	}
	if len(f.Enum) > 0 {
		p["enum"] = f.Enum
	}
	if f.Default != nil {
		p["default"] = f.Default
	}
	if f.Description != "" {
		p["description"] = f.Description
	}
	return p
}
