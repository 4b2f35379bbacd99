package schema

import "time"

const CartEventSchemaTextV1 = `{
	"type": "record",
	"namespace": "storefront",
	"name": "cart_event",
	"fields": [
		{"name": "action", "type": "string"},
		{"name": "product_id", "type": "long"},
		{"name": "title", "type": "string"},
		{"name": "price", "type": "string"},
		{"name": "quantity", "type": "long"},
		{"name": "total_quantity", "type": "long"},
		{"name": "occurred_at", "type": {"type": "long", "logicalType": "timestamp-millis"}}
	]
}`

// CartEventV1 carries Price as a decimal string to keep it exact.
type CartEventV1 struct {
	Action        string    `avro:"action"`
	ProductID     int64     `avro:"product_id"`
	Title         string    `avro:"title"`
	Price         string    `avro:"price"`
	Quantity      int64     `avro:"quantity"`
	TotalQuantity int64     `avro:"total_quantity"`
	OccurredAt    time.Time `avro:"occurred_at"`
}
