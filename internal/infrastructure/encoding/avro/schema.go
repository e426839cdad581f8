package avro

// OrderEventSchema is the Avro schema for order lifecycle events.
// Optional fields use ["null", type] unions so deletion events can
// omit the snapshot data that only exists on placement.
const OrderEventSchema = `{
	"type": "record",
	"name": "OrderEvent",
	"namespace": "com.seyrashki.order",
	"fields": [
		{"name": "event_id", "type": "string"},
		{"name": "event_type", "type": "string"},
		{"name": "order_id", "type": "string"},
		{"name": "user_id", "type": ["null", "string"], "default": null},
		{"name": "status", "type": ["null", "string"], "default": null},
		{"name": "total_price", "type": ["null", "string"], "default": null},
		{"name": "item_ids", "type": ["null", {
			"type": "array",
			"items": "string"
		}], "default": null},
		{"name": "occurred_at", "type": "string"}
	]
}`
