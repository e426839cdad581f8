package avro

import (
	"time"

	"github.com/google/uuid"

	domain "github.com/shehanwijeyaweera/seyrashki-mobile-api/internal/domain/order"
)

const (
	EventOrderPlaced  = "order.placed"
	EventOrderDeleted = "order.deleted"
)

// OrderPlacedNative builds the goavro native map for a placement
// event. Union values must be wrapped as map[string]interface{}{"type": value}.
func OrderPlacedNative(o *domain.Order) map[string]interface{} {
	itemIDs := make([]interface{}, 0, len(o.ItemIDs))
	for _, id := range o.ItemIDs {
		itemIDs = append(itemIDs, id)
	}

	return map[string]interface{}{
		"event_id":    uuid.NewString(),
		"event_type":  EventOrderPlaced,
		"order_id":    o.ID,
		"user_id":     map[string]interface{}{"string": o.UserID},
		"status":      map[string]interface{}{"string": o.Status.String()},
		"total_price": map[string]interface{}{"string": o.TotalPrice.StringFixed(2)},
		"item_ids":    map[string]interface{}{"array": itemIDs},
		"occurred_at": time.Now().UTC().Format(time.RFC3339),
	}
}

// OrderDeletedNative builds the goavro native map for a deletion
// event. Snapshot fields stay null.
func OrderDeletedNative(orderID string) map[string]interface{} {
	return map[string]interface{}{
		"event_id":    uuid.NewString(),
		"event_type":  EventOrderDeleted,
		"order_id":    orderID,
		"user_id":     nil,
		"status":      nil,
		"total_price": nil,
		"item_ids":    nil,
		"occurred_at": time.Now().UTC().Format(time.RFC3339),
	}
}
