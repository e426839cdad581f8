package order

// Status labels the order lifecycle. Transitions are forward-only:
// pending -> processed -> shipped -> delivered.
type Status string

const (
	StatusPending   Status = "pending"
	StatusProcessed Status = "processed"
	StatusShipped   Status = "shipped"
	StatusDelivered Status = "delivered"
)

var statusRank = map[Status]int{
	StatusPending:   0,
	StatusProcessed: 1,
	StatusShipped:   2,
	StatusDelivered: 3,
}

// ParseStatus validates a raw status value. An empty value defaults
// to pending.
func ParseStatus(raw string) (Status, error) {
	if raw == "" {
		return StatusPending, nil
	}
	s := Status(raw)
	if _, ok := statusRank[s]; !ok {
		return "", ErrInvalidStatus
	}
	return s, nil
}

// CanTransitionTo reports whether moving to next would keep the
// lifecycle monotonic. Setting the same status again is allowed.
func (s Status) CanTransitionTo(next Status) bool {
	from, ok := statusRank[s]
	if !ok {
		return false
	}
	to, ok := statusRank[next]
	if !ok {
		return false
	}
	return to >= from
}

func (s Status) String() string {
	return string(s)
}
