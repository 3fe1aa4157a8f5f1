package usecase

// EventPusher delivers realtime events to a connected user. Pushes are
// best-effort and happen after the backing write has committed.
type EventPusher interface {
	SendEvent(userID string, eventType string, payload interface{})
}
