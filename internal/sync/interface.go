package sync

// Publisher is the write side of the hub, consumed by use cases that mutate
// tasks.
type Publisher interface {
	// Publish delivers the event to every open session of the given user.
	// It never blocks: slow sessions drop events instead of stalling writes.
	Publish(userID string, event Event)
}
