// Package bus is a thin typed wrapper over an in-process publish/subscribe
// bus. It replaces ambient global events with an explicit object owned by the
// application root: components subscribe to mode changes here instead of
// watching shared state.
package bus

import (
	evbus "github.com/asaskevich/EventBus"
)

const topicDataMode = "datamode:changed"

// Bus carries application-wide notifications between components of one
// process. Cross-process delivery is layered on top by the datamode store's
// redis relay.
type Bus struct {
	inner evbus.Bus
}

func New() *Bus {
	return &Bus{inner: evbus.New()}
}

// PublishModeChange notifies every subscriber that the data mode changed.
func (b *Bus) PublishModeChange(mode string) {
	b.inner.Publish(topicDataMode, mode)
}

// SubscribeModeChange registers fn to run on every mode change. Callbacks
// run asynchronously so a slow subscriber cannot stall the publisher.
func (b *Bus) SubscribeModeChange(fn func(mode string)) error {
	return b.inner.SubscribeAsync(topicDataMode, fn, false)
}

// UnsubscribeModeChange removes a previously registered callback.
func (b *Bus) UnsubscribeModeChange(fn func(mode string)) error {
	return b.inner.Unsubscribe(topicDataMode, fn)
}
