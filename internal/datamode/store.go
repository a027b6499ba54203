// Package datamode owns the process-wide flag selecting where domain data
// comes from: the in-memory fixture set ("mock") or the remote document
// backend ("remote"). The flag is persisted in redis under a single key and
// every change is broadcast twice: on the in-process bus for components of
// this process, and on a redis channel so sibling processes reload too.
package datamode

import (
	"context"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"restopanel/internal/bus"
)

type Mode string

const (
	Mock   Mode = "mock"
	Remote Mode = "remote"
)

const (
	// Key holds the persisted flag; the literal strings "mock" / "remote".
	Key = "restaurant-panel-data-mode"
	// Channel carries cross-process change notifications.
	Channel = "datamode-changed"
)

// Store persists and toggles the data mode.
type Store struct {
	rdb              *redis.Client
	bus              *bus.Bus
	remoteConfigured bool
}

func NewStore(rdb *redis.Client, b *bus.Bus, remoteConfigured bool) *Store {
	return &Store{rdb: rdb, bus: b, remoteConfigured: remoteConfigured}
}

// Mode reads the persisted flag. Unset, invalid or unreadable values fall
// back to Mock — a broken mode store must never take the panel down.
func (s *Store) Mode() Mode {
	val, err := s.rdb.Get(context.Background(), Key).Result()
	if err != nil {
		if err != redis.Nil {
			log.Warn().Err(err).Msg("datamode: read failed, falling back to mock")
		}
		return Mock
	}
	if Mode(val) == Remote {
		return Remote
	}
	return Mock
}

// SetMode persists the flag and broadcasts the change to every subscriber,
// in-process and cross-process.
func (s *Store) SetMode(ctx context.Context, m Mode) error {
	if m != Mock && m != Remote {
		m = Mock
	}
	if err := s.rdb.Set(ctx, Key, string(m), 0).Err(); err != nil {
		return err
	}
	s.bus.PublishModeChange(string(m))
	if err := s.rdb.Publish(ctx, Channel, string(m)).Err(); err != nil {
		log.Warn().Err(err).Msg("datamode: cross-process publish failed")
	}
	log.Info().Str("mode", string(m)).Msg("data mode changed")
	return nil
}

// Toggle flips the flag and returns the new mode.
func (s *Store) Toggle(ctx context.Context) (Mode, error) {
	next := Mock
	if s.Mode() == Mock {
		next = Remote
	}
	if err := s.SetMode(ctx, next); err != nil {
		return "", err
	}
	return next, nil
}

// RemoteConfigured reports whether the environment provides a remote backend
// at all. Selecting remote mode without one leaves services returning
// BackendUnavailableError.
func (s *Store) RemoteConfigured() bool { return s.remoteConfigured }

// Listen relays mode changes published by other processes into this
// process's bus. It blocks until ctx is cancelled; run it in a goroutine.
func (s *Store) Listen(ctx context.Context) {
	sub := s.rdb.Subscribe(ctx, Channel)
	defer sub.Close()

	ch := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			log.Debug().Str("mode", msg.Payload).Msg("datamode: change received from peer")
			s.bus.PublishModeChange(msg.Payload)
		}
	}
}
