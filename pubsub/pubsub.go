// Package pubsub delivers room change notifications between server
// instances (NATS) or within a single process.
package pubsub

import (
	"sync"

	"github.com/nats-io/nats.go"
)

type NATS struct {
	Conn *nats.Conn
}

func NewNATS(conn *nats.Conn) *NATS {
	return &NATS{Conn: conn}
}

func (ps *NATS) Pub(topic string, data []byte) error {
	return ps.Conn.Publish(topic, data)
}

func (ps *NATS) Sub(topic string, handler func(data []byte)) (func() error, error) {
	sub, err := ps.Conn.Subscribe(topic, func(msg *nats.Msg) {
		handler(msg.Data)
	})
	if err != nil {
		return nil, err
	}

	return sub.Unsubscribe, nil
}

// InProcess delivers synchronously on the publishing goroutine, so
// handlers must not block.
type InProcess struct {
	mu     sync.RWMutex
	nextID uint64
	subs   map[string]map[uint64]func([]byte)
}

func NewInProcess() *InProcess {
	return &InProcess{
		subs: map[string]map[uint64]func([]byte){},
	}
}

func (ps *InProcess) Pub(topic string, data []byte) error {
	ps.mu.RLock()
	handlers := make([]func([]byte), 0, len(ps.subs[topic]))
	for _, h := range ps.subs[topic] {
		handlers = append(handlers, h)
	}
	ps.mu.RUnlock()

	for _, h := range handlers {
		h(data)
	}

	return nil
}

func (ps *InProcess) Sub(topic string, handler func(data []byte)) (func() error, error) {
	ps.mu.Lock()
	defer ps.mu.Unlock()

	ps.nextID++
	subID := ps.nextID

	if ps.subs[topic] == nil {
		ps.subs[topic] = map[uint64]func([]byte){}
	}
	ps.subs[topic][subID] = handler

	var once sync.Once
	return func() error {
		once.Do(func() {
			ps.mu.Lock()
			defer ps.mu.Unlock()

			delete(ps.subs[topic], subID)
			if len(ps.subs[topic]) == 0 {
				delete(ps.subs, topic)
			}
		})
		return nil
	}, nil
}
