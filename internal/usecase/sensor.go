package usecase

import (
	"log/slog"
	"reflect"

	"github.com/m-mizutani/goerr/v2"

	"CivicWatch/internal/domain"
	"CivicWatch/internal/ports"
)

// Sensor publishes air-quality readings to its subscribers.
// It is not safe for concurrent use.
type Sensor struct {
	subscribers []ports.Subscriber
	current     domain.Reading
	published   bool
	logger      *slog.Logger
}

// NewSensor builds a sensor with no subscribers.
func NewSensor(logger *slog.Logger) *Sensor {
	return &Sensor{logger: logger}
}

// Attach appends sub; attaching the same subscriber twice notifies it twice.
func (s *Sensor) Attach(sub ports.Subscriber) {
	s.subscribers = append(s.subscribers, sub)
	s.debug("subscriber attached", "subscriber", sub.Name(), "total", len(s.subscribers))
}

// Detach removes the first entry equal to sub, if any.
// Subscribers whose dynamic type is not comparable never match.
func (s *Sensor) Detach(sub ports.Subscriber) {
	for i, existing := range s.subscribers {
		if sameSubscriber(existing, sub) {
			s.subscribers = append(s.subscribers[:i], s.subscribers[i+1:]...)
			s.debug("subscriber detached", "subscriber", sub.Name(), "total", len(s.subscribers))
			return
		}
	}
}

// Len returns the number of attached subscribers.
func (s *Sensor) Len() int {
	return len(s.subscribers)
}

// Current returns the last published reading.
func (s *Sensor) Current() (domain.Reading, bool) {
	return s.current, s.published
}

// Publish stores reading and notifies every subscriber in attach order.
// The first subscriber error stops the dispatch; later subscribers are skipped.
func (s *Sensor) Publish(reading domain.Reading) error {
	s.current = reading
	s.published = true

	s.debug("publish reading", "reading", int(reading), "subscribers", len(s.subscribers))
	for i, sub := range s.subscribers {
		if err := sub.Receive(reading); err != nil {
			return goerr.Wrap(err, "notify subscriber",
				goerr.V("subscriber", sub.Name()),
				goerr.V("reading", int(reading)),
				goerr.V("position", i),
			)
		}
	}
	return nil
}

func sameSubscriber(a, b ports.Subscriber) bool {
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb {
		return false
	}
	if ta != nil && !ta.Comparable() {
		return false
	}
	return a == b
}

func (s *Sensor) debug(msg string, args ...interface{}) {
	if s.logger != nil {
		s.logger.Debug(msg, args...)
	}
}
