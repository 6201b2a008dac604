// Package events carries domain events from the services to whoever is
// listening: the websocket floor feed, and optionally a RabbitMQ exchange for
// downstream systems.
package events

import (
	"context"
	"log"
)

// Topics follow the "<entity>.<what-happened>" convention used as routing keys.
const (
	TopicJobStatusChanged   = "job.status_changed"
	TopicOperationChanged   = "operation.changed"
	TopicPunchRecorded      = "timeclock.punch_recorded"
	TopicInspectionRecorded = "qc.inspection_recorded"
	TopicEquipmentUsage     = "equipment.usage_logged"
	TopicEquipmentServiced  = "equipment.serviced"
)

// Sink receives serialized domain events. Publishing is best-effort; a sink
// failure never fails the originating mutation.
type Sink interface {
	Publish(ctx context.Context, topic string, payload any) error
}

type multi struct {
	sinks []Sink
}

// Multi fans every event out to each non-nil sink.
func Multi(sinks ...Sink) Sink {
	out := make([]Sink, 0, len(sinks))
	for _, s := range sinks {
		if s != nil {
			out = append(out, s)
		}
	}
	return &multi{sinks: out}
}

func (m *multi) Publish(ctx context.Context, topic string, payload any) error {
	for _, s := range m.sinks {
		if err := s.Publish(ctx, topic, payload); err != nil {
			log.Printf("publish %s failed: %v", topic, err)
		}
	}
	return nil
}
