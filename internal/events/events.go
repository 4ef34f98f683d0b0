// Package events publishes domain events about recorded exercises.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"

	"FITTRACK_BACK-END/internal/models"
)

// ExerciseRecordedType is the event type header value.
const ExerciseRecordedType = "exercise.recorded"

// Publisher emits exercise events.
type Publisher interface {
	PublishExerciseRecorded(ctx context.Context, exercises ...models.Exercise) error
	Close() error
}

// ExerciseRecorded is the JSON payload written for every stored row.
type ExerciseRecorded struct {
	ExerciseID   string    `json:"exercise_id"`
	UserID       string    `json:"user_id"`
	Exercise     string    `json:"exercise"`
	ExerciseType string    `json:"exercise_type"`
	Sets         int       `json:"sets"`
	Reps         int       `json:"reps"`
	Weight       float64   `json:"weight"`
	Volume       float64   `json:"volume"`
	Time         int       `json:"time"`
	Mood         string    `json:"mood"`
	Source       string    `json:"source"`
	RecordedAt   time.Time `json:"recorded_at"`
}

// NewExerciseRecorded builds the payload for one row.
func NewExerciseRecorded(e models.Exercise) ExerciseRecorded {
	return ExerciseRecorded{
		ExerciseID:   e.ID.String(),
		UserID:       e.UserID.String(),
		Exercise:     e.Exercise,
		ExerciseType: e.ExerciseType,
		Sets:         e.Sets,
		Reps:         e.Reps,
		Weight:       e.Weight,
		Volume:       e.Volume(),
		Time:         e.Time,
		Mood:         e.Mood,
		Source:       e.Source,
		RecordedAt:   e.CreatedAt.UTC(),
	}
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaPublisher writes events to a Kafka topic keyed by user id.
type KafkaPublisher struct {
	writer messageWriter
}

// NewKafkaPublisher creates a publisher for the given brokers and topic.
func NewKafkaPublisher(brokers []string, topic string) *KafkaPublisher {
	return &KafkaPublisher{writer: &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireAll,
		AllowAutoTopicCreation: true,
		BatchTimeout:           10 * time.Millisecond,
	}}
}

// PublishExerciseRecorded writes one message per exercise.
func (p *KafkaPublisher) PublishExerciseRecorded(ctx context.Context, exercises ...models.Exercise) error {
	if len(exercises) == 0 {
		return nil
	}
	msgs := make([]kafka.Message, 0, len(exercises))
	for _, e := range exercises {
		value, err := json.Marshal(NewExerciseRecorded(e))
		if err != nil {
			return fmt.Errorf("marshal event: %w", err)
		}
		msgs = append(msgs, kafka.Message{
			Key:   []byte(e.UserID.String()),
			Value: value,
			Time:  e.CreatedAt,
			Headers: []kafka.Header{
				{Key: "type", Value: []byte(ExerciseRecordedType)},
			},
		})
	}
	if err := p.writer.WriteMessages(ctx, msgs...); err != nil {
		return fmt.Errorf("write kafka messages: %w", err)
	}
	return nil
}

// Close flushes and releases the writer.
func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

// NoopPublisher drops every event. Used when no brokers are configured.
type NoopPublisher struct{}

// PublishExerciseRecorded does nothing.
func (NoopPublisher) PublishExerciseRecorded(context.Context, ...models.Exercise) error { return nil }

// Close does nothing.
func (NoopPublisher) Close() error { return nil }
