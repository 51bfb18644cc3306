// Package queue is the seam to the external job transport. Delivery is
// at-least-once and fire-and-forget; consumers must be idempotent, so a
// duplicate enqueue of the same job id is harmless.
package queue

import (
	"encoding/json"
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Enqueuer hands a job to the execution transport
type Enqueuer interface {
	Enqueue(channel string, jobID uuid.UUID, payload json.RawMessage) error
	Close()
}

// Message is one queued dispatch
type Message struct {
	Channel string          `json:"channel"`
	JobID   uuid.UUID       `json:"job_id"`
	Payload json.RawMessage `json:"payload"`
}

// InProcess is a buffered in-process queue. It stands in for a real broker;
// consumers drain Messages() exactly like they would a broker subscription.
type InProcess struct {
	messages chan Message
	once     sync.Once
}

// NewInProcess creates an in-process queue with the given buffer size
func NewInProcess(bufferSize int) *InProcess {
	if bufferSize <= 0 {
		bufferSize = 256
	}
	return &InProcess{messages: make(chan Message, bufferSize)}
}

// Enqueue places a message on the queue. A full buffer drops the message with
// a warning; the dispatch sweep re-enqueues jobs still pending, so nothing is
// lost permanently.
func (q *InProcess) Enqueue(channel string, jobID uuid.UUID, payload json.RawMessage) error {
	msg := Message{Channel: channel, JobID: jobID, Payload: payload}
	select {
	case q.messages <- msg:
		return nil
	default:
		logrus.WithFields(logrus.Fields{"channel": channel, "job_id": jobID}).
			Warn("queue buffer full, dropping message until next sweep")
		return nil
	}
}

// Messages exposes the consumer side of the queue
func (q *InProcess) Messages() <-chan Message {
	return q.messages
}

// Close shuts the queue; safe to call more than once
func (q *InProcess) Close() {
	q.once.Do(func() { close(q.messages) })
}
