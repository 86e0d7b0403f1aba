// Package controllers holds the HTTP handlers. Handlers validate
// input, load rows and delegate; status propagation always goes
// through the cascade engine.
package controllers

import (
	"github.com/hibiken/asynq"

	"github.com/LearnPlayAI/HeartCart-sub006/storage"
)

// Shared by handlers that run cascades; wired once at startup (or by
// tests, with the in-memory store).
var (
	Store storage.Store
	Queue *asynq.Client
)

// Init wires the persistence gateway and the task queue client.
// Queue may be nil when no worker is running.
func Init(store storage.Store, queue *asynq.Client) {
	Store = store
	Queue = queue
}
