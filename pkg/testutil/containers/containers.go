//go:build integration

// Package containers starts Postgres and Kafka once per test binary and hands
// the same instances to every suite in the package.
package containers

import (
	"sync"
	"testing"
)

type Manager struct {
	mu       sync.Mutex
	postgres *PostgresContainer
	kafka    *KafkaContainer
}

var manager = sync.OnceValue(func() *Manager { return &Manager{} })

// GetManager returns the process-wide manager.
func GetManager() *Manager {
	return manager()
}

// GetPostgres starts Postgres with every migration applied on first use.
// Suites truncate tables between tests instead of restarting it.
func (m *Manager) GetPostgres(t *testing.T) *PostgresContainer {
	t.Helper()
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.postgres == nil {
		m.postgres = NewPostgresContainer(t)
	}
	return m.postgres
}

// GetKafka starts a Kafka-compatible broker on first use.
func (m *Manager) GetKafka(t *testing.T) *KafkaContainer {
	t.Helper()
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.kafka == nil {
		m.kafka = NewKafkaContainer(t)
	}
	return m.kafka
}
