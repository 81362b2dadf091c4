package lambda

import (
	"context"
	"sync"
	"time"

	"request-capture-api/internal/config"
	"request-capture-api/pkg/server"
)

// ConnectionManager keeps the service container, and with it the shared
// Firestore client, alive across warm serverless invocations.
type ConnectionManager struct {
	container   *server.Container
	lastUsed    time.Time
	mu          sync.RWMutex
	initialized bool
	config      *config.Config
}

var (
	globalConnectionManager *ConnectionManager
	connectionManagerOnce   sync.Once
)

// GetConnectionManager returns the global connection manager instance
func GetConnectionManager() *ConnectionManager {
	connectionManagerOnce.Do(func() {
		globalConnectionManager = &ConnectionManager{}
	})
	return globalConnectionManager
}

// Initialize initializes the connection manager with configuration. It is
// idempotent: once a container exists, later calls return immediately.
func (cm *ConnectionManager) Initialize(ctx context.Context, cfg *config.Config) error {
	cm.mu.Lock()
	defer cm.mu.Unlock()

	if cm.initialized && cm.container != nil {
		return nil
	}

	container, err := server.NewContainer(ctx, cfg)
	if err != nil {
		return err
	}

	cm.config = cfg
	cm.container = container
	cm.lastUsed = time.Now()
	cm.initialized = true
	return nil
}

// GetContainer returns the service container, initializing if necessary
func (cm *ConnectionManager) GetContainer(ctx context.Context) (*server.Container, error) {
	cm.mu.RLock()
	if cm.initialized && cm.container != nil {
		cm.lastUsed = time.Now()
		container := cm.container
		cm.mu.RUnlock()
		return container, nil
	}
	cm.mu.RUnlock()

	cfg := cm.config
	if cfg == nil {
		loaded, err := config.GetOptimizedConfig()
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if err := cm.Initialize(ctx, cfg); err != nil {
		return nil, err
	}

	cm.mu.RLock()
	defer cm.mu.RUnlock()
	return cm.container, nil
}

// IsHealthy checks if the connection manager is healthy
func (cm *ConnectionManager) IsHealthy() bool {
	cm.mu.RLock()
	defer cm.mu.RUnlock()

	if !cm.initialized || cm.container == nil {
		return false
	}

	// Consider the connection stale after 5 idle minutes
	return time.Since(cm.lastUsed) < 5*time.Minute
}

// Cleanup releases the container and its connections
func (cm *ConnectionManager) Cleanup() error {
	cm.mu.Lock()
	defer cm.mu.Unlock()

	if cm.container != nil {
		if err := cm.container.Close(); err != nil {
			return err
		}
		cm.container = nil
	}

	cm.initialized = false
	return nil
}
