package server

import (
	"context"
	"fmt"

	"request-capture-api/internal/config"
	"request-capture-api/internal/database"
	fsrepo "request-capture-api/internal/repositories/firestore"
	"request-capture-api/internal/services"
)

// Container holds all application dependencies
type Container struct {
	Config         *config.Config
	CaptureService services.CaptureService

	connector *database.Connector
}

// NewContainer creates a new dependency injection container. It establishes
// the shared Firestore connection up front so a missing or malformed
// credential fails the process at startup, not on the first request.
func NewContainer(ctx context.Context, cfg *config.Config) (*Container, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	connector := database.NewConnector(cfg.Firestore)
	client, err := connector.Client(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to document store: %w", err)
	}

	repo := fsrepo.NewCaptureRepository(client, cfg.Firestore.Collection)

	return &Container{
		Config:         cfg,
		CaptureService: services.NewCaptureService(repo),
		connector:      connector,
	}, nil
}

// Close releases the container's resources
func (c *Container) Close() error {
	if c.connector != nil {
		return c.connector.Close()
	}
	return nil
}
