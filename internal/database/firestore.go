// Package database manages the shared Firestore connection.
package database

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"cloud.google.com/go/firestore"
	"github.com/sirupsen/logrus"
	"google.golang.org/api/option"

	"request-capture-api/internal/config"
)

// ErrMissingCredential is returned when no service-account credential is
// configured. This is an unrecoverable startup condition.
var ErrMissingCredential = errors.New("firestore service-account credential is not configured")

// serviceAccount is the subset of the credential JSON the connector needs.
type serviceAccount struct {
	Type      string `json:"type"`
	ProjectID string `json:"project_id"`
}

// Connector lazily establishes a single shared Firestore client. The client
// is created once on first use, reused by all subsequent requests, and never
// explicitly torn down for the lifetime of the process.
//
// Firestore in Go has no per-connection switch for dropping undefined
// fields; the equivalent behavior comes from omitempty tags on the capture
// record, so absent values are omitted from written documents.
type Connector struct {
	cfg config.FirestoreConfig

	once   sync.Once
	client *firestore.Client
	err    error
}

// NewConnector creates a connector. No connection is made until Client is
// called.
func NewConnector(cfg config.FirestoreConfig) *Connector {
	return &Connector{cfg: cfg}
}

// Client returns the shared Firestore client, dialing on first call. Every
// later call returns the same client with no new handshake.
func (c *Connector) Client(ctx context.Context) (*firestore.Client, error) {
	c.once.Do(func() {
		c.client, c.err = c.connect(ctx)
	})
	return c.client, c.err
}

func (c *Connector) connect(ctx context.Context) (*firestore.Client, error) {
	if c.cfg.CredentialsJSON == "" {
		return nil, ErrMissingCredential
	}

	projectID, err := ProjectIDFromCredentials([]byte(c.cfg.CredentialsJSON))
	if err != nil {
		return nil, err
	}

	opts := []option.ClientOption{
		option.WithCredentialsJSON([]byte(c.cfg.CredentialsJSON)),
	}
	if c.cfg.Endpoint != "" {
		opts = append(opts, option.WithEndpoint(c.cfg.Endpoint))
	}

	client, err := firestore.NewClient(ctx, projectID, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to firestore: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"project_id": projectID,
		"collection": c.cfg.Collection,
	}).Info("Firestore connection established")

	return client, nil
}

// Close releases the shared client. Only used by the long-running server on
// shutdown; Lambda invocations keep the client warm.
func (c *Connector) Close() error {
	if c.client == nil {
		return nil
	}
	return c.client.Close()
}

// ProjectIDFromCredentials parses a service-account credential and returns
// its project ID.
func ProjectIDFromCredentials(raw []byte) (string, error) {
	var sa serviceAccount
	if err := json.Unmarshal(raw, &sa); err != nil {
		return "", fmt.Errorf("malformed service-account credential: %w", err)
	}
	if sa.ProjectID == "" {
		return "", errors.New("service-account credential has no project_id")
	}
	return sa.ProjectID, nil
}
