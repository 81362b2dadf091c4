package server

import (
	"context"
	"testing"

	"request-capture-api/internal/config"
)

func TestNewContainer_MissingCredential(t *testing.T) {
	cfg := &config.Config{
		Environment: "test",
		Firestore: config.FirestoreConfig{
			Collection: "captured_requests",
		},
	}

	if _, err := NewContainer(context.Background(), cfg); err == nil {
		t.Error("expected error for missing credential, got none")
	}
}

func TestNewContainer_MalformedCredential(t *testing.T) {
	cfg := &config.Config{
		Environment: "test",
		Firestore: config.FirestoreConfig{
			CredentialsJSON: "not json",
			Collection:      "captured_requests",
		},
	}

	if _, err := NewContainer(context.Background(), cfg); err == nil {
		t.Error("expected error for malformed credential, got none")
	}
}
