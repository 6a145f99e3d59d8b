// Package mongo implements the persistence gateway against MongoDB. All
// driver errors are translated into domain errors at this boundary; nothing
// above it sees a raw driver failure or an ObjectID.
package mongo

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	// networkTimeout bounds connect and socket waits so a slow network
	// cannot block the process indefinitely.
	networkTimeout = 30 * time.Second
	// opTimeout bounds each individual store operation.
	opTimeout = 10 * time.Second
)

// Config captures the settings required to establish a MongoDB connection.
// URI wins when set; otherwise the connection string is built from the
// cluster credentials.
type Config struct {
	URI      string
	Username string
	Password string
	Cluster  string
	AppName  string
	Database string
}

// BuildURI assembles the mongodb+srv connection string from the
// environment-provided credentials, query-escaping the password.
func BuildURI(username, password, cluster, appName string) string {
	return fmt.Sprintf(
		"mongodb+srv://%s:%s@%s.mongodb.net/?retryWrites=true&w=majority&appName=%s",
		username, url.QueryEscape(password), cluster, appName,
	)
}

// Connect establishes a MongoDB client with bounded connect/socket timeouts,
// verifies connectivity with a ping, and returns both the client and the
// selected database.
func Connect(ctx context.Context, cfg Config) (*mongo.Client, *mongo.Database, error) {
	uri := cfg.URI
	if uri == "" {
		uri = BuildURI(cfg.Username, cfg.Password, cfg.Cluster, cfg.AppName)
	}

	connectCtx, cancel := context.WithTimeout(ctx, networkTimeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().
		ApplyURI(uri).
		SetConnectTimeout(networkTimeout).
		SetSocketTimeout(networkTimeout))
	if err != nil {
		return nil, nil, fmt.Errorf("mongo connect: %w", err)
	}

	if err := client.Ping(connectCtx, nil); err != nil {
		_ = client.Disconnect(connectCtx)
		return nil, nil, fmt.Errorf("mongo ping: %w", err)
	}

	return client, client.Database(cfg.Database), nil
}
