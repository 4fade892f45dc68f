package database

import (
	"context"
	"time"

	"github.com/studevo/Studevo/pkg/logger"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.mongodb.org/mongo-driver/x/mongo/driver/connstring"
)

// NewMongoConnection connects and pings the deployment. The database named in the
// URI path wins over fallbackDB.
func NewMongoConnection(ctx context.Context, uri, fallbackDB string) (*mongo.Database, error) {
	connectCtx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(uri))
	if err != nil {
		logger.Log.Errorw("MongoDB connection failed", "error", err)
		return nil, err
	}

	if err := client.Ping(connectCtx, readpref.Primary()); err != nil {
		logger.Log.Errorw("MongoDB ping failed", "error", err)
		_ = client.Disconnect(context.Background())
		return nil, err
	}

	name := fallbackDB
	if cs, err := connstring.ParseAndValidate(uri); err == nil && cs.Database != "" {
		name = cs.Database
	}

	logger.Log.Infow("MongoDB connected", "database", name)
	return client.Database(name), nil
}
