package loader

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"synthkit/internal/engine"
)

// MongoLoader writes datasets into MongoDB collections, one collection per
// table. Rows map straight onto documents.
type MongoLoader struct {
	client   *mongo.Client
	database *mongo.Database
}

// OpenMongo connects to a MongoDB deployment. The database name comes from
// the URL path, falling back to "synthkit".
func OpenMongo(ctx context.Context, url string) (*MongoLoader, error) {
	clientOpts := options.Client().ApplyURI(url)
	client, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		client.Disconnect(ctx)
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	dbName := "synthkit"
	if parts := strings.SplitN(strings.TrimPrefix(url, "mongodb://"), "/", 2); len(parts) == 2 {
		if name, _, _ := strings.Cut(parts[1], "?"); name != "" {
			dbName = name
		}
	}
	return &MongoLoader{client: client, database: client.Database(dbName)}, nil
}

// Close disconnects the client.
func (l *MongoLoader) Close(ctx context.Context) error {
	return l.client.Disconnect(ctx)
}

// LoadTable inserts rows as documents into the collection named table.
func (l *MongoLoader) LoadTable(ctx context.Context, table string, rows engine.Dataset) (int, error) {
	if len(rows) == 0 {
		return 0, nil
	}
	docs := make([]any, len(rows))
	for i, row := range rows {
		docs[i] = row
	}
	result, err := l.database.Collection(table).InsertMany(ctx, docs)
	if err != nil {
		return 0, fmt.Errorf("failed to insert into %s: %w", table, err)
	}
	return len(result.InsertedIDs), nil
}

// LoadAll inserts every dataset, stopping at the first failure.
func (l *MongoLoader) LoadAll(ctx context.Context, datasets map[string]engine.Dataset) (map[string]int, error) {
	tables := make([]string, 0, len(datasets))
	for t := range datasets {
		tables = append(tables, t)
	}
	sort.Strings(tables)

	counts := make(map[string]int, len(tables))
	for _, table := range tables {
		n, err := l.LoadTable(ctx, table, datasets[table])
		counts[table] = n
		if err != nil {
			return counts, err
		}
	}
	return counts, nil
}
