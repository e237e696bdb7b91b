package backup

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/nikolayk812/klimatshop/internal/repository"
)

// Collections covered by a backup. Cart contents are transient and deliberately
// not included.
var Collections = []string{
	repository.CollectionProducts,
	repository.CollectionProjects,
	repository.CollectionOrders,
	repository.CollectionFeedback,
}

const infoFile = "backup_info.json"

// Manager dumps and loads collections as JSON files on local disk. Documents
// are written in MongoDB extended JSON so timestamps survive a round trip.
type Manager struct {
	db  *mongo.Database
	dir string
	log *zap.SugaredLogger
}

func New(db *mongo.Database, dir string, logger *zap.SugaredLogger) *Manager {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}

	return &Manager{
		db:  db,
		dir: dir,
		log: logger,
	}
}

type Info struct {
	Timestamp   time.Time      `json:"timestamp"`
	Collections map[string]int `json:"collections"`
}

type Status struct {
	Collections map[string]int64 `json:"collections"`
	Total       int64            `json:"total"`
	HasData     bool             `json:"has_data"`
}

// Create dumps every covered collection to <dir>/<collection>.json and writes
// an info file with the timestamp and document counts.
func (m *Manager) Create(ctx context.Context) (Info, error) {
	var zero Info

	if err := os.MkdirAll(m.dir, 0o755); err != nil {
		return zero, fmt.Errorf("os.MkdirAll: %w", err)
	}

	info := Info{
		Timestamp:   time.Now().UTC(),
		Collections: make(map[string]int),
	}

	for _, name := range Collections {
		docs, err := m.exportCollection(ctx, name)
		if err != nil {
			return zero, fmt.Errorf("exportCollection[%s]: %w", name, err)
		}

		if err := m.writeJSON(name+".json", docs); err != nil {
			return zero, fmt.Errorf("writeJSON[%s]: %w", name, err)
		}

		info.Collections[name] = len(docs)
		m.log.Infow("collection exported", "collection", name, "documents", len(docs))
	}

	if err := m.writeJSON(infoFile, info); err != nil {
		return zero, fmt.Errorf("writeJSON[%s]: %w", infoFile, err)
	}

	return info, nil
}

// Restore replaces the contents of every covered collection with the dumped
// documents. Collections whose dump file is missing are skipped with a warning.
func (m *Manager) Restore(ctx context.Context) (map[string]int, error) {
	restored := make(map[string]int)
	found := false

	for _, name := range Collections {
		path := filepath.Join(m.dir, name+".json")

		data, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				m.log.Warnw("backup file not found, skipping", "path", path)
				continue
			}
			return nil, fmt.Errorf("os.ReadFile[%s]: %w", path, err)
		}
		found = true

		count, err := m.importCollection(ctx, name, data)
		if err != nil {
			return nil, fmt.Errorf("importCollection[%s]: %w", name, err)
		}

		restored[name] = count
		m.log.Infow("collection restored", "collection", name, "documents", count)
	}

	if !found {
		return nil, fmt.Errorf("no backup files in %s", m.dir)
	}

	return restored, nil
}

func (m *Manager) GetStatus(ctx context.Context) (Status, error) {
	status := Status{
		Collections: make(map[string]int64),
	}

	for _, name := range Collections {
		count, err := m.db.Collection(name).CountDocuments(ctx, bson.M{})
		if err != nil {
			return Status{}, fmt.Errorf("CountDocuments[%s]: %w", name, err)
		}

		status.Collections[name] = count
		status.Total += count
	}

	status.HasData = status.Total > 0

	return status, nil
}

func (m *Manager) exportCollection(ctx context.Context, name string) ([]json.RawMessage, error) {
	cursor, err := m.db.Collection(name).Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("col.Find: %w", err)
	}

	var raws []bson.Raw
	if err := cursor.All(ctx, &raws); err != nil {
		return nil, fmt.Errorf("cursor.All: %w", err)
	}

	docs := make([]json.RawMessage, 0, len(raws))
	for _, raw := range raws {
		ext, err := bson.MarshalExtJSON(raw, false, false)
		if err != nil {
			return nil, fmt.Errorf("bson.MarshalExtJSON: %w", err)
		}
		docs = append(docs, ext)
	}

	return docs, nil
}

func (m *Manager) importCollection(ctx context.Context, name string, data []byte) (int, error) {
	var raws []json.RawMessage
	if err := json.Unmarshal(data, &raws); err != nil {
		return 0, fmt.Errorf("json.Unmarshal: %w", err)
	}

	docs := make([]any, 0, len(raws))
	for _, raw := range raws {
		var doc bson.D
		if err := bson.UnmarshalExtJSON(raw, false, &doc); err != nil {
			return 0, fmt.Errorf("bson.UnmarshalExtJSON: %w", err)
		}
		docs = append(docs, doc)
	}

	col := m.db.Collection(name)

	if _, err := col.DeleteMany(ctx, bson.M{}); err != nil {
		return 0, fmt.Errorf("col.DeleteMany: %w", err)
	}

	if len(docs) > 0 {
		if _, err := col.InsertMany(ctx, docs); err != nil {
			return 0, fmt.Errorf("col.InsertMany: %w", err)
		}
	}

	return len(docs), nil
}

func (m *Manager) writeJSON(filename string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("json.MarshalIndent: %w", err)
	}

	path := filepath.Join(m.dir, filename)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("os.WriteFile: %w", err)
	}

	return nil
}
