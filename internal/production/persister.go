// Package production provides production integrations for lists: snapshot
// persistence and visualisation.
package production

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/comalice/forwardlist"
)

// Snapshot is the persisted form of a list.
type Snapshot[T any] struct {
	ListID    string               `json:"list_id" yaml:"list_id"`
	Version   string               `json:"version,omitempty" yaml:"version,omitempty"`
	Values    *forwardlist.List[T] `json:"values" yaml:"values"`
	Timestamp time.Time            `json:"timestamp" yaml:"timestamp"`
}

// Persister saves and loads snapshots by list ID.
type Persister[T any] interface {
	Save(ctx context.Context, snapshot Snapshot[T]) error
	Load(ctx context.Context, listID string) (Snapshot[T], error)
}

var (
	_ Persister[int] = (*JSONPersister[int])(nil)
	_ Persister[int] = (*YAMLPersister[int])(nil)
)

var ErrInvalidSnapshot = errors.New("invalid snapshot")

func checkSnapshot[T any](s Snapshot[T]) error {
	if s.ListID == "" {
		return fmt.Errorf("%w: list ID is required", ErrInvalidSnapshot)
	}
	return nil
}

// JSONPersister is a file-based persister using JSON serialization.
type JSONPersister[T any] struct {
	dir string
}

// NewJSONPersister creates a JSONPersister, ensuring the directory exists.
func NewJSONPersister[T any](dir string) (*JSONPersister[T], error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("mkdir %s: %w", dir, err)
	}
	return &JSONPersister[T]{dir: dir}, nil
}

func (p *JSONPersister[T]) Save(ctx context.Context, snapshot Snapshot[T]) error {
	if err := checkSnapshot(snapshot); err != nil {
		return err
	}
	if snapshot.Values == nil {
		snapshot.Values = forwardlist.New[T]()
	}

	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return fmt.Errorf("json marshal: %w", err)
	}

	fn := filepath.Join(p.dir, snapshot.ListID+".json")
	if err := os.WriteFile(fn, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", fn, err)
	}
	return nil
}

func (p *JSONPersister[T]) Load(ctx context.Context, listID string) (Snapshot[T], error) {
	fn := filepath.Join(p.dir, listID+".json")
	data, err := os.ReadFile(fn)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Snapshot[T]{}, fmt.Errorf("list %q: %w", listID, os.ErrNotExist)
		}
		return Snapshot[T]{}, fmt.Errorf("read %s: %w", fn, err)
	}

	var snapshot Snapshot[T]
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return Snapshot[T]{}, fmt.Errorf("json unmarshal: %w", err)
	}
	return finish(snapshot, listID), nil
}

// YAMLPersister is a file-based persister using YAML serialization.
type YAMLPersister[T any] struct {
	dir string
}

// NewYAMLPersister creates a YAMLPersister, ensuring the directory exists.
func NewYAMLPersister[T any](dir string) (*YAMLPersister[T], error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("mkdir %s: %w", dir, err)
	}
	return &YAMLPersister[T]{dir: dir}, nil
}

func (p *YAMLPersister[T]) Save(ctx context.Context, snapshot Snapshot[T]) error {
	if err := checkSnapshot(snapshot); err != nil {
		return err
	}
	if snapshot.Values == nil {
		snapshot.Values = forwardlist.New[T]()
	}

	data, err := yaml.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("yaml marshal: %w", err)
	}

	fn := filepath.Join(p.dir, snapshot.ListID+".yaml")
	if err := os.WriteFile(fn, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", fn, err)
	}
	return nil
}

func (p *YAMLPersister[T]) Load(ctx context.Context, listID string) (Snapshot[T], error) {
	fn := filepath.Join(p.dir, listID+".yaml")
	data, err := os.ReadFile(fn)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Snapshot[T]{}, fmt.Errorf("list %q: %w", listID, os.ErrNotExist)
		}
		return Snapshot[T]{}, fmt.Errorf("read %s: %w", fn, err)
	}

	var snapshot Snapshot[T]
	if err := yaml.Unmarshal(data, &snapshot); err != nil {
		return Snapshot[T]{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	return finish(snapshot, listID), nil
}

func finish[T any](s Snapshot[T], listID string) Snapshot[T] {
	s.ListID = listID // file name wins
	if s.Values == nil {
		s.Values = forwardlist.New[T]()
	}
	return s
}
