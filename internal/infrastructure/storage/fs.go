package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"arcanum.games/engine/internal/domain"
)

// FS keeps one pretty-printed JSON file per save record under
// <dir>/saves/<type>/<id>.json and the session at <dir>/session.json.
type FS struct{ dir string }

func NewFS(dir string) *FS { return &FS{dir: dir} }

func (s *FS) pathFor(typ, id string) string {
	return filepath.Join(s.dir, "saves", typ, strings.TrimSpace(id)+".json")
}

func (s *FS) Save(ctx context.Context, rec *domain.SaveRecord) error {
	if rec == nil || rec.ID == "" {
		return fmt.Errorf("%w: save record needs an id", domain.ErrDomain)
	}
	target := s.pathFor(rec.Type, rec.ID)
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}
	f, err := os.Create(target)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(rec)
}

func (s *FS) Load(ctx context.Context, id string) (*domain.SaveRecord, error) {
	for _, t := range domain.PuzzleTypes() {
		path := s.pathFor(t.String(), id)
		b, err := os.ReadFile(path)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return nil, err
		}
		var rec domain.SaveRecord
		if err := json.Unmarshal(b, &rec); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", domain.ErrCorruptSave, filepath.Base(path), err)
		}
		return &rec, nil
	}
	return nil, fmt.Errorf("%w: save %q", domain.ErrNotFound, id)
}

func (s *FS) List(ctx context.Context) ([]domain.SaveSummary, error) {
	var out []domain.SaveSummary
	for _, t := range domain.PuzzleTypes() {
		dir := filepath.Join(s.dir, "saves", t.String())
		ents, err := os.ReadDir(dir)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, err
		}
		for _, e := range ents {
			if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
				continue
			}
			b, err := os.ReadFile(filepath.Join(dir, e.Name()))
			if err != nil {
				continue
			}
			// SaveSummary's JSON keys are a subset of SaveRecord's, so the
			// summary doubles as the listing probe.
			var sum domain.SaveSummary
			if err := json.Unmarshal(b, &sum); err != nil || sum.ID == "" {
				continue
			}
			out = append(out, sum)
		}
	}
	return out, nil
}

func (s *FS) Delete(ctx context.Context, id string) error {
	for _, t := range domain.PuzzleTypes() {
		err := os.Remove(s.pathFor(t.String(), id))
		if err == nil {
			return nil
		}
		if !errors.Is(err, os.ErrNotExist) {
			return err
		}
	}
	return fmt.Errorf("%w: save %q", domain.ErrNotFound, id)
}

func (s *FS) sessionPath() string { return filepath.Join(s.dir, "session.json") }

func (s *FS) SaveSession(ctx context.Context, sess *domain.Session) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return err
	}
	f, err := os.Create(s.sessionPath())
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(sess)
}

func (s *FS) LoadSession(ctx context.Context) (*domain.Session, error) {
	b, err := os.ReadFile(s.sessionPath())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: nothing at %s", domain.ErrNoSession, s.sessionPath())
		}
		return nil, err
	}
	return decodeSession(b)
}

// decodeSession parses a stored session and rejects unknown versions.
func decodeSession(b []byte) (*domain.Session, error) {
	var s domain.Session
	if err := json.Unmarshal(b, &s); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCorruptSave, err)
	}
	if s.Version != domain.SaveVersion {
		return nil, fmt.Errorf("%w: unsupported session version %d", domain.ErrCorruptSave, s.Version)
	}
	return &s, nil
}
