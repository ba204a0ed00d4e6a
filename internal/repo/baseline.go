package repo

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"log/slog"
	"os"

	"github.com/KNICEX/pair-watcher/pkg/setx"
)

// BaselineRepo persists the set of symbols the watcher has already seen.
type BaselineRepo interface {
	// Load fails closed: a missing or unreadable snapshot yields an empty set.
	Load(ctx context.Context) map[string]struct{}
	Save(ctx context.Context, pairs map[string]struct{}) error
}

// baselineSnapshot is the on-disk form: {"pairs": [...]} with a sorted array.
type baselineSnapshot struct {
	Pairs []string `json:"pairs"`
}

type fileBaselineRepo struct {
	path string
}

func NewFileBaselineRepo(path string) BaselineRepo {
	return &fileBaselineRepo{
		path: path,
	}
}

func (r *fileBaselineRepo) Load(ctx context.Context) map[string]struct{} {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			slog.Error("failed to read baseline snapshot", "path", r.path, "error", err)
		}
		return map[string]struct{}{}
	}

	var snapshot baselineSnapshot
	if err = json.Unmarshal(data, &snapshot); err != nil {
		// Corrupt snapshot is treated as a first run, every active symbol
		// will be re-detected on the next cycle.
		slog.Error("baseline snapshot is corrupt, starting from empty", "path", r.path, "error", err)
		return map[string]struct{}{}
	}
	return setx.FromSlice(snapshot.Pairs)
}

func (r *fileBaselineRepo) Save(ctx context.Context, pairs map[string]struct{}) error {
	data, err := json.MarshalIndent(baselineSnapshot{Pairs: setx.Sorted(pairs)}, "", "  ")
	if err != nil {
		return err
	}

	// Write-to-temp then rename so a crashed save never leaves a torn file.
	tmp := r.path + ".tmp"
	if err = os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, r.path)
}
