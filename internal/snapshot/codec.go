package snapshot

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"
)

// ErrCorrupt indicates the snapshot file exists but is not valid JSON.
var ErrCorrupt = errors.New("snapshot: corrupt file")

// Load reads the snapshot at path. A missing file yields a fresh default
// dataset; unparseable content yields ErrCorrupt.
func Load(path string) (*Dataset, error) {
	raw, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return DefaultDataset(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read snapshot: %w", err)
	}
	var ds Dataset
	if err := json.Unmarshal(raw, &ds); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	return &ds, nil
}

// Save writes the dataset to path atomically: the JSON is streamed to a temp
// file in the same directory, synced, then renamed over the target. A crash
// mid-write leaves the previous snapshot untouched.
func Save(path string, ds *Dataset) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create snapshot dir: %w", err)
	}
	buf, err := json.MarshalIndent(ds, "", "  ")
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	buf = append(buf, '\n')

	tmp, err := os.CreateTemp(dir, ".snapshot-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp snapshot: %w", err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()
	if _, err := tmp.Write(buf); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write temp snapshot: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("sync temp snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp snapshot: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("replace snapshot: %w", err)
	}
	return nil
}

// Backup copies the snapshot at src to "<base>.backup_<YYYYMMDD_HHMMSS>" in
// dir (or next to src when dir is empty) and returns the destination path.
// The source is never modified.
func Backup(src, dir string) (string, error) {
	in, err := os.Open(src)
	if err != nil {
		return "", fmt.Errorf("open snapshot for backup: %w", err)
	}
	defer func() { _ = in.Close() }()

	if dir == "" {
		dir = filepath.Dir(src)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create backup dir: %w", err)
	}
	stamp := time.Now().Format("20060102_150405")
	dst := filepath.Join(dir, fmt.Sprintf("%s.backup_%s", filepath.Base(src), stamp))

	out, err := os.Create(dst)
	if err != nil {
		return "", fmt.Errorf("create backup: %w", err)
	}
	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return "", fmt.Errorf("copy backup: %w", err)
	}
	if err := out.Close(); err != nil {
		return "", fmt.Errorf("close backup: %w", err)
	}
	return dst, nil
}
