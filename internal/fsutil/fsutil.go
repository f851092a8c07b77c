// Package fsutil replaces generated files without exposing partial output.
//
// WriteFileAtomic stages content in a sibling temp file and renames it into
// place. Lock serializes concurrent generator runs that target the same
// destination so two replacements never race.
package fsutil

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
)

const lockRetryDelay = 50 * time.Millisecond

// ErrLocked is returned when the destination lock could not be acquired
// before the context ended.
var ErrLocked = errors.New("output is locked by another run")

// WriteFileAtomic writes data to a temp file next to path and renames it over
// path. On failure the previous content of path is left untouched.
func WriteFileAtomic(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+"-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Chmod(perm); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}

// LockPath returns the lock file guarding path. Lock files live in the system
// temp directory so they never show up in the source tree.
func LockPath(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve %q: %w", path, err)
	}
	sum := sha256.Sum256([]byte(abs))
	return filepath.Join(os.TempDir(), "yyccgen-"+hex.EncodeToString(sum[:8])+".lock"), nil
}

// Lock blocks until the lock guarding path is held or ctx is done. The
// returned function releases it.
func Lock(ctx context.Context, path string) (func() error, error) {
	lockPath, err := LockPath(path)
	if err != nil {
		return nil, err
	}
	lock := flock.New(lockPath)
	ok, err := lock.TryLockContext(ctx, lockRetryDelay)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrLocked, path, ctxErr)
		}
		return nil, fmt.Errorf("acquire lock %s: %w", lockPath, err)
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrLocked, path)
	}
	return lock.Unlock, nil
}
