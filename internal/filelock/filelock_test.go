package filelock

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"
)

func TestLockUnlock(t *testing.T) {
	lockPath := filepath.Join(t.TempDir(), "config.yaml.lock")
	lock := NewFileLock(lockPath)

	if err := lock.Lock(context.Background()); err != nil {
		t.Fatalf("Failed to acquire lock: %v", err)
	}
	if err := lock.Unlock(); err != nil {
		t.Fatalf("Failed to release lock: %v", err)
	}
	if _, err := os.Stat(lockPath); !os.IsNotExist(err) {
		t.Errorf("lock file should be removed after unlock, stat err = %v", err)
	}
}

func TestTryLock(t *testing.T) {
	lockPath := filepath.Join(t.TempDir(), "config.yaml.lock")

	first := NewFileLock(lockPath)
	if err := first.Lock(context.Background()); err != nil {
		t.Fatalf("Failed to acquire lock: %v", err)
	}
	defer first.Unlock()

	second := NewFileLock(lockPath)
	acquired, err := second.TryLock()
	if err != nil {
		t.Fatalf("TryLock error: %v", err)
	}
	if acquired {
		t.Error("second lock should not be acquired while the first is held")
	}
}

func TestLockRespectsContext(t *testing.T) {
	lockPath := filepath.Join(t.TempDir(), "config.yaml.lock")

	holder := NewFileLock(lockPath)
	if err := holder.Lock(context.Background()); err != nil {
		t.Fatalf("Failed to acquire lock: %v", err)
	}
	defer holder.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), 150*time.Millisecond)
	defer cancel()

	start := time.Now()
	err := NewFileLock(lockPath).Lock(ctx)
	if err == nil {
		t.Fatal("expected lock to time out")
	}
	if elapsed := time.Since(start); elapsed > 2*time.Second {
		t.Errorf("lock attempt took %v, context was ignored", elapsed)
	}
}

func TestAtomicWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "config.yaml")

	if err := AtomicWrite(path, []byte("mode: tree\n")); err != nil {
		t.Fatalf("AtomicWrite failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file: %v", err)
	}
	if string(data) != "mode: tree\n" {
		t.Errorf("content = %q", data)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if info.Mode().Perm() != 0644 {
		t.Errorf("permissions = %v, want 0644", info.Mode().Perm())
	}

	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatalf("readdir: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("expected only the target file, found %d entries", len(entries))
	}
}

func TestLockAndWrite(t *testing.T) {
	tests := []struct {
		name      string
		existing  string
		overwrite bool
		wantErr   error
		wantData  string
	}{
		{name: "new file", overwrite: false, wantData: "new"},
		{name: "existing without overwrite", existing: "old", overwrite: false, wantErr: ErrExists, wantData: "old"},
		{name: "existing with overwrite", existing: "old", overwrite: true, wantData: "new"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			if tt.existing != "" {
				if err := os.WriteFile(path, []byte(tt.existing), 0644); err != nil {
					t.Fatalf("setup: %v", err)
				}
			}

			err := LockAndWrite(context.Background(), path, []byte("new"), tt.overwrite)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("error = %v, want %v", err, tt.wantErr)
				}
			} else if err != nil {
				t.Fatalf("LockAndWrite failed: %v", err)
			}

			data, _ := os.ReadFile(path)
			if string(data) != tt.wantData {
				t.Errorf("content = %q, want %q", data, tt.wantData)
			}
			if _, err := os.Stat(path + ".lock"); !os.IsNotExist(err) {
				t.Error("lock file should be removed")
			}
		})
	}
}

func TestConcurrentLockAndWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	const writers = 10
	var wg sync.WaitGroup
	errs := make(chan error, writers)

	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			errs <- LockAndWrite(ctx, path, []byte(fmt.Sprintf("writer: %d\n", n)), true)
		}(i)
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		if err != nil {
			t.Errorf("concurrent write failed: %v", err)
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file: %v", err)
	}
	var n int
	if _, err := fmt.Sscanf(string(data), "writer: %d\n", &n); err != nil {
		t.Errorf("file holds a partial write: %q", data)
	}
}
