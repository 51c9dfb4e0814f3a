// Package walk discovers source files under a directory tree for the CLI's
// directory-diff mode, applying doublestar exclude globs with the same
// parallel worker-pool shape the comparison engine's teacher uses for its
// own file discovery.
package walk

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
)

// Scope bounds a directory walk.
type Scope struct {
	Path     string
	Exclude  []string
	MaxDepth int
}

// Result is one discovered file. Walker never sets Error: a directory that
// cannot be read is skipped silently.
type Result struct {
	Path  string
	Error error
}

// Walker scans the directory tree in one goroutine and relays each path
// through a pool of worker goroutines onto the result channel as soon as
// it is found.
type Walker struct {
	workers int
}

// New builds a Walker sized to the host's CPU count.
func New() *Walker {
	return &Walker{workers: runtime.NumCPU() * 2}
}

// Walk streams every non-excluded, non-directory file under scope.Path.
func (w *Walker) Walk(ctx context.Context, scope Scope) (<-chan Result, error) {
	info, err := os.Stat(scope.Path)
	if err != nil {
		return nil, fmt.Errorf("walk: cannot access %s: %w", scope.Path, err)
	}
	if !info.IsDir() {
		out := make(chan Result, 1)
		out <- Result{Path: scope.Path}
		close(out)
		return out, nil
	}

	paths := make(chan string, 1000)
	results := make(chan Result, 1000)

	var wg sync.WaitGroup
	for i := 0; i < w.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case p, ok := <-paths:
					if !ok {
						return
					}
					select {
					case <-ctx.Done():
						return
					case results <- Result{Path: p}:
					}
				}
			}
		}()
	}

	go func() {
		defer close(paths)
		scanDir(ctx, scope.Path, scope, paths, 0)
	}()
	go func() {
		wg.Wait()
		close(results)
	}()

	return results, nil
}

func scanDir(ctx context.Context, dir string, scope Scope, paths chan<- string, depth int) {
	select {
	case <-ctx.Done():
		return
	default:
	}
	if scope.MaxDepth > 0 && depth > scope.MaxDepth {
		return
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return
	}
	for _, entry := range entries {
		full := filepath.Join(dir, entry.Name())
		if isExcluded(full, scope.Exclude) {
			continue
		}
		if entry.IsDir() {
			scanDir(ctx, full, scope, paths, depth+1)
			continue
		}
		select {
		case <-ctx.Done():
			return
		case paths <- full:
		}
	}
}

func isExcluded(path string, patterns []string) bool {
	for _, pattern := range patterns {
		if matched, err := doublestar.PathMatch(pattern, path); err == nil && matched {
			return true
		}
		if !strings.Contains(pattern, "/") {
			if matched, err := doublestar.PathMatch(pattern, filepath.Base(path)); err == nil && matched {
				return true
			}
		}
	}
	return false
}
