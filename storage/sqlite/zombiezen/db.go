package zombiezen

import (
	"fmt"
	"runtime"

	"zombiezen.com/go/sqlite/sqlitex"
)

// NewPool opens the dictionary database at dbPath with size connections, or
// one per CPU when size is not positive. The file is created if needed and
// opened in WAL mode.
func NewPool(dbPath string, size int) (*sqlitex.Pool, error) {
	if size <= 0 {
		size = runtime.NumCPU()
	}

	pool, err := sqlitex.NewPool("file:"+dbPath, sqlitex.PoolOptions{PoolSize: size})
	if err != nil {
		return nil, fmt.Errorf("open dictionary database %s: %w", dbPath, err)
	}
	return pool, nil
}
