package command

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/pixil98/go-colony/internal/game"
	"github.com/pixil98/go-colony/internal/items"
)

const (
	berryAsset   = `{"version":1,"id":"berry","spec":{"name":"Berry","max_stack_size":5}}`
	stoneAsset   = `{"version":1,"id":"stone","spec":{"name":"Stone","max_stack_size":1}}`
	bushAsset    = `{"version":1,"id":"berry-bush","spec":{"name":"Berry Bush","output_capacity":1,"recipe":{"outputs":[{"item":"berry","count":1}],"time_ticks":5}}}`
	anthillAsset = `{"version":1,"id":"anthill","spec":{"name":"Anthill","input_capacity":2}}`
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}
	return p
}

// newTestStorage lays out item and structure assets in temp directories.
func newTestStorage(t *testing.T, structures ...string) StorageConfig {
	t.Helper()

	itemDir := t.TempDir()
	writeFile(t, itemDir, "berry.json", berryAsset)
	writeFile(t, itemDir, "stone.json", stoneAsset)

	structDir := t.TempDir()
	if len(structures) == 0 {
		structures = []string{bushAsset, anthillAsset}
	}
	for i, s := range structures {
		writeFile(t, structDir, fmt.Sprintf("structure-%d.json", i), s)
	}

	return StorageConfig{
		Items:      AssetConfig[*items.Item]{Path: itemDir},
		Structures: AssetConfig[*game.Structure]{Path: structDir},
	}
}

func newTestCatalog(t *testing.T) *Catalog {
	t.Helper()

	sc := newTestStorage(t)
	cat, err := sc.BuildCatalog()
	if err != nil {
		t.Fatalf("building catalog: %v", err)
	}
	return cat
}
