package organize

import (
	"path/filepath"

	"github.com/arthur-debert/sortie/pkg/errors"
	"github.com/arthur-debert/sortie/pkg/types"
)

// entry is either a file to organize or an outcome already decided during
// the walk
type entry struct {
	path    string
	outcome *types.Outcome
}

// collect lists everything under root depth first. Symlinks are reported,
// never followed.
func collect(fs types.FS, root string) []entry {
	var entries []entry
	walkDir(fs, root, &entries)
	return entries
}

func walkDir(fs types.FS, dir string, entries *[]entry) {
	items, err := fs.ReadDir(dir)
	if err != nil {
		o := types.Failed(dir, errors.Wrap(err, errors.ErrWalk, "cannot read directory"))
		*entries = append(*entries, entry{path: dir, outcome: &o})
		return
	}

	for _, item := range items {
		path := filepath.Join(dir, item.Name())
		switch {
		case item.IsDir():
			walkDir(fs, path, entries)
		case item.Type().IsRegular():
			*entries = append(*entries, entry{path: path})
		default:
			o := types.Skipped(path, types.ReasonNotRegular)
			*entries = append(*entries, entry{path: path, outcome: &o})
		}
	}
}
