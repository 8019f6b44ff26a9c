package catalog

import (
	"encoding/json"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

type Loader struct {
	dir string
	log *zap.Logger
}

func NewLoader(dir string, log *zap.Logger) *Loader {
	return &Loader{dir: dir, log: log}
}

// load parses one catalog file into v. A missing or malformed file is
// logged and reported back as an error; the caller substitutes an empty
// catalog and keeps loading the rest.
func (l *Loader) load(filename string, v any) error {
	data, err := os.ReadFile(filepath.Join(l.dir, filename))
	if err != nil {
		l.log.Warn("catalog file unreadable",
			zap.String("file", filename),
			zap.Error(err),
		)
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		l.log.Warn("catalog file malformed",
			zap.String("file", filename),
			zap.Error(err),
		)
		return err
	}
	return nil
}
