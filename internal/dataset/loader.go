// Package dataset loads the dashboard payload from a JSON file, falling back
// to the payload compiled into the binary.
package dataset

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/theirongolddev/pangan/internal/model"
)

// SourceBuiltin names the embedded payload in Result.Source.
const SourceBuiltin = "built-in"

//go:embed default.json
var defaultPayload []byte

// Result holds the outcome of a load.
type Result struct {
	Dashboard *model.Dashboard
	Source    string // file path, or SourceBuiltin
	Fallback  bool   // a file was requested but could not be used
	Err       error  // why the file could not be used
	LoadedAt  time.Time
}

// Default decodes the embedded payload.
func Default() (*model.Dashboard, error) {
	d, err := decode(defaultPayload)
	if err != nil {
		return nil, fmt.Errorf("decoding built-in payload: %w", err)
	}
	return d, nil
}

// Load reads the payload at path. An empty path selects the embedded
// payload. A file that cannot be read or decoded is logged and replaced by
// the embedded payload; the returned error is only non-nil when the embedded
// payload itself is unusable.
func Load(path string) (Result, error) {
	res := Result{Source: SourceBuiltin, LoadedAt: time.Now()}

	if path != "" {
		d, err := loadFile(path)
		if err == nil {
			log.Debugf("loaded dashboard payload from %s", path)
			res.Dashboard = d
			res.Source = path
			return res, nil
		}
		log.Warnf("using built-in payload: %v", err)
		res.Fallback = true
		res.Err = err
	}

	d, err := Default()
	if err != nil {
		return res, err
	}
	res.Dashboard = d
	return res, nil
}

func loadFile(path string) (*model.Dashboard, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	d, err := decode(data)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	return d, nil
}

func decode(data []byte) (*model.Dashboard, error) {
	var d model.Dashboard
	if err := json.NewDecoder(bytes.NewReader(data)).Decode(&d); err != nil {
		return nil, err
	}
	return &d, nil
}
