package ingest

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/rshade/empdash/internal/logging"
	"github.com/rshade/empdash/internal/roster"
)

//go:embed seed.json
var seedData []byte

// maxParallelLoads bounds the number of files read at once by LoadAll.
const maxParallelLoads = 4

// Record source errors.
var (
	ErrUnsupportedFormat = errors.New("unsupported record file format")
	ErrDuplicateID       = errors.New("duplicate employee id")
)

// document is the object form of a record file.
type document struct {
	Employees []roster.Record `json:"employees" yaml:"employees"`
}

// DefaultRecords returns the built-in sample directory.
func DefaultRecords() ([]roster.Record, error) {
	records, err := decode(seedData, formatJSON)
	if err != nil {
		return nil, fmt.Errorf("decoding built-in records: %w", err)
	}
	return Normalize(records)
}

type fileFormat int

const (
	formatJSON fileFormat = iota
	formatYAML
)

func formatForPath(path string) (fileFormat, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return formatJSON, nil
	case ".yaml", ".yml":
		return formatYAML, nil
	default:
		return 0, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
}

// LoadFile reads and normalizes the records in a single .json, .yaml or .yml file.
func LoadFile(ctx context.Context, path string) ([]roster.Record, error) {
	log := logging.FromContext(ctx)
	log.Debug().
		Ctx(ctx).
		Str("component", "ingest").
		Str("operation", "load_file").
		Str("path", path).
		Msg("loading employee records")

	records, err := readFile(ctx, path)
	if err != nil {
		return nil, err
	}

	normalized, err := Normalize(records)
	if err != nil {
		return nil, fmt.Errorf("normalizing %s: %w", path, err)
	}
	return normalized, nil
}

// LoadAll loads every path in parallel and concatenates the records in argument
// order. Ids must be unique across all files.
func LoadAll(ctx context.Context, paths []string) ([]roster.Record, error) {
	if len(paths) == 0 {
		return DefaultRecords()
	}

	results := make([][]roster.Record, len(paths))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxParallelLoads)
	for i, path := range paths {
		g.Go(func() error {
			records, err := readFile(gctx, path)
			if err != nil {
				return err
			}
			results[i] = records
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var all []roster.Record
	for _, records := range results {
		all = append(all, records...)
	}

	normalized, err := Normalize(all)
	if err != nil {
		return nil, fmt.Errorf("normalizing %d record files: %w", len(paths), err)
	}

	logging.FromContext(ctx).Debug().
		Ctx(ctx).
		Str("component", "ingest").
		Str("operation", "load_all").
		Int("file_count", len(paths)).
		Int("record_count", len(normalized)).
		Msg("employee records loaded")

	return normalized, nil
}

func readFile(ctx context.Context, path string) ([]roster.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	format, err := formatForPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		logging.FromContext(ctx).Error().
			Ctx(ctx).
			Str("component", "ingest").
			Err(err).
			Str("path", path).
			Msg("failed to read record file")
		return nil, fmt.Errorf("reading record file: %w", err)
	}

	records, err := decode(data, format)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return records, nil
}

// decode accepts either a bare list of records or an object with an
// "employees" key.
func decode(data []byte, format fileFormat) ([]roster.Record, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return []roster.Record{}, nil
	}

	switch format {
	case formatJSON:
		if trimmed[0] == '[' {
			var records []roster.Record
			if err := json.Unmarshal(trimmed, &records); err != nil {
				return nil, fmt.Errorf("parsing JSON: %w", err)
			}
			return records, nil
		}
		var doc document
		if err := json.Unmarshal(trimmed, &doc); err != nil {
			return nil, fmt.Errorf("parsing JSON: %w", err)
		}
		return doc.Employees, nil
	default:
		var node yaml.Node
		if err := yaml.Unmarshal(trimmed, &node); err != nil {
			return nil, fmt.Errorf("parsing YAML: %w", err)
		}
		if len(node.Content) > 0 && node.Content[0].Kind == yaml.SequenceNode {
			var records []roster.Record
			if err := node.Decode(&records); err != nil {
				return nil, fmt.Errorf("parsing YAML: %w", err)
			}
			return records, nil
		}
		var doc document
		if err := node.Decode(&doc); err != nil {
			return nil, fmt.Errorf("parsing YAML: %w", err)
		}
		return doc.Employees, nil
	}
}
