// Package evaluator is the table-driven hand-evaluation core: a registry
// that maps an evaluation-type id to an Evaluator, loading its rankings
// table from CSV or SQLite on first use and caching the result
// process-wide.
package evaluator

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/singleflight"
)

// ConfigError reports a malformed evaluation-type configuration file.
type ConfigError struct {
	Path string
	Err  error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("evaluator: invalid config %s: %v", e.Path, e.Err)
}
func (e *ConfigError) Unwrap() error { return e.Err }

// Registry is the process-wide evaluator cache: effectively immutable once
// populated and safe to read without locking after an initialisation
// barrier. A singleflight.Group collapses concurrent first loads of the
// same id into a single CSV/SQLite read.
type Registry struct {
	configDir string
	logger    *log.Logger

	mu         sync.RWMutex
	evaluators map[string]Evaluator
	closers    []interface{ Close() error }

	group singleflight.Group
}

// NewRegistry creates a registry that resolves evaluation-type JSON files
// relative to configDir.
func NewRegistry(configDir string, logger *log.Logger) *Registry {
	if logger == nil {
		logger = log.Default()
	}
	return &Registry{
		configDir:  configDir,
		logger:     logger,
		evaluators: make(map[string]Evaluator),
	}
}

// Get resolves an evaluation-type id to its Evaluator, loading and caching
// it on first use. Safe for concurrent use by multiple game instances.
func (r *Registry) Get(evalType string) (Evaluator, error) {
	r.mu.RLock()
	if ev, ok := r.evaluators[evalType]; ok {
		r.mu.RUnlock()
		return ev, nil
	}
	r.mu.RUnlock()

	v, err, _ := r.group.Do(evalType, func() (interface{}, error) {
		r.mu.RLock()
		if ev, ok := r.evaluators[evalType]; ok {
			r.mu.RUnlock()
			return ev, nil
		}
		r.mu.RUnlock()

		ev, closer, err := r.load(evalType)
		if err != nil {
			return nil, err
		}

		r.mu.Lock()
		r.evaluators[evalType] = ev
		if closer != nil {
			r.closers = append(r.closers, closer)
		}
		r.mu.Unlock()
		return ev, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(Evaluator), nil
}

func (r *Registry) load(evalType string) (Evaluator, interface{ Close() error }, error) {
	path := fmt.Sprintf("%s/%s.json", r.configDir, evalType)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, &ConfigError{Path: path, Err: err}
	}
	var cfg TypeConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, nil, &ConfigError{Path: path, Err: err}
	}
	if cfg.ID == "" {
		cfg.ID = evalType
	}
	cfg = applyDefaults(cfg)

	order := ResolveRankOrder(cfg.RankOrderName)

	r.logger.Debug("loading evaluation rankings", "eval_type", cfg.ID, "source", cfg.DataFiles.Ranking.SourceType)

	switch cfg.DataFiles.Ranking.SourceType {
	case "database":
		src, err := loadSQLiteSource(cfg.DataFiles.Ranking.Path)
		if err != nil {
			return nil, nil, err
		}
		return newStandardEvaluator(cfg, order, src), src, nil
	case "csv", "":
		src, err := loadCSVSource(cfg.DataFiles.Ranking.Path)
		if err != nil {
			return nil, nil, err
		}
		return newStandardEvaluator(cfg, order, src), nil, nil
	default:
		return nil, nil, &ConfigError{Path: path, Err: fmt.Errorf("unsupported source_type %q", cfg.DataFiles.Ranking.SourceType)}
	}
}

// Close releases resources held by loaded evaluators (SQLite connections).
// Safe to call once at process/registry teardown.
func (r *Registry) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	var firstErr error
	for _, c := range r.closers {
		if err := c.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	r.closers = nil
	return firstErr
}
