package kit

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"sort"
	"sync"

	"github.com/KirkDiggler/kits/internal/models"
	"github.com/goccy/go-json"
	"github.com/natefinch/atomic"
	"github.com/tailscale/hujson"
)

// FileConfig holds configuration for the flat-file kit repository
type FileConfig struct {
	// Path of the kits file. Comments and trailing commas are accepted when reading.
	Path string
}

// fileRepository implements the Repository interface over a single JSON
// document mapping lowercased kit names to kits. Every write replaces the file atomically.
type fileRepository struct {
	path string
	mu   sync.Mutex
}

// NewFile creates a file-backed kit repository. A missing file is an empty catalog.
func NewFile(cfg *FileConfig) (*fileRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Path == "" {
		return nil, errors.New("path cannot be empty")
	}

	return &fileRepository{
		path: cfg.Path,
	}, nil
}

func (r *fileRepository) read() (map[string]*storedKit, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return map[string]*storedKit{}, nil
		}
		return nil, fmt.Errorf("failed to read kits file: %w", err)
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return map[string]*storedKit{}, nil
	}

	standard, err := hujson.Standardize(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse kits file: %w", err)
	}

	stored := map[string]*storedKit{}
	if err := json.Unmarshal(standard, &stored); err != nil {
		return nil, fmt.Errorf("failed to unmarshal kits file: %w", err)
	}

	return stored, nil
}

func (r *fileRepository) write(stored map[string]*storedKit) error {
	data, err := json.MarshalIndent(stored, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal kits: %w", err)
	}

	if err := atomic.WriteFile(r.path, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("failed to write kits file: %w", err)
	}

	return nil
}

// GetKits reads every kit from the file
func (r *fileRepository) GetKits(ctx context.Context, input *GetKitsInput) (*GetKitsOutput, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, err := r.read()
	if err != nil {
		return nil, err
	}

	// Hand edited files may use any case for keys
	keys := make([]string, 0, len(stored))
	for key := range stored {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	kits := make(map[string]*models.Kit, len(stored))
	for _, key := range keys {
		s := stored[key]
		if s == nil {
			continue
		}
		if s.Name == "" {
			s.Name = key
		}

		k, err := fromStored(s)
		if err != nil {
			return nil, err
		}
		kits[models.KitKey(key)] = k
	}

	return &GetKitsOutput{
		Kits: kits,
	}, nil
}

// SaveKit rewrites the file with the kit added or replaced
func (r *fileRepository) SaveKit(ctx context.Context, input *SaveKitInput) error {
	if input == nil || input.Kit == nil {
		return errors.New("input and kit cannot be nil")
	}

	if input.Kit.Name == "" {
		return errors.New("kit name cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	stored, err := r.read()
	if err != nil {
		return err
	}

	for key := range stored {
		if models.KitKey(key) == input.Kit.Key() {
			delete(stored, key)
		}
	}
	stored[input.Kit.Key()] = toStored(input.Kit)

	return r.write(stored)
}

// DeleteKit rewrites the file without the kit
func (r *fileRepository) DeleteKit(ctx context.Context, input *DeleteKitInput) (*DeleteKitOutput, error) {
	if input == nil || input.Name == "" {
		return nil, errors.New("input and kit name cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	stored, err := r.read()
	if err != nil {
		return nil, err
	}

	deleted := false
	for key := range stored {
		if models.KitKey(key) == models.KitKey(input.Name) {
			delete(stored, key)
			deleted = true
		}
	}

	if !deleted {
		return &DeleteKitOutput{}, nil
	}

	if err := r.write(stored); err != nil {
		return nil, err
	}

	return &DeleteKitOutput{
		Deleted: true,
	}, nil
}
