package runtimeconfig

import (
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Env resolves configuration keys from .env files and the process
// environment. Process values win over file values, matching how
// godotenv.Load treats variables that are already set.
type Env struct {
	values map[string]string
	lookup func(string) (string, bool)
}

// LoadEnv reads the given .env files in order; later files do not override
// earlier ones. Missing files are skipped.
func LoadEnv(files ...string) (*Env, error) {
	values := map[string]string{}
	for _, file := range files {
		file = strings.TrimSpace(file)
		if file == "" {
			continue
		}
		parsed, err := godotenv.Read(file)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, fmt.Errorf("site config: read %s: %w", file, err)
		}
		for key, value := range parsed {
			if _, exists := values[key]; !exists {
				values[key] = value
			}
		}
	}
	return &Env{values: values, lookup: os.LookupEnv}, nil
}

// StaticEnv returns an Env backed only by values. Used by tests and by
// callers that already hold their configuration.
func StaticEnv(values map[string]string) *Env {
	return &Env{
		values: maps.Clone(values),
		lookup: func(string) (string, bool) { return "", false },
	}
}

// Lookup has the signature of os.LookupEnv.
func (e *Env) Lookup(key string) (string, bool) {
	if e == nil {
		return os.LookupEnv(key)
	}
	if value, ok := e.lookup(key); ok {
		return value, true
	}
	value, ok := e.values[key]
	return value, ok
}
