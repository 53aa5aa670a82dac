package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/joho/godotenv"
)

// readEnvFile reads key=value pairs from path without touching the process
// environment. A missing file yields an empty map.
func readEnvFile(path string) (map[string]string, error) {
	if path == "" {
		return map[string]string{}, nil
	}

	m, err := godotenv.Read(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("failed to read env file %s: %w", path, err)
	}
	return m, nil
}

// mergeEnviron overlays environ on top of fileEnv, so the environment always
// wins over the file.
func mergeEnviron(environ, fileEnv map[string]string) map[string]string {
	merged := make(map[string]string, len(environ)+len(fileEnv))
	for k, v := range fileEnv {
		merged[k] = v
	}
	for k, v := range environ {
		merged[k] = v
	}
	return merged
}
