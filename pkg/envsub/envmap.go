package envsub

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"dario.cat/mergo"
	"github.com/joho/godotenv"
)

// EnvMap is an immutable snapshot of environment variables.
type EnvMap map[string]string

// Environ snapshots the current process environment.
func Environ() EnvMap {
	envs := make(EnvMap)
	for _, kv := range os.Environ() {
		if key, value, ok := strings.Cut(kv, "="); ok {
			envs[key] = value
		}
	}
	return envs
}

// NewEnvFromFile reads a .env file from dir. A missing file is not an error.
func NewEnvFromFile(dir string) (EnvMap, error) {
	envPath := filepath.Join(dir, ".env")
	envMap, err := godotenv.Read(envPath)
	if err != nil {
		if os.IsNotExist(err) {
			return make(EnvMap), nil
		}
		return nil, fmt.Errorf("failed to read .env file: %w", err)
	}
	return EnvMap(envMap), nil
}

// Merge combines two snapshots; entries in other win over entries in e.
func (e EnvMap) Merge(other EnvMap) (EnvMap, error) {
	envs := make(EnvMap)
	if e != nil {
		if err := mergo.Merge(&envs, e, mergo.WithOverride); err != nil {
			return nil, err
		}
	}
	if other != nil {
		if err := mergo.Merge(&envs, other, mergo.WithOverride); err != nil {
			return nil, err
		}
	}
	return envs, nil
}
