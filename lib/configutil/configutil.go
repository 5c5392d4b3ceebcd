package configutil

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"dario.cat/mergo"
	"github.com/titanous/json5"
)

func splitExt(f string) (string, string) {
	for i := len(f) - 1; i >= 0; i-- {
		if f[i] == '.' {
			return f[0:i], f[i+1:]
		}
	}
	return f, ""
}

func readJson5[T any](path string, out *T) (found bool, err error) {
	contents, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if len(contents) == 0 {
		return false, nil
	}
	err = json5.Unmarshal(contents, out)
	if err != nil {
		return false, fmt.Errorf("parse %s: %w", path, err)
	}
	return true, nil
}

// ReadConfig reads a JSON5 configuration file on top of defaults. `name`
// must carry a file extension, the following files are merged where the
// later one wins:
//
//  1. defaults
//  2. <name>.<ext>
//  3. <name>.local.<ext>
//
// os.ErrNotExist is returned together with the defaults when neither file
// exists.
func ReadConfig[T any](name string, defaults T) (T, error) {
	out := defaults
	dirname := filepath.Dir(name)
	prefixname, ext := splitExt(filepath.Base(name))

	var base T
	baseFound, err := readJson5(name, &base)
	if err != nil {
		return defaults, err
	}
	if baseFound {
		err = mergo.Merge(&out, base, mergo.WithOverride)
		if err != nil {
			return defaults, err
		}
	}

	localPath := filepath.Join(dirname, fmt.Sprintf("%s.local.%s", prefixname, ext))
	var local T
	localFound, err := readJson5(localPath, &local)
	if err != nil {
		return defaults, err
	}
	if localFound {
		err = mergo.Merge(&out, local, mergo.WithOverride)
		if err != nil {
			return defaults, err
		}
		slog.Info("merging config with local overrides", "local", localPath)
	}

	if !baseFound && !localFound {
		return defaults, os.ErrNotExist
	}
	return out, nil
}

// ReadRecursively is ReadConfig but it walks up from the working directory
// until the filesystem root looking for a file called name.
func ReadRecursively[T any](name string, defaults T) (T, error) {
	root, err := filepath.Abs("/")
	if err != nil {
		return defaults, err
	}
	current, err := os.Getwd()
	if err != nil {
		return defaults, err
	}

	for {
		config, err := ReadConfig(filepath.Join(current, name), defaults)
		if err == nil {
			return config, nil
		}
		if !os.IsNotExist(err) {
			return defaults, err
		}
		if current == root {
			return defaults, os.ErrNotExist
		}
		current = filepath.Dir(current)
	}
}
