package models

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/shibukawa/configdir"
)

const envPrefix = "GAMEHOOK_"

// LoadEnv collects settings from "env" files in the gamehook/<app> config
// folders and from the process environment. User folders override system
// folders and the environment overrides both.
func LoadEnv(app string) (map[string]string, error) {
	env := make(map[string]string)
	folders := configdir.New("gamehook", app).QueryFolders(configdir.All)
	for i := len(folders) - 1; i >= 0; i-- {
		data, err := folders[i].ReadFile("env")
		if err != nil {
			continue
		}
		vals, err := godotenv.Unmarshal(string(data))
		if err != nil {
			return nil, errors.Wrapf(err, "parsing %s", filepath.Join(folders[i].Path, "env"))
		}
		for k, v := range vals {
			env[k] = v
		}
	}
	mergeEnviron(env, os.Environ())
	return env, nil
}

func mergeEnviron(env map[string]string, environ []string) {
	for _, kv := range environ {
		k, v, ok := strings.Cut(kv, "=")
		if ok && strings.HasPrefix(k, envPrefix) {
			env[k] = v
		}
	}
}
