package models

import (
	"io"
	"os"
	"runtime"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

const (
	// RegionSize is the size of Dolphin's mapping of GameCube main memory.
	RegionSize = 0x2000000
	// GameID is the id of the US release, stored at the start of main memory.
	GameID = "GQPE78"
)

type Config struct {
	// ProcessNames are matched as substrings of the process name.
	ProcessNames []string
	RegionSize   uint64
	// RegionPathHint must appear in the backing file of a Linux mapping for
	// it to be considered the emulated region. Empty disables the check.
	RegionPathHint string
	// Signature is compared against memory at SignatureAddr after hooking.
	// An empty signature skips identity validation.
	Signature     []byte
	SignatureAddr uint64

	Color   bool
	Verbose bool
	Output  io.Writer
}

func DefaultConfig() *Config {
	c := &Config{
		RegionSize:     RegionSize,
		RegionPathHint: "dolphin-emu",
		Signature:      []byte(GameID),
		SignatureAddr:  0x80000000,
		Output:         os.Stderr,
	}
	switch runtime.GOOS {
	case "windows":
		c.ProcessNames = []string{"Dolphin"}
	case "darwin":
		c.ProcessNames = []string{"Dolphin"}
	default:
		c.ProcessNames = []string{"dolphin-emu"}
	}
	return c
}

// Environment keys understood by ApplyEnv.
const (
	EnvProcessNames = "GAMEHOOK_PROCESS_NAMES"
	EnvRegionSize   = "GAMEHOOK_REGION_SIZE"
	EnvRegionHint   = "GAMEHOOK_REGION_HINT"
	EnvSignature    = "GAMEHOOK_SIGNATURE"
	EnvVerbose      = "GAMEHOOK_VERBOSE"
)

// ApplyEnv overrides fields from a key/value environment. Unknown keys are
// ignored.
func (c *Config) ApplyEnv(env map[string]string) error {
	if v, ok := env[EnvProcessNames]; ok {
		var names []string
		for _, name := range strings.Split(v, ",") {
			if name = strings.TrimSpace(name); name != "" {
				names = append(names, name)
			}
		}
		if len(names) == 0 {
			return errors.Errorf("%s: no process names given", EnvProcessNames)
		}
		c.ProcessNames = names
	}
	if v, ok := env[EnvRegionSize]; ok {
		size, err := strconv.ParseUint(v, 0, 64)
		if err != nil {
			return errors.Wrapf(err, "%s", EnvRegionSize)
		}
		c.RegionSize = size
	}
	if v, ok := env[EnvRegionHint]; ok {
		c.RegionPathHint = v
	}
	if v, ok := env[EnvSignature]; ok {
		c.Signature = []byte(v)
	}
	if v, ok := env[EnvVerbose]; ok {
		verbose, err := strconv.ParseBool(v)
		if err != nil {
			return errors.Wrapf(err, "%s", EnvVerbose)
		}
		c.Verbose = verbose
	}
	return nil
}
