package config

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/pflag"

	"github.com/atomicstack/tmux-node-picker/internal/app"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	File    string
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

const (
	flagNvmDir     = "nvm-dir"
	flagSocket     = "socket"
	flagExecutable = "executable"
	flagSort       = "sort"
	flagNoEnter    = "no-enter"
	flagTrace      = "trace"
	flagLogFile    = "log-file"
	flagConfig     = "config"
)

const (
	envNvmDir     = "NVM_DIR"
	envSocketPath = "TMUX_NODE_PICKER_SOCKET"
	envExecutable = "TMUX_NODE_PICKER_EXECUTABLE"
	envSort       = "TMUX_NODE_PICKER_SORT"
	envNoEnter    = "TMUX_NODE_PICKER_NO_ENTER"
	envTrace      = "TMUX_NODE_PICKER_TRACE"
	envLogFile    = "TMUX_NODE_PICKER_LOG_FILE"
	envConfig     = "TMUX_NODE_PICKER_CONFIG"
	envXDGConfig  = "XDG_CONFIG_HOME"
	envHome       = "HOME"
)

const defaultExecutable = "node"

// Register defines the command-line flags read by Load.
func Register(fs *pflag.FlagSet) {
	fs.String(flagNvmDir, "", "nvm installation root (default $NVM_DIR or ~/.nvm)")
	fs.String(flagSocket, "", "path to the tmux socket (overrides environment detection)")
	fs.String(flagExecutable, defaultExecutable, "binary that must exist in <version>/bin")
	fs.Bool(flagSort, false, "sort versions by semantic version instead of directory order")
	fs.Bool(flagNoEnter, false, "type the commands without pressing Enter")
	fs.Bool(flagTrace, false, "enable verbose JSON trace logging")
	fs.String(flagLogFile, "", "path to the log file")
	fs.String(flagConfig, "", "path to a TOML config file")
}

// Load resolves configuration with precedence flag > environment > config
// file > built-in default. fs must already be parsed.
func Load(fs *pflag.FlagSet, args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	path, explicit := configPath(fs, env)
	file, err := loadFile(path, explicit)
	if err != nil {
		return Config{}, err
	}

	nvmDir := stringValue(fs, flagNvmDir, env, envNvmDir, file.NvmDir, "")
	socket := stringValue(fs, flagSocket, env, envSocketPath, file.Socket, "")
	executable := stringValue(fs, flagExecutable, env, envExecutable, file.Executable, defaultExecutable)
	sortVersions := boolValue(fs, flagSort, env, envSort, file.Sort, false)
	noEnter := boolValue(fs, flagNoEnter, env, envNoEnter, file.NoEnter, false)
	trace := boolValue(fs, flagTrace, env, envTrace, file.Trace, false)
	logFile := stringValue(fs, flagLogFile, env, envLogFile, file.LogFile, "")

	if strings.TrimSpace(executable) == "" {
		return Config{}, fmt.Errorf("executable must not be empty")
	}
	if strings.ContainsRune(executable, filepath.Separator) {
		return Config{}, fmt.Errorf("executable must be a file name, got %q", executable)
	}

	cfg := Config{
		App: app.Config{
			NvmDir:     nvmDir,
			SocketPath: socket,
			Executable: executable,
			Sort:       sortVersions,
			NoEnter:    noEnter,
		},
		Logging: Logging{
			FilePath: logFile,
			Trace:    trace,
		},
		File: path,
		Flags: map[string]string{
			flagNvmDir:     nvmDir,
			flagSocket:     socket,
			flagExecutable: executable,
			flagSort:       strconv.FormatBool(sortVersions),
			flagNoEnter:    strconv.FormatBool(noEnter),
			flagTrace:      strconv.FormatBool(trace),
			flagLogFile:    logFile,
			flagConfig:     path,
		},
		Args: append([]string(nil), args...),
	}
	return cfg, nil
}

func configPath(fs *pflag.FlagSet, env map[string]string) (string, bool) {
	if fs.Changed(flagConfig) {
		v, _ := fs.GetString(flagConfig)
		return v, true
	}
	if v := strings.TrimSpace(env[envConfig]); v != "" {
		return v, true
	}
	if base := strings.TrimSpace(env[envXDGConfig]); base != "" {
		return filepath.Join(base, "tmux-node-picker", "config.toml"), false
	}
	if home := strings.TrimSpace(env[envHome]); home != "" {
		return filepath.Join(home, ".config", "tmux-node-picker", "config.toml"), false
	}
	return "", false
}

func stringValue(fs *pflag.FlagSet, name string, env map[string]string, key string, file *string, fallback string) string {
	if fs.Changed(name) {
		v, _ := fs.GetString(name)
		return v
	}
	if v, ok := env[key]; ok && strings.TrimSpace(v) != "" {
		return v
	}
	if file != nil {
		return *file
	}
	return fallback
}

func boolValue(fs *pflag.FlagSet, name string, env map[string]string, key string, file *bool, fallback bool) bool {
	if fs.Changed(name) {
		v, _ := fs.GetBool(name)
		return v
	}
	if file != nil {
		fallback = *file
	}
	return envOrBool(env, key, fallback)
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}
