package cmd

import (
	"errors"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"
	m "tidyvue.dev/pkg/tidyvue/internal/model"
)

const (
	configVersionKey     = "version"
	currentConfigVersion = 1

	configBaseName   = "tidyvue"
	configFileName   = configBaseName + ".yaml"
	configFolderPath = "."

	outputFlagName      = "output"
	noCacheFlagName     = "no-cache"
	excludeFlagName     = "exclude"
	runParallelFlagName = "parallel"

	runParallelConfigKey = "run.parallel"
	excludeConfigKey     = "paths.exclude"

	defaultReportsDir  = ".tidyvue-reports"
	defaultNoCache     = false
	defaultRunParallel = 1

	envPrefix = "TIDYVUE"

	formatSortClassesKey         = "format.sort_classes"
	formatRemoveDuplicatesKey    = "format.remove_duplicates"
	formatClassLayoutKey         = "format.class_layout"
	formatNormalizeDirectivesKey = "format.normalize_directives"
	formatDirectiveStyleKey      = "format.directive_style"
	formatSameNameModeKey        = "format.same_name_mode"
	formatOrderDirectivesKey     = "format.order_directives"
	formatDirectivePriorityKey   = "format.directive_priority"
	formatOrderAttributesKey     = "format.order_attributes"
	formatAttributeLayoutKey     = "format.attribute_layout"

	logFilenameKey   = "log.filename"
	logLevelKey      = "log.level"
	logVerboseKey    = "log.verbose"
	logMaxSizeKey    = "log.max_size"
	logMaxBackupsKey = "log.max_backups"
	logMaxAgeKey     = "log.max_age"
	logCompressKey   = "log.compress"

	defaultLogFilename   = ".tidyvue.log"
	defaultLogLevel      = int(slog.LevelInfo)
	defaultLogVerbose    = false
	defaultLogMaxSize    = 10
	defaultLogMaxBackups = 3
	defaultLogMaxAge     = 28
	defaultLogCompress   = true
)

var globalLogger *slog.Logger

var configOnce sync.Once

// ensureConfig loads viper defaults and the optional config file. It is
// called both from init and from newRootCmd, which runs during package
// variable initialization before any init function.
func ensureConfig() {
	configOnce.Do(loadConfig)
}

func init() {
	ensureConfig()
}

func loadConfig() {
	viper.SetConfigName(configBaseName)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configFolderPath)
	viper.SetConfigFile(filepath.Join(configFolderPath, configFileName))
	viper.AutomaticEnv()
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	viper.SetDefault(configVersionKey, currentConfigVersion)
	viper.SetDefault(outputFlagName, defaultReportsDir)
	viper.SetDefault(noCacheFlagName, defaultNoCache)
	viper.SetDefault(runParallelConfigKey, defaultRunParallel)
	viper.SetDefault(excludeConfigKey, []string{})

	defaults := m.DefaultConfig()
	viper.SetDefault(formatSortClassesKey, defaults.SortClasses)
	viper.SetDefault(formatRemoveDuplicatesKey, defaults.RemoveDuplicates)
	viper.SetDefault(formatClassLayoutKey, string(defaults.ClassLayout))
	viper.SetDefault(formatNormalizeDirectivesKey, defaults.NormalizeDirectives)
	viper.SetDefault(formatDirectiveStyleKey, string(defaults.DirectiveStyle))
	viper.SetDefault(formatSameNameModeKey, string(defaults.SameNameMode))
	viper.SetDefault(formatOrderDirectivesKey, defaults.OrderDirectives)
	viper.SetDefault(formatDirectivePriorityKey, defaults.DirectivePriority)
	viper.SetDefault(formatOrderAttributesKey, defaults.OrderAttributes)
	viper.SetDefault(formatAttributeLayoutKey, string(defaults.AttributeLayout))

	// Logging defaults (used by config/env and as fallbacks for flags).
	viper.SetDefault(logFilenameKey, defaultLogFilename)
	viper.SetDefault(logLevelKey, defaultLogLevel)
	viper.SetDefault(logVerboseKey, defaultLogVerbose)
	viper.SetDefault(logMaxSizeKey, defaultLogMaxSize)
	viper.SetDefault(logMaxBackupsKey, defaultLogMaxBackups)
	viper.SetDefault(logMaxAgeKey, defaultLogMaxAge)
	viper.SetDefault(logCompressKey, defaultLogCompress)

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return
		}

		return
	}
}

// resolveConfig materializes the formatting options from config, env and
// flags into a fully populated ResolvedConfig. Unknown enum values fall back
// to the defaults.
func resolveConfig() m.ResolvedConfig {
	cfg := m.DefaultConfig()

	cfg.SortClasses = viper.GetBool(formatSortClassesKey)
	cfg.RemoveDuplicates = viper.GetBool(formatRemoveDuplicatesKey)
	cfg.ClassLayout = parseClassLayout(viper.GetString(formatClassLayoutKey), cfg.ClassLayout)
	cfg.NormalizeDirectives = viper.GetBool(formatNormalizeDirectivesKey)
	cfg.DirectiveStyle = parseDirectiveStyle(viper.GetString(formatDirectiveStyleKey), cfg.DirectiveStyle)
	cfg.SameNameMode = parseSameNameMode(viper.GetString(formatSameNameModeKey), cfg.SameNameMode)
	cfg.OrderDirectives = viper.GetBool(formatOrderDirectivesKey)
	cfg.OrderAttributes = viper.GetBool(formatOrderAttributesKey)
	cfg.AttributeLayout = parseAttributeLayout(viper.GetString(formatAttributeLayoutKey), cfg.AttributeLayout)

	if priority := viper.GetStringSlice(formatDirectivePriorityKey); len(priority) > 0 {
		cfg.DirectivePriority = priority
	}

	return cfg
}

func parseClassLayout(value string, fallback m.ClassLayout) m.ClassLayout {
	switch m.ClassLayout(strings.ToLower(strings.TrimSpace(value))) {
	case m.ClassLayoutInline:
		return m.ClassLayoutInline
	case m.ClassLayoutPreserve:
		return m.ClassLayoutPreserve
	}

	return fallback
}

func parseDirectiveStyle(value string, fallback m.DirectiveStyle) m.DirectiveStyle {
	switch m.DirectiveStyle(strings.ToLower(strings.TrimSpace(value))) {
	case m.DirectiveStyleShort:
		return m.DirectiveStyleShort
	case m.DirectiveStyleLong:
		return m.DirectiveStyleLong
	}

	return fallback
}

func parseSameNameMode(value string, fallback m.SameNameMode) m.SameNameMode {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "ignore":
		return m.SameNameIgnore
	case "removevalue", "remove_value":
		return m.SameNameRemoveValue
	case "addvalue", "add_value":
		return m.SameNameAddValue
	}

	return fallback
}

func parseAttributeLayout(value string, fallback m.AttributeLayout) m.AttributeLayout {
	switch m.AttributeLayout(strings.ToLower(strings.TrimSpace(value))) {
	case m.AttributeLayoutInline:
		return m.AttributeLayoutInline
	case m.AttributeLayoutPreserve:
		return m.AttributeLayoutPreserve
	}

	return fallback
}

func parseSlogLevel(value string, defaultLevel slog.Level) slog.Level {
	level := strings.ToLower(strings.TrimSpace(value))
	if level == "" {
		return defaultLevel
	}

	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}

	// Allow numeric slog levels as well (e.g. -4 for debug).
	if n, err := strconv.Atoi(level); err == nil {
		return slog.Level(n)
	}

	return defaultLevel
}

// configureLogger configures the global slog logger.
//
// By default it logs at Info; if verbose is true it logs at Debug.
func configureLogger(logPath string, verbose bool) {
	if strings.TrimSpace(logPath) == "" {
		logPath = viper.GetString(logFilenameKey)
	}

	if strings.TrimSpace(logPath) == "" {
		logPath = defaultLogFilename
	}

	var logLevel slog.Level
	if verbose {
		logLevel = slog.LevelDebug
	} else {
		logLevel = parseSlogLevel(viper.GetString(logLevelKey), slog.LevelInfo)
	}

	logWriter := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    viper.GetInt(logMaxSizeKey),
		MaxBackups: viper.GetInt(logMaxBackupsKey),
		MaxAge:     viper.GetInt(logMaxAgeKey),
		Compress:   viper.GetBool(logCompressKey),
	}

	handler := slog.NewTextHandler(logWriter, &slog.HandlerOptions{
		AddSource: true,
		Level:     logLevel,
	})

	globalLogger = slog.New(handler)
	slog.SetDefault(globalLogger)
}
