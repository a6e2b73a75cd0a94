package logger

import (
	"sort"
	"strings"
	"sync"

	"github.com/pkg/errors"
)

// backendLog is the logging backend used to create all subsystem loggers.
var backendLog = NewBackend()

var (
	subsystemsMutex sync.Mutex
	subsystems      = make(map[string]*Logger)
)

// RegisterSubSystem returns the logger for the given subsystem tag, creating
// it if it was not registered before. Packages register their logger in a
// log.go file:
//
//	var log = logger.RegisterSubSystem("MCHV")
func RegisterSubSystem(subsystem string) *Logger {
	subsystemsMutex.Lock()
	defer subsystemsMutex.Unlock()

	logger, ok := subsystems[subsystem]
	if !ok {
		logger = backendLog.Logger(subsystem)
		subsystems[subsystem] = logger
	}
	return logger
}

// InitLog attaches the log file and error log file to the backend log and
// starts it. Messages logged before InitLog are discarded.
func InitLog(logFile, errLogFile string) error {
	err := backendLog.AddLogFile(logFile, LevelTrace)
	if err != nil {
		return errors.Errorf("Error adding log file %s as log rotator for level %s: %s", logFile, LevelTrace, err)
	}
	err = backendLog.AddLogFile(errLogFile, LevelWarn)
	if err != nil {
		return errors.Errorf("Error adding log file %s as log rotator for level %s: %s", errLogFile, LevelWarn, err)
	}
	return backendLog.Run()
}

// SetLogLevel sets the logging level of the given subsystem to the given
// level.
func SetLogLevel(subsystem string, level string) error {
	logLevel, ok := LevelFromString(level)
	if !ok {
		return errors.Errorf("invalid log level %s", level)
	}

	subsystemsMutex.Lock()
	defer subsystemsMutex.Unlock()

	logger, ok := subsystems[subsystem]
	if !ok {
		return errors.Errorf("unknown subsystem %s", subsystem)
	}
	logger.SetLevel(logLevel)
	return nil
}

// SetLogLevels sets the logging level of all registered subsystems to the
// given level.
func SetLogLevels(level string) error {
	logLevel, ok := LevelFromString(level)
	if !ok {
		return errors.Errorf("invalid log level %s", level)
	}

	subsystemsMutex.Lock()
	defer subsystemsMutex.Unlock()

	for _, logger := range subsystems {
		logger.SetLevel(logLevel)
	}
	return nil
}

// SupportedSubsystems returns a sorted list of the registered subsystem tags.
func SupportedSubsystems() []string {
	subsystemsMutex.Lock()
	defer subsystemsMutex.Unlock()

	subsystemTags := make([]string, 0, len(subsystems))
	for tag := range subsystems {
		subsystemTags = append(subsystemTags, tag)
	}
	sort.Strings(subsystemTags)
	return subsystemTags
}

// ParseAndSetLogLevels parses the debug level string and sets the log levels
// accordingly. The debug level string has the form
//
//	<level>|<subsystem>=<level>,...
//
// matching the -d/--debuglevel config option.
func ParseAndSetLogLevels(debugLevel string) error {
	// When the specified string doesn't have any delimiters, treat it as
	// the log level for all subsystems.
	if !strings.Contains(debugLevel, ",") && !strings.Contains(debugLevel, "=") {
		return SetLogLevels(debugLevel)
	}

	for _, logLevelPair := range strings.Split(debugLevel, ",") {
		if !strings.Contains(logLevelPair, "=") {
			return errors.Errorf("the specified debug level contains an invalid subsystem/level pair %s", logLevelPair)
		}
		fields := strings.Split(logLevelPair, "=")
		if len(fields) != 2 {
			return errors.Errorf("the specified debug level has an invalid format %s", logLevelPair)
		}
		subsystem, level := fields[0], fields[1]
		err := SetLogLevel(subsystem, level)
		if err != nil {
			return err
		}
	}
	return nil
}
