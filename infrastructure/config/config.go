// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/anchorchain/anchord/domain/mcverify"
	"github.com/anchorchain/anchord/domain/mcverify/processes/mchashverifier"
	"github.com/anchorchain/anchord/infrastructure/logger"
	"github.com/anchorchain/anchord/version"
	"github.com/btcsuite/btcutil"
	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
)

const (
	defaultConfigFilename        = "anchord.conf"
	defaultLogLevel              = "info"
	defaultLogDirname            = "logs"
	defaultLogFilename           = "anchord.log"
	defaultErrLogFilename        = "anchord_err.log"
	defaultStabilityCacheDirname = "mcstability"
	defaultSlotDurationMillis    = 6000
	defaultVerifyPolicy          = "staleness-aware"
)

var (
	// DefaultAppDir is the default home directory for anchord.
	DefaultAppDir = btcutil.AppDataDir("anchord", false)

	defaultConfigFile = filepath.Join(DefaultAppDir, defaultConfigFilename)
	defaultLogDir     = filepath.Join(DefaultAppDir, defaultLogDirname)
)

// Flags defines the configuration options for anchord.
//
// See loadConfig for details on the configuration load process.
type Flags struct {
	ShowVersion bool   `short:"V" long:"version" description:"Display version information and exit"`
	ConfigFile  string `short:"C" long:"configfile" description:"Path to configuration file"`
	AppDir      string `short:"b" long:"appdir" description:"Directory to store data"`
	LogDir      string `long:"logdir" description:"Directory to log output."`
	DebugLevel  string `short:"d" long:"debuglevel" description:"Logging level for all subsystems {trace, debug, info, warn, error, critical} -- You may also specify <subsystem>=<level>,<subsystem2>=<level>,... to set the log level for individual subsystems -- Use show to list available subsystems"`

	SlotDurationMillis uint64 `long:"slotduration" description:"Anchor-chain slot duration in milliseconds"`

	MainchainSecurityParameter  *uint64  `long:"mcsecurityparam" description:"Mainchain security parameter k, used to derive the tip staleness threshold"`
	MainchainActiveSlotsCoeff   *float64 `long:"mcactiveslotscoeff" description:"Mainchain active slots coefficient f, used to derive the tip staleness threshold"`
	MainchainSlotDurationMillis *uint64  `long:"mcslotduration" description:"Mainchain slot duration in milliseconds, used to derive the tip staleness threshold"`
	McHashStalenessThreshold    *uint64  `long:"mcstalenessthreshold" description:"Maximum mainchain tip age in seconds before the local observer is considered lagging. Overrides the value derived from the mainchain parameters"`

	VerifyPolicy      string `long:"verifypolicy" choice:"staleness-aware" choice:"existence-first" description:"Policy for handling a mainchain reference missing from the local view"`
	NoStabilityCache  bool   `long:"nostabilitycache" description:"Disable the persistent cache of positive mainchain stability answers"`
	StabilityCacheDir string `long:"stabilitycachedir" description:"Directory to store the mainchain stability cache"`
}

// Config defines the configuration options for anchord.
//
// See loadConfig for details on the configuration load process.
type Config struct {
	*Flags

	// Policy is the parsed form of Flags.VerifyPolicy.
	Policy mchashverifier.Policy
}

// McVerifyConfig assembles the configuration of the mainchain-hash
// verification stage.
func (cfg *Config) McVerifyConfig() *mcverify.Config {
	return &mcverify.Config{
		SlotDurationMillis:           cfg.SlotDurationMillis,
		TipStalenessThresholdSeconds: cfg.McHashStalenessThreshold,
		MainchainSecurityParameter:   cfg.MainchainSecurityParameter,
		MainchainActiveSlotsCoeff:    cfg.MainchainActiveSlotsCoeff,
		MainchainSlotDurationMillis:  cfg.MainchainSlotDurationMillis,
		Policy:                       cfg.Policy,
	}
}

// cleanAndExpandPath expands environment variables and leading ~ in the
// passed path, cleans the result, and returns it.
func cleanAndExpandPath(path string) string {
	// Expand initial ~ to OS specific home directory.
	if strings.HasPrefix(path, "~") {
		homeDir := filepath.Dir(DefaultAppDir)
		path = strings.Replace(path, "~", homeDir, 1)
	}

	// NOTE: The os.ExpandEnv doesn't work with Windows-style %VARIABLE%,
	// but they variables can still be expanded via POSIX-style $VARIABLE.
	return filepath.Clean(os.ExpandEnv(path))
}

// LoadConfig initializes and parses the config using a config file and
// command line options.
//
// The configuration proceeds as follows:
// 	1) Start with a default config with sane settings
// 	2) Pre-parse the command line to check for an alternative config file
// 	3) Load configuration file overwriting defaults with any specified options
// 	4) Parse CLI options and overwrite/add any specified options
//
// The above results in anchord functioning properly without any config
// settings while still allowing the user to override settings with config
// files and command line options. Command line options always take precedence.
func LoadConfig() (*Config, error) {
	cfgFlags := defaultFlags()

	// Pre-parse the command line options to see if an alternative config
	// file or the version flag was specified. Any errors aside from the
	// help message error can be ignored here since they will be caught by
	// the final parse below.
	preCfg := *cfgFlags
	preParser := flags.NewParser(&preCfg, flags.HelpFlag)
	_, err := preParser.Parse()
	if err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			fmt.Fprintln(os.Stderr, err)
			return nil, err
		}
	}

	appName := filepath.Base(os.Args[0])
	appName = strings.TrimSuffix(appName, filepath.Ext(appName))
	usageMessage := fmt.Sprintf("Use %s -h to show usage", appName)

	// Show the version and exit if the version flag was specified.
	if preCfg.ShowVersion {
		fmt.Println(appName, "version", version.Version())
		os.Exit(0)
	}

	// Load additional config from file.
	parser := flags.NewParser(cfgFlags, flags.Default)
	cfg := &Config{
		Flags: cfgFlags,
	}
	err = flags.NewIniParser(parser).ParseFile(preCfg.ConfigFile)
	if err != nil {
		if _, ok := err.(*os.PathError); !ok {
			fmt.Fprintf(os.Stderr, "Error parsing config file: %s\n", err)
			fmt.Fprintln(os.Stderr, usageMessage)
			return nil, err
		}
		// A missing config file is an error only when it was explicitly
		// requested.
		if preCfg.ConfigFile != defaultConfigFile {
			fmt.Fprintf(os.Stderr, "Error parsing config file: %s\n", err)
			fmt.Fprintln(os.Stderr, usageMessage)
			return nil, err
		}
	}

	// Parse command line options again to ensure they take precedence.
	_, err = parser.Parse()
	if err != nil {
		if flagsErr, ok := err.(*flags.Error); !ok || flagsErr.Type != flags.ErrHelp {
			fmt.Fprintln(os.Stderr, usageMessage)
		}
		return nil, err
	}

	err = cfg.resolve(usageMessage)
	if err != nil {
		return nil, err
	}
	err = cfg.initLogging(usageMessage)
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

func defaultFlags() *Flags {
	return &Flags{
		ConfigFile:         defaultConfigFile,
		DebugLevel:         defaultLogLevel,
		AppDir:             DefaultAppDir,
		LogDir:             defaultLogDir,
		SlotDurationMillis: defaultSlotDurationMillis,
		VerifyPolicy:       defaultVerifyPolicy,
	}
}

// resolve validates the parsed flags and finishes derived fields: expanded
// paths and the parsed verification policy.
func (cfg *Config) resolve(usageMessage string) error {
	funcName := "loadConfig"

	cfg.AppDir = cleanAndExpandPath(cfg.AppDir)
	cfg.LogDir = cleanAndExpandPath(cfg.LogDir)
	if cfg.StabilityCacheDir == "" {
		cfg.StabilityCacheDir = filepath.Join(cfg.AppDir, defaultStabilityCacheDirname)
	} else {
		cfg.StabilityCacheDir = cleanAndExpandPath(cfg.StabilityCacheDir)
	}

	// Create the app directory if it doesn't already exist.
	err := os.MkdirAll(cfg.AppDir, 0700)
	if err != nil {
		str := "%s: Failed to create home directory: %s"
		err := errors.Errorf(str, funcName, err)
		fmt.Fprintln(os.Stderr, err)
		return err
	}

	if cfg.SlotDurationMillis == 0 {
		str := "%s: The slotduration option must be greater than 0"
		err := errors.Errorf(str, funcName)
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprintln(os.Stderr, usageMessage)
		return err
	}

	if cfg.MainchainActiveSlotsCoeff != nil &&
		(*cfg.MainchainActiveSlotsCoeff <= 0 || *cfg.MainchainActiveSlotsCoeff > 1) {

		str := "%s: The mcactiveslotscoeff option must be in (0, 1] -- parsed [%f]"
		err := errors.Errorf(str, funcName, *cfg.MainchainActiveSlotsCoeff)
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprintln(os.Stderr, usageMessage)
		return err
	}

	cfg.Policy, err = mchashverifier.ParsePolicy(cfg.VerifyPolicy)
	if err != nil {
		err := errors.Errorf("%s: %s", funcName, err)
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprintln(os.Stderr, usageMessage)
		return err
	}

	return nil
}

// initLogging starts log rotation and applies the debug level option.
func (cfg *Config) initLogging(usageMessage string) error {
	funcName := "loadConfig"

	// Special show command to list supported subsystems and exit.
	if cfg.DebugLevel == "show" {
		fmt.Println("Supported subsystems", logger.SupportedSubsystems())
		os.Exit(0)
	}

	// Initialize log rotation. After log rotation has been initialized, the
	// logger variables may be used.
	err := logger.InitLog(filepath.Join(cfg.LogDir, defaultLogFilename),
		filepath.Join(cfg.LogDir, defaultErrLogFilename))
	if err != nil {
		err := errors.Errorf("%s: %s", funcName, err)
		fmt.Fprintln(os.Stderr, err)
		return err
	}

	// Parse, validate, and set debug log level(s).
	err = logger.ParseAndSetLogLevels(cfg.DebugLevel)
	if err != nil {
		err := errors.Errorf("%s: %s", funcName, err)
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprintln(os.Stderr, usageMessage)
		return err
	}

	return nil
}
