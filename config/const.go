package config

import "strings"

// AppVersion is the version of the tool, set at build time with -ldflags.
var AppVersion string

// AppName is the name of the tool.
const AppName = "SplashTile"

// LogWinSubDir is the sub directory for the log files on windows.
var LogWinSubDir = AppName

// LogSubDir is the sub directory for the log files.
var LogSubDir = "." + strings.ToLower(AppName)

// LogExt is the extension for the log files.
var LogExt = ".log"

// ConfigFileName is the name of the JSON config file inside the config directory.
const ConfigFileName = "config.json"

// Defaults used when a config file is missing or leaves a value unset.
const (
	DefaultJPEGQuality = 95
	DefaultCropMode    = "center"
	DefaultTileName    = "tile"
)
