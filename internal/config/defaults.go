package config

const (
	defaultOutputDir   = "~/.local/share/coursebuild/output"
	defaultLogDir      = "~/.local/share/coursebuild/logs"
	defaultStatePath   = "~/.local/share/coursebuild/drafts.db"
	defaultStartLesson = 1
	defaultLogFormat   = "console"
	defaultLogLevel    = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			OutputDir: defaultOutputDir,
			LogDir:    defaultLogDir,
			StatePath: defaultStatePath,
		},
		Toc: Toc{
			StartLesson: defaultStartLesson,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
