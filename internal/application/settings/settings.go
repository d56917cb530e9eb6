// Package settings defines application-level configuration data.
package settings

import "time"

// FetchConfig controls feed retrieval.
type FetchConfig struct {
	TimeoutSeconds int    `yaml:"timeout_seconds" kong:"help='Fetch timeout in seconds (0 disables)',default='10',env='JRSS_FETCH_TIMEOUT_SECONDS'"`
	UserAgent      string `yaml:"user_agent" kong:"help='User-Agent header',default='jrss/1.0',env='JRSS_FETCH_USER_AGENT'"`
	MaxBodyBytes   int    `yaml:"max_body_bytes" kong:"help='Maximum response body size in bytes',default='10485760',env='JRSS_FETCH_MAX_BODY_BYTES'"`
}

// Timeout returns the fetch timeout; zero means none.
func (c FetchConfig) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// LogConfig controls diagnostic logging.
type LogConfig struct {
	Level      string `yaml:"level" kong:"help='Log level (debug/info/warn/error)',default='info',env='JRSS_LOG_LEVEL'"`
	File       string `yaml:"file" kong:"help='Log file path',env='JRSS_LOG_FILE'"`
	MaxSizeMB  int    `yaml:"max_size_mb" kong:"help='Rotate after this many megabytes',default='16'"`
	MaxBackups int    `yaml:"max_backups" kong:"help='Rotated files to keep',default='3'"`
	MaxAgeDays int    `yaml:"max_age_days" kong:"help='Days to keep rotated files',default='14'"`
}

// JournalConfig controls the fetch attempt journal.
type JournalConfig struct {
	Enabled bool   `yaml:"enabled" kong:"help='Record fetch attempts',default='true',env='JRSS_JOURNAL_ENABLED'"`
	File    string `yaml:"file" kong:"help='Journal database path',env='JRSS_JOURNAL_FILE'"`
}

// KeyMapConfig defines the configuration for keybindings.
type KeyMapConfig struct {
	Up       string `yaml:"up" kong:"help='Up key',default='k'"`
	Down     string `yaml:"down" kong:"help='Down key',default='j'"`
	Left     string `yaml:"left" kong:"help='Left/Back key',default='h'"`
	Right    string `yaml:"right" kong:"help='Right/Enter key',default='l'"`
	UpPage   string `yaml:"up_page" kong:"help='Page Up key',default='ctrl+u'"`
	DownPage string `yaml:"down_page" kong:"help='Page Down key',default='ctrl+d'"`
	Top      string `yaml:"top" kong:"help='Top key',default='g'"`
	Bottom   string `yaml:"bottom" kong:"help='Bottom key',default='G'"`
	Open     string `yaml:"open" kong:"help='Open key',default='enter'"`
	Back     string `yaml:"back" kong:"help='Back key',default='esc'"`
	Quit     string `yaml:"quit" kong:"help='Quit key',default='q'"`
	AddFeed  string `yaml:"add_feed" kong:"help='Add subscription key',default='a'"`
	Refresh  string `yaml:"refresh" kong:"help='Refetch key',default='r'"`
}

// ThemeConfig defines the color theme configuration.
type ThemeConfig struct {
	FeedName string `yaml:"feed_name" kong:"help='Feed name color',default='244'"`
	Error    string `yaml:"error" kong:"help='Error line color',default='203'"`
}

// Settings represents the application configuration.
// Subscriptions are not part of it; they last for one run.
type Settings struct {
	Fetch   FetchConfig   `yaml:"fetch" kong:"embed,prefix='fetch.'"`
	Log     LogConfig     `yaml:"log" kong:"embed,prefix='log.'"`
	Journal JournalConfig `yaml:"journal" kong:"embed,prefix='journal.'"`
	KeyMap  KeyMapConfig  `yaml:"keymap" kong:"embed,prefix='keymap.'"`
	Theme   ThemeConfig   `yaml:"theme" kong:"embed,prefix='theme.'"`
}
