// Package keys holds the Viper/Cobra keys used across tubaudio.
package keys

// Files
const (
	ConfigFile string = "config-file"
	BatchFile  string = "batch-file"
	FailureLog string = "failure-log"
	CookieFile string = "cookie-file"
)

// Device and output
const (
	DeviceMount string = "device-mount"
	MinFree     string = "min-free"
	OutputDir   string = "output-dir"
)

// External programs
const (
	Transcoder   string = "transcoder"
	YtdlpPath    string = "ytdlp-path"
	AudioQuality string = "audio-quality"
	UserAgent    string = "user-agent"
)

// Input
const (
	URLPrefix     string = "url-prefix"
	CookieBrowser string = "cookie-browser"
)

// History
const (
	History       string = "history"
	HistoryDB     string = "history-db"
	HistorySince  string = "since"
	HistoryFailed string = "failed"
	HistoryLimit  string = "limit"
)

// Program
const (
	DebugLevel    string = "debug-level"
	RunDownloader string = "run-downloader"
)
