// Package models holds the data types shared across tubaudio.
package models

// Settings holds the resolved configuration for a run.
type Settings struct {
	BatchFile  string
	FailureLog string
	CookieFile string

	DeviceMount  string
	MinFreeBytes uint64
	OutputDir    string

	Transcoder   string
	YtdlpPath    string
	AudioQuality string
	UserAgent    string

	URLPrefix     string
	CookieBrowser string

	History   bool
	HistoryDB string
}

// DownloadConfig is the option set handed to the extraction library for one URL.
//
// Built once per download attempt and never mutated afterwards.
type DownloadConfig struct {
	Format         string
	AudioCodec     string
	AudioQuality   string
	OutputTemplate string
	UserAgent      string
	CookieFile     string
	Verbose        bool
	IgnoreErrors   bool
	Executable     string
	Transcoder     string
}

// DiskUsage is a point-in-time snapshot of a mount point.
type DiskUsage struct {
	Total uint64
	Used  uint64
	Free  uint64
}
