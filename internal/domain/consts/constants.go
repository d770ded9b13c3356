// Package consts holds various global, unchanging values.
package consts

// Default file locations, relative to the working directory.
const (
	DefaultBatchFile  = "urls.txt"
	DefaultFailureLog = "failed_downloads.txt"
	DefaultCookieFile = "cookies.txt"
)

// Device defaults.
const (
	DefaultDeviceMount = "/Volumes/NO NAME"
	DefaultMinFree     = "100MiB"
	DefaultOutputDir   = "/"
)

// Input defaults.
const (
	DefaultURLPrefix = "https://www.youtube.com/"
	QuitCommand      = "quit"
)

// DefaultUserAgent is sent with every extraction request.
const DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

// BytesPerGB is the divisor used when reporting free space.
const BytesPerGB = 1024 * 1024 * 1024

// ForbiddenFilenameChars are stripped from titles before building output paths.
const ForbiddenFilenameChars = `<>:"/\|?*`
