// Package command holds fixed yt-dlp option values.
package command

// Extraction
const (
	FormatBestAudio = "bestaudio/best"
	AudioCodec      = "mp3"
	AudioExt        = ".mp3"
	FilenameSyntax  = "%(title)s.%(ext)s"
)

// Headers
const (
	UserAgentHeader = "User-Agent:"
)

// Transcoder
const (
	FFmpeg         = "ffmpeg"
	FFmpegVersion  = "-version"
	FFmpegLocation = "--ffmpeg-location"
	DefaultQuality = "192K"
)

// JSON result types
const (
	TypePlaylist   = "playlist"
	TypeMultiVideo = "multi_video"
)
