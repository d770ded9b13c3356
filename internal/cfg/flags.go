package cfg

import (
	"tubaudio/internal/domain/command"
	"tubaudio/internal/domain/consts"
	"tubaudio/internal/domain/keys"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// initProgramFlags initializes flags related to the core program. E.g. logging level.
func initProgramFlags(rootCmd *cobra.Command) error {

	// Config file
	rootCmd.PersistentFlags().String(keys.ConfigFile, "", "Path to a config file (any Viper-supported format, keys match flag names)")
	if err := viper.BindPFlag(keys.ConfigFile, rootCmd.PersistentFlags().Lookup(keys.ConfigFile)); err != nil {
		return err
	}

	// Debug level
	rootCmd.PersistentFlags().Int(keys.DebugLevel, 0, "Debugging level (0 - 5)")
	if err := viper.BindPFlag(keys.DebugLevel, rootCmd.PersistentFlags().Lookup(keys.DebugLevel)); err != nil {
		return err
	}
	return nil
}

// initFileFlags initializes the batch, failure log, and cookie file locations.
func initFileFlags(rootCmd *cobra.Command) error {

	rootCmd.Flags().String(keys.BatchFile, consts.DefaultBatchFile, "File of URLs to download before prompting (one per line, '#' comments)")
	if err := viper.BindPFlag(keys.BatchFile, rootCmd.Flags().Lookup(keys.BatchFile)); err != nil {
		return err
	}

	rootCmd.PersistentFlags().String(keys.FailureLog, consts.DefaultFailureLog, "File failed downloads are appended to")
	if err := viper.BindPFlag(keys.FailureLog, rootCmd.PersistentFlags().Lookup(keys.FailureLog)); err != nil {
		return err
	}

	rootCmd.Flags().String(keys.CookieFile, consts.DefaultCookieFile, "Netscape cookie file passed to yt-dlp (used if present)")
	if err := viper.BindPFlag(keys.CookieFile, rootCmd.Flags().Lookup(keys.CookieFile)); err != nil {
		return err
	}

	rootCmd.Flags().String(keys.CookieBrowser, "", "Export cookies from this browser into the cookie file when it is missing (e.g. 'firefox')")
	if err := viper.BindPFlag(keys.CookieBrowser, rootCmd.Flags().Lookup(keys.CookieBrowser)); err != nil {
		return err
	}
	return nil
}

// initDeviceFlags initializes flags for the target device and output location.
func initDeviceFlags(rootCmd *cobra.Command) error {

	rootCmd.Flags().String(keys.DeviceMount, consts.DefaultDeviceMount, "Mount point of the removable device")
	if err := viper.BindPFlag(keys.DeviceMount, rootCmd.Flags().Lookup(keys.DeviceMount)); err != nil {
		return err
	}

	rootCmd.Flags().String(keys.MinFree, consts.DefaultMinFree, "Minimum free space required on the device (e.g. '100MiB', '1GB')")
	if err := viper.BindPFlag(keys.MinFree, rootCmd.Flags().Lookup(keys.MinFree)); err != nil {
		return err
	}

	rootCmd.Flags().StringP(keys.OutputDir, "o", consts.DefaultOutputDir, "Directory audio files are written to")
	if err := viper.BindPFlag(keys.OutputDir, rootCmd.Flags().Lookup(keys.OutputDir)); err != nil {
		return err
	}

	rootCmd.Flags().String(keys.URLPrefix, consts.DefaultURLPrefix, "Prefix a URL entered at the prompt must start with")
	if err := viper.BindPFlag(keys.URLPrefix, rootCmd.Flags().Lookup(keys.URLPrefix)); err != nil {
		return err
	}
	return nil
}

// initExternalFlags initializes flags for the external programs.
func initExternalFlags(rootCmd *cobra.Command) error {

	rootCmd.Flags().String(keys.Transcoder, command.FFmpeg, "Transcoder binary name or path")
	if err := viper.BindPFlag(keys.Transcoder, rootCmd.Flags().Lookup(keys.Transcoder)); err != nil {
		return err
	}

	rootCmd.Flags().String(keys.YtdlpPath, "", "Path to the yt-dlp binary (defaults to yt-dlp in PATH)")
	if err := viper.BindPFlag(keys.YtdlpPath, rootCmd.Flags().Lookup(keys.YtdlpPath)); err != nil {
		return err
	}

	rootCmd.Flags().String(keys.AudioQuality, command.DefaultQuality, "MP3 quality passed to yt-dlp (bitrate like '192K' or VBR 0-10)")
	if err := viper.BindPFlag(keys.AudioQuality, rootCmd.Flags().Lookup(keys.AudioQuality)); err != nil {
		return err
	}

	rootCmd.Flags().String(keys.UserAgent, consts.DefaultUserAgent, "User agent sent with extraction requests")
	if err := viper.BindPFlag(keys.UserAgent, rootCmd.Flags().Lookup(keys.UserAgent)); err != nil {
		return err
	}
	return nil
}

// initHistoryFlags initializes flags for the attempt history database.
func initHistoryFlags(rootCmd *cobra.Command) error {

	rootCmd.Flags().Bool(keys.History, false, "Record every download attempt in the history database")
	if err := viper.BindPFlag(keys.History, rootCmd.Flags().Lookup(keys.History)); err != nil {
		return err
	}

	rootCmd.PersistentFlags().String(keys.HistoryDB, "", "Path to the history database (defaults to ~/.tubaudio/history.db)")
	if err := viper.BindPFlag(keys.HistoryDB, rootCmd.PersistentFlags().Lookup(keys.HistoryDB)); err != nil {
		return err
	}
	return nil
}
