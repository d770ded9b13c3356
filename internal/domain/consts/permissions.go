package consts

// Permissions for files and directories tubaudio creates.
const (
	PermsGenericDir = 0o755
	PermsAudioDir   = 0o755

	PermsLogFile = 0o644

	PermsCookieFile = 0o600
)
