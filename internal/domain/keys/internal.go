package keys

// EnvPrefix is prepended to every key read from the environment (e.g. TUBAUDIO_OUTPUT_DIR).
const EnvPrefix = "TUBAUDIO"
