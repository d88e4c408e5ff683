package domain

// State is the process-wide enforcement state: whether input devices are
// intercepted and whether the audio endpoint is muted.
type State struct {
	InputBlocked bool
	AudioMuted   bool
}

// Unrestricted is the safe fallback every teardown path must end in.
func Unrestricted() State {
	return State{}
}

// Info identifies the adapter behind the enforcement port.
type Info struct {
	Name     string
	Version  string
	Platform string
}
