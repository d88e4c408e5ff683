package dto

type SessionPolicyInput struct {
	BlockInput bool
	MuteAudio  bool
}

type StateOutput struct {
	InputBlocked bool
	AudioMuted   bool
}

type DoctorOutput struct {
	Name     string
	Version  string
	Platform string
}
