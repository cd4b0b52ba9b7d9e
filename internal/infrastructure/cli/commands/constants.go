package commands

// Error messages
const (
	ErrContainerUnavailable     = "configuration unavailable"
	ErrDoctorServiceUnavailable = "doctor service unavailable"
)

// Success messages
const (
	MsgConfigurationValid       = "Configuration valid"
	MsgNoDifferencesFromDefault = "No differences from default configuration."
)
