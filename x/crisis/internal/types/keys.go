package types

const (
	// ModuleName is the module name for this module
	ModuleName = "crisis"

	// RouterKey is the message route for crisis
	RouterKey = ModuleName
)
