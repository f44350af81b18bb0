package types

const (
	EventTypeRoleGranted   = "role_granted"
	EventTypeRoleRevoked   = "role_revoked"
	EventTypeRoleRenounced = "role_renounced"
	EventTypePauseToggled  = "pause_toggled"

	AttributeKeyRole    = "role"
	AttributeKeyAccount = "account"
	AttributeKeyActor   = "actor"
	AttributeKeyPaused  = "paused"

	AttributeValueCategory = ModuleName
)
