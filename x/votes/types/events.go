package types

const (
	EventTypeDelegateChanged = "delegate_changed"
	EventTypePowerChanged    = "power_changed"

	AttributeKeyDelegator    = "delegator"
	AttributeKeyFromDelegate = "from_delegate"
	AttributeKeyToDelegate   = "to_delegate"
	AttributeKeyAccount      = "account"
	AttributeKeyPrevious     = "previous"
	AttributeKeyCurrent      = "current"

	AttributeValueCategory = ModuleName
)
