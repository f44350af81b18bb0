package types

const (
	EventTypeValueMoved = "value_moved"
	EventTypeApproval   = "approval"

	AttributeKeyFrom    = "from"
	AttributeKeyTo      = "to"
	AttributeKeyAmount  = "amount"
	AttributeKeyOwner   = "owner"
	AttributeKeySpender = "spender"

	AttributeValueCategory = ModuleName
)
