package types

const (
	EventTypeInvariant = "invariant"

	AttributeKeyRoute  = "route"
	AttributeKeyBroken = "broken"

	AttributeValueCrisis = ModuleName
)
