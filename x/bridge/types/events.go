package types

const (
	EventTypeBridgeIntent      = "bridge_intent"
	EventTypeBridgeApprovalSet = "bridge_approval_set"
	EventTypeBridgeLimitSet    = "bridge_limit_set"

	AttributeKeySender          = "sender"
	AttributeKeyOperator        = "operator"
	AttributeKeyDestination     = "destination"
	AttributeKeyAmount          = "amount"
	AttributeKeyExternalAddress = "external_address"
	AttributeKeyIntentID        = "intent_id"
	AttributeKeyIntentHash      = "intent_hash"
	AttributeKeyApproved        = "approved"
	AttributeKeyLimit           = "limit"

	AttributeValueCategory = ModuleName
)
