package types

const (
	EventTypeAssetRescued  = "asset_rescued"
	EventTypeAssetReceived = "asset_received"

	AttributeKeyRescuer = "rescuer"
	AttributeKeyAsset   = "asset"
	AttributeKeyTo      = "to"
	AttributeKeyAmount  = "amount"

	AttributeValueCategory = ModuleName
)
