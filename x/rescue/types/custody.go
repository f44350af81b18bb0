package types

import (
	"fmt"
	"strings"

	sdk "github.com/hbtc-chain/govledger/types"
)

// Holding is the amount of one asset recorded for one holder.
type Holding struct {
	Asset  string         `json:"asset" yaml:"asset"`
	Holder sdk.AccAddress `json:"holder" yaml:"holder"`
	Amount sdk.Int        `json:"amount" yaml:"amount"`
}

func NewHolding(asset string, holder sdk.AccAddress, amount sdk.Int) Holding {
	return Holding{Asset: asset, Holder: holder, Amount: amount}
}

func (h Holding) String() string {
	return fmt.Sprintf("%s %s held by %s", h.Amount, h.Asset, h.Holder)
}

// ValidateAssetID rejects blank or oversized asset ids.
func ValidateAssetID(asset string) sdk.Error {
	if strings.TrimSpace(asset) == "" || len(asset) > MaxAssetIDLength {
		return ErrInvalidAsset(DefaultCodespace, asset)
	}
	return nil
}
