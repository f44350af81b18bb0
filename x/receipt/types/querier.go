package types

// QueryReceiptsParams selects the receipts of one height.
type QueryReceiptsParams struct {
	Height int64 `json:"height"`
}

func NewQueryReceiptsParams(height int64) QueryReceiptsParams {
	return QueryReceiptsParams{Height: height}
}
