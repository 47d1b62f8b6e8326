package account

// AmountRequest is the optional JSON body carrying the amount when it is not
// passed as a query parameter.
type AmountRequest struct {
	Amount int64 `json:"amount"`
}
