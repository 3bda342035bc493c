package entity

// Vendor is the registration data submitted by a vendor. Values are taken
// as-is, without format checks.
type Vendor struct {
	Name    string
	GSTIN   string
	Email   string
	PAN     *string
	Website *string
	Address string
	Phone   string
}
