package model

import "github.com/shopspring/decimal"

// PartyKind distinguishes customers from vendors.
type PartyKind string

const (
	PartyCustomer PartyKind = "customer"
	PartyVendor   PartyKind = "vendor"
)

// Address holds one postal address block.
type Address struct {
	Line1   string
	Line2   string
	City    string
	State   string
	Country string
	Pincode string
}

// BankDetails holds vendor payout banking fields.
type BankDetails struct {
	AccountNumber string
	BankName      string
	IFSC          string
}

// Party is a customer or vendor. It maps 1:1 to a bill-wise Account under a
// fixed parent group (Sundry Debtors for customers, Sundry Creditors for
// vendors).
type Party struct {
	ID             string
	Name           string
	Kind           PartyKind
	Billing        Address
	Shipping       Address
	TaxID          string // GSTIN
	GSTTreatment   string // Regular, Consumer, Unregistered, Composition, SEZ
	Email          string
	Phone          string
	Mobile         string
	OpeningBalance decimal.Decimal
	Bank           BankDetails
}
