package model

import "github.com/shopspring/decimal"

// Account is one ledger master in the target books: either a row from the
// source chart of accounts, a provisioned mandatory ledger, or a party.
// Party-backed accounts also carry the contact details their ledger master
// is serialized with; those fields stay zero for every other account.
type Account struct {
	ID             string
	Name           string
	SourceType     string // account type tag from the source system
	ParentGroup    string // target parent group the ledger sits under
	OpeningBalance decimal.Decimal
	Currency       string
	Description    string
	Active         bool
	Bank           bool
	Cash           bool
	BillWise       bool

	Address      Address // billing address, parties only
	Phone        string
	Mobile       string
	Email        string
	TaxID        string // GSTIN
	GSTTreatment string
	BankAccount  BankDetails
}

// Group is one classification node ledgers belong to. An empty Parent means
// the group is a known top-level group in the target system.
type Group struct {
	Name   string
	Parent string
}
