// Package guid builds the remote identifiers Tally uses to deduplicate
// imported vouchers.
package guid

import (
	"strings"

	"github.com/google/uuid"

	"github.com/tallybridge/tallybridge/internal/model"
)

var prefixes = map[model.VoucherType]string{
	model.TypeSales:      "SAL",
	model.TypePurchase:   "PUR",
	model.TypeReceipt:    "RCP",
	model.TypePayment:    "PAY",
	model.TypeCreditNote: "CRN",
	model.TypeJournal:    "JRN",
}

// Prefix returns the GUID prefix for a voucher type, or "VCH" for an
// unknown type.
func Prefix(t model.VoucherType) string {
	if p, ok := prefixes[t]; ok {
		return p
	}
	return "VCH"
}

// ForVoucher returns "<PREFIX>-<sourceID>". A blank source id gets a random
// UUID so the voucher still has a stable-enough remote id for one import.
func ForVoucher(t model.VoucherType, sourceID string) string {
	sourceID = strings.TrimSpace(sourceID)
	if sourceID == "" {
		sourceID = uuid.NewString()
	}
	return Prefix(t) + "-" + sourceID
}
