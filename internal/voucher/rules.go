package voucher

import (
	"github.com/tallybridge/tallybridge/internal/catalog"
	"github.com/tallybridge/tallybridge/internal/model"
)

// rules is the per-type tagged variant that collapses the six transaction
// flavors into one assembler. lineSign is the sign of the revenue/expense
// and tax entries; the party entry always carries the opposite sign so the
// voucher closes against the declared total.
type rules struct {
	lineSign     int64
	allocKind    model.AllocationKind
	taxDir       catalog.Direction
	settlement   bool // receipt/payment: one counter ledger, no line items
	counterFirst bool // list the cash/bank entry before the party entry
}

var typeRules = map[model.VoucherType]rules{
	model.TypeSales: {
		lineSign:  1,
		allocKind: model.AllocationNew,
		taxDir:    catalog.DirectionOutput,
	},
	model.TypePurchase: {
		lineSign:  1,
		allocKind: model.AllocationNew,
		taxDir:    catalog.DirectionInput,
	},
	// Credit notes reverse the sales direction: every sign flips.
	model.TypeCreditNote: {
		lineSign:  -1,
		allocKind: model.AllocationAgainst,
		taxDir:    catalog.DirectionOutput,
	},
	model.TypeReceipt: {
		lineSign:     1,
		allocKind:    model.AllocationAgainst,
		settlement:   true,
		counterFirst: true,
	},
	model.TypePayment: {
		lineSign:   -1,
		allocKind:  model.AllocationAgainst,
		settlement: true,
	},
}
