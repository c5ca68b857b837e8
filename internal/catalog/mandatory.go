package catalog

import "github.com/tallybridge/tallybridge/internal/model"

// TaxType identifies one GST component. CGST and SGST are the two
// home-state components; IGST is the inter-state component.
type TaxType string

const (
	TaxCGST TaxType = "CGST"
	TaxSGST TaxType = "SGST"
	TaxIGST TaxType = "IGST"
)

// Direction says which side of the business a tax ledger sits on: Output
// for sales-side taxes, Input for purchase-side.
type Direction string

const (
	DirectionOutput Direction = "Output"
	DirectionInput  Direction = "Input"
)

// Roles name the mandatory ledgers so config can rename them without the
// engine caring what they are called.
const (
	RoleSales        = "sales"
	RolePurchases    = "purchases"
	RoleSalesReturns = "sales_returns"
	RoleRoundOff     = "round_off"
	RoleCash         = "cash"
	RoleOutputCGST   = "output_cgst"
	RoleOutputSGST   = "output_sgst"
	RoleOutputIGST   = "output_igst"
	RoleInputCGST    = "input_cgst"
	RoleInputSGST    = "input_sgst"
	RoleInputIGST    = "input_igst"
)

// mandatoryLedger pairs a role with its default name and parent group.
type mandatoryLedger struct {
	role   string
	name   string
	parent string
	cash   bool
}

// mandatoryLedgers is the infrastructure every migrated company needs:
// default sales/purchase/return/rounding ledgers, one ledger per tax type
// and direction, and a default cash ledger.
var mandatoryLedgers = []mandatoryLedger{
	{role: RoleSales, name: "Sales", parent: "Sales Accounts"},
	{role: RolePurchases, name: "Purchases", parent: "Purchase Accounts"},
	{role: RoleSalesReturns, name: "Sales Returns", parent: "Sales Accounts"},
	{role: RoleRoundOff, name: "Round Off", parent: "Indirect Expenses"},
	{role: RoleCash, name: "Cash-in-Hand", parent: "Cash-in-Hand", cash: true},
	{role: RoleOutputCGST, name: "Output CGST", parent: "Duties & Taxes"},
	{role: RoleOutputSGST, name: "Output SGST", parent: "Duties & Taxes"},
	{role: RoleOutputIGST, name: "Output IGST", parent: "Duties & Taxes"},
	{role: RoleInputCGST, name: "Input CGST", parent: "Duties & Taxes"},
	{role: RoleInputSGST, name: "Input SGST", parent: "Duties & Taxes"},
	{role: RoleInputIGST, name: "Input IGST", parent: "Duties & Taxes"},
}

// taxRole maps a tax type and direction to its ledger role.
func taxRole(t TaxType, d Direction) string {
	switch d {
	case DirectionInput:
		switch t {
		case TaxCGST:
			return RoleInputCGST
		case TaxSGST:
			return RoleInputSGST
		default:
			return RoleInputIGST
		}
	default:
		switch t {
		case TaxCGST:
			return RoleOutputCGST
		case TaxSGST:
			return RoleOutputSGST
		default:
			return RoleOutputIGST
		}
	}
}

func (m mandatoryLedger) account(name string) model.Account {
	return model.Account{
		Name:        name,
		ParentGroup: m.parent,
		Cash:        m.cash,
		Active:      true,
	}
}
