package catalog

// FallbackGroup is where ledgers with an unmapped source account type land.
// It is assumed to pre-exist in the target system and is never emitted as a
// group master.
const FallbackGroup = "Suspense A/c"

// Fixed parent groups for parties.
const (
	GroupSundryDebtors   = "Sundry Debtors"
	GroupSundryCreditors = "Sundry Creditors"
)

// defaultGroupMap maps source account types to target parent groups.
// Overridable per-migration via config.
var defaultGroupMap = map[string]string{
	"Asset":                    "Current Assets",
	"Bank":                     "Bank Accounts",
	"Cash":                     "Cash-in-Hand",
	"Expense":                  "Indirect Expenses",
	"Cost of Goods Sold":       "Direct Expenses",
	"Equity":                   "Capital Account",
	"Income":                   "Indirect Incomes",
	"Other Income":             "Indirect Incomes",
	"Liability":                "Current Liabilities",
	"Other Current Asset":      "Current Assets",
	"Other Current Liability":  "Current Liabilities",
	"Account Receivable":       GroupSundryDebtors,
	"Account Payable":          GroupSundryCreditors,
	"Fixed Asset":              "Fixed Assets",
	"Loan (Liability)":         "Loans (Liability)",
	"Other Asset":              "Current Assets",
	"Stock":                    "Stock-in-Hand",
	"Cess":                     "Duties & Taxes",
	"TDS Receivable":           "Duties & Taxes",
	"TDS Payable":              "Duties & Taxes",
	"CGST":                     "Duties & Taxes",
	"SGST":                     "Duties & Taxes",
	"IGST":                     "Duties & Taxes",
	"Service Tax":              "Duties & Taxes",
	"Professional Tax":         "Duties & Taxes",
	"TCS":                      "Duties & Taxes",
	"Advance Tax":              "Duties & Taxes",
	"Secured Loan":             "Secured Loans",
	"Unsecured Loan":           "Unsecured Loans",
	"Provisions":               "Provisions",
	"Branch / Division":        "Branch / Divisions",
	"Statutory":                "Duties & Taxes",
	"Other Liability":          "Current Liabilities",
	"Retained Earnings":        "Reserves & Surplus",
	"Long Term Liability":      "Loans (Liability)",
	"Long Term Asset":          "Fixed Assets",
	"Loan & Advance (Asset)":   "Loans & Advances (Asset)",
	"Stock Adjustment Account": "Direct Expenses",
	"Uncategorized":            FallbackGroup,
}

// primaryGroups are the groups Tally ships with. A group outside this set
// is user-defined and must be created with "Primary" as its parent, after
// the primaries it may sit beside.
var primaryGroups = map[string]bool{
	"Capital Account":          true,
	"Loans (Liability)":        true,
	"Fixed Assets":             true,
	"Investments":              true,
	"Current Assets":           true,
	"Current Liabilities":      true,
	FallbackGroup:              true,
	"Sales Accounts":           true,
	"Purchase Accounts":        true,
	"Direct Incomes":           true,
	"Direct Expenses":          true,
	"Indirect Incomes":         true,
	"Indirect Expenses":        true,
	"Bank Accounts":            true,
	"Cash-in-Hand":             true,
	"Duties & Taxes":           true,
	"Stock-in-Hand":            true,
	"Branch / Divisions":       true,
	"Reserves & Surplus":       true,
	"Secured Loans":            true,
	"Unsecured Loans":          true,
	"Provisions":               true,
	"Loans & Advances (Asset)": true,
	GroupSundryDebtors:         true,
	GroupSundryCreditors:       true,
}

// IsPrimaryGroup reports whether the target system ships the group.
func IsPrimaryGroup(name string) bool {
	return primaryGroups[name]
}
