// Package catalog reconciles the source chart of accounts and parties with
// the target group taxonomy and provisions the mandatory infrastructure
// ledgers the voucher assembler posts to.
package catalog

import (
	"sort"

	"github.com/tallybridge/tallybridge/internal/diag"
	"github.com/tallybridge/tallybridge/internal/model"
)

// Builder assembles a Catalog. Group and ledger-name overrides come from
// config; nil maps mean defaults.
type Builder struct {
	log         *diag.Log
	groupMap    map[string]string
	ledgerNames map[string]string // role -> name
}

// NewBuilder creates a Builder with the given overrides merged over the
// defaults.
func NewBuilder(log *diag.Log, groupOverrides, ledgerOverrides map[string]string) *Builder {
	groups := make(map[string]string, len(defaultGroupMap)+len(groupOverrides))
	for k, v := range defaultGroupMap {
		groups[k] = v
	}
	for k, v := range groupOverrides {
		groups[k] = v
	}

	names := make(map[string]string, len(mandatoryLedgers))
	for _, m := range mandatoryLedgers {
		names[m.role] = m.name
	}
	for role, name := range ledgerOverrides {
		if _, ok := names[role]; ok && name != "" {
			names[role] = name
		}
	}

	return &Builder{log: log, groupMap: groups, ledgerNames: names}
}

// Catalog is the reconciled master set. It is built once, then read-only:
// the voucher assembler shares it across transaction types.
type Catalog struct {
	Groups   []model.Group
	Accounts []model.Account

	partyNames  map[string]string // party id -> ledger name
	ledgerNames map[string]string // role -> name
	byName      map[string]int    // account name -> index into Accounts
}

// GroupForType maps a source account type to its target parent group,
// falling back to the suspense group for unknown types.
func (b *Builder) GroupForType(sourceType string) (string, bool) {
	g, ok := b.groupMap[sourceType]
	if !ok {
		return FallbackGroup, false
	}
	return g, true
}

// Build reconciles source accounts and parties into the final catalog.
// Precedence on a name collision: source chart of accounts, then parties,
// then mandatory defaults; the discarded definition is logged.
func (b *Builder) Build(accounts []model.Account, parties []model.Party) *Catalog {
	c := &Catalog{
		partyNames:  make(map[string]string),
		ledgerNames: b.ledgerNames,
		byName:      make(map[string]int),
	}

	for _, a := range accounts {
		if a.Name == "" {
			b.log.Add(diag.SeverityWarn, diag.CodeMissingRequiredField, "chart_of_accounts", a.ID, "account has no name, skipped")
			continue
		}
		group, known := b.GroupForType(a.SourceType)
		if !known {
			b.log.Add(diag.SeverityWarn, diag.CodeUnknownAccountType, "chart_of_accounts", a.Name,
				"source type "+a.SourceType+" not mapped, using "+FallbackGroup)
		}
		a.ParentGroup = group
		a.Bank = a.SourceType == "Bank"
		a.Cash = a.SourceType == "Cash"
		a.BillWise = group == GroupSundryDebtors || group == GroupSundryCreditors
		c.add(a, "chart_of_accounts", b.log)
	}

	for _, p := range parties {
		if p.Name == "" {
			b.log.Add(diag.SeverityWarn, diag.CodeMissingRequiredField, string(p.Kind)+"s", p.ID, "party has no display name, skipped")
			continue
		}
		parent := GroupSundryDebtors
		if p.Kind == model.PartyVendor {
			parent = GroupSundryCreditors
		}
		// Ledger masters carry the billing address; shipping stays at the
		// document level in the target system.
		c.add(model.Account{
			ID:             p.ID,
			Name:           p.Name,
			ParentGroup:    parent,
			OpeningBalance: p.OpeningBalance,
			Active:         true,
			BillWise:       true,
			Address:        p.Billing,
			Phone:          p.Phone,
			Mobile:         p.Mobile,
			Email:          p.Email,
			TaxID:          p.TaxID,
			GSTTreatment:   p.GSTTreatment,
			BankAccount:    p.Bank,
		}, string(p.Kind)+"s", b.log)
		if p.ID != "" {
			c.partyNames[p.ID] = p.Name
		}
	}

	for _, m := range mandatoryLedgers {
		name := b.ledgerNames[m.role]
		if _, exists := c.byName[name]; exists {
			b.log.Add(diag.SeverityInfo, diag.CodeDuplicateLedgerName, "mandatory", name,
				"mandatory default shadowed by source ledger of the same name")
			continue
		}
		c.add(m.account(name), "mandatory", b.log)
	}

	c.Groups = b.groups(c.Accounts)
	return c
}

// add appends an account unless its name is already taken; the earlier,
// higher-precedence definition wins.
func (c *Catalog) add(a model.Account, recordType string, log *diag.Log) {
	if _, exists := c.byName[a.Name]; exists {
		log.Add(diag.SeverityWarn, diag.CodeDuplicateLedgerName, recordType, a.Name, "duplicate ledger name discarded")
		return
	}
	c.byName[a.Name] = len(c.Accounts)
	c.Accounts = append(c.Accounts, a)
}

// groups derives the group masters from the parent groups actually
// referenced, minus the fallback group. Primaries come first so that a
// user-defined group's "Primary" parent semantics resolve after them.
func (b *Builder) groups(accounts []model.Account) []model.Group {
	seen := make(map[string]bool)
	var primary, custom []string
	for _, a := range accounts {
		g := a.ParentGroup
		if g == "" || g == FallbackGroup || seen[g] {
			continue
		}
		seen[g] = true
		if IsPrimaryGroup(g) {
			primary = append(primary, g)
		} else {
			custom = append(custom, g)
		}
	}
	sort.Strings(primary)
	sort.Strings(custom)

	groups := make([]model.Group, 0, len(primary)+len(custom))
	for _, g := range primary {
		groups = append(groups, model.Group{Name: g})
	}
	for _, g := range custom {
		groups = append(groups, model.Group{Name: g, Parent: "Primary"})
	}
	return groups
}

// PartyName resolves a party id to its ledger name, falling back to the
// name carried on the transaction row itself.
func (c *Catalog) PartyName(id, fallback string) string {
	if name, ok := c.partyNames[id]; ok && name != "" {
		return name
	}
	return fallback
}

// TaxLedger returns the ledger a tax entry posts to.
func (c *Catalog) TaxLedger(t TaxType, d Direction) string {
	return c.ledgerNames[taxRole(t, d)]
}

// LedgerName returns the configured name for a mandatory ledger role.
func (c *Catalog) LedgerName(role string) string {
	return c.ledgerNames[role]
}

// DefaultLedger is the revenue/expense ledger used when a transaction has
// no qualifying line items of its own.
func (c *Catalog) DefaultLedger(t model.VoucherType) string {
	switch t {
	case model.TypePurchase:
		return c.ledgerNames[RolePurchases]
	case model.TypeCreditNote:
		return c.ledgerNames[RoleSalesReturns]
	default:
		return c.ledgerNames[RoleSales]
	}
}

// HasAccount reports whether a ledger name exists in the catalog.
func (c *Catalog) HasAccount(name string) bool {
	_, ok := c.byName[name]
	return ok
}
