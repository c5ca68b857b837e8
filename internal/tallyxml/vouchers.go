package tallyxml

import (
	"io"

	"github.com/tallybridge/tallybridge/internal/model"
)

// VoucherEntry is one voucher under a Vouchers envelope.
type VoucherEntry struct {
	RemoteID        string        `xml:"REMOTEID,attr"`
	VoucherType     string        `xml:"VCHTYPE,attr"`
	Action          string        `xml:"ACTION,attr"`
	Date            string        `xml:"DATE"`
	GUID            string        `xml:"GUID"`
	VoucherTypeName string        `xml:"VOUCHERTYPENAME"`
	VoucherNumber   string        `xml:"VOUCHERNUMBER"`
	PartyLedger     string        `xml:"PARTYLEDGERNAME,omitempty"`
	Narration       string        `xml:"NARRATION,omitempty"`
	EffectiveDate   string        `xml:"EFFECTIVEDATE"`
	Entries         []ledgerEntry `xml:"ALLLEDGERENTRIES.LIST"`
}

type ledgerEntry struct {
	LedgerName       string           `xml:"LEDGERNAME"`
	IsDeemedPositive string           `xml:"ISDEEMEDPOSITIVE"`
	Amount           string           `xml:"AMOUNT"`
	BillAllocations  []billAllocation `xml:"BILLALLOCATIONS.LIST,omitempty"`
}

type billAllocation struct {
	Name     string `xml:"NAME"`
	BillType string `xml:"BILLTYPE"`
	Amount   string `xml:"AMOUNT"`
}

const dateLayout = "20060102"

// WriteVouchers renders vouchers of one type as a Vouchers envelope.
func WriteVouchers(w io.Writer, company string, vouchers []model.Voucher) error {
	messages := make([]TallyMessage, 0, len(vouchers))
	for _, v := range vouchers {
		messages = append(messages, TallyMessage{Voucher: voucherEntry(v)})
	}
	return write(w, newEnvelope("Vouchers", company, messages))
}

func voucherEntry(v model.Voucher) *VoucherEntry {
	date := v.Date.Format(dateLayout)
	entry := &VoucherEntry{
		RemoteID:        v.GUID,
		VoucherType:     string(v.Type),
		Action:          "Create",
		Date:            date,
		GUID:            v.GUID,
		VoucherTypeName: string(v.Type),
		VoucherNumber:   v.Number,
		PartyLedger:     v.Party,
		Narration:       v.Narration,
		EffectiveDate:   date,
		Entries:         make([]ledgerEntry, 0, len(v.Entries)),
	}
	for _, e := range v.Entries {
		le := ledgerEntry{
			LedgerName:       e.Ledger,
			IsDeemedPositive: yesNo(e.Amount.IsPositive()),
			Amount:           e.Amount.StringFixed(2),
		}
		if e.Allocation != nil {
			le.BillAllocations = []billAllocation{{
				Name:     e.Allocation.Ref,
				BillType: string(e.Allocation.Kind),
				Amount:   e.Allocation.Amount.StringFixed(2),
			}}
		}
		entry.Entries = append(entry.Entries, le)
	}
	return entry
}
