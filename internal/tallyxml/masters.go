package tallyxml

import (
	"io"

	"github.com/shopspring/decimal"

	"github.com/tallybridge/tallybridge/internal/catalog"
	"github.com/tallybridge/tallybridge/internal/model"
)

// GroupMaster is one account group under All Masters.
type GroupMaster struct {
	Name         string        `xml:"NAME,attr"`
	Action       string        `xml:"ACTION,attr"`
	NameElem     string        `xml:"NAME"`
	Parent       string        `xml:"PARENT,omitempty"`
	LanguageName languageNames `xml:"LANGUAGENAME.LIST"`
}

// LedgerMaster is one ledger account under All Masters. The contact,
// GST registration, and bank blocks only appear on party ledgers.
type LedgerMaster struct {
	Name           string        `xml:"NAME,attr"`
	Action         string        `xml:"ACTION,attr"`
	NameElem       string        `xml:"NAME"`
	Parent         string        `xml:"PARENT"`
	Description    string        `xml:"DESCRIPTION,omitempty"`
	IsBillWiseOn   string        `xml:"ISBILLWISEON"`
	IsCashLedger   string        `xml:"ISCASHLEDGER,omitempty"`
	IsBankLedger   string        `xml:"ISBANKLEDGER,omitempty"`
	OpeningBalance string        `xml:"OPENINGBALANCE,omitempty"`
	Address        *addressList  `xml:"ADDRESS.LIST,omitempty"`
	City           string        `xml:"CITY,omitempty"`
	State          string        `xml:"STATENAME,omitempty"`
	Country        string        `xml:"COUNTRYNAME,omitempty"`
	Pincode        string        `xml:"PINCODE,omitempty"`
	Phone          string        `xml:"PHONENUMBER,omitempty"`
	Mobile         string        `xml:"MOBILENUMBER,omitempty"`
	Email          string        `xml:"EMAIL,omitempty"`
	HasGSTIN       string        `xml:"HASGSTIN,omitempty"`
	GSTRegType     string        `xml:"GSTREGISTRATIONTYPE,omitempty"`
	GSTIN          string        `xml:"GSTIN,omitempty"`
	Bank           *bankDetails  `xml:"BANKDETAILS.LIST,omitempty"`
	LanguageName   languageNames `xml:"LANGUAGENAME.LIST"`
}

type addressList struct {
	Lines []string `xml:"ADDRESS"`
}

type bankDetails struct {
	AccountNo string `xml:"BANKACCOUNTNO"`
	BankName  string `xml:"BANKNAME"`
	IFSC      string `xml:"IFSCCODE,omitempty"`
}

type languageNames struct {
	Names      nameList `xml:"NAME.LIST"`
	LanguageID int      `xml:"LANGUAGEID"`
}

type nameList struct {
	Type  string   `xml:"TYPE,attr"`
	Names []string `xml:"NAME"`
}

func languageName(name string) languageNames {
	return languageNames{
		Names:      nameList{Type: "String", Names: []string{name}},
		LanguageID: 1033,
	}
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

// WriteMasters renders the catalog's groups and ledgers as one All Masters
// envelope. Groups precede ledgers so every ledger's parent exists when the
// importer reaches it.
func WriteMasters(w io.Writer, company string, cat *catalog.Catalog) error {
	messages := make([]TallyMessage, 0, len(cat.Groups)+len(cat.Accounts))

	for _, g := range cat.Groups {
		messages = append(messages, TallyMessage{Group: &GroupMaster{
			Name:         g.Name,
			Action:       "Create",
			NameElem:     g.Name,
			Parent:       g.Parent,
			LanguageName: languageName(g.Name),
		}})
	}

	for _, a := range cat.Accounts {
		messages = append(messages, TallyMessage{Ledger: ledgerMaster(a)})
	}

	return write(w, newEnvelope("All Masters", company, messages))
}

func ledgerMaster(a model.Account) *LedgerMaster {
	m := &LedgerMaster{
		Name:         a.Name,
		Action:       "Create",
		NameElem:     a.Name,
		Parent:       a.ParentGroup,
		Description:  a.Description,
		IsBillWiseOn: yesNo(a.BillWise),
		LanguageName: languageName(a.Name),
	}
	if a.Cash {
		m.IsCashLedger = "Yes"
	}
	if a.Bank {
		m.IsBankLedger = "Yes"
	}
	if !a.OpeningBalance.Equal(decimal.Zero) {
		m.OpeningBalance = a.OpeningBalance.StringFixed(2)
	}

	var lines []string
	for _, l := range []string{a.Address.Line1, a.Address.Line2} {
		if l != "" {
			lines = append(lines, l)
		}
	}
	if len(lines) > 0 {
		m.Address = &addressList{Lines: lines}
	}
	m.City = a.Address.City
	m.State = a.Address.State
	m.Country = a.Address.Country
	m.Pincode = a.Address.Pincode
	m.Phone = a.Phone
	m.Mobile = a.Mobile
	m.Email = a.Email

	if a.TaxID != "" {
		m.HasGSTIN = "Yes"
		m.GSTRegType = gstRegistrationType(a.GSTTreatment)
		m.GSTIN = a.TaxID
	}

	if a.BankAccount.AccountNumber != "" && a.BankAccount.BankName != "" {
		m.Bank = &bankDetails{
			AccountNo: a.BankAccount.AccountNumber,
			BankName:  a.BankAccount.BankName,
			IFSC:      a.BankAccount.IFSC,
		}
	}
	return m
}

// gstRegistrationType constrains the source's GST treatment to the values
// the importer accepts, defaulting to Regular.
func gstRegistrationType(treatment string) string {
	switch treatment {
	case "Regular", "Consumer", "Unregistered", "Composition", "SEZ":
		return treatment
	}
	return "Regular"
}
