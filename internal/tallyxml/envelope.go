// Package tallyxml renders master and voucher envelopes in the Tally
// import format. The structs mirror the envelope layout exactly; callers
// hand over catalog and voucher data and get a complete document back.
package tallyxml

import (
	"encoding/xml"
	"fmt"
	"io"
)

// Envelope is the outermost import document.
type Envelope struct {
	XMLName xml.Name `xml:"ENVELOPE"`
	Header  Header   `xml:"HEADER"`
	Body    Body     `xml:"BODY"`
}

type Header struct {
	TallyRequest string `xml:"TALLYREQUEST"`
	Version      int    `xml:"VERSION"`
}

type Body struct {
	ImportData ImportData `xml:"IMPORTDATA"`
}

type ImportData struct {
	RequestDesc RequestDesc    `xml:"REQUESTDESC"`
	RequestData []TallyMessage `xml:"REQUESTDATA>TALLYMESSAGE"`
}

type RequestDesc struct {
	ReportName      string          `xml:"REPORTNAME"`
	StaticVariables StaticVariables `xml:"STATICVARIABLES"`
}

type StaticVariables struct {
	CurrentCompany string `xml:"SVCURRENTCOMPANY"`
}

// TallyMessage carries exactly one master or voucher. Only one of the
// pointers is set per message.
type TallyMessage struct {
	Group   *GroupMaster  `xml:"GROUP,omitempty"`
	Ledger  *LedgerMaster `xml:"LEDGER,omitempty"`
	Voucher *VoucherEntry `xml:"VOUCHER,omitempty"`
}

func newEnvelope(reportName, company string, messages []TallyMessage) Envelope {
	return Envelope{
		Header: Header{TallyRequest: "Import", Version: 1},
		Body: Body{
			ImportData: ImportData{
				RequestDesc: RequestDesc{
					ReportName:      reportName,
					StaticVariables: StaticVariables{CurrentCompany: company},
				},
				RequestData: messages,
			},
		},
	}
}

func write(w io.Writer, env Envelope) error {
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return fmt.Errorf("writing XML header: %w", err)
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(env); err != nil {
		return fmt.Errorf("encoding envelope: %w", err)
	}
	if _, err := io.WriteString(w, "\n"); err != nil {
		return err
	}
	return nil
}
