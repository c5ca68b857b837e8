package voucher

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/tallybridge/tallybridge/internal/diag"
	"github.com/tallybridge/tallybridge/internal/model"
)

// DefaultEpsilon is the largest absolute residual a voucher may carry
// before it is flagged, in currency units.
var DefaultEpsilon = decimal.NewFromFloat(0.01)

// Imbalance describes one voucher whose entries do not sum to zero.
type Imbalance struct {
	Type       model.VoucherType
	NaturalKey string
	Residual   decimal.Decimal
}

func (i Imbalance) String() string {
	return fmt.Sprintf("%s %s: entries sum to %s", i.Type, i.NaturalKey, i.Residual.StringFixed(2))
}

// Validate sums the signed entries of each voucher and flags any residual
// beyond epsilon. Validation is advisory: flagged vouchers are logged but
// still handed to the serializer, the target system being the final
// authority on acceptance.
func Validate(vouchers []model.Voucher, epsilon decimal.Decimal, log *diag.Log) []Imbalance {
	if epsilon.IsZero() {
		epsilon = DefaultEpsilon
	}

	var imbalances []Imbalance
	for _, v := range vouchers {
		residual := v.Sum()
		if residual.Abs().Cmp(epsilon) <= 0 {
			continue
		}
		imb := Imbalance{Type: v.Type, NaturalKey: v.NaturalKey, Residual: residual}
		imbalances = append(imbalances, imb)
		if log != nil {
			log.Add(diag.SeverityWarn, diag.CodeImbalancedVoucher, string(v.Type), v.NaturalKey, imb.String())
		}
	}
	return imbalances
}
