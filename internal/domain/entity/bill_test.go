package entity

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestDeriveTax_EvenSplit(t *testing.T) {
	total := decimal.NewFromInt(118)

	breakdown := DeriveTax(total, DefaultTaxRate)
	if breakdown.Base.StringFixed(2) != "100.00" {
		t.Fatalf("expected base 100.00, got %s", breakdown.Base.StringFixed(2))
	}
	if breakdown.CGST.StringFixed(2) != "9.00" {
		t.Fatalf("expected CGST 9.00, got %s", breakdown.CGST.StringFixed(2))
	}
	if breakdown.SGST.StringFixed(2) != "9.00" {
		t.Fatalf("expected SGST 9.00, got %s", breakdown.SGST.StringFixed(2))
	}
	if !breakdown.TotalTax().Equal(decimal.NewFromInt(18)) {
		t.Fatalf("expected total tax 18, got %s", breakdown.TotalTax())
	}
}

func TestDeriveTax_HalvesAlwaysEqual(t *testing.T) {
	for _, amount := range []string{"118", "100", "99.99", "0.01", "123456.78"} {
		total, err := decimal.NewFromString(amount)
		if err != nil {
			t.Fatalf("bad amount %s: %v", amount, err)
		}
		breakdown := DeriveTax(total, DefaultTaxRate)
		if !breakdown.CGST.Equal(breakdown.SGST) {
			t.Fatalf("CGST %s != SGST %s for total %s", breakdown.CGST, breakdown.SGST, amount)
		}
	}
}

func TestDeriveTax_RoundingDriftWithinOneCent(t *testing.T) {
	// Components are rounded independently, so their sum may drift from
	// the stored total by at most one cent.
	cent := decimal.New(1, -2)
	for _, amount := range []string{"100", "99.99", "50.50", "1.18", "0.99"} {
		total, _ := decimal.NewFromString(amount)
		breakdown := DeriveTax(total, DefaultTaxRate)
		sum := breakdown.Base.Add(breakdown.CGST).Add(breakdown.SGST)
		drift := sum.Sub(total).Abs()
		if drift.GreaterThan(cent) {
			t.Fatalf("drift %s exceeds one cent for total %s", drift, amount)
		}
	}
}

func TestBill_TaxComponentsMatchDerive(t *testing.T) {
	bill := &Bill{TotalAmount: decimal.NewFromInt(236)}

	got := bill.TaxComponents()
	want := DeriveTax(bill.TotalAmount, DefaultTaxRate)
	if !got.Base.Equal(want.Base) || !got.CGST.Equal(want.CGST) || !got.SGST.Equal(want.SGST) {
		t.Fatalf("TaxComponents %+v differs from DeriveTax %+v", got, want)
	}
}

func TestValidPaymentMode(t *testing.T) {
	for _, mode := range []PaymentMode{PaymentModeCash, PaymentModeCard, PaymentModeUPI, PaymentModeQR, PaymentModeInsurance} {
		if !ValidPaymentMode(mode) {
			t.Fatalf("expected %s to be valid", mode)
		}
	}
	if ValidPaymentMode("Cheque") {
		t.Fatal("expected Cheque to be invalid")
	}
	if ValidPaymentMode("cash") {
		t.Fatal("payment modes are case sensitive")
	}
}

func TestValidPaymentStatus(t *testing.T) {
	for _, status := range []PaymentStatus{PaymentStatusPaid, PaymentStatusPending, PaymentStatusFailed, PaymentStatusPartial} {
		if !ValidPaymentStatus(status) {
			t.Fatalf("expected %s to be valid", status)
		}
	}
	if ValidPaymentStatus("Refunded") {
		t.Fatal("expected Refunded to be invalid")
	}
}
