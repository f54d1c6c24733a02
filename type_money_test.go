package incomelens

import "testing"

func TestMoney_ExactArithmetic(t *testing.T) {
	// The classic float trap: 0.1 + 0.2 must be exactly 0.3.
	got := M(0.1, "USD").Add(M(0.2, "USD"))
	if want := M(0.3, "USD"); !got.Equal(want) {
		t.Errorf("0.1 + 0.2 = %v, want %v", got, want)
	}
}

func TestMoney_DivPrice(t *testing.T) {
	shares := M(10_000, "USD").DivPrice(M(25, "USD"))
	if want := Q(400); !shares.Equal(want) {
		t.Errorf("$10,000 / $25 = %v shares, want %v", shares, want)
	}
}

func TestMoney_PercentOf(t *testing.T) {
	got := M(500, "USD").PercentOf(M(10_000, "USD"))
	if want := Percent(5); !got.Equal(want) {
		t.Errorf("PercentOf = %v, want %v", got, want)
	}
}

func TestMoney_String(t *testing.T) {
	tests := []struct {
		m    Money
		want string
	}{
		{M(1234.56, "USD"), "$1,234.56"},
		{M(-2000, "USD"), "-$2,000.00"},
		{M(0.18, "USD"), "$0.18"},
	}
	for _, tc := range tests {
		if got := tc.m.String(); got != tc.want {
			t.Errorf("String() = %q, want %q", got, tc.want)
		}
	}
}

func TestMoney_SignedString(t *testing.T) {
	if got := M(500, "USD").SignedString(); got != "+$500.00" {
		t.Errorf("SignedString() = %q, want %q", got, "+$500.00")
	}
	if got := M(0, "USD").SignedString(); got != "-" {
		t.Errorf("SignedString() = %q, want %q for zero", got, "-")
	}
}

func TestMoney_WeakZeroCurrency(t *testing.T) {
	// The zero Money combines freely with any currency, so accumulators can
	// start from the zero value.
	var total Money
	total = total.Add(M(100, "USD"))
	if total.Currency() != "USD" {
		t.Errorf("Currency() = %q, want USD after adding a USD amount", total.Currency())
	}
}

func TestMoney_CurrencyMismatchPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("adding USD and EUR did not panic")
		}
	}()
	M(1, "USD").Add(M(1, "EUR"))
}

func TestPercent_SignedString(t *testing.T) {
	tests := []struct {
		p    Percent
		want string
	}{
		{Percent(5), "+5.0%"},
		{Percent(-20), "-20.0%"},
		{Percent(0), "-"},
	}
	for _, tc := range tests {
		if got := tc.p.SignedString(); got != tc.want {
			t.Errorf("SignedString(%v) = %q, want %q", float64(tc.p), got, tc.want)
		}
	}
}
