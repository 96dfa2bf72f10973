package tracker

import "testing"

func TestMoney_String(t *testing.T) {
	tests := []struct {
		m    Money
		want string
	}{
		{USD(2700), "$2,700.00"},
		{USD(180), "$180.00"},
		{USD(0.5), "$0.50"},
		{NO(3200), "3200"},
	}
	for _, tt := range tests {
		if got := tt.m.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestMoney_Add(t *testing.T) {
	if got := NO(10).Add(USD(5)); !got.Equal(USD(15)) {
		t.Errorf("NO(10).Add(USD(5)) = %v, want %v", got, USD(15))
	}
	defer func() {
		if recover() == nil {
			t.Errorf("adding USD and EUR did not panic")
		}
	}()
	USD(1).Add(M(1, "EUR"))
}
