package date

import "testing"

func TestMonthsBetween(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want float64
	}{
		{"same day", "2024-01-15", "2024-01-15", 0},
		{"whole months", "15.01.2024", "15.03.2024", 2},
		{"whole years", "2020-06-01", "2025-06-01", 60},
		{"extra days", "2024-01-01", "2024-02-16", 1.49},
		{"fewer days", "2024-01-31", "2024-03-01", 1.01},
		{"reversed", "2024-03-01", "2024-01-31", 1.01},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MonthsBetween(MustParse(tt.a), MustParse(tt.b)); got != tt.want {
				t.Errorf("MonthsBetween(%s, %s) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestBetween(t *testing.T) {
	a, b := MustParse("2024-01-01"), MustParse("2025-01-01")
	tests := []struct {
		p    Period
		want float64
	}{
		{Daily, 366},
		{Weekly, 52.29},
		{Monthly, 12},
		{Quarterly, 4},
		{Yearly, 1},
	}
	for _, tt := range tests {
		if got := Between(a, b, tt.p); got != tt.want {
			t.Errorf("Between(%v) = %v, want %v", tt.p, got, tt.want)
		}
	}
}

func TestParsePeriod(t *testing.T) {
	for _, p := range []Period{Daily, Weekly, Monthly, Quarterly, Yearly} {
		got, err := ParsePeriod(p.String())
		if err != nil || got != p {
			t.Errorf("ParsePeriod(%q) = %v, %v, want %v", p.String(), got, err, p)
		}
	}
	if _, err := ParsePeriod("fortnightly"); err == nil {
		t.Errorf("ParsePeriod(%q) should fail", "fortnightly")
	}
}
