package tempo

import "testing"

func TestCivilString(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		c    Civil
		want string
	}{
		{
			"whole second",
			Civil{Year: 2026, Month: 7, Day: 15, Hour: 22},
			"2026-07-15 22:00:00",
		},
		{
			"nanoseconds shown when nonzero",
			Civil{Year: 2026, Month: 3, Day: 14, Hour: 9, Minute: 26, Second: 53, Nanosecond: 589},
			"2026-03-14 09:26:53.000000589",
		},
		{
			"negative year unpadded",
			Civil{Year: -44, Month: 3, Day: 15, Hour: 12, Minute: 30},
			"-44-03-15 12:30:00",
		},
		{
			"leap second",
			Civil{Year: 2016, Month: 12, Day: 31, Hour: 23, Minute: 59, Second: 60},
			"2016-12-31 23:59:60",
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := tc.c.String(); got != tc.want {
				t.Errorf("String() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestCivilJ2000(t *testing.T) {
	t.Parallel()
	c := CivilJ2000()
	want := Civil{Year: 2000, Month: 1, Day: 1, Hour: 12}
	if c != want {
		t.Errorf("CivilJ2000() = %+v, want %+v", c, want)
	}
}

func TestCivilWireRoundtrip(t *testing.T) {
	t.Parallel()
	c := Civil{Year: 2026, Month: 3, Day: 14, Hour: 9, Minute: 26, Second: 53, Nanosecond: 589}
	if got := civilFromWire(c.wire()); got != c {
		t.Errorf("wire roundtrip = %+v, want %+v", got, c)
	}
}
