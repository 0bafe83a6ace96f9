package core

import "testing"

func TestDirectionReverse(t *testing.T) {
	if Left.Reverse() != Right || Right.Reverse() != Left {
		t.Error("Reverse should flip the direction")
	}
	if Left.Reverse().Reverse() != Left {
		t.Error("double Reverse should be identity")
	}
}

func TestDirectionSign(t *testing.T) {
	if Left.Sign() != -1 {
		t.Errorf("Left.Sign() = %v, expected -1", Left.Sign())
	}
	if Right.Sign() != 1 {
		t.Errorf("Right.Sign() = %v, expected 1", Right.Sign())
	}
}

func TestParseDirection(t *testing.T) {
	tests := []struct {
		in      string
		want    Direction
		wantErr bool
	}{
		{"left", Left, false},
		{"RIGHT", Right, false},
		{" r ", Right, false},
		{"up", Left, true},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseDirection(tc.in)
			if (err != nil) != tc.wantErr {
				t.Fatalf("ParseDirection(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			}
			if !tc.wantErr && got != tc.want {
				t.Errorf("ParseDirection(%q) = %v, expected %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestDirectionText(t *testing.T) {
	var d Direction
	if err := d.UnmarshalText([]byte("right")); err != nil {
		t.Fatalf("UnmarshalText failed: %v", err)
	}
	if d != Right {
		t.Errorf("UnmarshalText(right) = %v", d)
	}
	b, _ := Left.MarshalText()
	if string(b) != "left" {
		t.Errorf("MarshalText(Left) = %q", b)
	}
}
