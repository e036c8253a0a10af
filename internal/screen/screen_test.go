package screen

import "testing"

func TestClamp(t *testing.T) {
	area := WorkArea{Width: 1920, Height: 1030}

	tests := []struct {
		name         string
		x, y         int
		wantX, wantY int
	}{
		{"inside", 500, 400, 500, 400},
		{"past left", -30, 400, 0, 400},
		{"past right", 1900, 400, 1820, 400},
		{"past top", 500, -1, 500, 0},
		{"past bottom", 500, 1500, 500, 930},
		{"both corners", -5, 9999, 0, 930},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := area.Clamp(tt.x, tt.y, 100, 100)
			if x != tt.wantX || y != tt.wantY {
				t.Errorf("Clamp(%d, %d) = (%d, %d), want (%d, %d)",
					tt.x, tt.y, x, y, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestClampPetLargerThanArea(t *testing.T) {
	area := WorkArea{Width: 80, Height: 60}
	x, y := area.Clamp(300, 300, 100, 100)
	if x != 0 || y != 0 {
		t.Errorf("oversized pet should pin to origin, got (%d, %d)", x, y)
	}
}
