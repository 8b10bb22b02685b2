package core

import "testing"

func TestScaledSurfaceFillRect(t *testing.T) {
	// 100x50 world onto a 10x5 screen: 10 world units per cell.
	s := NewScreen(10, 5)
	surf := NewScaledSurface(s, 100, 50)

	surf.FillRect(NewRect(20, 10, 30, 20), ColorBlue)

	for y := 1; y < 3; y++ {
		for x := 2; x < 5; x++ {
			if c := s.GetCell(x, y); c.Rune != '█' || c.Color != ColorBlue {
				t.Errorf("expected blue block at (%d, %d), got %+v", x, y, c)
			}
		}
	}
	if s.Get(5, 1) != ' ' || s.Get(2, 3) != ' ' {
		t.Error("FillRect should not spill outside its cells")
	}
}

func TestScaledSurfaceThinRectStaysVisible(t *testing.T) {
	s := NewScreen(10, 5)
	surf := NewScaledSurface(s, 100, 50)

	// A 2-unit tall ledge is a fifth of a cell; it must still cover one row.
	surf.FillRect(NewRect(0, 30, 10, 2), ColorGreen)
	if s.GetCell(0, 3).Color != ColorGreen {
		t.Errorf("thin ledge should cover at least one cell, got %+v", s.GetCell(0, 3))
	}
}

func TestScaledSurfaceText(t *testing.T) {
	s := NewScreen(20, 5)
	surf := NewScaledSurface(s, 200, 50)

	surf.DrawText(20, 20, "Hi", TextStyle{Color: ColorGray})
	if s.Get(2, 2) != 'H' || s.Get(3, 2) != 'i' {
		t.Errorf("text not placed at expected cell, row 2 = %q", s.Row(2))
	}

	surf.DrawText(0, 40, "abcdefg", TextStyle{Gradient: true})
	first, last := s.GetCell(0, 4).Color, s.GetCell(6, 4).Color
	if first != GradientAt(0, 7) || last != GradientAt(6, 7) {
		t.Errorf("gradient text colors = %v..%v", first, last)
	}
	if s.GetCell(3, 4).Color == first {
		t.Error("gradient should vary across the string")
	}
}

func TestDrawListReplay(t *testing.T) {
	var list DrawList
	list.Clear()
	list.FillRect(NewRect(0, 0, 10, 10), ColorRed)
	list.StrokeRect(NewRect(0, 0, 10, 10), ColorGray)
	list.DrawText(1, 2, "x", TextStyle{Color: ColorBlack})

	if len(list.Commands) != 4 {
		t.Fatalf("expected 4 commands, got %d", len(list.Commands))
	}
	if texts := list.Texts(); len(texts) != 1 || texts[0] != "x" {
		t.Errorf("Texts() = %v", texts)
	}

	var copyList DrawList
	list.Replay(&copyList)
	if len(copyList.Commands) != len(list.Commands) {
		t.Errorf("Replay produced %d commands, expected %d", len(copyList.Commands), len(list.Commands))
	}

	// Clear drops prior commands.
	list.Clear()
	if len(list.Commands) != 1 || list.Commands[0].Op != OpClear {
		t.Errorf("Clear should reset the list, got %+v", list.Commands)
	}
}
