package terrain

import (
	"sync"
	"testing"
)

func TestQuery_Surroundings(t *testing.T) {
	q := NewQuery(rampGrid(t, 10))

	samples := q.Surroundings(-5, 0, 1) // centre cell (0,5)
	if len(samples) != 9 {
		t.Fatalf("len = %d, want 9", len(samples))
	}
	for row := range 3 {
		if s := samples[row*3]; s.Kind != -1 || s.Height != 0 {
			t.Errorf("row %d off-grid sample = %+v", row, s)
		}
		if s := samples[row*3+2]; s.Kind != int(BandGravel) || s.Height != 1 {
			t.Errorf("row %d sample = %+v, want height 1", row, s)
		}
	}
}

func TestQuery_CellAndHeight(t *testing.T) {
	q := NewQuery(rampGrid(t, 10))

	c, ok := q.Cell(2.5, 0)
	if !ok || c.Height != 7 {
		t.Errorf("Cell(2.5,0) = %+v, %v", c, ok)
	}
	if _, ok := q.Height(-6, 0); ok {
		t.Error("expected false off the terrain")
	}
	if c, ok := q.CellAt(3, 0); !ok || c.Height != 3 {
		t.Errorf("CellAt(3,0) = %+v, %v", c, ok)
	}
	if q.Size() != 10 || q.Scale() != 1 {
		t.Errorf("Size/Scale = %d/%v", q.Size(), q.Scale())
	}
}

func TestQuery_InterpolatedHeight(t *testing.T) {
	q := NewQuery(rampGrid(t, 10))

	tests := []struct {
		name string
		x, z float32
		want float32
		ok   bool
	}{
		{"cell centre", -0.5, 0, 4, true},
		{"between centres", 0, 0, 4.5, true},
		{"quarter", 0.25, 3, 4.75, true},
		{"low edge clamps", -4.9, 0, 0, true},
		{"high edge clamps", 4.9, 0, 9, true},
		{"off terrain", 5, 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := q.InterpolatedHeight(tt.x, tt.z)
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v", ok, tt.ok)
			}
			if got != tt.want {
				t.Errorf("height = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestQuery_InterpolatedHeightSingleCell(t *testing.T) {
	q := NewQuery(flatGrid(t, 1, 3))
	if h, ok := q.InterpolatedHeight(0.2, -0.2); !ok || h != 3 {
		t.Errorf("InterpolatedHeight = %v, %v, want 3, true", h, ok)
	}
}

func TestQuery_ConcurrentReads(t *testing.T) {
	g, _ := Build(16, 1, 4)
	q := NewQuery(g)
	want, _ := q.Height(1, 1)

	var wg sync.WaitGroup
	errs := make(chan float32, 8)
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				if h, _ := q.Height(1, 1); h != want {
					errs <- h
					return
				}
				q.Neighborhood(1, 1, 2)
				q.InterpolatedHeight(1.3, -2.7)
			}
		}()
	}
	wg.Wait()
	close(errs)

	for h := range errs {
		t.Errorf("concurrent read returned %v, want %v", h, want)
	}
}
