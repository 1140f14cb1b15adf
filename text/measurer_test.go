package text

import (
	"errors"
	"math"
	"sync"
	"testing"

	"golang.org/x/image/font/gofont/gobold"
)

func defaultForTest(t *testing.T) *Measurer {
	t.Helper()
	m, err := DefaultMeasurer()
	if err != nil {
		t.Fatalf("DefaultMeasurer() = %v", err)
	}
	return m
}

func TestNewMeasurerErrors(t *testing.T) {
	if _, err := NewMeasurer(nil); !errors.Is(err, ErrEmptyFontData) {
		t.Errorf("NewMeasurer(nil) = %v, want ErrEmptyFontData", err)
	}
	if _, err := NewMeasurer([]byte("not a font")); err == nil {
		t.Error("NewMeasurer(garbage) = nil error")
	}
}

func TestDefaultMeasurerShared(t *testing.T) {
	a := defaultForTest(t)
	b := defaultForTest(t)
	if a != b {
		t.Error("DefaultMeasurer() returned different instances")
	}
	if a.Name() == "" {
		t.Error("Name() is empty for Go Bold")
	}
}

func TestMetrics(t *testing.T) {
	m := defaultForTest(t)
	met, err := m.Metrics(80)
	if err != nil {
		t.Fatalf("Metrics(80) = %v", err)
	}
	if met.Ascent <= 0 || met.Descent <= 0 {
		t.Errorf("Metrics(80) = %+v, want positive ascent and descent", met)
	}
	if met.Ascent > 80*1.5 {
		t.Errorf("Ascent = %v, implausibly large for 80px", met.Ascent)
	}
	if met.XHeight <= 0 || met.XHeight >= met.CapHeight {
		t.Errorf("XHeight = %v, CapHeight = %v, want 0 < x-height < cap height", met.XHeight, met.CapHeight)
	}
	if shift := met.MiddleShift(); shift <= 0 || shift >= met.Ascent {
		t.Errorf("MiddleShift() = %v, want within (0, ascent)", shift)
	}

	for _, size := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		if _, err := m.Metrics(size); !errors.Is(err, ErrInvalidSize) {
			t.Errorf("Metrics(%v) = %v, want ErrInvalidSize", size, err)
		}
	}
}

func TestMiddleShiftFallback(t *testing.T) {
	m := Metrics{Ascent: 10, Descent: 4}
	if got := m.MiddleShift(); got != 3 {
		t.Errorf("MiddleShift() = %v, want 3", got)
	}
}

func TestAdvance(t *testing.T) {
	m := defaultForTest(t)
	if got := m.Advance("", 80); got != 0 {
		t.Errorf("Advance(\"\") = %v, want 0", got)
	}
	if got := m.Advance("Fee", 0); got != 0 {
		t.Errorf("Advance at size 0 = %v, want 0", got)
	}
	wide := m.Advance("WWW", 80)
	narrow := m.Advance("iii", 80)
	if wide <= narrow || narrow <= 0 {
		t.Errorf("Advance(WWW)=%v Advance(iii)=%v, want 0 < iii < WWW", wide, narrow)
	}
	small := m.Advance("Giant", 40)
	large := m.Advance("Giant", 80)
	if math.Abs(large-2*small) > 2 {
		t.Errorf("Advance does not scale with size: 40px=%v 80px=%v", small, large)
	}
}

func TestAdvanceNormalizes(t *testing.T) {
	m := defaultForTest(t)
	composed := m.Advance("caf\u00e9", 60)
	decomposed := m.Advance("cafe\u0301", 60)
	if composed != decomposed {
		t.Errorf("composed=%v decomposed=%v, want equal after NFC", composed, decomposed)
	}
}

func TestAdvanceConcurrent(t *testing.T) {
	ref := defaultForTest(t)
	m, err := NewMeasurer(gobold.TTF)
	if err != nil {
		t.Fatal(err)
	}
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(size float64) {
			defer wg.Done()
			want := ref.Advance("smell", size)
			if got := m.Advance("smell", size); got != want {
				t.Errorf("concurrent Advance(%v) = %v, want %v", size, got, want)
			}
		}(float64(40 + i))
	}
	wg.Wait()
}

func TestAdvanceCached(t *testing.T) {
	m, err := NewMeasurer(gobold.TTF)
	if err != nil {
		t.Fatal(err)
	}
	first := m.Advance("caf\u00e9", 50)
	if m.advances.Len() != 1 {
		t.Fatalf("cache holds %d entries, want 1", m.advances.Len())
	}
	if got := m.Advance("cafe\u0301", 50); got != first {
		t.Errorf("cached Advance = %v, want %v", got, first)
	}
	if m.advances.Len() != 1 {
		t.Errorf("decomposed spelling added a second entry")
	}
	m.Advance("", 50)
	m.Advance("x", 0)
	if m.advances.Len() != 1 {
		t.Errorf("empty text or invalid size was cached")
	}
}
