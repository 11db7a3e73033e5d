package utils

import "testing"

func TestColorFloatRGBA(t *testing.T) {
	c := ColorFloat{1, 0, 0.5, 1}
	r, g, b, a := c.RGBA()
	if r != 0xffff || g != 0 {
		t.Errorf("r, g = %x, %x", r, g)
	}
	if b == 0 || b > 0xffff {
		t.Errorf("b = %x", b)
	}
	if a != 0xffff {
		t.Errorf("a = %x", a)
	}
}

func TestNewColorFloat(t *testing.T) {
	c := NewColorFloat([]float32{0.1, 0.2, 0.3})
	if c[3] != 1.0 {
		t.Errorf("alpha = %v, want 1", c[3])
	}
	ca := NewColorFloatA([]float32{0.1, 0.2, 0.3, 0.4})
	if ca[3] != 0.4 {
		t.Errorf("alpha = %v, want 0.4", ca[3])
	}
}
