package ginlang

import "testing"

func TestNewUnion(t *testing.T) {
	red := &NominalTag{Name: "Red"}
	green := &NominalTag{Name: "Green"}
	blue := &NominalTag{Name: "Blue"}

	if tag := NewUnion(red); tag != red {
		t.Fatalf("got %v", Sprint(tag))
	}

	flat := NewUnion(red, NewUnion(green, blue))
	if str := Sprint(flat); str != "(| Red Green Blue)" {
		t.Fatalf("got %s", str)
	}

	func() {
		defer func() {
			if p := recover(); p == nil {
				t.Fatal("should panic")
			}
		}()
		NewUnion()
	}()
}
