package encoder

import (
	"bytes"
	"reflect"
	"testing"
)

// TestArgsBuilderOrder tests that tokens are emitted in insertion order
// with the command name first
func TestArgsBuilderOrder(t *testing.T) {
	args := NewArgsBuilder[string]("JSON.SET").
		Add("doc", "$.a", `{"x": 1}`).
		AddName("NX").
		Build()

	want := [][]byte{
		[]byte("JSON.SET"),
		[]byte("doc"),
		[]byte("$.a"),
		[]byte(`{"x": 1}`),
		[]byte("NX"),
	}
	if !reflect.DeepEqual(args, want) {
		t.Errorf("argument vector doesn't match:\nGot:  %q\nWant: %q", args, want)
	}
}

// TestArgsBuilderRoundTrip tests that command, key and path survive the
// encoding losslessly in both representations
func TestArgsBuilderRoundTrip(t *testing.T) {
	t.Run("Text", func(t *testing.T) {
		args := NewArgsBuilder[string]("JSON.GET").Add("doc", "$..a").Build()

		if got := string(args[0]); got != "JSON.GET" {
			t.Errorf("command doesn't round trip: got %q", got)
		}
		if got := string(args[1]); got != "doc" {
			t.Errorf("key doesn't round trip: got %q", got)
		}
		if got := string(args[2]); got != "$..a" {
			t.Errorf("path doesn't round trip: got %q", got)
		}
	})

	t.Run("Binary", func(t *testing.T) {
		key := []byte{0x00, 0xff, 'k'}
		path := []byte(".b")
		args := NewArgsBuilder[[]byte]("JSON.DEL").Add(key, path).Build()

		if !bytes.Equal(args[1], key) {
			t.Errorf("binary key doesn't round trip: got %v, want %v", args[1], key)
		}
		if !bytes.Equal(args[2], path) {
			t.Errorf("binary path doesn't round trip: got %v, want %v", args[2], path)
		}
	})
}

// TestArgsBuilderAddInt tests the canonical decimal rendering of index
// arguments
func TestArgsBuilderAddInt(t *testing.T) {
	tests := []struct {
		index int64
		want  string
	}{
		{0, "0"},
		{7, "7"},
		{-3, "-3"},
		{1234567, "1234567"},
	}

	for _, tt := range tests {
		args := NewArgsBuilder[[]byte]("JSON.ARRINSERT").AddInt(tt.index).Build()
		if got := string(args[1]); got != tt.want {
			t.Errorf("AddInt(%d) = %q, want %q", tt.index, got, tt.want)
		}
	}
}
