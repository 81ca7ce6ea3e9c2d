package pack

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/unicode"
)

func utf16le(t *testing.T, s string) []byte {
	t.Helper()
	b, err := unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewEncoder().Bytes([]byte(s))
	require.NoError(t, err)
	return b
}

func TestRegBinary(t *testing.T) {
	bin := utf16le(t, `C:\`)
	assert.Equal(t, "43,00,3A,00,5C,00", RegBinary(bin, false))
	assert.Equal(t, "43#$c00#$c3A#$c00#$c5C#$c00", RegBinary(bin, true))
	assert.Equal(t, "", RegBinary(nil, false))
	assert.Equal(t, "00,0F,FF", RegBinary([]byte{0x00, 0x0f, 0xff}, false))
}

func TestJoinRegBinary(t *testing.T) {
	assert.Equal(t, "43,00,3A,00", JoinRegBinary([]string{"43", "00", "3A", "00"}, false))
	assert.Equal(t, "43#$c00", JoinRegBinary([]string{"43", "00"}, true))
}

func TestUnpackRegBinary(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []byte
	}{
		{"plain", "43,00,3A,00,5C,00", []byte{0x43, 0x00, 0x3a, 0x00, 0x5c, 0x00}},
		{"escaped", "43#$c00", []byte{0x43, 0x00}},
		{"lowercase", "ff,0a", []byte{0xff, 0x0a}},
		{"single digit", "A", []byte{0x0a}},
		{"empty", "", []byte{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := UnpackRegBinary(tt.input)
			require.NoError(t, err)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("UnpackRegBinary mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestUnpackRegBinaryRejectsMalformed(t *testing.T) {
	for _, input := range []string{"GG", "123", "43,,00", "43,"} {
		t.Run(input, func(t *testing.T) {
			_, err := UnpackRegBinary(input)
			assert.Error(t, err)
		})
	}
}

func TestRegBinaryRoundTrip(t *testing.T) {
	all := make([]byte, 256)
	for i := range all {
		all[i] = byte(i)
	}

	for _, bin := range [][]byte{{}, {0}, {0xde, 0xad, 0xbe, 0xef}, all} {
		for _, escaped := range []bool{false, true} {
			got, err := UnpackRegBinary(RegBinary(bin, escaped))
			require.NoError(t, err)
			if diff := cmp.Diff(bin, got); diff != "" {
				t.Errorf("round trip mismatch (escaped=%v) (-want +got):\n%s", escaped, diff)
			}
		}
	}
}

func TestRegMultiBinary(t *testing.T) {
	got, err := RegMultiBinary([]string{`C:\`, "Hello", "World"})
	require.NoError(t, err)
	want := "43,00,3A,00,5C,00,00,00,48,00,65,00,6C,00,6C,00,6F,00,00,00,57,00,6F,00,72,00,6C,00,64,00"
	assert.Equal(t, want, got)

	single, err := RegMultiBinary([]string{"A"})
	require.NoError(t, err)
	assert.Equal(t, "41,00", single)

	hangul, err := RegMultiBinary([]string{"가"})
	require.NoError(t, err)
	assert.Equal(t, "00,AC", hangul)

	// An empty string contributes no pairs, only its terminator
	empty, err := RegMultiBinary([]string{"", "A"})
	require.NoError(t, err)
	assert.Equal(t, "00,00,41,00", empty)
}

func TestRegMultiString(t *testing.T) {
	list := []string{"1", "2", "3"}
	packed := RegMultiString(list)
	assert.Equal(t, "1#$z2#$z3", packed)
	if diff := cmp.Diff(list, UnpackRegMultiString(packed)); diff != "" {
		t.Errorf("UnpackRegMultiString mismatch (-want +got):\n%s", diff)
	}

	if diff := cmp.Diff([]string{"", "a", ""}, UnpackRegMultiString("#$za#$z")); diff != "" {
		t.Errorf("empty segments mismatch (-want +got):\n%s", diff)
	}
}

func TestListStr(t *testing.T) {
	assert.Equal(t, "1|2|3|4|5", ListStr([]string{"1", "2", "3", "4", "5"}, "|"))
	assert.Equal(t, "1122123124125", ListStr([]string{"1", "2", "3", "4", "5"}, "12"))
	assert.Equal(t, "", ListStr(nil, "|"))
}

func TestUnpackListStr(t *testing.T) {
	tests := []struct {
		input string
		delim string
		want  []string
	}{
		{"1|2|3|4|5", "|", []string{"1", "2", "3", "4", "5"}},
		{"1|2|3|4|5", "3", []string{"1|2|", "|4|5"}},
		{"1|2|3|4|5", "|3|", []string{"1|2", "4|5"}},
		{"|a", "|", []string{"", "a"}},
		{"|10|98||50|", "|", []string{"", "10", "98", "", "50", ""}},
		{"|10|98||50|32||0|1|5|2|4|3|", "|", []string{"", "10", "98", "", "50", "32", "", "0", "1", "5", "2", "4", "3", ""}},
		{"aaaa", "aa", []string{"", "", ""}},
		{"no delimiter", "|", []string{"no delimiter"}},
		{"abc", "", []string{"abc"}},
	}

	for _, tt := range tests {
		t.Run(tt.input+"/"+tt.delim, func(t *testing.T) {
			got := UnpackListStr(tt.input, tt.delim)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("UnpackListStr mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestListStrInverse(t *testing.T) {
	lists := [][]string{
		{"a", "b", "c"},
		{"", "", ""},
		{"only"},
		{"with space", "and,comma"},
	}
	for _, list := range lists {
		for _, delim := range []string{"|", "::", "#$z"} {
			got := UnpackListStr(ListStr(list, delim), delim)
			if diff := cmp.Diff(list, got); diff != "" {
				t.Errorf("inverse mismatch for delim %q (-want +got):\n%s", delim, diff)
			}
		}
	}
}
