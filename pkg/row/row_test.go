package row

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSizeConstants(t *testing.T) {
	assert.Equal(t, 293, Size)
	assert.Equal(t, 4, UsernameOffset)
	assert.Equal(t, 37, EmailOffset)
}

func TestEncodeDecode_RoundTrip(t *testing.T) {
	tests := []struct {
		name string
		row  Row
	}{
		{"Simple", Row{ID: 1, Username: "user1", Email: "person1@example.com"}},
		{"EmptyStrings", Row{ID: 7, Username: "", Email: ""}},
		{"MaxLength", Row{ID: 1, Username: strings.Repeat("a", UsernameMaxLength), Email: strings.Repeat("a", EmailMaxLength)}},
		{"MaxInt32", Row{ID: 2147483647, Username: "u", Email: "e"}},
		{"NegativeID", Row{ID: -5, Username: "neg", Email: "neg@example.com"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			enc := tt.row.Encode()
			assert.Equal(t, tt.row, Decode(enc[:]))
		})
	}
}

func TestEncodeDecode_RandomASCII(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	randomText := func(maxLen int) string {
		b := make([]byte, rng.Intn(maxLen+1))
		for i := range b {
			b[i] = byte(33 + rng.Intn(94))
		}
		return string(b)
	}

	for i := 0; i < 500; i++ {
		r := Row{
			ID:       rng.Int31(),
			Username: randomText(UsernameMaxLength),
			Email:    randomText(EmailMaxLength),
		}
		enc := r.Encode()
		require.Equal(t, r, Decode(enc[:]), "iteration %d", i)
	}
}

func TestEncode_MaxLengthKeepsTerminator(t *testing.T) {
	r := Row{ID: 1, Username: strings.Repeat("a", UsernameMaxLength), Email: strings.Repeat("b", EmailMaxLength)}
	enc := r.Encode()

	assert.Equal(t, byte(0), enc[EmailOffset-1], "username terminator")
	assert.Equal(t, byte(0), enc[Size-1], "email terminator")
	assert.Equal(t, byte('b'), enc[EmailOffset], "email must start right after the username field")
}

func TestEncode_TruncatesOversizedText(t *testing.T) {
	r := Row{ID: 1, Username: strings.Repeat("x", UsernameMaxLength+10), Email: "e"}
	enc := r.Encode()

	got := Decode(enc[:])
	assert.Len(t, got.Username, UsernameMaxLength)
	assert.Equal(t, "e", got.Email)
}

func TestSerializeInto_OverwritesStaleBytes(t *testing.T) {
	slot := make([]byte, Size)
	Row{ID: 1, Username: "longusername", Email: "long@example.com"}.SerializeInto(slot)
	Row{ID: 2, Username: "ab", Email: "c"}.SerializeInto(slot)

	got := Decode(slot)
	assert.Equal(t, Row{ID: 2, Username: "ab", Email: "c"}, got)
	for i := UsernameOffset + 2; i < EmailOffset; i++ {
		require.Equal(t, byte(0), slot[i], "byte %d not zeroed", i)
	}
}

func TestRow_String(t *testing.T) {
	r := Row{ID: 1, Username: "user1", Email: "person1@example.com"}
	assert.Equal(t, "(1, user1, person1@example.com)", r.String())
}
