package wordcode

import (
	"errors"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const pi100 = "31415926535897932384626433832795028841971693993751058209749445923078164062862089986280348253421170679"

func TestEncode(t *testing.T) {
	for word, want := range map[string]string{
		"":   "",
		"a":  "097",
		"Hi": "072105",
		"\a": "007",
		" ~": "032126",
		"é":  "233",
		"ϧ":  "999",
	} {
		code, err := Encode(word)
		assert.NoError(t, err)
		assert.Equal(t, want, code, "encoding %q", word)
	}

	_, err := Encode("okϨ")
	assert.True(t, errors.Is(err, ErrCodeRange))
	_, err = Encode("日本")
	assert.True(t, errors.Is(err, ErrCodeRange))
}

func TestDecode(t *testing.T) {
	word, err := Decode("072105")
	assert.NoError(t, err)
	assert.Equal(t, "Hi", word)

	_, err = Decode("07210")
	assert.True(t, errors.Is(err, ErrCodeLength))
	_, err = Decode("07x105")
	assert.True(t, errors.Is(err, ErrCodeDigit))
}

func TestRoundTrip(t *testing.T) {
	words := []string{"", "a", "pi", "Hello, World!", "naïve café", "\x00\x01ϧ"}
	for i := 0; i < 100; i++ {
		var b strings.Builder
		for k := rand.IntN(12); k > 0; k-- {
			b.WriteRune(rune(rand.IntN(MaxCode + 1)))
		}
		words = append(words, b.String())
	}
	for _, w := range words {
		code, err := Encode(w)
		require.NoError(t, err)
		assert.Len(t, code, 3*len([]rune(w)))
		back, err := Decode(code)
		require.NoError(t, err)
		assert.Equal(t, w, back)
	}
}

func TestCompile(t *testing.T) {
	p, err := Compile("Hi")
	require.NoError(t, err)
	assert.Equal(t, "Hi", p.Word())
	assert.Equal(t, "072105", p.Code())
	assert.Equal(t, `"Hi" (072105)`, p.String())

	_, err = Compile("")
	assert.True(t, errors.Is(err, ErrEmptyWord))
	_, err = Compile("中")
	assert.True(t, errors.Is(err, ErrCodeRange))
}

func TestFind_Pi(t *testing.T) {
	assert.Equal(t, 54, Find(pi100, "a"))
	assert.Equal(t, 49, Find(pi100, "i"))
	assert.Equal(t, 65, Find(pi100, "N"))
	assert.Equal(t, 50, Find(pi100, ":"))
	assert.Equal(t, NotFound, Find(pi100, "ab"))
	assert.Equal(t, NotFound, Find(pi100, "Hi"))
	assert.Equal(t, NotFound, Find(pi100, "x"))
}

func TestFind_Offsets(t *testing.T) {
	assert.Equal(t, 0, Find("097", "a"))
	assert.Equal(t, 4, Find("0000097", "a"))
	assert.Equal(t, 2, Find("11072105", "Hi"))
	// first match wins
	assert.Equal(t, 1, Find("5097097", "a"))
	// groups are read at a stride of three from the start offset
	assert.Equal(t, NotFound, Find("0720105", "Hi"))
}

func TestFind_ShortFinalGroup(t *testing.T) {
	// the last group is only "07" but still decodes to 7
	assert.Equal(t, 0, Find("07207", "H\a"))
	assert.Equal(t, 1, Find("9097", "a"))
	assert.Equal(t, 2, Find("997", "\a"))
}

func TestFind_Empty(t *testing.T) {
	assert.Equal(t, NotFound, Find("", "a"))
	assert.Equal(t, NotFound, Find("", "Hi"))
	assert.Equal(t, NotFound, Find(pi100, ""))
	assert.Equal(t, NotFound, Find(pi100, "中"))
}

func TestFind_Overrun(t *testing.T) {
	// "H" matches at offset 4 but the "i" group would start past the end, which
	// ends the whole scan
	assert.Equal(t, NotFound, Find("0000072", "Hi"))
	assert.Equal(t, NotFound, Find("072", "Hi"))
	assert.Equal(t, NotFound, Find("072105072", "Hi!"))
}

func TestFind_NonDigits(t *testing.T) {
	assert.Equal(t, 3, Find("x9a097", "a"))
}

func TestPattern_Reuse(t *testing.T) {
	p, err := Compile("i")
	require.NoError(t, err)
	assert.Equal(t, 49, p.Find(pi100))
	assert.Equal(t, 0, p.Find("105"))
	assert.Equal(t, NotFound, p.Find(pi100[:51]))
	assert.Equal(t, 49, p.Find(pi100[:52]))
}
