package certificate

import (
	"bytes"
	"compress/zlib"
	"io"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewNumber(t *testing.T) {
	at := time.UnixMilli(1767225600123)
	pattern := regexp.MustCompile(`^BL-1767225600123-[0-9A-Z]{6}$`)

	seen := make(map[string]struct{})
	for i := 0; i < 50; i++ {
		n, err := NewNumber(at)
		require.NoError(t, err)
		assert.Regexp(t, pattern, n)
		seen[n] = struct{}{}
	}
	assert.Greater(t, len(seen), 45)
}

func TestRender(t *testing.T) {
	donated := time.Date(2026, 2, 14, 0, 0, 0, 0, time.UTC)
	var buf bytes.Buffer

	err := Render(&buf, Data{
		Number:       "BL-1-ABC123",
		DonorName:    "Asha Rao",
		BloodType:    "O-",
		IssuedDate:   time.Date(2026, 2, 15, 0, 0, 0, 0, time.UTC),
		DonationDate: &donated,
		Units:        2,
	})

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(buf.String(), "%PDF-"))
	assert.Contains(t, buf.String(), "%%EOF")
}

// pageText inflates every content stream of a rendered certificate.
func pageText(t *testing.T, pdf []byte) []byte {
	t.Helper()
	var out []byte
	for _, m := range regexp.MustCompile(`(?s)stream\n(.*?)\nendstream`).FindAllSubmatch(pdf, -1) {
		zr, err := zlib.NewReader(bytes.NewReader(m[1]))
		if err != nil {
			continue
		}
		b, err := io.ReadAll(zr)
		if err == nil {
			out = append(out, b...)
		}
	}
	require.NotEmpty(t, out, "no content streams")
	return out
}

func TestRender_NonASCIIName(t *testing.T) {
	var buf bytes.Buffer

	err := Render(&buf, Data{
		Number:     "BL-1-ABC123",
		DonorName:  "José Müller",
		IssuedDate: time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	text := pageText(t, buf.Bytes())
	assert.Contains(t, string(text), "Jos\xe9 M\xfcller")
	assert.NotContains(t, string(text), "Jos\xc3\xa9")
}

func TestBody(t *testing.T) {
	donated := time.Date(2026, 2, 14, 0, 0, 0, 0, time.UTC)

	assert.Equal(t,
		"in grateful recognition of the voluntary donation of 1 unit. Every donation can help save up to three lives.",
		body(Data{}))
	assert.Equal(t,
		"in grateful recognition of the voluntary donation of 2 units of AB+ blood on 14 February 2026. Every donation can help save up to three lives.",
		body(Data{Units: 2, BloodType: "AB+", DonationDate: &donated}))
}
