package certificate

import (
	"strconv"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

const (
	numberPrefix   = "BL"
	suffixSize     = 6
	suffixAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

// NewNumber returns a certificate number of the form BL-{unix millis}-{6 uppercase alphanumerics}.
func NewNumber(at time.Time) (string, error) {
	suffix, err := gonanoid.Generate(suffixAlphabet, suffixSize)
	if err != nil {
		return "", err
	}
	return numberPrefix + "-" + strconv.FormatInt(at.UnixMilli(), 10) + "-" + suffix, nil
}
