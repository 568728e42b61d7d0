package toxid

import (
	"strings"
	"unicode"

	"github.com/samber/oops"
	"github.com/sirupsen/logrus"
)

// FindAll extracts addresses from free text such as a pasted chat message.
// A candidate must be a whole whitespace-delimited token, so a hex run
// embedded in a longer word never matches. Addresses are returned in the
// order they appear. A nil config uses NewScanConfig defaults.
func FindAll(text string, config *ScanConfig) ([]Address, error) {
	if config == nil {
		config = NewScanConfig()
	}
	if err := config.Validate(); err != nil {
		return nil, oops.
			Code("INVALID_CONFIG").
			In("toxid").
			Wrapf(err, "invalid scan configuration")
	}

	var found []Address
	candidates, rejected := 0, 0
	for _, token := range strings.FieldsFunc(text, unicode.IsSpace) {
		if !LooksLikeAddress(token) {
			continue
		}
		candidates++

		a := FromText(token)
		if !config.accepts(a.Variant()) || (config.RequireChecksum && !a.IsValid()) {
			rejected++
			continue
		}

		found = append(found, a)
		if config.MaxResults > 0 && len(found) == config.MaxResults {
			break
		}
	}

	log.WithFields(logrus.Fields{
		"text_length": len(text),
		"candidates":  candidates,
		"rejected":    rejected,
		"found":       len(found),
	}).Debug("scanned text for addresses")

	return found, nil
}
