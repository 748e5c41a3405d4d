package service

import (
	"bytes"
	"encoding/json"
	"fmt"

	"rates-service/internal/entity"
)

// CanonicalBytes produces the byte serialization a rates response is signed
// and verified against. Field order is fixed by the struct definitions
// (updatedTime, rates; code, name, rate), HTML escaping is off so the output
// is plain UTF-8, and a nil rate list is normalized to an empty one. Signer
// and verifier must agree on these bytes exactly, so nothing here may depend
// on locale, map iteration or float formatting.
func CanonicalBytes(r entity.RatesResponse) ([]byte, error) {
	if r.Rates == nil {
		r.Rates = []entity.RateItem{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(r); err != nil {
		return nil, fmt.Errorf("encode rates response: %w", err)
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}
