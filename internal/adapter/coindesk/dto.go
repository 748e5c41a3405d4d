package coindesk

import (
	"bytes"
	"encoding/json"
	"fmt"
)

type Snapshot struct {
	IsMock     bool         `json:"isMock,omitempty"`
	Time       SnapshotTime `json:"time"`
	Disclaimer string       `json:"disclaimer"`
	ChartName  string       `json:"chartName"`
	Bpi        Bpi          `json:"bpi"`
}

type SnapshotTime struct {
	Updated    string `json:"updated"`
	UpdatedISO string `json:"updatedISO"`
	UpdatedUK  string `json:"updateduk"`
}

type BpiEntry struct {
	Code        string  `json:"code"`
	Symbol      string  `json:"symbol"`
	Rate        string  `json:"rate"`
	Description string  `json:"description"`
	RateFloat   float64 `json:"rate_float"`
}

// Bpi holds the feed's per-currency entries with the document's enumeration
// order preserved. Order matters: the aggregated rate list follows it.
type Bpi struct {
	codes   []string
	entries map[string]BpiEntry
}

func NewBpi(entries ...BpiEntry) Bpi {
	b := Bpi{entries: make(map[string]BpiEntry, len(entries))}
	for _, e := range entries {
		b.codes = append(b.codes, e.Code)
		b.entries[e.Code] = e
	}
	return b
}

// Codes returns currency codes in feed enumeration order.
func (b Bpi) Codes() []string {
	return b.codes
}

func (b Bpi) Get(code string) (BpiEntry, bool) {
	e, ok := b.entries[code]
	return e, ok
}

func (b Bpi) Len() int {
	return len(b.codes)
}

// UnmarshalJSON walks the object token by token instead of decoding into a
// map, since Go maps would lose the key order.
func (b *Bpi) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("read bpi open token: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("bpi: expected object, got %v", tok)
	}

	b.codes = nil
	b.entries = make(map[string]BpiEntry)

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("read bpi key: %w", err)
		}
		code, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("bpi: non-string key %v", keyTok)
		}

		var entry BpiEntry
		if err := dec.Decode(&entry); err != nil {
			return fmt.Errorf("decode bpi entry %s: %w", code, err)
		}
		if entry.Code == "" {
			entry.Code = code
		}

		b.codes = append(b.codes, code)
		b.entries[code] = entry
	}

	if _, err := dec.Token(); err != nil {
		return fmt.Errorf("read bpi close token: %w", err)
	}
	return nil
}

func (b Bpi) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, code := range b.codes {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(code)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := json.Marshal(b.entries[code])
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
