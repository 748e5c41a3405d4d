package entity

// Currency is a row of the trusted currency directory as it sits in storage.
// Code and ChineseName may be plaintext or base64 ciphertext depending on
// which pipeline wrote the row; prefer PlainCurrency/EncryptedCurrency when
// the state is known.
type Currency struct {
	ID          string `db:"id" json:"id,omitempty"`
	Code        string `db:"code" json:"code"`
	ChineseName string `db:"chinese_name" json:"chinese_name"`
}

// PlainCurrency is a directory record whose fields are known to be plaintext.
type PlainCurrency struct {
	ID          string `json:"id,omitempty"`
	Code        string `json:"code"`
	ChineseName string `json:"chinese_name"`
}

// EncryptedCurrency is a directory record whose Code and ChineseName hold
// base64 AES ciphertext.
type EncryptedCurrency struct {
	ID          string `json:"id,omitempty"`
	Code        string `json:"code"`
	ChineseName string `json:"chinese_name"`
}

func (c PlainCurrency) Record() Currency {
	return Currency{ID: c.ID, Code: c.Code, ChineseName: c.ChineseName}
}

func (c EncryptedCurrency) Record() Currency {
	return Currency{ID: c.ID, Code: c.Code, ChineseName: c.ChineseName}
}
