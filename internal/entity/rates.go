package entity

// RateItem keeps the feed's decimal string untouched so that signing input
// never depends on float formatting.
type RateItem struct {
	Code string `json:"code"`
	Name string `json:"name"`
	Rate string `json:"rate"`
}

type RatesResponse struct {
	UpdatedTime string     `json:"updatedTime"`
	Rates       []RateItem `json:"rates"`
}

type SignedRatesResponse struct {
	Data      RatesResponse `json:"data"`
	Signature string        `json:"signature"`
}
