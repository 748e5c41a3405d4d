package coindesk

// MockSnapshot is the fixed fallback document returned whenever the live feed
// cannot be used. The timestamps and rates are frozen so degraded responses
// stay deterministic and signable.
func MockSnapshot() *Snapshot {
	return &Snapshot{
		IsMock: true,
		Time: SnapshotTime{
			Updated:    "Aug 3, 2022 20:25:00 UTC",
			UpdatedISO: "2022-08-03T20:25:00+00:00",
			UpdatedUK:  "Aug 3, 2022 at 21:25 BST",
		},
		Disclaimer: "This data was produced from the CoinDesk Bitcoin Price Index (USD). Non-USD currency data converted using hourly conversion rate from openexchangerates.org",
		ChartName:  "Bitcoin",
		Bpi: NewBpi(
			BpiEntry{Code: "USD", Symbol: "$", Rate: "23,342.0112", Description: "US Dollar", RateFloat: 23342.0112},
			BpiEntry{Code: "GBP", Symbol: "£", Rate: "19,504.3978", Description: "British Pound Sterling", RateFloat: 19504.3978},
			BpiEntry{Code: "EUR", Symbol: "€", Rate: "22,738.5269", Description: "Euro", RateFloat: 22738.5269},
		),
	}
}
