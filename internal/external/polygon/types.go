package polygon

// prevCloseResponse is the payload of /v2/aggs/ticker/{ticker}/prev
type prevCloseResponse struct {
	Ticker       string         `json:"ticker"`
	Status       string         `json:"status"`
	ResultsCount int            `json:"resultsCount"`
	Results      []prevCloseBar `json:"results"`
}

// prevCloseBar is a single daily aggregate bar
type prevCloseBar struct {
	Open   float64 `json:"o"`
	High   float64 `json:"h"`
	Low    float64 `json:"l"`
	Close  float64 `json:"c"`
	Volume float64 `json:"v"`
}

// chainResponse is the payload of /v3/snapshot/options/{ticker}
type chainResponse struct {
	Status  string          `json:"status"`
	NextURL string          `json:"next_url"`
	Results []snapshotEntry `json:"results"`
}

// snapshotEntry is one contract snapshot in the chain response
type snapshotEntry struct {
	Details      contractDetails `json:"details"`
	Greeks       contractGreeks  `json:"greeks"`
	LastQuote    contractQuote   `json:"last_quote"`
	Day          contractDay     `json:"day"`
	OpenInterest int64           `json:"open_interest"`
}

type contractDetails struct {
	Ticker         string  `json:"ticker"`
	ContractType   string  `json:"contract_type"`
	StrikePrice    float64 `json:"strike_price"`
	ExpirationDate string  `json:"expiration_date"`
}

type contractGreeks struct {
	Delta float64 `json:"delta"`
	Gamma float64 `json:"gamma"`
	Theta float64 `json:"theta"`
	Vega  float64 `json:"vega"`
}

type contractQuote struct {
	Bid float64 `json:"bid"`
	Ask float64 `json:"ask"`
}

type contractDay struct {
	Volume int64 `json:"volume"`
}
