package models

// Source is one web citation attached to a veille entry by search grounding.
type Source struct {
	Title string `json:"title"`
	URI   string `json:"uri"`
}

// CompetitiveIntelligence is the analysis of one competitor institution.
// Category is one of: Bank, Fintech, Money Transfer, Agricultural Bank.
type CompetitiveIntelligence struct {
	Institution   string   `json:"institution"`
	Category      string   `json:"category"`
	Trends        []string `json:"trends"`
	LastCampaigns string   `json:"lastCampaigns"`
	Sources       []Source `json:"sources"`
}
