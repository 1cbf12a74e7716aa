package adsdomain

// InsightRow é uma linha crua de insight retornada pela API. Valores
// numéricos chegam como string e são convertidos na camada de integração.
type InsightRow struct {
	CampaignID   string   `json:"campaign_id"`
	CampaignName string   `json:"campaign_name"`
	Spend        string   `json:"spend"`
	Impressions  string   `json:"impressions"`
	Clicks       string   `json:"clicks"`
	Actions      []Action `json:"actions"`
	ActionValues []Action `json:"action_values"`
	DateStart    string   `json:"date_start"`
	DateStop     string   `json:"date_stop"`
}

// Action é um par tipo/valor das listas de ações da API.
type Action struct {
	ActionType string `json:"action_type"`
	Value      string `json:"value"`
}

type Cursors struct {
	Before string `json:"before"`
	After  string `json:"after"`
}

type Paging struct {
	Cursors Cursors `json:"cursors"`
	Next    string  `json:"next,omitempty"`
}

// AccountMetadata são os metadados de conta consultados fora do fluxo de
// insights; podem ficar levemente defasados e por isso são cacheáveis.
type AccountMetadata struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Currency string `json:"currency"`
}

// Tipos de ação usados para extrair conversões e receita das listas.
const (
	ActionTypePurchase      = "purchase"
	ActionTypePixelPurchase = "offsite_conversion.fb_pixel_purchase"
)
