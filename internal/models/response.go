package models

type SearchMetadata struct {
	OptionsGenerated int   `json:"options_generated"`
	OptionsQueried   int   `json:"options_queried"`
	OptionsFailed    int   `json:"options_failed"`
	SearchTimeMs     int64 `json:"search_time_ms"`
}

type SearchResponse struct {
	SearchID string         `json:"search_id"`
	Metadata SearchMetadata `json:"metadata"`
	BestDeal *BestDeal      `json:"best_deal"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}
