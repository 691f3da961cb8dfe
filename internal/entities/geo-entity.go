package entities

// The geographic reference hierarchy: state -> district -> palika.
// Bulk-loaded once, read-mostly afterwards. NameNep carries the localized
// (Nepali) name alongside the Latin one.

type State struct {
	ID      int64   `json:"StateId"`
	Name    string  `json:"StateName"`
	NameNep string  `json:"StateNameNep"`
	Code    *string `json:"StateCode"`
}

type District struct {
	ID      int64   `json:"DistrictId"`
	StateID int64   `json:"StateId"`
	Name    string  `json:"DistrictName"`
	NameNep string  `json:"DistrictNameNep"`
	Code    *string `json:"DistrictCode"`
}

type Palika struct {
	ID         int64   `json:"PalikaId"`
	DistrictID int64   `json:"DistrictId"`
	Name       string  `json:"PalikaName"`
	NameNep    string  `json:"PalikaNameNep"`
	Code       *string `json:"PalikaCode"`
}
