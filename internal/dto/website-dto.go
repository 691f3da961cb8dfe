package dto

// Dates travel as "2006-01-02" strings and are parsed at the service
// boundary.

type CreateWebsiteDTO struct {
	Software   string `json:"software" validate:"required"`
	StartDate  string `json:"startDate" validate:"required,datetime=2006-01-02"`
	EndDate    string `json:"endDate" validate:"required,datetime=2006-01-02"`
	StateID    int64  `json:"stateId" validate:"required"`
	DistrictID int64  `json:"districtId" validate:"required"`
	PalikaID   int64  `json:"palikaId" validate:"required"`
}

// UpdateWebsiteDTO has merge-patch semantics: nil fields keep their prior
// value.
type UpdateWebsiteDTO struct {
	Software   *string `json:"software" validate:"omitempty,min=1"`
	StartDate  *string `json:"startDate" validate:"omitempty,datetime=2006-01-02"`
	EndDate    *string `json:"endDate" validate:"omitempty,datetime=2006-01-02"`
	StateID    *int64  `json:"stateId"`
	DistrictID *int64  `json:"districtId"`
	PalikaID   *int64  `json:"palikaId"`
}
