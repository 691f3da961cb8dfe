package entities

import "time"

// Website is a website service engagement, owned by the user who created
// it and located at a (state, district, palika) point. UserID is nil on
// legacy ownerless rows; PalikaID is nil on rows predating the palika
// schema revision.
type Website struct {
	ID         uint64     `json:"id"`
	UserID     *uint64    `json:"userId"`
	Software   string     `json:"software"`
	StartDate  time.Time  `json:"startDate"`
	EndDate    time.Time  `json:"endDate"`
	StateID    int64      `json:"stateId"`
	DistrictID int64      `json:"districtId"`
	PalikaID   *int64     `json:"palikaId,omitempty"`
	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  time.Time  `json:"updatedAt"`
	Owner      *OwnerInfo `json:"owner,omitempty"`
}
