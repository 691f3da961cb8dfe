package entities

import "time"

const (
	InquiryStatusInTalks   = "in-talks"
	InquiryStatusConfirmed = "confirmed"
	InquiryStatusCanceled  = "canceled"
)

func IsValidInquiryStatus(s string) bool {
	switch s {
	case InquiryStatusInTalks, InquiryStatusConfirmed, InquiryStatusCanceled:
		return true
	}
	return false
}

type Inquiry struct {
	ID                 uint64     `json:"id"`
	UserID             *uint64    `json:"userId"`
	InquirerName       string     `json:"inquirerName"`
	ContactPerson      string     `json:"contactPerson"`
	ContactPersonEmail string     `json:"contactPersonEmail"`
	PhoneNumber        string     `json:"phoneNumber"`
	Address            string     `json:"address"`
	Date               time.Time  `json:"date"`
	Software           string     `json:"software"`
	Status             string     `json:"status"`
	Activities         []string   `json:"activities"`
	Comments           string     `json:"comments"`
	Owner              *OwnerInfo `json:"owner,omitempty"`
}

// InquiryAction is one immutable entry in an inquiry's follow-up log.
type InquiryAction struct {
	ID        uint64    `json:"id"`
	InquiryID uint64    `json:"inquiryId"`
	Type      string    `json:"type"`
	Note      string    `json:"note"`
	CreatedAt time.Time `json:"createdAt"`
}
