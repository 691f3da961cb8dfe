package dto

type CreateInquiryDTO struct {
	InquirerName       string   `json:"inquirerName" validate:"required"`
	ContactPerson      string   `json:"contactPerson" validate:"required"`
	ContactPersonEmail string   `json:"contactPersonEmail" validate:"required,email"`
	PhoneNumber        string   `json:"phoneNumber" validate:"required"`
	Address            string   `json:"address" validate:"required"`
	Date               string   `json:"date" validate:"required,datetime=2006-01-02"`
	Software           string   `json:"software" validate:"required"`
	Status             string   `json:"status" validate:"required,inquiry_status"`
	Activities         []string `json:"activities" validate:"required"`
	Comments           string   `json:"comments"`
}

type UpdateInquiryDTO struct {
	InquirerName       *string   `json:"inquirerName" validate:"omitempty,min=1"`
	ContactPerson      *string   `json:"contactPerson" validate:"omitempty,min=1"`
	ContactPersonEmail *string   `json:"contactPersonEmail" validate:"omitempty,email"`
	PhoneNumber        *string   `json:"phoneNumber" validate:"omitempty,min=1"`
	Address            *string   `json:"address" validate:"omitempty,min=1"`
	Date               *string   `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Software           *string   `json:"software" validate:"omitempty,min=1"`
	Status             *string   `json:"status" validate:"omitempty,inquiry_status"`
	Activities         *[]string `json:"activities"`
	Comments           *string   `json:"comments"`
}

type CreateActionDTO struct {
	Type string `json:"type" validate:"required,action_type"`
	Note string `json:"note"`
}
