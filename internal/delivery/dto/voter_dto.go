package dto

import "strings"

// Request DTOs

type VoterListRequest struct {
	Search     string `json:"search" validate:"max=100"`
	Dhaairaa   string `json:"dhaairaa" validate:"max=255"`
	MajilisCon string `json:"majilis_con" validate:"max=255"`
	Page       int    `json:"page" validate:"gte=1"`
	Selected   *int64 `json:"selected" validate:"omitempty,gte=1"`
}

func (r *VoterListRequest) Normalize() {
	r.Search = strings.TrimSpace(r.Search)
	r.Dhaairaa = strings.TrimSpace(r.Dhaairaa)
	r.MajilisCon = strings.TrimSpace(r.MajilisCon)
	if r.Page < 1 {
		r.Page = 1
	}
}

type PledgeRequest struct {
	Mayor   *string `json:"mayor" validate:"omitempty,pledge_choice"`
	Raeesa  *string `json:"raeesa" validate:"omitempty,pledge_choice"`
	Council *string `json:"council" validate:"omitempty,pledge_choice"`
	WDC     *string `json:"wdc" validate:"omitempty,pledge_choice"`
}

type UpdateVoterRequest struct {
	Mobile      *string       `json:"mobile" validate:"omitempty,max=255"`
	ReRegTravel *string       `json:"re_reg_travel" validate:"omitempty,max=255"`
	Comments    *string       `json:"comments" validate:"omitempty,max=1000"`
	Pledge      PledgeRequest `json:"pledge"`
}

// Normalize trims every field and turns blank strings into absent values.
func (r *UpdateVoterRequest) Normalize() {
	r.Mobile = trimToNil(r.Mobile)
	r.ReRegTravel = trimToNil(r.ReRegTravel)
	r.Comments = trimToNil(r.Comments)
	r.Pledge.Mayor = trimToNil(r.Pledge.Mayor)
	r.Pledge.Raeesa = trimToNil(r.Pledge.Raeesa)
	r.Pledge.Council = trimToNil(r.Pledge.Council)
	r.Pledge.WDC = trimToNil(r.Pledge.WDC)
}

// Response DTOs

type PledgeResponse struct {
	Mayor   *string `json:"mayor"`
	Raeesa  *string `json:"raeesa"`
	Council *string `json:"council"`
	WDC     *string `json:"wdc"`
}

type VoterResponse struct {
	ID            int64          `json:"id"`
	ListNumber    uint           `json:"list_number"`
	IDCardNumber  *string        `json:"id_card_number"`
	Name          *string        `json:"name"`
	Sex           *string        `json:"sex"`
	Mobile        *string        `json:"mobile"`
	DOB           *string        `json:"dob"`
	Age           *int           `json:"age"`
	RegisteredBox *string        `json:"registered_box"`
	Address       *string        `json:"address"`
	Dhaairaa      *string        `json:"dhaairaa"`
	MajilisCon    *string        `json:"majilis_con"`
	ReRegTravel   *string        `json:"re_reg_travel"`
	Comments      *string        `json:"comments"`
	VoteStatus    *string        `json:"vote_status"`
	Pledge        PledgeResponse `json:"pledge"`
	PhotoURL      *string        `json:"photo_url"`
}

// VoterPage is one cached page of the listing.
type VoterPage struct {
	Voters  []VoterResponse `json:"voters"`
	HasMore bool            `json:"has_more"`
}

type VoterFilters struct {
	Search     string `json:"search"`
	Dhaairaa   string `json:"dhaairaa"`
	MajilisCon string `json:"majilis_con"`
}

type VoterFilterOptions struct {
	Dhaairaa   []string `json:"dhaairaa"`
	MajilisCon []string `json:"majilis_con"`
}

type VoterListResponse struct {
	Voters        []VoterResponse    `json:"voters"`
	Filters       VoterFilters       `json:"filters"`
	FilterOptions VoterFilterOptions `json:"filter_options"`
	SelectedVoter *VoterResponse     `json:"selected_voter"`
	PledgeOptions []string           `json:"pledge_options"`
	Page          int                `json:"-"`
	PerPage       int                `json:"-"`
	HasMore       bool               `json:"-"`
}

func trimToNil(value *string) *string {
	if value == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
