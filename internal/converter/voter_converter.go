package converter

import (
	"strings"

	"voter-pledge-admin/internal/delivery/dto"
	"voter-pledge-admin/internal/domain/entity"
)

// VoterConverter needs the public storage URL to resolve photo paths.
type VoterConverter struct {
	publicURL string
}

func NewVoterConverter(publicURL string) *VoterConverter {
	return &VoterConverter{publicURL: strings.TrimRight(publicURL, "/")}
}

// PhotoURL returns nil when the voter has no stored photo.
func (c *VoterConverter) PhotoURL(path *string) *string {
	if path == nil {
		return nil
	}
	trimmed := strings.TrimLeft(strings.TrimSpace(*path), "/")
	if trimmed == "" {
		return nil
	}
	url := c.publicURL + "/" + trimmed
	return &url
}

func (c *VoterConverter) ToResponse(voter *entity.VoterRecord) *dto.VoterResponse {
	if voter == nil {
		return nil
	}

	response := &dto.VoterResponse{
		ID:            voter.ID,
		ListNumber:    voter.ListNumber,
		IDCardNumber:  voter.IDCardNumber,
		Name:          voter.Name,
		Sex:           voter.Sex,
		Mobile:        voter.Mobile,
		Age:           voter.Age,
		RegisteredBox: voter.RegisteredBox,
		Address:       voter.Address,
		Dhaairaa:      voter.Dhaairaa,
		MajilisCon:    voter.MajilisCon,
		ReRegTravel:   voter.ReRegTravel,
		Comments:      voter.Comments,
		VoteStatus:    voter.VoteStatus,
		Pledge:        PledgeToResponse(voter.Pledge),
		PhotoURL:      c.PhotoURL(voter.PhotoPath),
	}

	if voter.DOB != nil {
		dob := voter.DOB.Format("2006-01-02")
		response.DOB = &dob
	}

	return response
}

func (c *VoterConverter) ToResponses(voters []entity.VoterRecord) []dto.VoterResponse {
	responses := make([]dto.VoterResponse, 0, len(voters))
	for i := range voters {
		responses = append(responses, *c.ToResponse(&voters[i]))
	}
	return responses
}

// PledgeToResponse always yields all four offices, null when unset.
func PledgeToResponse(pledge *entity.Pledge) dto.PledgeResponse {
	return dto.PledgeResponse{
		Mayor:   choiceString(pledge.For(entity.OfficeMayor)),
		Raeesa:  choiceString(pledge.For(entity.OfficeRaeesa)),
		Council: choiceString(pledge.For(entity.OfficeCouncil)),
		WDC:     choiceString(pledge.For(entity.OfficeWDC)),
	}
}

func UpdateRequestToContact(req *dto.UpdateVoterRequest) *entity.VoterContactUpdate {
	return &entity.VoterContactUpdate{
		Mobile:      req.Mobile,
		ReRegTravel: req.ReRegTravel,
		Comments:    req.Comments,
	}
}

func UpdateRequestToPledge(req *dto.UpdateVoterRequest) *entity.PledgeUpdate {
	return &entity.PledgeUpdate{
		Mayor:   toChoice(req.Pledge.Mayor),
		Raeesa:  toChoice(req.Pledge.Raeesa),
		Council: toChoice(req.Pledge.Council),
		WDC:     toChoice(req.Pledge.WDC),
	}
}

// PledgeOptions lists the canonical choices in display order.
func PledgeOptions() []string {
	options := make([]string, 0, len(entity.PledgeChoices))
	for _, choice := range entity.PledgeChoices {
		options = append(options, string(choice))
	}
	return options
}

func choiceString(choice *entity.PledgeChoice) *string {
	if choice == nil {
		return nil
	}
	value := string(*choice)
	return &value
}

func toChoice(value *string) *entity.PledgeChoice {
	if value == nil {
		return nil
	}
	choice := entity.PledgeChoice(*value)
	return &choice
}
