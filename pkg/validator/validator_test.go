package validator

import (
	"testing"

	"voter-pledge-admin/internal/delivery/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestValidateUserRequestRoles(t *testing.T) {
	v := NewValidator()

	req := &dto.CreateUserRequest{
		Name:                 "Operator",
		Email:                "op@example.com",
		Password:             "password-1",
		PasswordConfirmation: "password-1",
		Roles:                []string{"admin", "dhaaira-9"},
	}
	err := v.Validate(req)
	require.Error(t, err)

	errs := v.FormatValidationErrors(err)
	assert.Equal(t, map[string]string{"roles[1]": "roles[1] is not a valid role"}, errs)
}

func TestValidateUserRequestRequiresRoles(t *testing.T) {
	v := NewValidator()

	req := &dto.CreateUserRequest{
		Name:                 "Operator",
		Email:                "op@example.com",
		Password:             "password-1",
		PasswordConfirmation: "password-1",
		Roles:                []string{},
	}
	errs := v.FormatValidationErrors(v.Validate(req))
	assert.Equal(t, "roles must have at least 1 item(s)", errs["roles"])
}

func TestValidatePasswordConfirmation(t *testing.T) {
	v := NewValidator()

	req := &dto.CreateUserRequest{
		Name:                 "Operator",
		Email:                "not-an-email",
		Password:             "short",
		PasswordConfirmation: "different",
		Roles:                []string{"mayor"},
	}
	errs := v.FormatValidationErrors(v.Validate(req))
	assert.Contains(t, errs, "email")
	assert.Equal(t, "password must be at least 8 characters", errs["password"])
	assert.Contains(t, errs, "password_confirmation")
}

func TestValidateUpdateUserBlankPassword(t *testing.T) {
	v := NewValidator()

	req := &dto.UpdateUserRequest{
		Name:     "Operator",
		Email:    "op@example.com",
		Password: "   ",
		Roles:    []string{" raeesa ", "raeesa"},
	}
	req.Normalize()

	assert.NoError(t, v.Validate(req))
	assert.Equal(t, []string{"raeesa"}, req.Roles)
}

func TestValidatePledgeChoices(t *testing.T) {
	v := NewValidator()

	req := &dto.UpdateVoterRequest{
		Pledge: dto.PledgeRequest{
			Mayor:   strPtr("pnc"),
			Raeesa:  strPtr(" NOT VOTING "),
			Council: strPtr(""),
		},
	}
	req.Normalize()

	errs := v.FormatValidationErrors(v.Validate(req))
	assert.Equal(t, map[string]string{"pledge.mayor": "pledge.mayor must be one of PNC, MDP, UN, NOT VOTING"}, errs)
	assert.Nil(t, req.Pledge.Council)
}

func TestValidateVoterCommentsLength(t *testing.T) {
	v := NewValidator()

	long := make([]byte, 1001)
	for i := range long {
		long[i] = 'x'
	}
	req := &dto.UpdateVoterRequest{Comments: strPtr(string(long))}

	errs := v.FormatValidationErrors(v.Validate(req))
	assert.Equal(t, "comments must be at most 1000 characters", errs["comments"])
}

func TestFormatValidationErrorsIgnoresOtherErrors(t *testing.T) {
	v := NewValidator()
	assert.Empty(t, v.FormatValidationErrors(nil))
}
