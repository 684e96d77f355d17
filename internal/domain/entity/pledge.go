package entity

import (
	"strings"
	"time"
)

// PledgeChoice is a declared voting intention for one office.
type PledgeChoice string

const (
	PledgePNC       PledgeChoice = "PNC"
	PledgeMDP       PledgeChoice = "MDP"
	PledgeUN        PledgeChoice = "UN"
	PledgeNotVoting PledgeChoice = "NOT VOTING"
)

// PledgeChoices lists the canonical choices in display order.
var PledgeChoices = []PledgeChoice{PledgePNC, PledgeMDP, PledgeUN, PledgeNotVoting}

// Office is an elected office a pledge is recorded for.
type Office string

const (
	OfficeMayor   Office = "mayor"
	OfficeRaeesa  Office = "raeesa"
	OfficeCouncil Office = "council"
	OfficeWDC     Office = "wdc"
)

// Offices lists the offices in the order pledge counts are accumulated.
var Offices = []Office{OfficeMayor, OfficeRaeesa, OfficeCouncil, OfficeWDC}

// ParsePledgeChoice trims the value and reports whether it is canonical.
func ParsePledgeChoice(value string) (PledgeChoice, bool) {
	choice := PledgeChoice(strings.TrimSpace(value))
	return choice, choice.Valid()
}

func (c PledgeChoice) Valid() bool {
	return c.Index() >= 0
}

// Index returns the position of the choice in PledgeChoices, or -1.
func (c PledgeChoice) Index() int {
	switch c {
	case PledgePNC:
		return 0
	case PledgeMDP:
		return 1
	case PledgeUN:
		return 2
	case PledgeNotVoting:
		return 3
	}
	return -1
}

// Pledge holds one voter's choices per office. Imported rows may contain
// legacy values outside the canonical set, so fields are stored as-is.
type Pledge struct {
	ID        int64         `gorm:"primaryKey;autoIncrement" json:"-"`
	VoterID   int64         `gorm:"not null;uniqueIndex" json:"-"`
	Mayor     *PledgeChoice `gorm:"type:varchar(255)" json:"mayor"`
	Raeesa    *PledgeChoice `gorm:"type:varchar(255)" json:"raeesa"`
	Council   *PledgeChoice `gorm:"type:varchar(255)" json:"council"`
	WDC       *PledgeChoice `gorm:"column:wdc;type:varchar(255)" json:"wdc"`
	CreatedAt time.Time     `gorm:"autoCreateTime" json:"-"`
	UpdatedAt time.Time     `gorm:"autoUpdateTime" json:"-"`
}

func (Pledge) TableName() string {
	return "pledge"
}

// For returns the stored value for an office.
func (p *Pledge) For(office Office) *PledgeChoice {
	if p == nil {
		return nil
	}
	switch office {
	case OfficeMayor:
		return p.Mayor
	case OfficeRaeesa:
		return p.Raeesa
	case OfficeCouncil:
		return p.Council
	case OfficeWDC:
		return p.WDC
	}
	return nil
}

// HasAny reports whether at least one office has a stored value.
func (p *Pledge) HasAny() bool {
	if p == nil {
		return false
	}
	return p.Mayor != nil || p.Raeesa != nil || p.Council != nil || p.WDC != nil
}
