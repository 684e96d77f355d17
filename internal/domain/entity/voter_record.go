package entity

import "time"

// VoterRecord is one registrant imported from the voter list.
type VoterRecord struct {
	ID            int64      `gorm:"primaryKey;autoIncrement" json:"id"`
	ListNumber    uint       `gorm:"not null;uniqueIndex" json:"list_number"`
	IDCardNumber  *string    `gorm:"type:varchar(255);index" json:"id_card_number"`
	PhotoPath     *string    `gorm:"type:varchar(255)" json:"-"`
	Name          *string    `gorm:"type:varchar(255)" json:"name"`
	Sex           *string    `gorm:"type:varchar(20)" json:"sex"`
	Mobile        *string    `gorm:"type:varchar(255);index" json:"mobile"`
	DOB           *time.Time `gorm:"column:dob;type:date" json:"dob"`
	Age           *int       `json:"age"`
	RegisteredBox *string    `gorm:"type:varchar(255)" json:"registered_box"`
	MajilisCon    *string    `gorm:"type:varchar(255);index" json:"majilis_con"`
	Address       *string    `gorm:"type:varchar(255)" json:"address"`
	Dhaairaa      *string    `gorm:"type:varchar(255);index" json:"dhaairaa"`
	ReRegTravel   *string    `gorm:"type:varchar(255)" json:"re_reg_travel"`
	Comments      *string    `gorm:"type:text" json:"comments"`
	VoteStatus    *string    `gorm:"type:varchar(255)" json:"vote_status"`
	CreatedAt     time.Time  `gorm:"autoCreateTime" json:"-"`
	UpdatedAt     time.Time  `gorm:"autoUpdateTime" json:"-"`

	// Relationships
	Pledge *Pledge `gorm:"foreignKey:VoterID;constraint:OnDelete:CASCADE" json:"pledge,omitempty"`
}

func (VoterRecord) TableName() string {
	return "voter_records"
}

// VoterContactUpdate carries the only voter fields editable after import.
type VoterContactUpdate struct {
	Mobile      *string
	ReRegTravel *string
	Comments    *string
}

// PledgeUpdate carries the full replacement set of pledge values.
type PledgeUpdate struct {
	Mayor   *PledgeChoice
	Raeesa  *PledgeChoice
	Council *PledgeChoice
	WDC     *PledgeChoice
}
