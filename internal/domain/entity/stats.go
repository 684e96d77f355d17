package entity

import (
	"bytes"
	"encoding/json"
	"strings"
)

// BlankBucket collects missing, empty and non-canonical pledge values.
const BlankBucket = "Blank"

// UnspecifiedDhaairaa labels voters without a district code.
const UnspecifiedDhaairaa = "Unspecified"

// UnspecifiedStatus labels voters without a vote status.
const UnspecifiedStatus = "unspecified"

// PledgeCounts counts canonical choices in PledgeChoices order.
type PledgeCounts [4]int

// Add increments the counter for value if it is canonical.
func (c *PledgeCounts) Add(value *PledgeChoice) {
	if value == nil {
		return
	}
	if i := value.Index(); i >= 0 {
		c[i]++
	}
}

func (c PledgeCounts) Get(choice PledgeChoice) int {
	if i := choice.Index(); i >= 0 {
		return c[i]
	}
	return 0
}

func (c PledgeCounts) Total() int {
	total := 0
	for _, n := range c {
		total += n
	}
	return total
}

func (c PledgeCounts) MarshalJSON() ([]byte, error) {
	keys := make([]string, len(PledgeChoices))
	for i, choice := range PledgeChoices {
		keys[i] = string(choice)
	}
	return marshalOrdered(keys, c[:])
}

// BucketCounts counts pledge values for one office, with everything that is
// not canonical folded into the Blank bucket (last slot).
type BucketCounts [5]int

// BucketOf resolves the bucket label for a stored pledge value.
func BucketOf(value *PledgeChoice) string {
	if value == nil {
		return BlankBucket
	}
	choice, ok := ParsePledgeChoice(string(*value))
	if !ok {
		return BlankBucket
	}
	return string(choice)
}

func (c *BucketCounts) Add(value *PledgeChoice) {
	bucket := BucketOf(value)
	if bucket == BlankBucket {
		c[4]++
		return
	}
	c[PledgeChoice(bucket).Index()]++
}

// Get returns the count for a bucket label.
func (c BucketCounts) Get(bucket string) int {
	if bucket == BlankBucket {
		return c[4]
	}
	if i := PledgeChoice(bucket).Index(); i >= 0 {
		return c[i]
	}
	return 0
}

func (c BucketCounts) Total() int {
	total := 0
	for _, n := range c {
		total += n
	}
	return total
}

func (c BucketCounts) MarshalJSON() ([]byte, error) {
	keys := make([]string, 0, len(PledgeChoices)+1)
	for _, choice := range PledgeChoices {
		keys = append(keys, string(choice))
	}
	keys = append(keys, BlankBucket)
	return marshalOrdered(keys, c[:])
}

// OfficeBuckets holds bucket counts for each office.
type OfficeBuckets struct {
	Council BucketCounts `json:"council"`
	WDC     BucketCounts `json:"wdc"`
	Raeesa  BucketCounts `json:"raeesa"`
	Mayor   BucketCounts `json:"mayor"`
}

func (o *OfficeBuckets) For(office Office) *BucketCounts {
	switch office {
	case OfficeMayor:
		return &o.Mayor
	case OfficeRaeesa:
		return &o.Raeesa
	case OfficeCouncil:
		return &o.Council
	case OfficeWDC:
		return &o.WDC
	}
	return nil
}

// HeadlineBuckets holds the ungrouped totals shown for raeesa and mayor.
type HeadlineBuckets struct {
	Raeesa BucketCounts `json:"raeesa"`
	Mayor  BucketCounts `json:"mayor"`
}

// For returns the counter for raeesa or mayor, nil for other offices.
func (h *HeadlineBuckets) For(office Office) *BucketCounts {
	switch office {
	case OfficeRaeesa:
		return &h.Raeesa
	case OfficeMayor:
		return &h.Mayor
	}
	return nil
}

type StatsSummary struct {
	TotalVoters         int `json:"total_voters"`
	MaleCount           int `json:"male_count"`
	FemaleCount         int `json:"female_count"`
	VotersWithAnyPledge int `json:"voters_with_any_pledge"`
	TotalPledgeEntries  int `json:"total_pledge_entries"`
}

type DhaairaaPledgeRow struct {
	Dhaairaa     string       `json:"dhaairaa"`
	TotalVoters  int          `json:"total_voters"`
	TotalPledges int          `json:"total_pledges"`
	PledgeCounts PledgeCounts `json:"pledge_counts"`
}

type DhaairaaRoleRow struct {
	Dhaairaa    string        `json:"dhaairaa"`
	TotalVoters int           `json:"total_voters"`
	Roles       OfficeBuckets `json:"roles"`
}

type StatusCount struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// CardVisibility decides which statistics cards a caller may see.
type CardVisibility struct {
	ShowAllTotals          bool `json:"showAllTotals"`
	ShowAllRoleCards       bool `json:"showAllRoleCards"`
	ShowOverallRaeesaTotal bool `json:"showOverallRaeesaTotal"`
	ShowOverallMayorTotal  bool `json:"showOverallMayorTotal"`
	ShowCouncilByDhaairaa  bool `json:"showCouncilByDhaairaa"`
	ShowWdcByDhaairaa      bool `json:"showWdcByDhaairaa"`
	ShowRaeesaByDhaairaa   bool `json:"showRaeesaByDhaairaa"`
	ShowMayorByDhaairaa    bool `json:"showMayorByDhaairaa"`
}

// StatsReport is the full statistics view for one caller.
type StatsReport struct {
	Summary              StatsSummary
	PledgeByDhaairaa     []DhaairaaPledgeRow
	OverallPledgeCounts  PledgeCounts
	RoleCountsByDhaairaa []DhaairaaRoleRow
	OverallRoleTotals    HeadlineBuckets
	CardVisibility       CardVisibility
	StatusCounts         []StatusCount
}

func marshalOrdered(keys []string, values []int) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		v, err := json.Marshal(values[i])
		if err != nil {
			return nil, err
		}
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// NormalizeDhaairaa trims the district code; blank becomes UnspecifiedDhaairaa.
func NormalizeDhaairaa(value *string) string {
	if value == nil {
		return UnspecifiedDhaairaa
	}
	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		return UnspecifiedDhaairaa
	}
	return trimmed
}
