package entity

// VoterFilter is a domain-level filter for the voter listing.
// Used by repository layer to avoid coupling with delivery DTOs.
type VoterFilter struct {
	Search     string // id card, name, address or mobile (case-insensitive substring)
	Dhaairaa   string // exact district code
	MajilisCon string // exact constituency
}

// UserFilter filters the user directory by name or email substring.
type UserFilter struct {
	Search string
}

// Page is a 1-based page request.
type Page struct {
	Number int
	Size   int
}

func (p Page) Offset() int {
	if p.Number < 1 {
		return 0
	}
	return (p.Number - 1) * p.Size
}
