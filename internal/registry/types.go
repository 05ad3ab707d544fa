package registry

import "strings"

// DateOfBirth is the registry's month/year birth record. Day is never
// published. Zero values mean the registry omitted the field.
type DateOfBirth struct {
	Month int `json:"month"`
	Year  int `json:"year"`
}

// CompanyProfile is the subset of GET /company/{number} the pipeline uses.
type CompanyProfile struct {
	CompanyName   string `json:"company_name"`
	CompanyNumber string `json:"company_number"`
	CompanyStatus string `json:"company_status"`
}

// OfficerItem is one entry of GET /company/{number}/officers.
type OfficerItem struct {
	Name        string      `json:"name"`
	DateOfBirth DateOfBirth `json:"date_of_birth"`
	ResignedOn  string      `json:"resigned_on"`
	Links       struct {
		Officer struct {
			Appointments string `json:"appointments"`
		} `json:"officer"`
	} `json:"links"`
}

// OfficerID extracts the officer identifier from the appointments link.
func (o *OfficerItem) OfficerID() string {
	return officerIDFromLink(o.Links.Officer.Appointments)
}

// PSCItem is one entry of GET /company/{number}/persons-with-significant-control.
type PSCItem struct {
	Name        string      `json:"name"`
	Kind        string      `json:"kind"`
	CeasedOn    string      `json:"ceased_on"`
	DateOfBirth DateOfBirth `json:"date_of_birth"`
}

// Individual reports whether the PSC record denotes a natural person
// rather than a corporate or legal entity.
func (p *PSCItem) Individual() bool {
	return strings.Contains(p.Kind, "individual")
}

// OfficerSearchHit is one entry of GET /search/officers.
type OfficerSearchHit struct {
	Title       string      `json:"title"`
	DateOfBirth DateOfBirth `json:"date_of_birth"`
	Links       struct {
		Self string `json:"self"`
	} `json:"links"`
}

// OfficerID extracts the officer identifier from the hit's self link.
func (h *OfficerSearchHit) OfficerID() string {
	return officerIDFromLink(h.Links.Self)
}

// AppointmentItem is one entry of GET /officers/{id}/appointments.
type AppointmentItem struct {
	AppointedTo struct {
		CompanyNumber string `json:"company_number"`
		CompanyName   string `json:"company_name"`
		CompanyStatus string `json:"company_status"`
	} `json:"appointed_to"`
	ResignedOn string `json:"resigned_on"`
}

// insolvencyResponse carries only the case count from
// GET /company/{number}/insolvency.
type insolvencyResponse struct {
	Cases []struct {
		Type string `json:"type"`
	} `json:"cases"`
}

// officerIDFromLink extracts the path segment immediately following
// "/officers/" in a registry link URL. Empty when the link has no
// officer segment.
func officerIDFromLink(link string) string {
	const marker = "/officers/"
	idx := strings.Index(link, marker)
	if idx < 0 {
		return ""
	}
	rest := link[idx+len(marker):]
	if slash := strings.IndexByte(rest, '/'); slash >= 0 {
		rest = rest[:slash]
	}
	return rest
}
