// Package normalize converts raw lead field values (job titles, email
// addresses, organization sizes) into canonical forms. Every normalizer is
// total: malformed input degrades to a documented default instead of failing.
package normalize

// Tables holds the fixed lookup data used by the normalizers. Build it once
// with DefaultTables and share the pointer; nothing mutates it afterwards.
type Tables struct {
	// TitleAbbreviations maps a lower-case title token to its expansion.
	TitleAbbreviations map[string]string
	// PersonalDomains is the set of free-mail domains that do not count as
	// corporate email.
	PersonalDomains map[string]struct{}
	// SizeCategories maps textual organization sizes to a headcount.
	SizeCategories map[string]int
}

// DefaultTables returns the standard lookup tables.
func DefaultTables() *Tables {
	return &Tables{
		TitleAbbreviations: map[string]string{
			"mgr":   "manager",
			"sr":    "senior",
			"sr.":   "senior",
			"jr":    "junior",
			"jr.":   "junior",
			"vp":    "vice president",
			"v.p.":  "vice president",
			"ceo":   "chief executive officer",
			"cto":   "chief technology officer",
			"cfo":   "chief financial officer",
			"cmo":   "chief marketing officer",
			"coo":   "chief operating officer",
			"evp":   "executive vice president",
			"svp":   "senior vice president",
			"avp":   "assistant vice president",
			"dir":   "director",
			"dir.":  "director",
			"asst":  "assistant",
			"assoc": "associate",
			"coord": "coordinator",
			"rep":   "representative",
			"dev":   "developer",
			"eng":   "engineer",
			"admin": "administrator",
		},
		PersonalDomains: setOf(
			"gmail.com", "yahoo.com", "hotmail.com", "outlook.com", "aol.com",
			"icloud.com", "live.com", "msn.com", "mail.com", "protonmail.com",
			"yandex.com", "qq.com", "sina.com", "zoho.com",
		),
		SizeCategories: map[string]int{
			"startup":       5,
			"small":         10,
			"medium":        50,
			"large":         200,
			"enterprise":    1000,
			"freelance":     1,
			"freelancer":    1,
			"individual":    1,
			"solo":          1,
			"self-employed": 1,
		},
	}
}

func setOf(items ...string) map[string]struct{} {
	m := make(map[string]struct{}, len(items))
	for _, it := range items {
		m[it] = struct{}{}
	}
	return m
}

// IsPersonalDomain reports whether domain is a known free-mail provider.
func (t *Tables) IsPersonalDomain(domain string) bool {
	_, ok := t.PersonalDomains[domain]
	return ok
}

// IsCorporateDomain reports whether domain is non-empty and not a free-mail
// provider.
func (t *Tables) IsCorporateDomain(domain string) bool {
	return domain != "" && !t.IsPersonalDomain(domain)
}
