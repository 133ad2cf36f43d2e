package engine

import "regexp"

// Static classification data for the signal layers. Built once at process
// start into read-only lookup structures; nothing here is mutated after init.

// Tier 1: government portals and major wire services.
var tier1DomainList = []string{
	// Government
	"pib.gov.in", "pmindia.gov.in", "egazette.nic.in", "mha.gov.in",
	"mohfw.gov.in", "education.gov.in", "rbi.org.in", "sebi.gov.in",
	"eci.gov.in", "uidai.gov.in", "finmin.nic.in", "rural.nic.in",
	// National dailies
	"thehindu.com", "indianexpress.com", "hindustantimes.com",
	"timesofindia.indiatimes.com", "economictimes.indiatimes.com",
	"business-standard.com", "livemint.com",
	// International wire services
	"reuters.com", "apnews.com", "afp.com", "bloomberg.com",
	"bbc.com", "pbs.org",
}

// Tier 2: established broadcasters and international outlets.
var tier2DomainList = []string{
	"ndtv.com", "indiatoday.in", "news18.com", "republicworld.com",
	"timesnownews.com", "ddnews.gov.in", "newsonair.gov.in",
	"cnn.com", "nytimes.com", "washingtonpost.com", "aljazeera.com",
	"dw.com", "abc.net.au",
}

var (
	tier1Domains = make(map[string]struct{}, len(tier1DomainList))
	tier2Domains = make(map[string]struct{}, len(tier2DomainList))
)

func init() {
	for _, d := range tier1DomainList {
		tier1Domains[d] = struct{}{}
	}
	for _, d := range tier2DomainList {
		tier2Domains[d] = struct{}{}
	}
}

// Government hostname suffixes treated as tier 1 even when not allowlisted.
var govDomainSuffixes = []string{".gov.in", ".nic.in", ".gov"}

var clickbaitPatterns = compileAll(
	`\bbreaking\b`, `\bshocking\b`, `\bviral\b`, `\bexclusive\b`,
	`\bsecret\b`, `\bhidden\b`, `they don.?t want you`,
	`you won.?t believe`, `\bfree money\b`, `\binstant\b`,
	`\bguaranteed\b`, `100%\s*(free|cash|money)`,
)

var urgencyPatterns = compileAll(
	`act now`, `limited time`, `expires today`, `last chance`, `\bhurry\b`,
	`claim (your|now|immediately)`, `don.?t miss`, `share immediately`,
	`forward (to all|immediately)`, `before it.?s deleted`,
)

// Scheme impersonation fires only when a scheme reference and an
// implausible-benefit phrase occur together.
var schemePatterns = compileAll(
	`pm\s*(modi|cares|kisan|awas|ujjwala|jan dhan)`,
	`pradhan mantri`, `\bsarkar\b`, `government scheme`, `\byojana\b`,
	`(aadhaar?|ration card|voter id)\s+(linked|required|mandatory)`,
)

var benefitPatterns = compileAll(
	`is giving`, `is offering`, `\boffering\b`, `will give`, `giving away`,
	`free (money|cash|gas|ration)`, `everyone gets`, `claim now`,
)

var universalPatterns = compileAll(
	`\b(every|each|all)\s+(citizen|citizens|indian|indians|person|people)\b`,
	`\beveryone gets\b`,
)

var breakingPatterns = compileAll(
	`\bbreaking\b`, `\bjust in\b`, `\bunfolding\b`,
)

// Words in retrieved context that mark the matched record as a known fraud.
var fraudIndicatorPattern = regexp.MustCompile(`\b(fraud|fake|scam|false|hoax)\b`)

var (
	rupeeAmountPattern = regexp.MustCompile(`(?:₹|\brs\.?|\binr\b|\brupees?\b)\s*([\d,]+)\s*(lakhs?|crores?)?`)
	percentPattern     = regexp.MustCompile(`(\d+)\s*%`)
	yearPattern        = regexp.MustCompile(`\b(19\d{2}|20\d{2})\b`)
)

func compileAll(patterns ...string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		out = append(out, regexp.MustCompile(p))
	}
	return out
}

func anyMatch(patterns []*regexp.Regexp, text string) bool {
	for _, p := range patterns {
		if p.MatchString(text) {
			return true
		}
	}
	return false
}
