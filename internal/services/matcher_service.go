package services

import (
	"strings"

	"tenderlink_backend/internal/models"
	"tenderlink_backend/internal/repositories"
)

// MatcherService maps a tender's category and specification text to the set
// of bidder accounts likely interested. Keyword substring matching over a
// small fixed vocabulary: no ranking, no weighting, no negative matches. A
// false positive costs one stray notification; a false negative costs a
// bidder a business opportunity.
type MatcherService interface {
	// GetInterestedBidders returns ids of verified bidders whose specialty
	// matches the tender's category or sector text.
	GetInterestedBidders(tenderCategory, tenderSector string) ([]string, error)

	// MatchBidderTypes returns the specialty tags matched by the text, or the
	// full tag set when nothing matches.
	MatchBidderTypes(tenderCategory, tenderSector string) []models.BidderType

	// MatchesBidderType reports whether the text maps to the given specialty.
	MatchesBidderType(tenderCategory, tenderSector string, bidderType models.BidderType) bool
}

type categoryRule struct {
	keyword     string
	bidderTypes []models.BidderType
}

// categoryRules is the static keyword table, built once at startup. Keywords
// are matched case-insensitively as substrings of the category and sector.
var categoryRules = []categoryRule{
	{"construction", []models.BidderType{models.BidderTypeContractor}},
	{"infrastructure", []models.BidderType{models.BidderTypeContractor}},
	{"renovation", []models.BidderType{models.BidderTypeContractor}},
	{"engineering", []models.BidderType{models.BidderTypeContractor, models.BidderTypeConsultant}},
	{"software", []models.BidderType{models.BidderTypeDeveloper}},
	{"development", []models.BidderType{models.BidderTypeDeveloper}},
	{"technology", []models.BidderType{models.BidderTypeDeveloper}},
	{"equipment", []models.BidderType{models.BidderTypeSupplier}},
	{"supplies", []models.BidderType{models.BidderTypeSupplier}},
	{"materials", []models.BidderType{models.BidderTypeSupplier}},
	{"manufacture", []models.BidderType{models.BidderTypeSupplier}},
	{"professional services", []models.BidderType{models.BidderTypeConsultant}},
	{"consulting", []models.BidderType{models.BidderTypeConsultant}},
	{"advisory", []models.BidderType{models.BidderTypeConsultant}},
	{"procurement", []models.BidderType{models.BidderTypeBuyer}},
	{"purchasing", []models.BidderType{models.BidderTypeBuyer}},
}

type matcherService struct {
	userRepo repositories.UserRepository
}

func NewMatcherService(userRepo repositories.UserRepository) MatcherService {
	return &matcherService{userRepo: userRepo}
}

func (s *matcherService) GetInterestedBidders(tenderCategory, tenderSector string) ([]string, error) {
	bidderTypes := s.MatchBidderTypes(tenderCategory, tenderSector)

	bidders, err := s.userRepo.FindVerifiedBidders(bidderTypes)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(bidders))
	for _, bidder := range bidders {
		ids = append(ids, bidder.ID)
	}
	return ids, nil
}

func (s *matcherService) MatchBidderTypes(tenderCategory, tenderSector string) []models.BidderType {
	category := strings.ToLower(tenderCategory)
	sector := strings.ToLower(tenderSector)

	seen := make(map[models.BidderType]bool)
	var matched []models.BidderType

	for _, rule := range categoryRules {
		if !strings.Contains(category, rule.keyword) && (sector == "" || !strings.Contains(sector, rule.keyword)) {
			continue
		}
		for _, bt := range rule.bidderTypes {
			if !seen[bt] {
				seen[bt] = true
				matched = append(matched, bt)
			}
		}
	}

	if len(matched) == 0 {
		// Deliberate default: an unknown category notifies every bidder
		// rather than nobody.
		return models.AllBidderTypes
	}

	return matched
}

func (s *matcherService) MatchesBidderType(tenderCategory, tenderSector string, bidderType models.BidderType) bool {
	for _, bt := range s.MatchBidderTypes(tenderCategory, tenderSector) {
		if bt == bidderType {
			return true
		}
	}
	return false
}
