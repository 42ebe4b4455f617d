package models

type UserType string
type BidderType string
type ProjectStatus string

const (
	UserTypeTender UserType = "tender"
	UserTypeBidder UserType = "bidder"

	BidderTypeContractor BidderType = "CONTRACTOR"
	BidderTypeDeveloper  BidderType = "DEVELOPER"
	BidderTypeSupplier   BidderType = "SUPPLIER"
	BidderTypeConsultant BidderType = "CONSULTANT"
	BidderTypeBuyer      BidderType = "BUYER"

	ProjectStatusOpen      ProjectStatus = "open"
	ProjectStatusActive    ProjectStatus = "active"
	ProjectStatusCompleted ProjectStatus = "completed"
	ProjectStatusCancelled ProjectStatus = "cancelled"
)

// AllBidderTypes is the full specialty vocabulary. The interest matcher falls
// back to this set when a tender category matches no keyword.
var AllBidderTypes = []BidderType{
	BidderTypeContractor,
	BidderTypeDeveloper,
	BidderTypeSupplier,
	BidderTypeConsultant,
	BidderTypeBuyer,
}

func ValidBidderType(bt BidderType) bool {
	for _, t := range AllBidderTypes {
		if t == bt {
			return true
		}
	}
	return false
}
