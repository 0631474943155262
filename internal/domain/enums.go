package domain

// Stage is one of the four fixed pipeline positions a member occupies.
type Stage string

const (
	StageUnclaimed       Stage = "unclaimed"
	StageFirstContact    Stage = "first-contact"
	StagePreparingOffer  Stage = "preparing-work-offer"
	StageSendToTherapist Stage = "send-to-therapist"
)

// StageOrder is the canonical left-to-right board column order.
var StageOrder = []Stage{
	StageUnclaimed,
	StageFirstContact,
	StagePreparingOffer,
	StageSendToTherapist,
}

// ValidStages is the canonical set of accepted stage identifiers.
var ValidStages = map[Stage]bool{
	StageUnclaimed:       true,
	StageFirstContact:    true,
	StagePreparingOffer:  true,
	StageSendToTherapist: true,
}

// Label returns the display name for a stage.
func (s Stage) Label() string {
	switch s {
	case StageUnclaimed:
		return "Unclaimed"
	case StageFirstContact:
		return "First Contact"
	case StagePreparingOffer:
		return "Preparing Work Offer"
	case StageSendToTherapist:
		return "Send to Therapist"
	default:
		return string(s)
	}
}

// Salutation is the member's title, a closed enumeration.
type Salutation string

const (
	SalutationMr  Salutation = "Mr"
	SalutationMs  Salutation = "Ms"
	SalutationMrs Salutation = "Mrs"
	SalutationDr  Salutation = "Dr"
)

// ValidSalutations is the canonical set of accepted title strings.
var ValidSalutations = map[Salutation]bool{
	SalutationMr: true, SalutationMs: true,
	SalutationMrs: true, SalutationDr: true,
}

// SalutationOrder lists salutations in the order forms present them.
var SalutationOrder = []Salutation{
	SalutationMr, SalutationMs, SalutationMrs, SalutationDr,
}
