package bbref

import (
	"time"

	"github.com/google/uuid"
)

// TransactionType categorizes a transaction statement.
type TransactionType string

const (
	TypeTrade        TransactionType = "Trade"
	TypeSigning      TransactionType = "Signing"
	TypeDraft        TransactionType = "Draft"
	TypeReassignment TransactionType = "Reassignment"
	TypeConversion   TransactionType = "Conversion"
	TypeSuspension   TransactionType = "Suspension"
	TypeWaiver       TransactionType = "Waiver"
	TypeRelease      TransactionType = "Release"
	TypeResignation  TransactionType = "Resignation"
	TypeRetirement   TransactionType = "Retirement"
)

// AssetType categorizes one asset moved by a transaction.
type AssetType string

const (
	AssetPlayer    AssetType = "Player"
	AssetDraftPick AssetType = "DraftPick"
	AssetCoach     AssetType = "Coach"
	AssetExecutive AssetType = "Executive"
	AssetCash      AssetType = "Cash"
	AssetOther     AssetType = "Other"
)

// FreeAgent is the origin/destination used when an asset has no team on
// one side of the move, e.g. a free agent signing.
const FreeAgent = "FA"

type TransactionHeader struct {
	ID   uuid.UUID
	Date time.Time
	Type TransactionType
	// the statement's verbatim rendered text, also used to deduplicate
	// against previously stored transactions
	Description string
	// set by a manual review pass after storage, never during parsing
	Verified bool
}

type TransactionAsset struct {
	HeaderID uuid.UUID
	// three letter team code, or FreeAgent
	Origin      string
	Destination string
	// a link target, a draft pick description, or "Cash Considerations"
	Asset     string
	AssetType AssetType
}

// Transaction pairs a header with its assets in document order. A
// transaction with zero assets is still meaningful (retirements,
// suspensions).
type Transaction struct {
	Header TransactionHeader
	Assets []TransactionAsset
}
