package routepath

import (
	"net/url"
	"strings"
)

const (
	Root = "/"
)

const (
	StaticPrefix = "/static/"
)

const (
	Login         = "/login"
	Logout        = "/logout"
	SidebarToggle = "/sidebar/toggle"
)

const (
	DashboardContent = "/dashboard/content"
)

const (
	Users       = "/users"
	UsersTable  = "/users/table"
	UsersPrefix = "/users/"
)

const (
	Experts                = "/experts"
	ExpertsTable           = "/experts/table"
	ExpertsCreate          = "/experts/create"
	ExpertsVerified        = "/experts/verified"
	ExpertsVerifiedTable   = "/experts/verified/table"
	ExpertsUnverified      = "/experts/unverified"
	ExpertsUnverifiedTable = "/experts/unverified/table"
	ExpertsPrefix          = "/experts/"
)

const (
	Expertise       = "/expertise"
	ExpertiseTable  = "/expertise/table"
	ExpertiseCreate = "/expertise/create"
	ExpertisePrefix = "/expertise/"
)

const (
	Qualifications       = "/qualifications"
	QualificationsTable  = "/qualifications/table"
	QualificationsPrefix = "/qualifications/"
)

const (
	Designations = "/designations"
)

const (
	Wallets       = "/wallets"
	WalletsTable  = "/wallets/table"
	WalletsCreate = "/wallets/create"
	WalletsPrefix = "/wallets/"
)

const (
	Payouts       = "/payouts"
	PayoutsTable  = "/payouts/table"
	PayoutsCreate = "/payouts/create"
	PayoutsExport = "/payouts/export.csv"
	PayoutsPrefix = "/payouts/"
)

const (
	Withdrawals       = "/withdrawals"
	WithdrawalsTable  = "/withdrawals/table"
	WithdrawalsPrefix = "/withdrawals/"
)

const (
	Reviews       = "/reviews"
	ReviewsTable  = "/reviews/table"
	ReviewsPrefix = "/reviews/"
)

const (
	Calls      = "/calls"
	CallsTable = "/calls/table"
)

// DeleteSuffix is the trailing segment of every delete action route.
const DeleteSuffix = "delete"

func User(userID string) string {
	return Users + "/" + escapeSegment(userID)
}

func UserDelete(userID string) string {
	return User(userID) + "/" + DeleteSuffix
}

func Expert(expertID string) string {
	return Experts + "/" + escapeSegment(expertID)
}

func ExpertDelete(expertID string) string {
	return Expert(expertID) + "/" + DeleteSuffix
}

func ExpertBlock(expertID string) string {
	return Expert(expertID) + "/block"
}

func ExpertReview(expertID string) string {
	return Expert(expertID) + "/review"
}

func ExpertVerification(expertID string) string {
	return Expert(expertID) + "/verification"
}

func ExpertiseItem(expertiseID string) string {
	return Expertise + "/" + escapeSegment(expertiseID)
}

func ExpertiseDelete(expertiseID string) string {
	return ExpertiseItem(expertiseID) + "/" + DeleteSuffix
}

func QualificationDelete(qualificationID string) string {
	return Qualifications + "/" + escapeSegment(qualificationID) + "/" + DeleteSuffix
}

func Wallet(walletID string) string {
	return Wallets + "/" + escapeSegment(walletID)
}

func WalletDelete(walletID string) string {
	return Wallet(walletID) + "/" + DeleteSuffix
}

func Payout(payoutID string) string {
	return Payouts + "/" + escapeSegment(payoutID)
}

func PayoutDelete(payoutID string) string {
	return Payout(payoutID) + "/" + DeleteSuffix
}

func WithdrawalApprove(withdrawalID string) string {
	return Withdrawals + "/" + escapeSegment(withdrawalID) + "/approve"
}

func ReviewDelete(reviewID string) string {
	return Reviews + "/" + escapeSegment(reviewID) + "/" + DeleteSuffix
}

// TableFor returns the HTMX table fragment route for a list page.
func TableFor(listPath string) string {
	listPath = strings.TrimRight(strings.TrimSpace(listPath), "/")
	if listPath == "" {
		return ""
	}
	return listPath + "/table"
}

func escapeSegment(raw string) string {
	return url.PathEscape(strings.TrimSpace(raw))
}
