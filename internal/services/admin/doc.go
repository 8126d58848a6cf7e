// Package admin implements the DoubtsClear operator console.
//
// It renders server-side pages for the consultation platform's users,
// experts, wallets, withdrawals, payouts, reviews and calls, translating
// browser form posts into calls against the platform's REST API on behalf of
// the signed-in admin.
package admin
