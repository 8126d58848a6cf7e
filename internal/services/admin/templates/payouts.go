package templates

import (
	"github.com/doubtsclear/console/internal/services/admin/forms"
	"github.com/doubtsclear/console/internal/services/admin/integration/consultapi"
)

// PayoutsView provides data for the payouts page.
type PayoutsView struct {
	List     ListView[consultapi.Payout]
	Modal    ModalState
	Selected *consultapi.Payout
	Form     forms.PayoutForm
	Errors   forms.Errors
}

// payoutDetails lists the read-only fields of payout, with the bank or UPI
// details matching its method.
func payoutDetails(page PageContext, payout consultapi.Payout) []string {
	pairs := []string{
		page.T("field.id"), payout.ID,
		page.T("field.expert"), RefName(payout.Expert),
		page.T("field.expert_id"), OrNA(payout.Expert.ID),
		page.T("field.withdrawal_id"), OrNA(payout.Withdrawal.ID),
		page.T("field.amount"), FormatINR(payout.Amount.Float()),
		page.T("field.method"), OrNA(payout.Method),
		page.T("field.transaction_id"), OrNA(payout.TransactionID),
		page.T("field.paid_at"), FormatDateTime(payout.PaidAt),
	}
	if payout.Method == consultapi.MethodBankTransfer && payout.BankDetails != nil {
		return append(pairs,
			page.T("field.account_number"), OrNA(payout.BankDetails.AccountNumber),
			page.T("field.ifsc_code"), OrNA(payout.BankDetails.IFSCCode),
			page.T("field.holder_name"), OrNA(payout.BankDetails.HolderName),
		)
	}
	return append(pairs, page.T("field.upi_id"), OrNA(payout.UPIID))
}
