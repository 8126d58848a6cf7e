package forms

import (
	"net/url"
	"reflect"
	"testing"

	"github.com/doubtsclear/console/internal/services/admin/integration/consultapi"
)

func TestWalletCreateValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		money  string
		offer  string
		errors Errors
	}{
		{name: "valid", money: "500", offer: "10", errors: Errors{}},
		{name: "negative money", money: "-5", offer: "10", errors: Errors{"money": "validation.amount_positive"}},
		{name: "missing money", money: "", offer: "10", errors: Errors{"money": "validation.amount_required"}},
		{name: "not a number", money: "abc", offer: "10", errors: Errors{"money": "validation.amount_positive"}},
		{name: "infinity", money: "Inf", offer: "10", errors: Errors{"money": "validation.amount_positive"}},
		{name: "exponent", money: "1e3", offer: "10", errors: Errors{"money": "validation.amount_positive"}},
		{name: "above one crore", money: "10000001", offer: "10", errors: Errors{"money": "validation.amount_too_large_crore"}},
		{name: "exactly one crore", money: "10000000", offer: "100", errors: Errors{}},
		{name: "offer missing", money: "500", offer: "", errors: Errors{"offer": "validation.offer_required"}},
		{name: "offer zero", money: "500", offer: "0", errors: Errors{"offer": "validation.offer_positive"}},
		{name: "offer above 100", money: "500", offer: "101", errors: Errors{"offer": "validation.offer_max"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			form := ParseWalletCreateForm(url.Values{"money": {tc.money}, "offer": {tc.offer}})
			if got := form.Validate(); !reflect.DeepEqual(got, tc.errors) {
				t.Fatalf("Validate = %v, want %v", got, tc.errors)
			}
		})
	}
}

func TestWalletEditValidationUsesLowerCeiling(t *testing.T) {
	t.Parallel()

	form := ParseWalletEditForm(url.Values{"money": {"1000001"}, "offer": {"5"}})
	if got := form.Validate().Get("money"); got != "validation.amount_too_large" {
		t.Fatalf("money error = %q", got)
	}
	form = ParseWalletEditForm(url.Values{"money": {"-1"}, "offer": {"5"}})
	if got := form.Validate().Get("money"); got != "validation.amount_positive_number" {
		t.Fatalf("money error = %q", got)
	}
}

func TestWalletEditSeededFromWallet(t *testing.T) {
	t.Parallel()

	form := WalletEditFormFrom(consultapi.Wallet{ID: "w1", Money: 1500, Offer: 12.5})
	if form.Money != "1500" || form.Offer != "12.5" {
		t.Fatalf("form = %+v", form)
	}
	if !form.Validate().OK() {
		t.Fatalf("seeded form should validate: %v", form.Validate())
	}
	if input := form.Input(); input.Money != 1500 || input.Offer != 12.5 {
		t.Fatalf("input = %+v", input)
	}
}

func payoutValues(method string) url.Values {
	return url.Values{
		"expertId":      {"e1"},
		"withdrawalId":  {"wd1"},
		"amount":        {"250"},
		"method":        {method},
		"transactionId": {"TX-1"},
	}
}

func TestPayoutMethodSwitchesRequiredFields(t *testing.T) {
	t.Parallel()

	upi := ParsePayoutForm(payoutValues(consultapi.MethodUPI)).Validate()
	if !reflect.DeepEqual(upi, Errors{"upiId": "validation.upi_required"}) {
		t.Fatalf("UPI errors = %v", upi)
	}

	bank := ParsePayoutForm(payoutValues(consultapi.MethodBankTransfer)).Validate()
	want := Errors{
		"bankDetails.accountNumber": "validation.account_number_required",
		"bankDetails.ifscCode":      "validation.ifsc_required",
		"bankDetails.holderName":    "validation.holder_name_required",
	}
	if !reflect.DeepEqual(bank, want) {
		t.Fatalf("bank errors = %v", bank)
	}

	unknown := ParsePayoutForm(payoutValues("Cash")).Validate()
	if unknown.Get("method") != "validation.method_required" {
		t.Fatalf("unknown method errors = %v", unknown)
	}
}

func TestPayoutInputCarriesOnlySelectedMethod(t *testing.T) {
	t.Parallel()

	values := payoutValues(consultapi.MethodUPI)
	values.Set("upiId", "asha@upi")
	values.Set("bankDetails.accountNumber", "123")
	input := ParsePayoutForm(values).Input()
	if input.UPIID != "asha@upi" || input.BankDetails != nil || input.Amount != 250 {
		t.Fatalf("UPI input = %+v", input)
	}

	values = payoutValues(consultapi.MethodBankTransfer)
	values.Set("upiId", "asha@upi")
	values.Set("bankDetails.accountNumber", "123")
	values.Set("bankDetails.ifscCode", "SBIN0001")
	values.Set("bankDetails.holderName", "Asha")
	form := ParsePayoutForm(values)
	if !form.Validate().OK() {
		t.Fatalf("bank form errors = %v", form.Validate())
	}
	input = form.Input()
	if input.UPIID != "" || input.BankDetails == nil || input.BankDetails.IFSCCode != "SBIN0001" {
		t.Fatalf("bank input = %+v", input)
	}
}

func TestPayoutAmountAcceptsDecimalNotationOnly(t *testing.T) {
	t.Parallel()

	tests := []struct {
		amount string
		ok     bool
	}{
		{amount: "250", ok: true},
		{amount: "0.5", ok: true},
		{amount: " 12.75 ", ok: true},
		{amount: ".5", ok: true},
		{amount: "Inf", ok: false},
		{amount: "+Infinity", ok: false},
		{amount: "-Inf", ok: false},
		{amount: "NaN", ok: false},
		{amount: "0x1p3", ok: false},
		{amount: "1e3", ok: false},
		{amount: "1_000", ok: false},
		{amount: "-5", ok: false},
		{amount: "0", ok: false},
		{amount: "1e400", ok: false},
	}
	for _, tc := range tests {
		t.Run(tc.amount, func(t *testing.T) {
			t.Parallel()
			values := payoutValues(consultapi.MethodUPI)
			values.Set("upiId", "asha@upi")
			values.Set("amount", tc.amount)
			errs := ParsePayoutForm(values).Validate()
			if got := !errs.Has("amount"); got != tc.ok {
				t.Fatalf("amount %q accepted = %v, want %v (errors %v)", tc.amount, got, tc.ok, errs)
			}
			if !tc.ok && errs.Get("amount") != "validation.amount_positive" {
				t.Fatalf("amount error = %q", errs.Get("amount"))
			}
		})
	}
}

func TestPayoutRequiredCoreFields(t *testing.T) {
	t.Parallel()

	got := ParsePayoutForm(url.Values{"method": {consultapi.MethodUPI}, "upiId": {"x@upi"}, "amount": {"0"}}).Validate()
	want := Errors{
		"expertId":      "validation.expert_id_required",
		"withdrawalId":  "validation.withdrawal_id_required",
		"amount":        "validation.amount_positive",
		"transactionId": "validation.transaction_id_required",
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("errors = %v, want %v", got, want)
	}
}

func TestUserFormValidation(t *testing.T) {
	t.Parallel()

	got := ParseUserForm(url.Values{"name": {" "}, "email": {"not-an-email"}, "role": {"expert"}}).Validate()
	want := Errors{
		"name":  "validation.name_required",
		"email": "validation.email_invalid",
		"role":  "validation.role_invalid",
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("errors = %v, want %v", got, want)
	}

	seeded := UserFormFrom(consultapi.User{Name: "Asha", Email: "asha@example.com"})
	if seeded.Role != consultapi.RoleUser || !seeded.Validate().OK() {
		t.Fatalf("seeded = %+v errors %v", seeded, seeded.Validate())
	}
}

func TestExpertCreateFixesRole(t *testing.T) {
	t.Parallel()

	form := ParseExpertCreateForm(url.Values{"name": {"E"}, "email": {"e@example.com"}, "password": {"pw"}, "role": {"admin"}})
	if !form.Validate().OK() {
		t.Fatalf("errors = %v", form.Validate())
	}
	if form.Input().Role != consultapi.RoleExpert {
		t.Fatalf("role = %q", form.Input().Role)
	}
	if errs := ParseExpertCreateForm(url.Values{}).Validate(); len(errs) != 3 {
		t.Fatalf("empty form errors = %v", errs)
	}
}

func TestApproveFormRequiresTransactionID(t *testing.T) {
	t.Parallel()

	if got := ParseApproveForm(url.Values{"transactionId": {"  "}}).Validate().Get("transactionId"); got != "validation.transaction_id_prompt" {
		t.Fatalf("error = %q", got)
	}
}

func TestLoginForm(t *testing.T) {
	t.Parallel()

	got := ParseLoginForm(url.Values{}).Validate()
	if got.Get("email") != "validation.email_required" || got.Get("password") != "validation.password_required" {
		t.Fatalf("errors = %v", got)
	}
}

func TestConfirmed(t *testing.T) {
	t.Parallel()

	if Confirmed(url.Values{}) || !Confirmed(url.Values{"confirm": {"yes"}}) {
		t.Fatal("Confirmed mismatch")
	}
}
