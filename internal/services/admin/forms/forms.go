package forms

import (
	"net/url"
	"strings"

	"github.com/doubtsclear/console/internal/services/admin/integration/consultapi"
	"github.com/go-playground/validator/v10"
)

func field(values url.Values, name string) string {
	return strings.TrimSpace(values.Get(name))
}

// LoginForm is the admin sign-in form.
type LoginForm struct {
	Email    string `form:"email" validate:"required"`
	Password string `form:"password" validate:"required"`
}

func ParseLoginForm(values url.Values) LoginForm {
	return LoginForm{Email: field(values, "email"), Password: values.Get("password")}
}

var loginMessages = map[string]string{
	"email.required":    "validation.email_required",
	"password.required": "validation.password_required",
}

func (f LoginForm) Validate() Errors {
	return check(f, loginMessages)
}

// UserForm edits a platform user.
type UserForm struct {
	Name  string `form:"name" validate:"required"`
	Email string `form:"email" validate:"required,email"`
	Phone string `form:"phone"`
	Role  string `form:"role" validate:"required,oneof=user admin"`
}

func ParseUserForm(values url.Values) UserForm {
	return UserForm{
		Name:  field(values, "name"),
		Email: field(values, "email"),
		Phone: field(values, "phone"),
		Role:  field(values, "role"),
	}
}

// UserFormFrom seeds an edit draft from the selected user.
func UserFormFrom(user consultapi.User) UserForm {
	role := user.Role
	if role == "" {
		role = consultapi.RoleUser
	}
	return UserForm{Name: user.Name, Email: user.Email, Phone: user.Phone, Role: role}
}

var userMessages = map[string]string{
	"name.required":  "validation.name_required",
	"email.required": "validation.email_required",
	"email.email":    "validation.email_invalid",
	"role.required":  "validation.role_invalid",
	"role.oneof":     "validation.role_invalid",
}

func (f UserForm) Validate() Errors {
	return check(f, userMessages)
}

func (f UserForm) Input() consultapi.UserInput {
	return consultapi.UserInput{Name: f.Name, Email: f.Email, Phone: f.Phone, Role: f.Role}
}

// ExpertCreateForm creates an expert account. The role is not editable.
type ExpertCreateForm struct {
	Name     string `form:"name" validate:"required"`
	Email    string `form:"email" validate:"required,email"`
	Phone    string `form:"phone"`
	Password string `form:"password" validate:"required"`
}

func ParseExpertCreateForm(values url.Values) ExpertCreateForm {
	return ExpertCreateForm{
		Name:     field(values, "name"),
		Email:    field(values, "email"),
		Phone:    field(values, "phone"),
		Password: values.Get("password"),
	}
}

var expertCreateMessages = map[string]string{
	"name.required":     "validation.name_required",
	"email.required":    "validation.email_required",
	"email.email":       "validation.email_invalid",
	"password.required": "validation.password_required",
}

func (f ExpertCreateForm) Validate() Errors {
	return check(f, expertCreateMessages)
}

func (f ExpertCreateForm) Input() consultapi.ExpertInput {
	return consultapi.ExpertInput{
		Name:     f.Name,
		Email:    f.Email,
		Phone:    f.Phone,
		Password: f.Password,
		Role:     consultapi.RoleExpert,
	}
}

// ExpertEditForm edits an expert's account fields.
type ExpertEditForm struct {
	Name  string `form:"name" validate:"required"`
	Email string `form:"email" validate:"required,email"`
	Phone string `form:"phone"`
}

func ParseExpertEditForm(values url.Values) ExpertEditForm {
	return ExpertEditForm{Name: field(values, "name"), Email: field(values, "email"), Phone: field(values, "phone")}
}

func ExpertEditFormFrom(expert consultapi.Expert) ExpertEditForm {
	return ExpertEditForm{Name: expert.Name, Email: expert.Email, Phone: expert.Phone}
}

func (f ExpertEditForm) Validate() Errors {
	return check(f, userMessages)
}

func (f ExpertEditForm) Input() consultapi.UserInput {
	return consultapi.UserInput{Name: f.Name, Email: f.Email, Phone: f.Phone, Role: consultapi.RoleExpert}
}

// DesignationForm creates a designation.
type DesignationForm struct {
	Name string `form:"name" validate:"required"`
}

func ParseDesignationForm(values url.Values) DesignationForm {
	return DesignationForm{Name: field(values, "name")}
}

func (f DesignationForm) Validate() Errors {
	return check(f, map[string]string{"name.required": "validation.name_required"})
}

// WalletCreateForm creates a recharge plan.
type WalletCreateForm struct {
	Money string `form:"money" validate:"required,positive,maxamount=10000000"`
	Offer string `form:"offer" validate:"required,positive,maxamount=100"`
}

func ParseWalletCreateForm(values url.Values) WalletCreateForm {
	return WalletCreateForm{Money: field(values, "money"), Offer: field(values, "offer")}
}

var walletCreateMessages = map[string]string{
	"money.required":  "validation.amount_required",
	"money.positive":  "validation.amount_positive",
	"money.maxamount": "validation.amount_too_large_crore",
	"offer.required":  "validation.offer_required",
	"offer.positive":  "validation.offer_positive",
	"offer.maxamount": "validation.offer_max",
}

func (f WalletCreateForm) Validate() Errors {
	return check(f, walletCreateMessages)
}

func (f WalletCreateForm) Input() consultapi.WalletInput {
	money, _ := parseAmount(f.Money)
	offer, _ := parseAmount(f.Offer)
	return consultapi.WalletInput{Money: money, Offer: offer}
}

// WalletEditForm edits a recharge plan. Its money ceiling is lower than on
// creation.
type WalletEditForm struct {
	Money string `form:"money" validate:"required,positive,maxamount=1000000"`
	Offer string `form:"offer" validate:"required,positive,maxamount=100"`
}

func ParseWalletEditForm(values url.Values) WalletEditForm {
	return WalletEditForm{Money: field(values, "money"), Offer: field(values, "offer")}
}

func WalletEditFormFrom(wallet consultapi.Wallet) WalletEditForm {
	return WalletEditForm{Money: wallet.Money.String(), Offer: wallet.Offer.String()}
}

var walletEditMessages = map[string]string{
	"money.required":  "validation.amount_required",
	"money.positive":  "validation.amount_positive_number",
	"money.maxamount": "validation.amount_too_large",
	"offer.required":  "validation.offer_required",
	"offer.positive":  "validation.offer_positive",
	"offer.maxamount": "validation.offer_max",
}

func (f WalletEditForm) Validate() Errors {
	return check(f, walletEditMessages)
}

func (f WalletEditForm) Input() consultapi.WalletInput {
	money, _ := parseAmount(f.Money)
	offer, _ := parseAmount(f.Offer)
	return consultapi.WalletInput{Money: money, Offer: offer}
}

// PayoutForm creates or edits a payout. Only the fields of the selected
// method are required and sent.
type PayoutForm struct {
	ExpertID      string `form:"expertId" validate:"required"`
	WithdrawalID  string `form:"withdrawalId" validate:"required"`
	Amount        string `form:"amount" validate:"required,positive"`
	Method        string `form:"method" validate:"required"`
	TransactionID string `form:"transactionId" validate:"required"`
	UPIID         string `form:"upiId"`
	AccountNumber string `form:"bankDetails.accountNumber"`
	IFSCCode      string `form:"bankDetails.ifscCode"`
	HolderName    string `form:"bankDetails.holderName"`
}

func ParsePayoutForm(values url.Values) PayoutForm {
	return PayoutForm{
		ExpertID:      field(values, "expertId"),
		WithdrawalID:  field(values, "withdrawalId"),
		Amount:        field(values, "amount"),
		Method:        field(values, "method"),
		TransactionID: field(values, "transactionId"),
		UPIID:         field(values, "upiId"),
		AccountNumber: field(values, "bankDetails.accountNumber"),
		IFSCCode:      field(values, "bankDetails.ifscCode"),
		HolderName:    field(values, "bankDetails.holderName"),
	}
}

// NewPayoutForm is the empty create draft, defaulting to UPI.
func NewPayoutForm() PayoutForm {
	return PayoutForm{Method: consultapi.MethodUPI}
}

// PayoutFormFrom seeds an edit draft from the selected payout.
func PayoutFormFrom(payout consultapi.Payout) PayoutForm {
	form := PayoutForm{
		ExpertID:      payout.Expert.ID,
		WithdrawalID:  payout.Withdrawal.ID,
		Amount:        payout.Amount.String(),
		Method:        payout.Method,
		TransactionID: payout.TransactionID,
		UPIID:         payout.UPIID,
	}
	if form.Method == "" {
		form.Method = consultapi.MethodUPI
	}
	if payout.BankDetails != nil {
		form.AccountNumber = payout.BankDetails.AccountNumber
		form.IFSCCode = payout.BankDetails.IFSCCode
		form.HolderName = payout.BankDetails.HolderName
	}
	return form
}

var payoutMessages = map[string]string{
	"expertId.required":                  "validation.expert_id_required",
	"withdrawalId.required":              "validation.withdrawal_id_required",
	"amount.required":                    "validation.amount_required",
	"amount.positive":                    "validation.amount_positive",
	"method.required":                    "validation.method_required",
	"method.oneof":                       "validation.method_required",
	"transactionId.required":             "validation.transaction_id_required",
	"upiId.required":                     "validation.upi_required",
	"bankDetails.accountNumber.required": "validation.account_number_required",
	"bankDetails.ifscCode.required":      "validation.ifsc_required",
	"bankDetails.holderName.required":    "validation.holder_name_required",
}

// validatePayoutMethod enforces the method-specific required fields.
func validatePayoutMethod(sl validator.StructLevel) {
	form, ok := sl.Current().Interface().(PayoutForm)
	if !ok {
		return
	}
	switch form.Method {
	case "":
	case consultapi.MethodUPI:
		if form.UPIID == "" {
			sl.ReportError(form.UPIID, "upiId", "UPIID", "required", "")
		}
	case consultapi.MethodBankTransfer:
		if form.AccountNumber == "" {
			sl.ReportError(form.AccountNumber, "bankDetails.accountNumber", "AccountNumber", "required", "")
		}
		if form.IFSCCode == "" {
			sl.ReportError(form.IFSCCode, "bankDetails.ifscCode", "IFSCCode", "required", "")
		}
		if form.HolderName == "" {
			sl.ReportError(form.HolderName, "bankDetails.holderName", "HolderName", "required", "")
		}
	default:
		sl.ReportError(form.Method, "method", "Method", "oneof", "")
	}
}

func (f PayoutForm) Validate() Errors {
	return check(f, payoutMessages)
}

// IsBankTransfer reports whether bank details are the active method fields.
func (f PayoutForm) IsBankTransfer() bool {
	return f.Method == consultapi.MethodBankTransfer
}

func (f PayoutForm) Input() consultapi.PayoutInput {
	amount, _ := parseAmount(f.Amount)
	input := consultapi.PayoutInput{
		ExpertID:      f.ExpertID,
		WithdrawalID:  f.WithdrawalID,
		Amount:        amount,
		Method:        f.Method,
		TransactionID: f.TransactionID,
	}
	switch f.Method {
	case consultapi.MethodUPI:
		input.UPIID = f.UPIID
	case consultapi.MethodBankTransfer:
		input.BankDetails = &consultapi.BankDetails{
			AccountNumber: f.AccountNumber,
			IFSCCode:      f.IFSCCode,
			HolderName:    f.HolderName,
		}
	}
	return input
}

// ApproveForm confirms a withdrawal with the payment transaction id.
type ApproveForm struct {
	TransactionID string `form:"transactionId" validate:"required"`
}

func ParseApproveForm(values url.Values) ApproveForm {
	return ApproveForm{TransactionID: field(values, "transactionId")}
}

func (f ApproveForm) Validate() Errors {
	return check(f, map[string]string{"transactionId.required": "validation.transaction_id_prompt"})
}

// Confirmed reports whether a delete form carried the explicit confirmation.
func Confirmed(values url.Values) bool {
	return field(values, "confirm") == "yes"
}
