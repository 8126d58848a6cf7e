package consultapi

// Roles and statuses used by the API.
const (
	RoleUser   = "user"
	RoleAdmin  = "admin"
	RoleExpert = "expert"

	VerificationPending  = "pending"
	VerificationVerified = "verified"
	VerificationRejected = "rejected"

	WithdrawalPending  = "pending"
	WithdrawalApproved = "approved"

	CallEnded   = "ended"
	CallMissed  = "missed"
	CallOngoing = "ongoing"

	MethodUPI          = "UPI"
	MethodBankTransfer = "Bank Transfer"
)

type User struct {
	ID        string    `json:"_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Role      string    `json:"role"`
	CreatedAt Timestamp `json:"createdAt"`
}

// Expert is a user with role expert. List endpoints return the summary
// fields; GetExpert fills the profile and document fields as well.
type Expert struct {
	ID            string `json:"_id"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Role          string `json:"role"`
	Blocked       bool   `json:"blocked"`
	Verified      string `json:"verified"`
	Qualification Ref    `json:"qualification"`
	Designation   Ref    `json:"designation"`
	Expertise     []Ref  `json:"expertise"`
	WalletBalance Number `json:"walletBalance"`

	Image             string `json:"image"`
	Gender            string `json:"gender"`
	DOB               string `json:"dob"`
	Experience        Number `json:"experience"`
	PerMinuteCharge   Charge `json:"perMinuteCharge"`
	GoogleID          string `json:"googleId"`
	AadharCard        string `json:"aadharCard"`
	PAN               string `json:"pan"`
	VerificationVideo string `json:"verificationVideo"`
	Address           string `json:"address"`

	CreatedAt Timestamp `json:"createdAt"`
	UpdatedAt Timestamp `json:"updatedAt"`
}

// VerificationStatus defaults an absent value to pending.
func (e Expert) VerificationStatus() string {
	if e.Verified == "" {
		return VerificationPending
	}
	return e.Verified
}

type Charge struct {
	Amount Number `json:"amount"`
}

// Expertise is a named area with free-text category tags.
type Expertise struct {
	ID       string   `json:"_id"`
	Name     string   `json:"name"`
	Category []string `json:"category"`
}

type Qualification struct {
	ID   string `json:"_id"`
	Name string `json:"name"`
}

type Designation struct {
	ID   string `json:"_id"`
	Name string `json:"name"`
}

// Wallet is a recharge plan; Offer is a bonus percentage.
type Wallet struct {
	ID        string    `json:"_id"`
	Money     Number    `json:"money"`
	Offer     Number    `json:"offer"`
	CreatedAt Timestamp `json:"createdAt"`
	UpdatedAt Timestamp `json:"updatedAt"`
}

type BankDetails struct {
	AccountNumber string `json:"accountNumber"`
	IFSCCode      string `json:"ifscCode"`
	HolderName    string `json:"holderName"`
}

type Payout struct {
	ID            string       `json:"_id"`
	Expert        Ref          `json:"expertId"`
	Withdrawal    Ref          `json:"withdrawalId"`
	Amount        Number       `json:"amount"`
	Method        string       `json:"method"`
	TransactionID string       `json:"transactionId"`
	UPIID         string       `json:"upiId"`
	BankDetails   *BankDetails `json:"bankDetails"`
	PaidAt        Timestamp    `json:"paidAt"`
}

type Withdrawal struct {
	ID          string    `json:"_id"`
	Expert      Ref       `json:"expertId"`
	Amount      Number    `json:"amount"`
	Method      string    `json:"method"`
	Status      string    `json:"status"`
	RequestedAt Timestamp `json:"requestedAt"`
}

type Review struct {
	ID        string    `json:"_id"`
	Expert    Ref       `json:"expertId"`
	User      Ref       `json:"userId"`
	Comment   string    `json:"comment"`
	Rating    Number    `json:"rating"`
	CreatedAt Timestamp `json:"createdAt"`
}

// CallParty is one side of a call; Ref carries the populated user or expert.
type CallParty struct {
	Ref  Ref    `json:"id"`
	Type string `json:"type"`
}

type Call struct {
	ID        string    `json:"_id"`
	Caller    CallParty `json:"caller"`
	Receiver  CallParty `json:"receiver"`
	CallType  string    `json:"callType"`
	StartedAt Timestamp `json:"startedAt"`
	Duration  Number    `json:"duration"`
	Status    string    `json:"status"`
}

// CallStats summarizes an expert's calls; TotalDuration is in seconds.
type CallStats struct {
	TotalCalls          int    `json:"totalCalls"`
	CompletedCallsCount int    `json:"completedCallsCount"`
	MissedCallsCount    int    `json:"missedCallsCount"`
	TotalDuration       Number `json:"totalDuration"`
}

// Session is the result of a successful admin login.
type Session struct {
	User  User
	Token string
}

// UserInput is the body of user and expert updates.
type UserInput struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	Role  string `json:"role"`
}

// ExpertInput creates an expert account through the users endpoint.
type ExpertInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type ExpertiseInput struct {
	Name     string   `json:"name"`
	Category []string `json:"category"`
}

type WalletInput struct {
	Money float64 `json:"money"`
	Offer float64 `json:"offer"`
}

// PayoutInput carries only the fields of the chosen method.
type PayoutInput struct {
	ExpertID      string       `json:"expertId"`
	WithdrawalID  string       `json:"withdrawalId"`
	Amount        float64      `json:"amount"`
	Method        string       `json:"method"`
	TransactionID string       `json:"transactionId"`
	UPIID         string       `json:"upiId,omitempty"`
	BankDetails   *BankDetails `json:"bankDetails,omitempty"`
}
