package domain

type RentStatus string

const (
	RentPaymentPending RentStatus = "PAYMENT_PENDING"
	RentPaymentCreated RentStatus = "PAYMENT_CREATED"
	RentPaymentDone    RentStatus = "PAYMENT_DONE"
)

const (
	// MaxReferrals caps how many roommates a single tenant may refer.
	MaxReferrals = 3
	// ReferralDiscount is the rent discount granted per active referral.
	ReferralDiscount = 0.05
	// FoodToggleLockDays is how long the food preference is frozen after a change.
	FoodToggleLockDays = 28
)

type Roommate struct {
	RoommateID       int              `json:"roommateId"`
	UniqueID         string           `json:"roommateUniqueId"`
	Username         string           `json:"username"`
	Password         string           `json:"-"`
	Email            string           `json:"email"`
	Gender           string           `json:"gender"`
	RentAmount       float64          `json:"rentAmount"`
	RentStatus       RentStatus       `json:"rentStatus"`
	WithFood         bool             `json:"withFood"`
	CheckInDate      Date             `json:"checkInDate"`
	CheckOutDate     Date             `json:"checkOutDate"`
	LastModifiedDate Date             `json:"lastModifiedDate"`
	ReferralID       string           `json:"referralId"`
	ReferralCount    int              `json:"referralCount"`
	RoomNumber       string           `json:"roomNumber"`
	PaymentList      []Payment        `json:"paymentList"`
	ReferralDetails  []ReferralDetail `json:"referralDetailsList"`
	Grievances       []Grievance      `json:"grievances"`
}

// ReferralDetail records one successful referral made by a roommate.
type ReferralDetail struct {
	ID           int    `json:"referralId"`
	Username     string `json:"username"`
	ReferralDate Date   `json:"referralDate"`
	// UniqueID of the roommate who joined through the referral. Used to
	// drop referrals whose roommate has since vacated.
	RoommateUniqueID string `json:"roommateUniqueId"`
}

// BookingRequest is the signup payload submitted when booking a room.
type BookingRequest struct {
	Username     string `json:"username"`
	Password     string `json:"password"`
	Email        string `json:"email"`
	Gender       string `json:"gender"`
	WithFood     bool   `json:"withFood"`
	CheckInDate  Date   `json:"checkInDate"`
	CheckOutDate Date   `json:"checkOutDate"`
	ReferralID   string `json:"referralId"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// UpdateDetails carries a partial roommate profile edit; nil fields are
// left untouched.
type UpdateDetails struct {
	Username     *string `json:"username"`
	Password     *string `json:"password"`
	Email        *string `json:"email"`
	WithFood     *bool   `json:"withFood"`
	CheckOutDate *Date   `json:"checkOutDate"`
}

// VacateRequest is a tenant-submitted notice of intended move-out, pending
// owner acknowledgment.
type VacateRequest struct {
	VacateRequestID int    `json:"vacateRequestId"`
	RoommateID      int    `json:"-"`
	RoommateName    string `json:"roommateName"`
	RoomNumber      string `json:"roomNumber"`
	VacateReason    string `json:"vacateReason"`
	CheckOutDate    Date   `json:"checkOutDate"`
	IsRead          bool   `json:"isRead"`
	CreatedAt       Date   `json:"createdAt"`
}

// Grievance is a tenant-submitted complaint, pending owner acknowledgment.
type Grievance struct {
	GrievanceID      int    `json:"grievanceId"`
	RoommateID       int    `json:"-"`
	RoommateName     string `json:"roommateName"`
	RoomNumber       string `json:"roomNumber"`
	GrievanceContent string `json:"grievanceContent"`
	CreatedAt        Date   `json:"createdAt"`
	IsRead           bool   `json:"isRead"`
}
