package domain

type Owner struct {
	OwnerID   int    `json:"ownerId"`
	OwnerName string `json:"ownerName"`
	Password  string `json:"-"`
}

type OwnerLoginRequest struct {
	OwnerName string `json:"ownerName"`
	Password  string `json:"password"`
}

type Role string

const (
	RoleOwner    Role = "OWNER"
	RoleRoommate Role = "ROOMMATE"
)

// MailResponse reports the outcome of a notification blast.
type MailResponse struct {
	Message string `json:"message"`
	Status  bool   `json:"status"`
}
