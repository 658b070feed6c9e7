package domain

// WithoutFoodDiscount is the flat amount deducted from a room's monthly price
// when a roommate opts out of the food service.
const WithoutFoodDiscount = 1000.0

type Room struct {
	RoomID          int        `json:"roomId"`
	FloorNumber     int        `json:"floorNumber"`
	RoomNumber      string     `json:"roomNumber"`
	RoomType        string     `json:"roomType"`
	Capacity        int        `json:"capacity"`
	CurrentCapacity int        `json:"currentCapacity"`
	IsAcAvailable   bool       `json:"isAcAvailable"`
	Price           float64    `json:"price"`
	PerDayPrice     float64    `json:"perDayPrice"`
	RoommateList    []Roommate `json:"roommateList"`
}

// FreeCapacity is the number of beds still open in the room.
func (r *Room) FreeCapacity() int {
	return r.Capacity - r.CurrentCapacity
}

func (r *Room) IsFull() bool {
	return r.CurrentCapacity >= r.Capacity
}

// PriceWithoutFood is the display price for a stay without the food service.
func (r *Room) PriceWithoutFood() float64 {
	return r.Price - WithoutFoodDiscount
}

// RoomUpdate carries a partial room edit; nil fields are left untouched.
type RoomUpdate struct {
	FloorNumber     *int     `json:"floorNumber"`
	RoomNumber      *string  `json:"roomNumber"`
	RoomType        *string  `json:"roomType"`
	Capacity        *int     `json:"capacity"`
	CurrentCapacity *int     `json:"currentCapacity"`
	IsAcAvailable   *bool    `json:"isAcAvailable"`
	Price           *float64 `json:"price"`
}

// AvailabilityRequest is the search filter used to find bookable rooms.
type AvailabilityRequest struct {
	RoomType string `json:"roomType"`
	WithAC   bool   `json:"withAC"`
	WithFood bool   `json:"withFood"`
	Capacity int    `json:"capacity"`
}
