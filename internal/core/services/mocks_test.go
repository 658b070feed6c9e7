package services

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"testing"

	"github.com/sharespace/sharespace-service/internal/core/domain"
	"github.com/sharespace/sharespace-service/internal/core/ports"
)

func testKey(t *testing.T) *rsa.PrivateKey {
	t.Helper()
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatalf("failed to generate key: %v", err)
	}
	return key
}

// mockRoomRepository implements ports.RoomRepository in memory, with error
// injection for failure scenarios.
type mockRoomRepository struct {
	rooms map[int]*domain.Room

	FindAllError error
	CreateError  error
	CreateCalls  []domain.Room
	UpdateCalls  []domain.Room
	DeleteCalls  []int
}

var _ ports.RoomRepository = (*mockRoomRepository)(nil)

func newMockRoomRepository() *mockRoomRepository {
	return &mockRoomRepository{rooms: make(map[int]*domain.Room)}
}

func (m *mockRoomRepository) seed(rooms ...domain.Room) {
	for i := range rooms {
		room := rooms[i]
		m.rooms[room.RoomID] = &room
	}
}

func (m *mockRoomRepository) FindAll(ctx context.Context) ([]domain.Room, error) {
	if m.FindAllError != nil {
		return nil, m.FindAllError
	}
	var out []domain.Room
	for _, room := range m.rooms {
		out = append(out, *room)
	}
	return out, nil
}

func (m *mockRoomRepository) FindByID(ctx context.Context, roomID int) (*domain.Room, error) {
	room, ok := m.rooms[roomID]
	if !ok {
		return nil, nil
	}
	copied := *room
	return &copied, nil
}

func (m *mockRoomRepository) FindByRoomNumber(ctx context.Context, roomNumber string) (*domain.Room, error) {
	for _, room := range m.rooms {
		if room.RoomNumber == roomNumber {
			copied := *room
			return &copied, nil
		}
	}
	return nil, nil
}

func (m *mockRoomRepository) ExistsByRoomNumber(ctx context.Context, roomNumber string) (bool, error) {
	room, _ := m.FindByRoomNumber(ctx, roomNumber)
	return room != nil, nil
}

func (m *mockRoomRepository) Create(ctx context.Context, room *domain.Room) error {
	if m.CreateError != nil {
		return m.CreateError
	}
	room.RoomID = len(m.rooms) + 1
	m.rooms[room.RoomID] = room
	m.CreateCalls = append(m.CreateCalls, *room)
	return nil
}

func (m *mockRoomRepository) Update(ctx context.Context, room *domain.Room) error {
	m.rooms[room.RoomID] = room
	m.UpdateCalls = append(m.UpdateCalls, *room)
	return nil
}

func (m *mockRoomRepository) Delete(ctx context.Context, roomID int) error {
	delete(m.rooms, roomID)
	m.DeleteCalls = append(m.DeleteCalls, roomID)
	return nil
}

func (m *mockRoomRepository) Count(ctx context.Context) (int, error) {
	return len(m.rooms), nil
}

// mockRoommateRepository implements ports.RoommateRepository in memory.
type mockRoommateRepository struct {
	roommates map[int]*domain.Roommate

	CreateInRoomError   error
	CreateInRoomCalls   []domain.Roommate
	RemoveCalls         []string
	UpdateCalls         []domain.Roommate
	AddReferralCalls    []domain.ReferralDetail
	PruneReferralsCalls map[int][]string
	BatchCalls          [][]domain.Roommate
	Page                domain.Page[domain.Roommate]
}

var _ ports.RoommateRepository = (*mockRoommateRepository)(nil)

func newMockRoommateRepository() *mockRoommateRepository {
	return &mockRoommateRepository{
		roommates:           make(map[int]*domain.Roommate),
		PruneReferralsCalls: make(map[int][]string),
	}
}

func (m *mockRoommateRepository) seed(roommates ...domain.Roommate) {
	for i := range roommates {
		roommate := roommates[i]
		m.roommates[roommate.RoommateID] = &roommate
	}
}

func (m *mockRoommateRepository) FindAll(ctx context.Context) ([]domain.Roommate, error) {
	var out []domain.Roommate
	for _, roommate := range m.roommates {
		out = append(out, *roommate)
	}
	return out, nil
}

func (m *mockRoommateRepository) FindByID(ctx context.Context, roommateID int) (*domain.Roommate, error) {
	roommate, ok := m.roommates[roommateID]
	if !ok {
		return nil, nil
	}
	copied := *roommate
	return &copied, nil
}

func (m *mockRoommateRepository) FindByUsername(ctx context.Context, username string) (*domain.Roommate, error) {
	for _, roommate := range m.roommates {
		if roommate.Username == username {
			copied := *roommate
			return &copied, nil
		}
	}
	return nil, nil
}

func (m *mockRoommateRepository) FindByReferralID(ctx context.Context, referralID string) (*domain.Roommate, error) {
	for _, roommate := range m.roommates {
		if roommate.ReferralID == referralID {
			copied := *roommate
			return &copied, nil
		}
	}
	return nil, nil
}

func (m *mockRoommateRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	roommate, _ := m.FindByUsername(ctx, username)
	return roommate != nil, nil
}

func (m *mockRoommateRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	for _, roommate := range m.roommates {
		if roommate.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockRoommateRepository) CreateInRoom(ctx context.Context, roommate *domain.Roommate, roomID int) error {
	if m.CreateInRoomError != nil {
		return m.CreateInRoomError
	}
	roommate.RoommateID = len(m.roommates) + 1
	m.roommates[roommate.RoommateID] = roommate
	m.CreateInRoomCalls = append(m.CreateInRoomCalls, *roommate)
	return nil
}

func (m *mockRoommateRepository) Remove(ctx context.Context, roommate *domain.Roommate) error {
	delete(m.roommates, roommate.RoommateID)
	m.RemoveCalls = append(m.RemoveCalls, roommate.Username)
	return nil
}

func (m *mockRoommateRepository) Update(ctx context.Context, roommate *domain.Roommate) error {
	copied := *roommate
	m.roommates[roommate.RoommateID] = &copied
	m.UpdateCalls = append(m.UpdateCalls, copied)
	return nil
}

func (m *mockRoommateRepository) UpdateRentBatch(ctx context.Context, roommates []domain.Roommate) error {
	for i := range roommates {
		copied := roommates[i]
		m.roommates[copied.RoommateID] = &copied
	}
	m.BatchCalls = append(m.BatchCalls, roommates)
	return nil
}

func (m *mockRoommateRepository) AddReferral(ctx context.Context, referrerID int, detail domain.ReferralDetail) error {
	if referrer, ok := m.roommates[referrerID]; ok {
		referrer.ReferralDetails = append(referrer.ReferralDetails, detail)
		referrer.ReferralCount++
	}
	m.AddReferralCalls = append(m.AddReferralCalls, detail)
	return nil
}

func (m *mockRoommateRepository) PruneReferrals(ctx context.Context, referrerID int, activeUniqueIDs []string) error {
	m.PruneReferralsCalls[referrerID] = activeUniqueIDs
	return nil
}

func (m *mockRoommateRepository) FindPage(ctx context.Context, req domain.PageRequest, rentStatus *domain.RentStatus) (domain.Page[domain.Roommate], error) {
	return m.Page, nil
}

// mockVacateRepository implements ports.VacateRepository in memory.
type mockVacateRepository struct {
	requests map[int]*domain.VacateRequest

	CreateCalls []domain.VacateRequest
	DeleteCalls []int
}

var _ ports.VacateRepository = (*mockVacateRepository)(nil)

func newMockVacateRepository() *mockVacateRepository {
	return &mockVacateRepository{requests: make(map[int]*domain.VacateRequest)}
}

func (m *mockVacateRepository) Create(ctx context.Context, request *domain.VacateRequest) error {
	request.VacateRequestID = len(m.requests) + 1
	m.requests[request.VacateRequestID] = request
	m.CreateCalls = append(m.CreateCalls, *request)
	return nil
}

func (m *mockVacateRepository) ExistsForRoommate(ctx context.Context, roommateID int) (bool, error) {
	for _, request := range m.requests {
		if request.RoommateID == roommateID {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockVacateRepository) FindPending(ctx context.Context) ([]domain.VacateRequest, error) {
	var out []domain.VacateRequest
	for _, request := range m.requests {
		if !request.IsRead {
			out = append(out, *request)
		}
	}
	return out, nil
}

func (m *mockVacateRepository) Delete(ctx context.Context, vacateRequestID int) error {
	if _, ok := m.requests[vacateRequestID]; !ok {
		return domain.BusinessErrorf("Vacate request not found")
	}
	delete(m.requests, vacateRequestID)
	m.DeleteCalls = append(m.DeleteCalls, vacateRequestID)
	return nil
}

// mockGrievanceRepository implements ports.GrievanceRepository in memory.
type mockGrievanceRepository struct {
	grievances map[int]*domain.Grievance
}

var _ ports.GrievanceRepository = (*mockGrievanceRepository)(nil)

func newMockGrievanceRepository() *mockGrievanceRepository {
	return &mockGrievanceRepository{grievances: make(map[int]*domain.Grievance)}
}

func (m *mockGrievanceRepository) Create(ctx context.Context, grievance *domain.Grievance) error {
	grievance.GrievanceID = len(m.grievances) + 1
	m.grievances[grievance.GrievanceID] = grievance
	return nil
}

func (m *mockGrievanceRepository) FindPending(ctx context.Context) ([]domain.Grievance, error) {
	var out []domain.Grievance
	for _, grievance := range m.grievances {
		if !grievance.IsRead {
			out = append(out, *grievance)
		}
	}
	return out, nil
}

func (m *mockGrievanceRepository) MarkRead(ctx context.Context, grievanceID int) error {
	grievance, ok := m.grievances[grievanceID]
	if !ok {
		return domain.BusinessErrorf("Entered Grievance Id was invalid")
	}
	grievance.IsRead = true
	return nil
}

// mockPaymentRepository implements ports.PaymentRepository in memory.
type mockPaymentRepository struct {
	payments []domain.Payment

	Page domain.Page[domain.Payment]
}

var _ ports.PaymentRepository = (*mockPaymentRepository)(nil)

func newMockPaymentRepository() *mockPaymentRepository {
	return &mockPaymentRepository{}
}

func (m *mockPaymentRepository) Create(ctx context.Context, payment *domain.Payment) error {
	payment.ID = int64(len(m.payments) + 1)
	m.payments = append(m.payments, *payment)
	return nil
}

func (m *mockPaymentRepository) Update(ctx context.Context, payment *domain.Payment) error {
	for i := range m.payments {
		if m.payments[i].ID == payment.ID {
			m.payments[i] = *payment
			return nil
		}
	}
	return domain.BusinessErrorf("Payment not found")
}

func (m *mockPaymentRepository) FindAll(ctx context.Context) ([]domain.Payment, error) {
	return append([]domain.Payment(nil), m.payments...), nil
}

func (m *mockPaymentRepository) FindByTransactionID(ctx context.Context, transactionID string) (*domain.Payment, error) {
	for i := range m.payments {
		if m.payments[i].TransactionID == transactionID {
			copied := m.payments[i]
			return &copied, nil
		}
	}
	return nil, nil
}

func (m *mockPaymentRepository) FindPage(ctx context.Context, req domain.PageRequest, paymentDate *domain.Date) (domain.Page[domain.Payment], error) {
	return m.Page, nil
}

func (m *mockPaymentRepository) SearchByUsername(ctx context.Context, username string) ([]domain.Payment, error) {
	var out []domain.Payment
	for _, payment := range m.payments {
		if len(payment.Username) >= len(username) && payment.Username[:len(username)] == username {
			out = append(out, payment)
		}
	}
	return out, nil
}

func (m *mockPaymentRepository) SearchByRoomNumber(ctx context.Context, roomNumber string) ([]domain.Payment, error) {
	var out []domain.Payment
	for _, payment := range m.payments {
		if payment.RoomNumber == roomNumber {
			out = append(out, payment)
		}
	}
	return out, nil
}

// mockOwnerRepository implements ports.OwnerRepository in memory.
type mockOwnerRepository struct {
	owners map[string]*domain.Owner
}

var _ ports.OwnerRepository = (*mockOwnerRepository)(nil)

func newMockOwnerRepository() *mockOwnerRepository {
	return &mockOwnerRepository{owners: make(map[string]*domain.Owner)}
}

func (m *mockOwnerRepository) FindByName(ctx context.Context, ownerName string) (*domain.Owner, error) {
	owner, ok := m.owners[ownerName]
	if !ok {
		return nil, nil
	}
	copied := *owner
	return &copied, nil
}

func (m *mockOwnerRepository) ExistsByName(ctx context.Context, ownerName string) (bool, error) {
	_, ok := m.owners[ownerName]
	return ok, nil
}

func (m *mockOwnerRepository) Create(ctx context.Context, owner *domain.Owner) error {
	m.owners[owner.OwnerName] = owner
	return nil
}

// mockOutboxRepository records enqueued event payloads.
type mockOutboxRepository struct {
	EventTypes []string
	Payloads   [][][]byte

	EnqueueError error
}

var _ ports.OutboxRepository = (*mockOutboxRepository)(nil)

func (m *mockOutboxRepository) Enqueue(ctx context.Context, eventType string, payloads [][]byte) error {
	if m.EnqueueError != nil {
		return m.EnqueueError
	}
	m.EventTypes = append(m.EventTypes, eventType)
	m.Payloads = append(m.Payloads, payloads)
	return nil
}

// mockRoomCache implements ports.RoomCache in memory.
type mockRoomCache struct {
	rooms []domain.Room
	held  bool

	SetCalls        int
	InvalidateCalls int
}

var _ ports.RoomCache = (*mockRoomCache)(nil)

func (m *mockRoomCache) GetAllRooms(ctx context.Context) ([]domain.Room, bool) {
	return m.rooms, m.held
}

func (m *mockRoomCache) SetAllRooms(ctx context.Context, rooms []domain.Room) {
	m.rooms = rooms
	m.held = true
	m.SetCalls++
}

func (m *mockRoomCache) Invalidate(ctx context.Context) {
	m.rooms = nil
	m.held = false
	m.InvalidateCalls++
}

// mockPaymentGateway implements ports.PaymentGateway with canned responses.
type mockPaymentGateway struct {
	Order   *ports.GatewayOrder
	Payment *ports.GatewayPayment

	CreateOrderError  error
	FetchPaymentError error
	CreateOrderCalls  []float64
}

var _ ports.PaymentGateway = (*mockPaymentGateway)(nil)

func (m *mockPaymentGateway) CreateOrder(ctx context.Context, amount float64, currency, receipt string) (*ports.GatewayOrder, error) {
	if m.CreateOrderError != nil {
		return nil, m.CreateOrderError
	}
	m.CreateOrderCalls = append(m.CreateOrderCalls, amount)
	return m.Order, nil
}

func (m *mockPaymentGateway) FetchPayment(ctx context.Context, paymentID string) (*ports.GatewayPayment, error) {
	if m.FetchPaymentError != nil {
		return nil, m.FetchPaymentError
	}
	return m.Payment, nil
}
