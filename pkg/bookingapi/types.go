package bookingapi

import "time"

// SeatStatus is the server-authoritative availability of a seat.
type SeatStatus string

const (
	SeatAvailable SeatStatus = "AVAILABLE"
	SeatLocked    SeatStatus = "LOCKED"
	SeatSold      SeatStatus = "SOLD"
)

// SeatType distinguishes regular seats from premium ones.
type SeatType string

const (
	SeatNormal SeatType = "NORMAL"
	SeatVIP    SeatType = "VIP"
)

// OrderStatus is the server-authoritative lifecycle state of an order.
type OrderStatus string

const (
	OrderPending   OrderStatus = "PENDING"
	OrderPaid      OrderStatus = "PAID"
	OrderCancelled OrderStatus = "CANCELLED"
)

// Credentials is the login request body.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// UserInfo is the identity and bearer token returned by a successful login.
type UserInfo struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
	Token    string `json:"token"`
}

// Cinema is a venue offering schedules.
type Cinema struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location"`
}

// Schedule is one screening of a movie in a hall.
type Schedule struct {
	ID         int64     `json:"id"`
	MovieID    int64     `json:"movieId"`
	MovieTitle string    `json:"movieTitle"`
	HallID     int64     `json:"hallId"`
	HallName   string    `json:"hallName"`
	StartTime  time.Time `json:"startTime"`
	EndTime    time.Time `json:"endTime"`
}

// Seat is one position in a hall. Price is optional; the backend omits it
// for layouts without per-seat pricing.
type Seat struct {
	ID     int64      `json:"id"`
	Row    int        `json:"row"`
	Col    int        `json:"col"`
	Status SeatStatus `json:"status"`
	Type   SeatType   `json:"type"`
	Price  *float64   `json:"price,omitempty"`
}

// Available reports whether the seat can currently be selected. This is a
// snapshot; the lock call is what actually decides.
func (s Seat) Available() bool {
	return s.Status == SeatAvailable
}

// SeatMap is the seating layout of one schedule with current statuses.
type SeatMap struct {
	HallName string `json:"hallName"`
	Rows     int    `json:"rows"`
	Cols     int    `json:"cols"`
	Seats    []Seat `json:"seats"`
}

// CreateOrder is the lock-seats request body.
type CreateOrder struct {
	ScheduleID int64   `json:"scheduleId"`
	SeatIDs    []int64 `json:"seatIds"`
}

// OrderLock is the outcome of a successful lock-seats call: a pending
// order and the server-enforced payment deadline.
type OrderLock struct {
	OrderID   int64     `json:"orderId"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Order is one entry in the caller's order history. ExpiresAt and
// TotalAmount are optional depending on order state and backend version.
type Order struct {
	ID          int64       `json:"id"`
	MovieTitle  string      `json:"movieTitle"`
	HallName    string      `json:"hallName"`
	StartTime   time.Time   `json:"startTime"`
	SeatNumbers []string    `json:"seatNumbers"`
	Status      OrderStatus `json:"status"`
	CreatedAt   time.Time   `json:"createdAt"`
	ExpiresAt   *time.Time  `json:"expiresAt,omitempty"`
	TotalAmount *float64    `json:"totalAmount,omitempty"`
}

// Pending reports whether the order still awaits payment.
func (o Order) Pending() bool {
	return o.Status == OrderPending
}
