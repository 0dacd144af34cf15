package entity

type OrderStatus string

const (
	StatusConfirmed OrderStatus = "CONFIRMED"
	StatusPreparing OrderStatus = "PREPARING"
	StatusOnTheWay  OrderStatus = "ON_THE_WAY"
	StatusDelivered OrderStatus = "DELIVERED"
	StatusCancelled OrderStatus = "CANCELLED"
)

// เดินหน้าได้ทางเดียว ยกเลิกได้จากทุกสถานะที่ยังไม่จบ
var orderTransitions = map[OrderStatus][]OrderStatus{
	StatusConfirmed: {StatusPreparing, StatusCancelled},
	StatusPreparing: {StatusOnTheWay, StatusCancelled},
	StatusOnTheWay:  {StatusDelivered, StatusCancelled},
}

func (s OrderStatus) Terminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, n := range orderTransitions[s] {
		if n == next {
			return true
		}
	}
	return false
}

func ParseOrderStatus(v string) (OrderStatus, bool) {
	switch OrderStatus(v) {
	case StatusConfirmed, StatusPreparing, StatusOnTheWay, StatusDelivered, StatusCancelled:
		return OrderStatus(v), true
	}
	return "", false
}
