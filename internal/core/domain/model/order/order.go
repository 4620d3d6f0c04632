package order

import (
	"errors"
	"fmt"
	"math"
	"time"

	"shopbot/internal/core/domain/model/kernel"
	"shopbot/internal/pkg/errs"
)

// IDTimeLayout is the layout used to derive order identifiers from the
// creation timestamp. The resulting id has second granularity and is unique
// only within one user's order list, not globally.
const IDTimeLayout = "20060102150405"

// Rating bounds for delivered orders.
const (
	RatingMin = 1
	RatingMax = 5
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder or RestoreOrder factory methods.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")
)

// NewID derives an order identifier from a creation timestamp.
func NewID(createdAt time.Time) string {
	return createdAt.Format(IDTimeLayout)
}

// Commission computes the courier commission for an order total at the given
// rate, rounded down to a whole currency unit. The result is frozen into the
// order at delivery time; later rate changes never alter it.
func Commission(total int64, rate float64) int64 {
	return int64(math.Floor(float64(total) * rate))
}

// Order represents a customer order in the system. It is the aggregate root
// that manages the order lifecycle from checkout through courier assignment
// to delivery and rating.
//
// Order follows these invariants:
//   - Identity is derived from the creation timestamp, unique within the
//     owning user's order list
//   - Product name and unit price are denormalized at creation time and
//     never re-read from the catalog
//   - total = unit price x quantity, computed once at creation
//   - Status transitions follow the rules enforced by Status
//   - The courier assignment, acceptance and delivery timestamps, frozen
//     commission and rating only ever move from absent to present
//
// The struct uses private fields to ensure encapsulation and maintains its
// invariants through validated methods.
type Order struct {
	id          string
	userID      int64
	productID   string
	productName string

	// unitPrice is the catalog price frozen at order-confirmation time
	// for the chosen packaging variant.
	unitPrice int64
	quantity  int
	total     int64

	createdAt    time.Time
	deliveryTime DeliveryTime
	comment      string
	packaging    Packaging
	destination  kernel.Address

	status      Status
	courierID   *int64
	acceptedAt  *time.Time
	deliveredAt *time.Time

	// commission is computed and frozen at delivery time using the rate
	// in effect at that moment.
	commission *int64

	rated  bool
	rating *int

	isConstructed bool
}

// NewOrder creates a new pending Order from a completed checkout. This is
// the only way to create a fresh order, ensuring all business invariants
// are maintained.
//
// The order id and total are derived here: id from createdAt with second
// granularity, total as unitPrice x quantity. The unit price must already be
// the variant price resolved for the chosen packaging.
func NewOrder(
	userID int64,
	productID string,
	productName string,
	unitPrice int64,
	quantity int,
	createdAt time.Time,
	packaging Packaging,
	destination kernel.Address,
	deliveryTime DeliveryTime,
	comment string,
) (*Order, error) {
	if err := errors.Join(
		validateUserID(userID),
		validateProduct(productID, productName),
		validateUnitPrice(unitPrice),
		validateQuantity(quantity),
		validateCreatedAt(createdAt),
		packaging.Validate(),
		deliveryTime.Validate(),
		destination.Validate(),
	); err != nil {
		return nil, err
	}

	return &Order{
		id:            NewID(createdAt),
		userID:        userID,
		productID:     productID,
		productName:   productName,
		unitPrice:     unitPrice,
		quantity:      quantity,
		total:         unitPrice * int64(quantity),
		createdAt:     createdAt,
		deliveryTime:  deliveryTime,
		comment:       comment,
		packaging:     packaging,
		destination:   destination,
		status:        Pending,
		isConstructed: true,
	}, nil
}

// RestoreOrder reconstructs an Order from persistence. It accepts the full
// stored state and re-validates cross-field consistency (status versus
// courier assignment, rating presence versus rated flag).
func RestoreOrder(
	id string,
	userID int64,
	productID string,
	productName string,
	unitPrice int64,
	quantity int,
	total int64,
	createdAt time.Time,
	packaging Packaging,
	destination kernel.Address,
	deliveryTime DeliveryTime,
	comment string,
	status Status,
	courierID *int64,
	acceptedAt *time.Time,
	deliveredAt *time.Time,
	commission *int64,
	rated bool,
	rating *int,
) (*Order, error) {
	if err := errors.Join(
		validateID(id),
		validateUserID(userID),
		validateProduct(productID, productName),
		validateUnitPrice(unitPrice),
		validateQuantity(quantity),
		validateCreatedAt(createdAt),
		packaging.Validate(),
		deliveryTime.Validate(),
		destination.Validate(),
		status.Validate(),
		status.ValidateCanHaveCourier(courierID != nil),
	); err != nil {
		return nil, err
	}

	if rated && rating == nil {
		return nil, errs.NewValueIsRequiredError("rating")
	}

	return &Order{
		id:            id,
		userID:        userID,
		productID:     productID,
		productName:   productName,
		unitPrice:     unitPrice,
		quantity:      quantity,
		total:         total,
		createdAt:     createdAt,
		deliveryTime:  deliveryTime,
		comment:       comment,
		packaging:     packaging,
		destination:   destination,
		status:        status,
		courierID:     courierID,
		acceptedAt:    acceptedAt,
		deliveredAt:   deliveredAt,
		commission:    commission,
		rated:         rated,
		rating:        rating,
		isConstructed: true,
	}, nil
}

// Validate ensures the Order instance was properly constructed through one
// of the factory methods.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by owner and identifier. Order ids are unique
// only within one user's list, so both must match.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.userID == other.userID && o.id == other.id
}

// ID returns the timestamp-derived order identifier.
func (o *Order) ID() string { return o.id }

// UserID returns the owning customer's identifier.
func (o *Order) UserID() int64 { return o.userID }

// ProductID returns the catalog identifier of the ordered product.
func (o *Order) ProductID() string { return o.productID }

// ProductName returns the product name denormalized at creation time.
func (o *Order) ProductName() string { return o.productName }

// UnitPrice returns the frozen per-unit price.
func (o *Order) UnitPrice() int64 { return o.unitPrice }

// Quantity returns the ordered quantity.
func (o *Order) Quantity() int { return o.quantity }

// Total returns the frozen order total (unit price x quantity).
func (o *Order) Total() int64 { return o.total }

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time { return o.createdAt }

// DeliveryTime returns the customer's delivery-time preference.
func (o *Order) DeliveryTime() DeliveryTime { return o.deliveryTime }

// Comment returns the free-text comment collected at checkout.
func (o *Order) Comment() string { return o.comment }

// Packaging returns the packaging variant chosen at checkout.
func (o *Order) Packaging() Packaging { return o.packaging }

// Destination returns the delivery address.
func (o *Order) Destination() kernel.Address { return o.destination }

// Status returns the current lifecycle status.
func (o *Order) Status() Status { return o.status }

// Courier returns the assigned courier's id, or nil while unassigned.
func (o *Order) Courier() *int64 { return o.courierID }

// AcceptedAt returns the acceptance timestamp, or nil while unassigned.
func (o *Order) AcceptedAt() *time.Time { return o.acceptedAt }

// DeliveredAt returns the delivery timestamp, or nil until delivered.
func (o *Order) DeliveredAt() *time.Time { return o.deliveredAt }

// FrozenCommission returns the commission frozen at delivery time, or nil
// for orders delivered before commission freezing existed.
func (o *Order) FrozenCommission() *int64 { return o.commission }

// IsRated reports whether the customer has rated the delivery.
func (o *Order) IsRated() bool { return o.rated }

// Rating returns the rating value, or nil while unrated.
func (o *Order) Rating() *int { return o.rating }

// IsUnassigned reports whether no courier has claimed the order yet.
func (o *Order) IsUnassigned() bool { return o.courierID == nil }

// Accept assigns the order to a courier and moves it to OnDelivery.
//
// Business rules:
//   - The order must be pending
//   - No courier may be assigned yet; a second accept attempt observes
//     ErrConflict so the caller never reports a false claim
//
// The in-memory guard mirrors the compare-and-set the persistence layer
// performs on write; both must hold for the claim to succeed.
func (o *Order) Accept(courierID int64, at time.Time) error {
	if courierID <= 0 {
		return errs.NewValueIsInvalidError("courierId")
	}

	if o.courierID != nil {
		return errs.NewConflictErrorWithCause("orderId", o.id,
			fmt.Errorf("order is already taken by courier %d", *o.courierID))
	}

	newStatus, err := o.status.Accept()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.courierID = &courierID
	o.acceptedAt = &at
	return nil
}

// Deliver marks the order as delivered and freezes the commission.
//
// Business rules:
//   - The order must be on delivery
//   - Only the courier who accepted the order may deliver it
//   - commission = floor(total x rate) is computed once, using the rate in
//     effect at this moment; later rate changes never alter it
func (o *Order) Deliver(courierID int64, at time.Time, rate float64) error {
	if o.courierID == nil || *o.courierID != courierID {
		return errs.NewConflictErrorWithCause("orderId", o.id,
			fmt.Errorf("order is not assigned to courier %d", courierID))
	}

	newStatus, err := o.status.Deliver()
	if err != nil {
		return err
	}

	commission := Commission(o.total, rate)

	o.status = newStatus
	o.deliveredAt = &at
	o.commission = &commission
	return nil
}

// Cancel abandons a pending, unassigned order. Cancelled is a terminal
// state distinct from Delivered.
func (o *Order) Cancel() error {
	if o.courierID != nil {
		return errs.NewConflictErrorWithCause("orderId", o.id,
			fmt.Errorf("order is already taken by courier %d", *o.courierID))
	}

	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Rate records the customer's rating for a delivered order.
//
// Business rules:
//   - The order must be delivered
//   - The order must not be rated yet; a repeated attempt observes
//     ErrConflict
//   - The value must lie within [RatingMin, RatingMax]
func (o *Order) Rate(value int) error {
	if o.status != Delivered {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to rate", o.status.String()),
		)
	}

	if o.rated {
		return errs.NewConflictErrorWithCause("orderId", o.id,
			errors.New("order is already rated"))
	}

	if value < RatingMin || value > RatingMax {
		return errs.NewValueIsOutOfRangeError("rating", value, RatingMin, RatingMax)
	}

	o.rated = true
	o.rating = &value
	return nil
}

// StatsDate returns the date used by reporting: the delivery timestamp, or
// the creation timestamp when the delivery timestamp is absent.
func (o *Order) StatsDate() time.Time {
	if o.deliveredAt != nil {
		return *o.deliveredAt
	}
	return o.createdAt
}

func validateID(id string) error {
	if id == "" {
		return errs.NewValueIsRequiredError("orderId")
	}
	return nil
}

func validateUserID(userID int64) error {
	if userID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("userId", fmt.Errorf("%d is not a valid user id", userID))
	}
	return nil
}

func validateProduct(productID, productName string) error {
	if productID == "" {
		return errs.NewValueIsRequiredError("productId")
	}
	if productName == "" {
		return errs.NewValueIsRequiredError("productName")
	}
	return nil
}

func validateUnitPrice(unitPrice int64) error {
	if unitPrice <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("unitPrice", fmt.Errorf("%d is not greater than 0", unitPrice))
	}
	return nil
}

func validateQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}
	return nil
}

func validateCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}
	return nil
}
