package user

import (
	"errors"
	"fmt"
	"time"

	"shopbot/internal/core/domain/model/kernel"
	"shopbot/internal/core/domain/model/order"
	"shopbot/internal/pkg/errs"
)

var (
	// ErrUserIsNotConstructed is returned when a User instance was not created
	// through the NewUser or RestoreUser factory methods.
	ErrUserIsNotConstructed = errors.New("User must be created via NewUser or RestoreUser constructor")
)

// User represents a registered customer. It is the aggregate root owning the
// customer's profile, shopping cart and order list.
//
// User follows these invariants:
//   - Identity is the numeric chat id, unique and stable
//   - The cart maps product id to a positive quantity; entries that reach
//     zero are removed, never stored
//   - The order list is append-only: orders are never reordered or removed,
//     only mutated in place through their own guarded transitions
//   - Both addresses are valid Address value objects
type User struct {
	id           int64
	name         string
	phone        string
	homeAddress  kernel.Address
	currentAddr  kernel.Address
	cart         map[string]int
	orders       []*order.Order
	registeredAt time.Time

	isConstructed bool
}

// NewUser creates a User at the end of a successful registration flow.
// The cart and order list start empty.
func NewUser(id int64, name, phone string, home, current kernel.Address, registeredAt time.Time) (*User, error) {
	if err := errors.Join(
		validateID(id),
		validateName(name),
		validatePhone(phone),
		home.Validate(),
		current.Validate(),
	); err != nil {
		return nil, err
	}

	return &User{
		id:            id,
		name:          name,
		phone:         phone,
		homeAddress:   home,
		currentAddr:   current,
		cart:          make(map[string]int),
		orders:        make([]*order.Order, 0),
		registeredAt:  registeredAt,
		isConstructed: true,
	}, nil
}

// RestoreUser reconstructs a User from persistence, including the stored
// cart and order list. Cart entries must carry positive quantities.
func RestoreUser(
	id int64,
	name, phone string,
	home, current kernel.Address,
	registeredAt time.Time,
	cart map[string]int,
	orders []*order.Order,
) (*User, error) {
	if err := errors.Join(
		validateID(id),
		validateName(name),
		validatePhone(phone),
		home.Validate(),
		current.Validate(),
	); err != nil {
		return nil, err
	}

	restoredCart := make(map[string]int, len(cart))
	for productID, quantity := range cart {
		if quantity <= 0 {
			return nil, errs.NewValueIsInvalidErrorWithCause("cart",
				fmt.Errorf("quantity %d for product %s is not positive", quantity, productID))
		}
		restoredCart[productID] = quantity
	}

	for _, o := range orders {
		if err := o.Validate(); err != nil {
			return nil, err
		}
		if o.UserID() != id {
			return nil, errs.NewValueIsInvalidErrorWithCause("orders",
				fmt.Errorf("order %s belongs to user %d", o.ID(), o.UserID()))
		}
	}

	if orders == nil {
		orders = make([]*order.Order, 0)
	}

	return &User{
		id:            id,
		name:          name,
		phone:         phone,
		homeAddress:   home,
		currentAddr:   current,
		cart:          restoredCart,
		orders:        orders,
		registeredAt:  registeredAt,
		isConstructed: true,
	}, nil
}

// Validate ensures the User instance was properly constructed through one of
// the factory methods.
func (u *User) Validate() error {
	if u == nil || !u.isConstructed {
		return ErrUserIsNotConstructed
	}

	return nil
}

// ID returns the user's numeric chat id.
func (u *User) ID() int64 { return u.id }

// Name returns the display name.
func (u *User) Name() string { return u.name }

// Phone returns the contact phone number.
func (u *User) Phone() string { return u.phone }

// HomeAddress returns the registered home address.
func (u *User) HomeAddress() kernel.Address { return u.homeAddress }

// CurrentAddress returns the most recently shared current address.
func (u *User) CurrentAddress() kernel.Address { return u.currentAddr }

// RegisteredAt returns the registration timestamp.
func (u *User) RegisteredAt() time.Time { return u.registeredAt }

// Cart returns a copy of the cart mapping (product id to quantity).
func (u *User) Cart() map[string]int {
	cart := make(map[string]int, len(u.cart))
	for productID, quantity := range u.cart {
		cart[productID] = quantity
	}
	return cart
}

// CartQuantity returns the cart quantity for a product, zero when absent.
func (u *User) CartQuantity(productID string) int {
	return u.cart[productID]
}

// Orders returns the user's order list in insertion order.
func (u *User) Orders() []*order.Order {
	return u.orders
}

// OrderByID finds an order in the user's list.
func (u *User) OrderByID(orderID string) (*order.Order, error) {
	for _, o := range u.orders {
		if o.ID() == orderID {
			return o, nil
		}
	}
	return nil, errs.NewObjectNotFoundError("orderId", orderID)
}

// AddToCart increments the cart quantity for a product and returns the new
// quantity.
func (u *User) AddToCart(productID string) (int, error) {
	if productID == "" {
		return 0, errs.NewValueIsRequiredError("productId")
	}

	u.cart[productID]++
	return u.cart[productID], nil
}

// RemoveFromCart decrements the cart quantity for a product and returns the
// new quantity. The entry is removed entirely when the quantity reaches
// zero; decrementing an absent entry is a no-op.
func (u *User) RemoveFromCart(productID string) (int, error) {
	if productID == "" {
		return 0, errs.NewValueIsRequiredError("productId")
	}

	quantity, ok := u.cart[productID]
	if !ok {
		return 0, nil
	}

	quantity--
	if quantity <= 0 {
		delete(u.cart, productID)
		return 0, nil
	}

	u.cart[productID] = quantity
	return quantity, nil
}

// PlaceOrder appends a new order to the user's list and clears the cart
// entry for the ordered product. The order must belong to this user and its
// id must not collide with an existing order in the list.
func (u *User) PlaceOrder(o *order.Order) error {
	if err := o.Validate(); err != nil {
		return err
	}

	if o.UserID() != u.id {
		return errs.NewValueIsInvalidErrorWithCause("order",
			fmt.Errorf("order %s belongs to user %d", o.ID(), o.UserID()))
	}

	for _, existing := range u.orders {
		if existing.ID() == o.ID() {
			return errs.NewConflictErrorWithCause("orderId", o.ID(),
				errors.New("an order with this id already exists"))
		}
	}

	u.orders = append(u.orders, o)
	delete(u.cart, o.ProductID())
	return nil
}

// UpdateName changes the display name.
func (u *User) UpdateName(name string) error {
	if err := validateName(name); err != nil {
		return err
	}
	u.name = name
	return nil
}

// UpdatePhone changes the contact phone number.
func (u *User) UpdatePhone(phone string) error {
	if err := validatePhone(phone); err != nil {
		return err
	}
	u.phone = phone
	return nil
}

// UpdateHomeAddress changes the home address.
func (u *User) UpdateHomeAddress(addr kernel.Address) error {
	if err := addr.Validate(); err != nil {
		return err
	}
	u.homeAddress = addr
	return nil
}

// UpdateCurrentAddress changes the current address.
func (u *User) UpdateCurrentAddress(addr kernel.Address) error {
	if err := addr.Validate(); err != nil {
		return err
	}
	u.currentAddr = addr
	return nil
}

func validateID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("userId", fmt.Errorf("%d is not a valid user id", id))
	}
	return nil
}

func validateName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	return nil
}

func validatePhone(phone string) error {
	if phone == "" {
		return errs.NewValueIsRequiredError("phone")
	}
	return nil
}
