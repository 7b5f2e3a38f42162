package account

import (
	"errors"
	"net/mail"
	"strings"
	"time"

	"telecom/internal/core/domain/model/kernel"
	"telecom/internal/pkg/errs"
)

const ResourceType = "account"

var ErrAccountIsNotConstructed = errors.New("Account must be created via NewAccount or RestoreAccount")

// Account is a customer that owns zero or more lines. Lines reference the account
// by id; the account does not enumerate them.
type Account struct {
	id        kernel.UUID
	fullName  string
	email     string
	phone     string
	status    Status
	createdAt time.Time

	isConstructed bool
}

// NewAccount creates an account. An Unknown status defaults to Active.
func NewAccount(id kernel.UUID, fullName string, email string, phone string, status Status) (*Account, error) {
	if status == Unknown {
		status = Active
	}

	a := &Account{
		createdAt:     time.Now().UTC().Truncate(time.Microsecond),
		isConstructed: true,
	}
	if err := errors.Join(
		a.setID(id),
		a.setFullName(fullName),
		a.setEmail(email),
		a.setPhone(phone),
		a.setStatus(status),
	); err != nil {
		return nil, err
	}

	return a, nil
}

func RestoreAccount(
	id kernel.UUID,
	fullName string,
	email string,
	phone string,
	status Status,
	createdAt time.Time,
) (*Account, error) {
	a := &Account{
		createdAt:     createdAt,
		isConstructed: true,
	}
	if err := errors.Join(
		a.setID(id),
		a.setFullName(fullName),
		a.setEmail(email),
		a.setPhone(phone),
		a.setStatus(status),
	); err != nil {
		return nil, err
	}

	return a, nil
}

// Changes lists the fields to replace; nil means keep.
type Changes struct {
	FullName *string
	Email    *string
	Phone    *string
	Status   *Status
}

// Update applies changes atomically: on error the account is left untouched.
func (a *Account) Update(changes Changes) error {
	next := *a

	var errList []error
	if changes.FullName != nil {
		errList = append(errList, next.setFullName(*changes.FullName))
	}
	if changes.Email != nil {
		errList = append(errList, next.setEmail(*changes.Email))
	}
	if changes.Phone != nil {
		errList = append(errList, next.setPhone(*changes.Phone))
	}
	if changes.Status != nil {
		errList = append(errList, next.setStatus(*changes.Status))
	}
	if err := errors.Join(errList...); err != nil {
		return err
	}

	*a = next
	return nil
}

func (a *Account) Validate() error {
	if a == nil || !a.isConstructed {
		return ErrAccountIsNotConstructed
	}
	return nil
}

func (a *Account) ID() kernel.UUID      { return a.id }
func (a *Account) FullName() string     { return a.fullName }
func (a *Account) Email() string        { return a.email }
func (a *Account) Phone() string        { return a.phone }
func (a *Account) Status() Status       { return a.status }
func (a *Account) CreatedAt() time.Time { return a.createdAt }

func (a *Account) Snapshot() map[string]any {
	return map[string]any{
		"id":         a.id,
		"full_name":  a.fullName,
		"email":      a.email,
		"phone":      a.phone,
		"status":     a.status,
		"created_at": a.createdAt,
	}
}

func (a *Account) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

func (a *Account) setFullName(fullName string) error {
	fullName = strings.TrimSpace(fullName)
	if fullName == "" {
		return errs.NewValueIsRequiredError("full name")
	}
	a.fullName = fullName
	return nil
}

func (a *Account) setEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return errs.NewValueIsInvalidErrorWithCause("email", err)
	}
	a.email = strings.ToLower(email)
	return nil
}

func (a *Account) setPhone(phone string) error {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return errs.NewValueIsRequiredError("phone")
	}
	a.phone = phone
	return nil
}

func (a *Account) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	a.status = status
	return nil
}
