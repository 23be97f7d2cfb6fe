package booking

import (
	"errors"
	"strings"
)

var (
	ErrEmptyGuestName   = errors.New("guest name cannot be empty")
	ErrEmptyGuestPhone  = errors.New("guest phone cannot be empty")
	ErrEmptyIdentityDoc = errors.New("guest identity document cannot be empty")
)

// GuestInfo is the shared guest identity block carried by both variants.
type GuestInfo struct {
	fullName    string
	address     string
	phone       string
	identityDoc string
	email       string
}

func NewGuestInfo(fullName, address, phone, identityDoc, email string) (GuestInfo, error) {
	fullName = strings.TrimSpace(fullName)
	phone = strings.TrimSpace(phone)
	identityDoc = strings.TrimSpace(identityDoc)

	if fullName == "" {
		return GuestInfo{}, ErrEmptyGuestName
	}
	if phone == "" {
		return GuestInfo{}, ErrEmptyGuestPhone
	}
	if identityDoc == "" {
		return GuestInfo{}, ErrEmptyIdentityDoc
	}

	return GuestInfo{
		fullName:    fullName,
		address:     strings.TrimSpace(address),
		phone:       phone,
		identityDoc: identityDoc,
		email:       strings.ToLower(strings.TrimSpace(email)),
	}, nil
}

// ReconstructGuestInfo rebuilds guest data from storage without
// re-running creation validation.
func ReconstructGuestInfo(fullName, address, phone, identityDoc, email string) GuestInfo {
	return GuestInfo{
		fullName:    fullName,
		address:     address,
		phone:       phone,
		identityDoc: identityDoc,
		email:       email,
	}
}

func (g GuestInfo) FullName() string    { return g.fullName }
func (g GuestInfo) Address() string     { return g.address }
func (g GuestInfo) Phone() string       { return g.phone }
func (g GuestInfo) IdentityDoc() string { return g.identityDoc }
func (g GuestInfo) Email() string       { return g.email }
