package services

import (
	"samsip_orders/internal/httperr"

	"golang.org/x/crypto/bcrypt"
)

// ApprovalPolicy holds the shared approval secret (as a bcrypt hash, so the
// plain text never lives on the struct) and the identity stamped on approved
// orders.
type ApprovalPolicy struct {
	secretHash   []byte
	ApproverName string
}

func NewApprovalPolicy(secret, approverName string) (*ApprovalPolicy, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return &ApprovalPolicy{secretHash: hash, ApproverName: approverName}, nil
}

func (p *ApprovalPolicy) Authorize(password string) error {
	if err := bcrypt.CompareHashAndPassword(p.secretHash, []byte(password)); err != nil {
		return httperr.ErrUnauthorized
	}
	return nil
}
