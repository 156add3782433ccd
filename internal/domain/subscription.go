package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// SubscriptionKind identifies a subscription or service offered by the space
type SubscriptionKind string

const (
	SubscriptionEconomic SubscriptionKind = "economic"
	SubscriptionStandard SubscriptionKind = "standard"
	SubscriptionPremium  SubscriptionKind = "premium"
	SubscriptionRecovery SubscriptionKind = "recovery"
)

// SubscriptionKinds lists every subscription kind in display order
var SubscriptionKinds = []SubscriptionKind{
	SubscriptionEconomic,
	SubscriptionStandard,
	SubscriptionPremium,
	SubscriptionRecovery,
}

// Valid reports whether k is one of the known subscription kinds
func (k SubscriptionKind) Valid() bool {
	switch k {
	case SubscriptionEconomic, SubscriptionStandard, SubscriptionPremium, SubscriptionRecovery:
		return true
	}
	return false
}

// ParseSubscriptionKind converts a user supplied id into a SubscriptionKind
func ParseSubscriptionKind(s string) (SubscriptionKind, error) {
	k := SubscriptionKind(s)
	if !k.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownSubscription, s)
	}
	return k, nil
}

// BillingMode defines how a subscription is charged
type BillingMode string

const (
	BillingUnlimited    BillingMode = "unlimited_subscription"
	BillingSessionBased BillingMode = "session_based"
)

// Valid reports whether m is a known billing mode
func (m BillingMode) Valid() bool {
	return m == BillingUnlimited || m == BillingSessionBased
}

// SubscriptionType is immutable reference data describing one subscription offer.
// Price is per month for subscriptions and per session for session-based offers.
type SubscriptionType struct {
	Kind         SubscriptionKind `yaml:"kind" json:"kind"`
	DisplayName  string           `yaml:"display_name" json:"displayName"`
	Price        decimal.Decimal  `yaml:"price" json:"price"`
	Billing      BillingMode      `yaml:"billing" json:"billing"`
	SessionQuota *int             `yaml:"session_quota,omitempty" json:"sessionQuota,omitempty"`
}

// IsSessionBased reports whether revenue is charged per session
func (s SubscriptionType) IsSessionBased() bool {
	return s.Billing == BillingSessionBased
}

// HasQuota reports whether the subscription carries a finite monthly session quota
func (s SubscriptionType) HasQuota() bool {
	return s.SessionQuota != nil && *s.SessionQuota > 0
}

// Validate checks the reference data for internal consistency
func (s SubscriptionType) Validate() error {
	if !s.Kind.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownSubscription, s.Kind)
	}
	if !s.Billing.Valid() {
		return fmt.Errorf("subscription %s: unknown billing mode %q", s.Kind, s.Billing)
	}
	if s.Price.IsNegative() {
		return fmt.Errorf("subscription %s: price cannot be negative", s.Kind)
	}
	if s.SessionQuota != nil && *s.SessionQuota <= 0 {
		return fmt.Errorf("subscription %s: session quota must be positive", s.Kind)
	}
	return nil
}

// SubscriptionCatalog holds the subscription reference data keyed by kind.
// It is built once at startup and never mutated afterwards.
type SubscriptionCatalog struct {
	types map[SubscriptionKind]SubscriptionType
}

// NewSubscriptionCatalog builds a catalog from the given types, rejecting duplicates
func NewSubscriptionCatalog(types ...SubscriptionType) (*SubscriptionCatalog, error) {
	if len(types) == 0 {
		return nil, fmt.Errorf("%w: subscription catalog is empty", ErrInvalidConfig)
	}
	c := &SubscriptionCatalog{types: make(map[SubscriptionKind]SubscriptionType, len(types))}
	for _, t := range types {
		if err := t.Validate(); err != nil {
			return nil, err
		}
		if _, dup := c.types[t.Kind]; dup {
			return nil, fmt.Errorf("%w: duplicate subscription %s", ErrInvalidConfig, t.Kind)
		}
		c.types[t.Kind] = t
	}
	return c, nil
}

// Get returns the subscription type for kind
func (c *SubscriptionCatalog) Get(kind SubscriptionKind) (SubscriptionType, bool) {
	t, ok := c.types[kind]
	return t, ok
}

// Kinds returns the catalog's kinds in canonical order
func (c *SubscriptionCatalog) Kinds() []SubscriptionKind {
	kinds := make([]SubscriptionKind, 0, len(c.types))
	for _, k := range SubscriptionKinds {
		if _, ok := c.types[k]; ok {
			kinds = append(kinds, k)
		}
	}
	return kinds
}

// List returns a copy of every subscription type in canonical order
func (c *SubscriptionCatalog) List() []SubscriptionType {
	out := make([]SubscriptionType, 0, len(c.types))
	for _, k := range c.Kinds() {
		t := c.types[k]
		if t.SessionQuota != nil {
			q := *t.SessionQuota
			t.SessionQuota = &q
		}
		out = append(out, t)
	}
	return out
}

// Len returns the number of subscription types in the catalog
func (c *SubscriptionCatalog) Len() int {
	return len(c.types)
}
