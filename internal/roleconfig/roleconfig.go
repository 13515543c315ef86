package roleconfig

import (
	"errors"
	"strings"
)

// Role identifies a sales role with its own metric catalog.
type Role string

const (
	RoleDialer Role = "dialer"
	RoleSetter Role = "setter"
	RoleCloser Role = "closer"
)

var (
	ErrUnknownRole = errors.New("unknown_role")
)

const (
	KindCount    = "count"
	KindCurrency = "currency"
)

// FieldSpec describes a single metric field on an EOD report.
type FieldSpec struct {
	Name  string
	Label string
	Kind  string
}

// Metrics holds a parsed report keyed by field name.
type Metrics map[string]float64

// Rule is one cross-field consistency check. Rules run in declaration
// order and the first failure wins, keyed to Field in the error map.
type Rule struct {
	Field   string
	Message string
	Failed  func(m Metrics) bool
}

// RateSpec derives a percentage from two metric fields.
type RateSpec struct {
	Name        string
	Numerator   string
	Denominator string
}

// RoleConfig is the full catalog for one role.
type RoleConfig struct {
	Role   Role
	Fields []FieldSpec
	Rules  []Rule
	Rates  []RateSpec
}

// FieldNames returns the catalog field names in declaration order.
func (rc RoleConfig) FieldNames() []string {
	names := make([]string, 0, len(rc.Fields))
	for _, f := range rc.Fields {
		names = append(names, f.Name)
	}
	return names
}

// HasField reports whether the catalog contains the named field.
func (rc RoleConfig) HasField(name string) bool {
	for _, f := range rc.Fields {
		if f.Name == name {
			return true
		}
	}
	return false
}

var registry = map[Role]RoleConfig{
	RoleDialer: dialerConfig,
	RoleSetter: setterConfig,
	RoleCloser: closerConfig,
}

// ForRole resolves the catalog for a role string.
func ForRole(raw string) (RoleConfig, error) {
	role := Role(strings.ToLower(strings.TrimSpace(raw)))
	cfg, ok := registry[role]
	if !ok {
		return RoleConfig{}, ErrUnknownRole
	}
	return cfg, nil
}

// Roles lists the known roles.
func Roles() []Role {
	return []Role{RoleDialer, RoleSetter, RoleCloser}
}
