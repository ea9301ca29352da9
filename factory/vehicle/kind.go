package vehicle

import (
	"fmt"
	"strings"

	"github.com/go-leo/gox/convx"
	"golang.org/x/exp/slices"
)

// Kind selects which Vehicle the factory builds.
type Kind int

const (
	CarKind Kind = iota
	BikeKind
	TruckKind
)

var kinds = []Kind{CarKind, BikeKind, TruckKind}

// Kinds returns every defined kind in declaration order.
func Kinds() []Kind {
	return slices.Clone(kinds)
}

func (k Kind) String() string {
	switch k {
	case CarKind:
		return "car"
	case BikeKind:
		return "bike"
	case TruckKind:
		return "truck"
	default:
		return "Kind(" + convx.ToString(int(k)) + ")"
	}
}

// Valid reports ErrInvalidSelector for values outside the defined kinds.
func (k Kind) Valid() error {
	if slices.Contains(kinds, k) {
		return nil
	}
	return fmt.Errorf("%w: %s", ErrInvalidSelector, k)
}

// ParseKind returns the kind named by s, ignoring case and surrounding spaces.
func ParseKind(s string) (Kind, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for _, k := range kinds {
		if k.String() == name {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidSelector, s)
}

func (k Kind) MarshalText() ([]byte, error) {
	if err := k.Valid(); err != nil {
		return nil, err
	}
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
