package booking

import "strings"

type Type string

const (
	TypeRent      Type = "rent"
	TypeFlexiHire Type = "flexi_hire"
	TypePCOHire   Type = "pco_hire"
	TypeSales     Type = "sales"
)

var minimumDays = map[Type]int{
	TypeRent:      1,
	TypeFlexiHire: 180,
	TypePCOHire:   7,
	TypeSales:     0,
}

var typeLabels = map[Type]string{
	TypeRent:      "Rent",
	TypeFlexiHire: "Flexi Hire",
	TypePCOHire:   "PCO Hire",
	TypeSales:     "Sales",
}

func (t Type) String() string {
	return string(t)
}

func (t Type) Label() string {
	return typeLabels[t]
}

func (t Type) IsValid() bool {
	_, ok := minimumDays[t]
	return ok
}

// MinimumDays is the shortest allowed dropoff minus pickup, in whole days.
func (t Type) MinimumDays() int {
	return minimumDays[t]
}

// ParseType accepts both stored values ("flexi_hire") and display labels ("Flexi Hire").
func ParseType(raw string) (Type, error) {
	key := strings.ToLower(strings.TrimSpace(raw))
	key = strings.NewReplacer(" ", "_", "-", "_").Replace(key)
	if t := Type(key); t.IsValid() {
		return t, nil
	}
	return "", ErrInvalidBookingType
}
