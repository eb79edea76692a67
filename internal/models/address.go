package models

import (
	"fmt"
	"strings"
)

// Address is embedded in companies, developments and clients
type Address struct {
	Street     string `gorm:"size:200" json:"street"`
	Number     string `gorm:"size:20" json:"number"`
	Complement string `gorm:"size:100" json:"complement"`
	District   string `gorm:"size:100" json:"district"`
	City       string `gorm:"size:100" json:"city"`
	State      string `gorm:"size:2" json:"state"`
	PostalCode string `gorm:"column:postal_code;size:9" json:"postal_code"`
}

// IsZero reports whether no address part was filled in
func (a Address) IsZero() bool {
	return a.Street == "" && a.City == "" && a.PostalCode == ""
}

// Full formats the address as "street, nº number complement, district - city/state"
func (a Address) Full() string {
	if a.IsZero() {
		return ""
	}
	var b strings.Builder
	b.WriteString(a.Street)
	if a.Number != "" {
		fmt.Fprintf(&b, ", nº %s", a.Number)
	}
	if a.Complement != "" {
		b.WriteString(" " + a.Complement)
	}
	if a.District != "" {
		fmt.Fprintf(&b, ", %s", a.District)
	}
	if a.City != "" {
		fmt.Fprintf(&b, " - %s", a.City)
		if a.State != "" {
			b.WriteString("/" + a.State)
		}
	}
	return b.String()
}
