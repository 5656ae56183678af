package entity

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Category classifies a product. It is persisted by name.
type Category string

const (
	CategoryUnknown    Category = "UNKNOWN"
	CategoryCloths     Category = "CLOTHS"
	CategoryFood       Category = "FOOD"
	CategoryHousewares Category = "HOUSEWARES"
	CategoryAutomotive Category = "AUTOMOTIVE"
	CategoryTools      Category = "TOOLS"
)

// Categories lists every known category, CategoryUnknown included.
func Categories() []Category {
	return []Category{
		CategoryUnknown,
		CategoryCloths,
		CategoryFood,
		CategoryHousewares,
		CategoryAutomotive,
		CategoryTools,
	}
}

// ParseCategory maps a name to its Category. Unrecognized names map to
// CategoryUnknown rather than failing.
func ParseCategory(s string) Category {
	c := Category(strings.ToUpper(strings.TrimSpace(s)))
	if c.Valid() {
		return c
	}
	return CategoryUnknown
}

func (c Category) Valid() bool {
	switch c {
	case CategoryUnknown, CategoryCloths, CategoryFood, CategoryHousewares, CategoryAutomotive, CategoryTools:
		return true
	}
	return false
}

type Product struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name        string          `gorm:"type:varchar(255);not null;index" json:"name" validate:"required,min=2"`
	Description string          `gorm:"type:text" json:"description"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	// No column default on purpose: with one, the ORM omits a false value on
	// insert and the default wins.
	Available bool      `gorm:"not null;index" json:"available"`
	Category  Category  `gorm:"type:varchar(32);not null;index" json:"category" validate:"required,oneof=UNKNOWN CLOTHS FOOD HOUSEWARES AUTOMOTIVE TOOLS"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Product) TableName() string {
	return "products"
}

// Persisted reports whether the store has assigned an identifier.
func (p *Product) Persisted() bool {
	return p.ID != uuid.Nil
}

func (p *Product) String() string {
	id := "None"
	if p.Persisted() {
		id = p.ID.String()
	}
	return fmt.Sprintf("<Product %s id=[%s]>", p.Name, id)
}
