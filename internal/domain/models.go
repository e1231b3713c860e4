package domain

import "time"

// ProductCategory is the closed set of catalog categories.
type ProductCategory string

const (
	CategoryTShirt ProductCategory = "tshirt"
	CategoryHoodie ProductCategory = "hoodie"
)

func (c ProductCategory) Valid() bool {
	return c == CategoryTShirt || c == CategoryHoodie
}

// PlaceholderImage is served when a product carries no images of its own.
const PlaceholderImage = "/images/product-placeholder.jpg"

// Product is a catalog entry. Prices are whole currency units.
type Product struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       int             `json:"price"`
	Category    ProductCategory `json:"category"`
	Sizes       []string        `json:"sizes"`
	Colors      []string        `json:"colors"`
	Images      []string        `json:"images"`
	InStock     bool            `json:"inStock"`
	Featured    bool            `json:"featured,omitempty"`
	CreatedAt   time.Time       `json:"createdAt,omitzero"`
}

// Thumbnail returns the canonical display image (the first one).
func (p Product) Thumbnail() string {
	if len(p.Images) > 0 {
		return p.Images[0]
	}
	return PlaceholderImage
}

// CartLine is one cart entry. Product is a snapshot taken at add time;
// later catalog edits do not change it.
type CartLine struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
	Size     string  `json:"size"`
	Color    string  `json:"color"`
}

// CustomerInfo is the contact block attached to an order.
type CustomerInfo struct {
	Name    string `json:"name"`
	Contact string `json:"contact"`
	Phone   string `json:"phone"`
}

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusCompleted  OrderStatus = "completed"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusCompleted, OrderStatusCancelled:
		return true
	}
	return false
}

// OrderLine is a flattened snapshot of a purchased cart line.
type OrderLine struct {
	ProductID string `json:"productId"`
	Name      string `json:"name"`
	Price     int    `json:"price"` // unit price at order time
	Image     string `json:"image,omitempty"`
	Quantity  int    `json:"quantity"`
	Size      string `json:"size,omitempty"`
	Color     string `json:"color,omitempty"`
}

type Order struct {
	ID           string       `json:"id"`
	Items        []OrderLine  `json:"items"`
	TotalPrice   int          `json:"totalPrice"`
	CustomerInfo CustomerInfo `json:"customerInfo"`
	Date         time.Time    `json:"date"`
	Status       OrderStatus  `json:"status"`
}

type CustomPrintStatus string

const (
	CustomPrintStatusNew        CustomPrintStatus = "new"
	CustomPrintStatusProcessing CustomPrintStatus = "processing"
	CustomPrintStatusCompleted  CustomPrintStatus = "completed"
	CustomPrintStatusCancelled  CustomPrintStatus = "cancelled"
)

func (s CustomPrintStatus) Valid() bool {
	switch s {
	case CustomPrintStatusNew, CustomPrintStatusProcessing, CustomPrintStatusCompleted, CustomPrintStatusCancelled:
		return true
	}
	return false
}

// CustomPrintRequest records a custom-print enquiry. The image payload is
// never retained beyond the outgoing notification; only HasImage survives.
type CustomPrintRequest struct {
	ID       string            `json:"id"`
	Name     string            `json:"name"`
	Contact  string            `json:"contact"`
	Phone    string            `json:"phone"`
	Message  string            `json:"message"`
	HasImage bool              `json:"hasImage,omitempty"`
	Date     time.Time         `json:"date"`
	Status   CustomPrintStatus `json:"status"`
}
