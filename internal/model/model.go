package model

import (
	"encoding/json"
	"strings"
	"time"
)

// Order lifecycle statuses as the backend reports them.
const (
	OrderPending    = "pending"
	OrderProcessing = "processing"
	OrderShipped    = "shipped"
	OrderDelivered  = "delivered"
	OrderCancelled  = "cancelled"
)

// OrderStatuses lists every status an order can be moved to.
var OrderStatuses = []string{
	OrderPending,
	OrderProcessing,
	OrderShipped,
	OrderDelivered,
	OrderCancelled,
}

// Application statuses on retailer/supplier records.
const (
	ApplicationAccepted = "accepted"
	ApplicationPending  = "pending"
	ApplicationRejected = "rejected"
)

// Payment methods on orders.
const (
	PaymentOnline = "online"
	PaymentCOD    = "cod"
)

// Ref is a reference field that the backend returns either as a raw id
// string or as an expanded {_id, name} object, depending on fetch context.
type Ref struct {
	ID   string `json:"_id"`
	Name string `json:"name"`
}

func (r *Ref) UnmarshalJSON(data []byte) error {
	var id string
	if err := json.Unmarshal(data, &id); err == nil {
		r.ID = id
		r.Name = ""
		return nil
	}

	type ref Ref
	var expanded ref
	if err := json.Unmarshal(data, &expanded); err != nil {
		return err
	}
	*r = Ref(expanded)
	return nil
}

func (r Ref) MarshalJSON() ([]byte, error) {
	if r.Name == "" {
		return json.Marshal(r.ID)
	}
	type ref Ref
	return json.Marshal(ref(r))
}

type FAQ struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type Product struct {
	ID                  string   `json:"_id"`
	Name                string   `json:"name"`
	ImageURLs           []string `json:"imageUrls"` // first entry is the primary image
	Category            Ref      `json:"category"`
	Season              string   `json:"season"`
	Color               Ref      `json:"color"`
	ShortDescription    string   `json:"shortDescription"`
	Description         string   `json:"description"`
	Rating              float64  `json:"rating"`
	Price               float64  `json:"price"`
	OriginalPrice       float64  `json:"originalPrice,omitempty"`
	DiscountPercentage  float64  `json:"discountPercentage"`
	SizeRanges          []string `json:"sizeRanges"`
	InStock             bool     `json:"inStock"`
	Reviews             int      `json:"reviews"`
	ProductType         Ref      `json:"productType"`
	PlantType           Ref      `json:"plantType"`
	IsBestseller        bool     `json:"isBestseller"`
	IsTrending          bool     `json:"isTrending"`
	Weight              string   `json:"weight"`
	Dimensions          string   `json:"dimensions"`
	WaterRequirement    string   `json:"waterRequirement"`
	SunlightRequirement string   `json:"sunlightRequirement"`
	FAQs                []FAQ    `json:"faqs"`
	CODAvailable        bool     `json:"codAvailable"`
}

// Attribute is the shape shared by categories, colors, product types and
// plant types.
type Attribute struct {
	ID   string `json:"_id"`
	Name string `json:"name"`
}

type Customer struct {
	ID        string `json:"_id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

// DisplayName joins first and last name, falling back to "Unknown" the way
// the dashboard renders customers with a missing user reference.
func (c *Customer) DisplayName() string {
	if c == nil {
		return "Unknown"
	}
	name := c.FirstName
	if c.LastName != "" {
		if name != "" {
			name += " "
		}
		name += c.LastName
	}
	if name == "" {
		return "Unknown"
	}
	return name
}

type OrderItem struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

type Address struct {
	AddressLine string `json:"addressLine"`
	City        string `json:"city"`
	State       string `json:"state"`
	Pincode     string `json:"pincode"`
}

type PaymentInfo struct {
	BillingAmount float64 `json:"billingAmount"`
}

type Order struct {
	ID                string       `json:"_id"`
	Time              time.Time    `json:"time"`
	Customer          *Customer    `json:"userId"`
	Status            string       `json:"status"`
	PaymentMethod     string       `json:"paymentMethod"` // online | cod
	IsPaid            bool         `json:"isPaid"`
	Items             []OrderItem  `json:"products"`
	DeliveryAddress   *Address     `json:"deliveryAddress"`
	PaymentInfo       *PaymentInfo `json:"paymentInfo"`
	RazorpayPaymentID string       `json:"razorpayPaymentId,omitempty"`
}

// Total is the computed billing amount shown in the orders table.
func (o *Order) Total() float64 {
	if o.PaymentInfo == nil {
		return 0
	}
	return o.PaymentInfo.BillingAmount
}

// ShortID is the last six characters of the order id, upper-cased, used as
// the human-facing order number.
func (o *Order) ShortID() string {
	id := o.ID
	if len(id) > 6 {
		id = id[len(id)-6:]
	}
	return strings.ToUpper(id)
}

// Banner types. The backend keeps at most one banner per type.
const (
	BannerMain  = "main"
	BannerOffer = "offer"
)

type Banner struct {
	ID          string `json:"_id"`
	Type        string `json:"type"` // main | offer
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
}

// Application is a retailer or supplier onboarding record.
type Application struct {
	ID                string `json:"_id"`
	Name              string `json:"name"`
	Email             string `json:"email"`
	Phone             string `json:"phone"`
	BusinessName      string `json:"businessName"`
	ApplicationStatus string `json:"applicationStatus"` // accepted | pending | rejected
}

type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}
