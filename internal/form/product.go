package form

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"plantstore-admin/internal/apierr"
	"plantstore-admin/internal/model"
)

// numericFields keeps user-typed numbers as sanitized strings in the draft.
var numericFields = map[string]bool{
	"price":              true,
	"originalPrice":      true,
	"discountPercentage": true,
	"rating":             true,
	"reviews":            true,
}

// serverErrorTokens maps substrings of backend validation messages onto the
// draft field they belong to, so server rejections land in the same error map
// as local validation.
var serverErrorTokens = map[string]string{
	"name":     "name",
	"category": "category",
	"color":    "color",
	"price":    "price",
	"discount": "discountPercentage",
	"image":    "images",
}

// ProductDraft is the in-progress product record behind the form.
type ProductDraft struct {
	Name                string
	Category            string
	Season              string
	Color               string
	ShortDescription    string
	Description         string
	Rating              string
	Price               string
	OriginalPrice       string
	DiscountPercentage  string
	SizeRanges          []string
	InStock             bool
	Reviews             string
	ProductType         string
	PlantType           string
	IsBestseller        bool
	IsTrending          bool
	Weight              string
	Dimensions          string
	WaterRequirement    string
	SunlightRequirement string
	FAQs                []model.FAQ
	CODAvailable        bool

	// ExistingImages are URLs carried over from the record being edited.
	ExistingImages []string
}

// ProductForm owns a draft, its attachments and the seeding state for edit
// mode.
type ProductForm struct {
	draft    ProductDraft
	uploads  []*Upload
	recordID string
	seeded   bool
}

func NewProductForm() *ProductForm {
	return &ProductForm{
		draft: ProductDraft{
			Season:  "All",
			InStock: true,
			FAQs:    []model.FAQ{{}},
		},
	}
}

// Seed fills the draft from an existing record exactly once per record
// identity. Calling it again with the same id leaves in-progress edits
// untouched; a different id replaces the draft wholesale.
func (f *ProductForm) Seed(p *model.Product) {
	if p == nil {
		return
	}
	if f.seeded && f.recordID == p.ID {
		return
	}

	faqs := make([]model.FAQ, len(p.FAQs))
	copy(faqs, p.FAQs)
	if len(faqs) == 0 {
		faqs = []model.FAQ{{}}
	}

	f.draft = ProductDraft{
		Name:                p.Name,
		Category:            p.Category.ID,
		Season:              p.Season,
		Color:               p.Color.ID,
		ShortDescription:    p.ShortDescription,
		Description:         p.Description,
		Rating:              formatNumber(p.Rating),
		Price:               formatNumber(p.Price),
		OriginalPrice:       formatNumber(p.OriginalPrice),
		DiscountPercentage:  formatNumber(p.DiscountPercentage),
		SizeRanges:          append([]string(nil), p.SizeRanges...),
		InStock:             p.InStock,
		Reviews:             strconv.Itoa(p.Reviews),
		ProductType:         p.ProductType.ID,
		PlantType:           p.PlantType.ID,
		IsBestseller:        p.IsBestseller,
		IsTrending:          p.IsTrending,
		Weight:              p.Weight,
		Dimensions:          p.Dimensions,
		WaterRequirement:    p.WaterRequirement,
		SunlightRequirement: p.SunlightRequirement,
		FAQs:                faqs,
		CODAvailable:        p.CODAvailable,
		ExistingImages:      append([]string(nil), p.ImageURLs...),
	}
	f.uploads = nil
	f.recordID = p.ID
	f.seeded = true
}

// RecordID is the id carried through to the update call; empty for a new
// product.
func (f *ProductForm) RecordID() string { return f.recordID }

func (f *ProductForm) Draft() ProductDraft { return f.draft }

// SetField updates one text or numeric field by form name.
func (f *ProductForm) SetField(name, value string) error {
	if numericFields[name] {
		value = SanitizeNumeric(value)
	}

	switch name {
	case "name":
		f.draft.Name = value
	case "category":
		f.draft.Category = value
	case "season":
		f.draft.Season = value
	case "color":
		f.draft.Color = value
	case "shortDescription":
		f.draft.ShortDescription = value
	case "description":
		f.draft.Description = value
	case "rating":
		f.draft.Rating = value
	case "price":
		f.draft.Price = value
	case "originalPrice":
		f.draft.OriginalPrice = value
	case "discountPercentage":
		f.draft.DiscountPercentage = value
	case "reviews":
		f.draft.Reviews = value
	case "productType":
		f.draft.ProductType = value
	case "plantType":
		f.draft.PlantType = value
	case "weight":
		f.draft.Weight = value
	case "dimensions":
		f.draft.Dimensions = value
	case "waterRequirement":
		f.draft.WaterRequirement = value
	case "sunlightRequirement":
		f.draft.SunlightRequirement = value
	default:
		return fmt.Errorf("unknown field %q", name)
	}
	return nil
}

// SetFlag updates one boolean field by form name.
func (f *ProductForm) SetFlag(name string, on bool) error {
	switch name {
	case "inStock":
		f.draft.InStock = on
	case "isBestseller":
		f.draft.IsBestseller = on
	case "isTrending":
		f.draft.IsTrending = on
	case "codAvailable":
		f.draft.CODAvailable = on
	default:
		return fmt.Errorf("unknown flag %q", name)
	}
	return nil
}

func (f *ProductForm) SetSizeRanges(ranges []string) {
	f.draft.SizeRanges = append([]string(nil), ranges...)
}

func (f *ProductForm) SetFAQs(faqs []model.FAQ) {
	f.draft.FAQs = append([]model.FAQ(nil), faqs...)
}

// AttachImage adds an upload and returns its preview URL. Oversized files are
// rejected without touching the draft.
func (f *ProductForm) AttachImage(filename string, data []byte) (string, error) {
	up, err := newUpload(filename, data)
	if err != nil {
		return "", err
	}
	f.uploads = append(f.uploads, up)
	return up.PreviewURL, nil
}

func (f *ProductForm) Uploads() []*Upload { return f.uploads }

// Validate runs the local, synchronous field checks. Submission must not
// reach the network unless the returned map is empty.
func (f *ProductForm) Validate() Errors {
	errs := Errors{}

	if strings.TrimSpace(f.draft.Name) == "" {
		errs["name"] = "Product name is required"
	}
	if f.draft.Category == "" {
		errs["category"] = "Category is required"
	}

	price, ok := f.requireDecimal(errs, "price", f.draft.Price, "Price")
	if ok && price.IsNegative() {
		errs["price"] = "Price cannot be negative"
	}

	// "0" in either field means the record carries no discount
	hasDiscount := f.draft.DiscountPercentage != "" && f.draft.DiscountPercentage != "0"
	hasOriginal := f.draft.OriginalPrice != "" && f.draft.OriginalPrice != "0"
	if hasOriginal {
		original, err := decimal.NewFromString(f.draft.OriginalPrice)
		if err != nil {
			errs["originalPrice"] = "Original price must be a number"
		} else if ok && hasDiscount && !original.GreaterThan(price) {
			// a discount only applies when the original price sits above
			// the selling price
			errs["discountPercentage"] = "Discount requires an original price above the current price"
		}
	} else if hasDiscount {
		errs["discountPercentage"] = "Discount requires an original price above the current price"
	}

	return errs
}

func (f *ProductForm) requireDecimal(errs Errors, field, value, label string) (decimal.Decimal, bool) {
	if value == "" {
		errs[field] = label + " is required"
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(value)
	if err != nil {
		errs[field] = label + " must be a number"
		return decimal.Zero, false
	}
	return d, true
}

// Payload assembles the multipart body for create/update: scalar fields as
// strings, image files as binary parts, faqs and existingImages serialized to
// JSON string fields.
func (f *ProductForm) Payload() (io.Reader, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	fields := map[string]string{
		"name":                f.draft.Name,
		"category":            f.draft.Category,
		"season":              f.draft.Season,
		"color":               f.draft.Color,
		"shortDescription":    f.draft.ShortDescription,
		"description":         f.draft.Description,
		"rating":              f.draft.Rating,
		"price":               f.draft.Price,
		"originalPrice":       f.draft.OriginalPrice,
		"discountPercentage":  f.draft.DiscountPercentage,
		"sizeRanges":          strings.Join(f.draft.SizeRanges, ","),
		"inStock":             strconv.FormatBool(f.draft.InStock),
		"reviews":             f.draft.Reviews,
		"productType":         f.draft.ProductType,
		"plantType":           f.draft.PlantType,
		"isBestseller":        strconv.FormatBool(f.draft.IsBestseller),
		"isTrending":          strconv.FormatBool(f.draft.IsTrending),
		"weight":              f.draft.Weight,
		"dimensions":          f.draft.Dimensions,
		"waterRequirement":    f.draft.WaterRequirement,
		"sunlightRequirement": f.draft.SunlightRequirement,
		"codAvailable":        strconv.FormatBool(f.draft.CODAvailable),
	}
	for name, value := range fields {
		if err := w.WriteField(name, value); err != nil {
			return nil, "", fmt.Errorf("write field %s: %w", name, err)
		}
	}

	faqs, err := json.Marshal(nonEmptyFAQs(f.draft.FAQs))
	if err != nil {
		return nil, "", fmt.Errorf("marshal faqs: %w", err)
	}
	if err := w.WriteField("faqs", string(faqs)); err != nil {
		return nil, "", fmt.Errorf("write faqs: %w", err)
	}

	existing, err := json.Marshal(f.draft.ExistingImages)
	if err != nil {
		return nil, "", fmt.Errorf("marshal existing images: %w", err)
	}
	if err := w.WriteField("existingImages", string(existing)); err != nil {
		return nil, "", fmt.Errorf("write existing images: %w", err)
	}

	for _, up := range f.uploads {
		part, err := w.CreateFormFile("images", up.Filename)
		if err != nil {
			return nil, "", fmt.Errorf("create image part: %w", err)
		}
		if _, err := part.Write(up.Data); err != nil {
			return nil, "", fmt.Errorf("write image part: %w", err)
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("close multipart writer: %w", err)
	}

	return &buf, w.FormDataContentType(), nil
}

// MapServerError converts a backend validation rejection into field errors by
// matching known tokens in the message. Unrecognized messages return an empty
// map; the caller falls back to a toast.
func MapServerError(err error) Errors {
	msg := strings.ToLower(apierr.UserMessage(err, ""))
	if msg == "" {
		return Errors{}
	}

	errs := Errors{}
	for token, field := range serverErrorTokens {
		if strings.Contains(msg, token) {
			errs[field] = apierr.UserMessage(err, "")
		}
	}
	return errs
}

func nonEmptyFAQs(faqs []model.FAQ) []model.FAQ {
	out := make([]model.FAQ, 0, len(faqs))
	for _, faq := range faqs {
		if strings.TrimSpace(faq.Question) == "" && strings.TrimSpace(faq.Answer) == "" {
			continue
		}
		out = append(out, faq)
	}
	return out
}

func formatNumber(v float64) string {
	if v == 0 {
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
