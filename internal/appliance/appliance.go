// Package appliance models the tiered appliance variants and their
// classification and description rules.
package appliance

import (
	"errors"
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/conn-castle/appliance-catalog/internal/messages"
)

// ErrUnknownKind is returned when a kind name does not match a supported variant.
var ErrUnknownKind = errors.New("unknown appliance kind")

// Kind names one appliance variant.
type Kind string

const (
	// KindWasher is a washing machine.
	KindWasher Kind = "washer"
	// KindRefrigerator is a refrigerator.
	KindRefrigerator Kind = "refrigerator"
	// KindMicrowave is a microwave oven.
	KindMicrowave Kind = "microwave"
)

// Kinds returns every supported kind in display order.
func Kinds() []Kind {
	return []Kind{KindWasher, KindRefrigerator, KindMicrowave}
}

// ParseKind maps a kind name to a Kind.
func ParseKind(s string) (Kind, error) {
	value := Kind(strings.ToLower(strings.TrimSpace(s)))
	for _, kind := range Kinds() {
		if value == kind {
			return kind, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// Appliance is the capability every variant exposes.
type Appliance interface {
	Kind() Kind
	Classify() Tier
	Describe() string
	DescribeIn(labels Labels) string
}

// Record holds the identity and commercial fields shared by every variant.
// It is immutable once constructed.
type Record struct {
	id    string
	brand string
	model string
	price float64
}

// ID returns the appliance identifier.
func (r Record) ID() string { return r.id }

// Brand returns the brand name.
func (r Record) Brand() string { return r.brand }

// Model returns the model name.
func (r Record) Model() string { return r.model }

// Price returns the price.
func (r Record) Price() float64 { return r.price }

// lines renders the base fields in their fixed order.
func (r Record) lines(labels Labels) []string {
	return []string{
		fmt.Sprintf(messages.DescribeLineFmt, messages.LabelID, r.id),
		fmt.Sprintf(messages.DescribeLineFmt, labels.Brand, r.brand),
		fmt.Sprintf(messages.DescribeLineFmt, labels.Model, r.model),
		fmt.Sprintf(messages.DescribeLineFmt, labels.Price, formatPrice(r.price, labels.Currency)),
	}
}

// render joins base lines, variant lines and the trailing tier line.
func render(r Record, labels Labels, specific []string, tier Tier) string {
	all := r.lines(labels)
	all = append(all, specific...)
	all = append(all, messages.DescribeTierPrefix+tier.String())
	return strings.Join(all, "\n")
}

// formatPrice renders a price with thousands separators and two decimals.
// The integer part is grouped as a big.Int so prices past int64 keep their digits.
func formatPrice(price float64, currency string) string {
	fixed := strconv.FormatFloat(price, 'f', 2, 64)
	whole, cents, _ := strings.Cut(fixed, ".")
	n, ok := new(big.Int).SetString(whole, 10)
	if !ok {
		return fmt.Sprintf(messages.DescribePriceFmt, fixed, currency)
	}
	return fmt.Sprintf(messages.DescribePriceFmt, humanize.BigComma(n)+"."+cents, currency)
}

// formatNumber renders a measurement with the shortest exact representation.
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// withUnit appends a unit to a formatted measurement.
func withUnit(v float64, unit string) string {
	return formatNumber(v) + " " + unit
}

var (
	_ Appliance = (*Washer)(nil)
	_ Appliance = (*Refrigerator)(nil)
	_ Appliance = (*Microwave)(nil)
)
