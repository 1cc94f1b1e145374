package model

import (
	"fmt"
	"math"
)

// Rule selects how an equivalence count is rendered.
type Rule string

const (
	// RuleWhole floors the count to an integer ("≈ 3888 cappuccinos").
	RuleWhole Rule = "whole"
	// RuleOneDecimal keeps one decimal place ("≈ 16.2 months of rent").
	RuleOneDecimal Rule = "one-decimal"
)

// Equivalence is one "could have bought instead" reference item.
type Equivalence struct {
	Label    string  `toml:"label" json:"label" yaml:"label"`
	Icon     string  `toml:"icon" json:"icon" yaml:"icon"`
	UnitCost float64 `toml:"unit_cost" json:"unit_cost" yaml:"unit_cost"`
	Rule     Rule    `toml:"rule" json:"rule" yaml:"rule"`
}

// EquivalenceValue is an Equivalence evaluated against an accrued total.
type EquivalenceValue struct {
	Equivalence `yaml:",inline"`
	Count       float64 `json:"count" yaml:"count"`
}

// Text renders the count according to the item's rule.
func (v EquivalenceValue) Text() string {
	if v.Rule == RuleWhole {
		return fmt.Sprintf("%.0f", math.Floor(v.Count))
	}
	return fmt.Sprintf("%.1f", v.Count)
}
