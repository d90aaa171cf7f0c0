// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package session owns the per-session conversational state and the
// controllers that mutate it.
package session

// =============================================================================
// LOCALE TYPE
// =============================================================================

// Locale is a language code sent with every question submission.
type Locale string

const (
	LocaleEnglish Locale = "en"
	LocaleHindi   Locale = "hi"
)

// DefaultLocale is the locale active at session start.
const DefaultLocale = LocaleEnglish

// supportedLocales maps every accepted code to its display name.
// The order of Locales() follows localeOrder.
var supportedLocales = map[Locale]string{
	LocaleEnglish: "English",
	LocaleHindi:   "हिंदी",
}

var localeOrder = []Locale{LocaleEnglish, LocaleHindi}

// Code returns the wire-format language code.
func (l Locale) Code() string {
	return string(l)
}

// DisplayName returns the human-readable name for the locale.
func (l Locale) DisplayName() string {
	if name, ok := supportedLocales[l]; ok {
		return name
	}
	return string(l)
}

// IsSupported reports whether the locale is in the supported set.
func (l Locale) IsSupported() bool {
	_, ok := supportedLocales[l]
	return ok
}

// Locales returns the supported locales in display order.
func Locales() []Locale {
	out := make([]Locale, len(localeOrder))
	copy(out, localeOrder)
	return out
}

// NextLocale returns the locale following l in display order, wrapping
// around. Used by the UI to cycle languages with a single key.
func NextLocale(l Locale) Locale {
	for i, cur := range localeOrder {
		if cur == l {
			return localeOrder[(i+1)%len(localeOrder)]
		}
	}
	return DefaultLocale
}
