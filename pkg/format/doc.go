// Package format collects the text formatting helpers used around page
// customizations: truncating headlines, capitalizing names, masking contact
// details before rendering, and locale-aware number and currency output.
//
// Number and currency formatting delegate grouping and decimal separators to
// golang.org/x/text, so "1234567.5" renders as "1,234,567.5" for English and
// "1.234.567,5" for German without any per-locale code here.
//
// All helpers are pure and never return an error; malformed input falls back
// to a safe result, usually the input itself.
package format
