// Package data ships the bundled sample dataset.
package data

import _ "embed"

// BundledName is the display name of the sample dataset.
const BundledName = "econsult_comments"

//go:embed econsult_comments.csv
var bundledCSV []byte

// BundledCSV returns the raw sample dataset.
func BundledCSV() []byte {
	return bundledCSV
}
