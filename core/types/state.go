// Package types - Shareable state snapshot
package types

// ShareState is the versioned compact snapshot that round-trips through the
// state codec. Field names are deliberately short: the encoded token is meant
// to travel in URLs. The token is unsigned; decoding validates syntax only,
// never provenance.
type ShareState struct {
	V  int               `json:"v"`
	UI UIIntent          `json:"ui"`
	UM UIMode            `json:"um"`
	I  map[string]string `json:"i"`
	TD []string          `json:"td"`
	P  []string          `json:"p"`
	H  []string          `json:"h"`
}
