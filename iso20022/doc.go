// Package iso20022 generates pacs.008 payment instruction XML from
// settlement legs (spec.md §4.8). It has no XML library dependency in
// the example pack to draw on, so it uses encoding/xml directly.
package iso20022
