package wikidata

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Canonical Wikidata properties the index builder keys on.
const (
	PropertyInstanceOf = "P31"
	PropertySubclassOf = "P279"
)

// Entity is one record from a Wikidata JSON dump. Entities are transient:
// they live for the duration of one dump line and are discarded afterwards.
type Entity struct {
	ID     string             `json:"id"`
	Labels map[string]Label   `json:"labels"`
	Claims map[string][]Claim `json:"claims"`
}

type Label struct {
	Language string `json:"language"`
	Value    string `json:"value"`
}

// Label returns the entity label in the given language, if any.
func (e *Entity) Label(language string) (string, bool) {
	l, found := e.Labels[language]
	return l.Value, found
}

func (e *Entity) HasClaims() bool {
	return len(e.Claims) > 0
}

// Claim is a single property-value assertion on an entity.
type Claim struct {
	Rank       string            `json:"rank"`
	MainSnak   Snak              `json:"mainsnak"`
	Qualifiers map[string][]Snak `json:"qualifiers"`
	References []json.RawMessage `json:"references"`
}

const (
	SnakValue     = "value"
	SnakSomeValue = "somevalue"
	SnakNoValue   = "novalue"
)

// Snak is the value slot of a claim or qualifier.
type Snak struct {
	SnakType  string    `json:"snaktype"`
	Property  string    `json:"property"`
	Datatype  string    `json:"datatype"`
	DataValue DataValue `json:"datavalue"`
}

type DataValue struct {
	Type  string          `json:"type"`
	Value json.RawMessage `json:"value"`
}

// Datatype-specific payloads of a DataValue.
type EntityIDValue struct {
	ID         string `json:"id"`
	EntityType string `json:"entity-type"`
	NumericID  int64  `json:"numeric-id"`
}

type TimeValue struct {
	Time          string `json:"time"`
	Precision     int    `json:"precision"`
	CalendarModel string `json:"calendarmodel"`
}

type QuantityValue struct {
	Amount     string `json:"amount"`
	Unit       string `json:"unit"`
	UpperBound string `json:"upperBound"`
	LowerBound string `json:"lowerBound"`
}

type GlobeCoordinateValue struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Precision float64 `json:"precision"`
	Globe     string  `json:"globe"`
}

type MonolingualTextValue struct {
	Text     string `json:"text"`
	Language string `json:"language"`
}

// Datatype is the closed set of snak datatypes the renderer knows about.
// Anything else maps to DatatypeUnknown and gets the raw-payload fallback.
type Datatype int

const (
	DatatypeUnknown Datatype = iota
	DatatypeItem
	DatatypeProperty
	DatatypeTime
	DatatypeQuantity
	DatatypeGlobeCoordinate
	DatatypeMonolingualText
	DatatypeString
	DatatypeCommonsMedia
	DatatypeExternalID
	DatatypeMath
	DatatypeURL
)

func DatatypeFromDump(s string) Datatype {
	switch s {
	case "wikibase-item":
		return DatatypeItem
	case "wikibase-property":
		return DatatypeProperty
	case "time":
		return DatatypeTime
	case "quantity":
		return DatatypeQuantity
	case "globe-coordinate":
		return DatatypeGlobeCoordinate
	case "monolingualtext":
		return DatatypeMonolingualText
	case "string":
		return DatatypeString
	case "commonsMedia":
		return DatatypeCommonsMedia
	case "external-id":
		return DatatypeExternalID
	case "math":
		return DatatypeMath
	case "url":
		return DatatypeURL
	}
	return DatatypeUnknown
}

// EntityIDFromURI extracts the trailing entity ID from a Wikidata URI like
// http://www.wikidata.org/entity/Q42.
func EntityIDFromURI(uri string) string {
	return uri[strings.LastIndex(uri, "/")+1:]
}

// EntityID returns the normalized identifier (Q<n> or P<n>) if this snak
// references another entity, otherwise the empty string. No-value and
// unknown-value snaks yield the empty string without error.
func (s *Snak) EntityID() string {
	if s.SnakType == SnakNoValue || s.SnakType == SnakSomeValue {
		return ""
	}

	if s.DataValue.Type != "wikibase-entityid" {
		return ""
	}

	var value EntityIDValue
	if err := qjson.Unmarshal(s.DataValue.Value, &value); err != nil {
		return ""
	}

	if value.ID != "" {
		return value.ID
	}
	switch value.EntityType {
	case "item":
		return fmt.Sprintf("Q%d", value.NumericID)
	case "property":
		return fmt.Sprintf("P%d", value.NumericID)
	}
	return ""
}
