package wikidata

import (
	"fmt"

	"github.com/fcatools/wdcontext/modules/ui"
	"github.com/pkg/errors"
)

// ProlepticGregorianCalendar is the calendar model whose annotation is
// suppressed when rendering timestamps.
const ProlepticGregorianCalendar = "Q1985727"

// Renderer turns snak values into display text. It carries the label table
// and the set of unknown datatypes already complained about, so each
// unrecognized datatype is logged once per run.
type Renderer struct {
	labels map[string]string
	seen   map[string]struct{}
}

func NewRenderer(labels map[string]string) *Renderer {
	return &Renderer{
		labels: labels,
		seen:   make(map[string]struct{}),
	}
}

// Labelled renders an entity ID through the label table, as
// "<label> (<id>)" when a label is known and the bare ID otherwise.
func (r *Renderer) Labelled(id string) string {
	if label, found := r.labels[id]; found {
		return fmt.Sprintf("%s (%s)", label, id)
	}
	return id
}

// Render returns the display text for a snak value. Unknown-value and
// no-value snaks render as literal markers; any other snak type than
// "value" is a contract violation and returns an error.
func (r *Renderer) Render(snak *Snak) (string, error) {
	switch snak.SnakType {
	case SnakSomeValue:
		return "<somevalue>", nil
	case SnakNoValue:
		return "<novalue>", nil
	case SnakValue:
		// fall through to datatype dispatch
	default:
		return "", errors.Errorf("expected a value snak, got %q", snak.SnakType)
	}

	switch DatatypeFromDump(snak.Datatype) {
	case DatatypeItem, DatatypeProperty:
		return r.renderEntityID(snak)
	case DatatypeTime:
		return r.renderTimestamp(snak)
	case DatatypeQuantity:
		return r.renderQuantity(snak)
	case DatatypeGlobeCoordinate:
		return r.renderGlobeCoordinate(snak)
	case DatatypeMonolingualText:
		var value MonolingualTextValue
		if err := qjson.Unmarshal(snak.DataValue.Value, &value); err != nil {
			return "", errors.Wrap(err, "monolingual text payload")
		}
		return value.Text, nil
	case DatatypeString, DatatypeCommonsMedia, DatatypeExternalID, DatatypeMath, DatatypeURL:
		var value string
		if err := qjson.Unmarshal(snak.DataValue.Value, &value); err != nil {
			return "", errors.Wrap(err, "string payload")
		}
		return value, nil
	}

	if _, complained := r.seen[snak.Datatype]; !complained {
		ui.Warn().Msgf("unknown datatype %q", snak.Datatype)
		r.seen[snak.Datatype] = struct{}{}
	}

	// fallback: raw payload dump
	return string(snak.DataValue.Value), nil
}

func (r *Renderer) renderEntityID(snak *Snak) (string, error) {
	return r.Labelled(snak.EntityID()), nil
}

func (r *Renderer) renderTimestamp(snak *Snak) (string, error) {
	var value TimeValue
	if err := qjson.Unmarshal(snak.DataValue.Value, &value); err != nil {
		return "", errors.Wrap(err, "time payload")
	}

	var calendar string
	if calendarid := EntityIDFromURI(value.CalendarModel); calendarid != ProlepticGregorianCalendar {
		calendar = " (" + unannotated(r.labels, calendarid) + ")"
	}

	stamp := value.Time
	for i := 0; i < len(stamp); i++ {
		if stamp[i] == 'T' {
			stamp = stamp[:i] // days
			break
		}
	}

	if value.Precision < 11 { // months
		stamp = truncateDateComponent(stamp)
	}
	if value.Precision < 10 { // years
		stamp = truncateDateComponent(stamp)
	}

	return stamp + calendar, nil
}

// truncateDateComponent drops the last dash-separated component of a
// timestamp like +1999-05-04, leaving the sign on the year alone.
func truncateDateComponent(stamp string) string {
	for i := len(stamp) - 1; i > 0; i-- {
		if stamp[i] == '-' {
			return stamp[:i]
		}
	}
	return stamp
}

func (r *Renderer) renderQuantity(snak *Snak) (string, error) {
	var value QuantityValue
	if err := qjson.Unmarshal(snak.DataValue.Value, &value); err != nil {
		return "", errors.Wrap(err, "quantity payload")
	}

	result := value.Amount

	if value.UpperBound != "" && value.LowerBound != "" {
		result += fmt.Sprintf(" [%s--%s]", value.LowerBound, value.UpperBound)
	}

	if value.Unit != "1" {
		result += " " + unannotated(r.labels, EntityIDFromURI(value.Unit))
	}

	return result, nil
}

func (r *Renderer) renderGlobeCoordinate(snak *Snak) (string, error) {
	var value GlobeCoordinateValue
	if err := qjson.Unmarshal(snak.DataValue.Value, &value); err != nil {
		return "", errors.Wrap(err, "globe coordinate payload")
	}

	globe := unannotated(r.labels, EntityIDFromURI(value.Globe))
	return fmt.Sprintf("%vN %vW +-%v (%s)", value.Latitude, value.Longitude, value.Precision, globe), nil
}

// unannotated looks an ID up in the label table, falling back to the raw ID.
// Units and globes carry the bare label without the "(id)" annotation.
func unannotated(labels map[string]string, id string) string {
	if label, found := labels[id]; found {
		return label
	}
	return id
}
