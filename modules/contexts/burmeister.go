package contexts

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/fcatools/wdcontext/modules/engine"
)

// WriteContext serializes a formal context in Burmeister format: a "B"
// header, object and attribute counts, the label lines, then one
// incidence row per object with X for incident and . for not. Objects and
// attributes are emitted in sorted order so repeated runs are
// reproducible; incidence columns follow the printed attribute order.
func WriteContext(out io.Writer, context *engine.Context, labels map[string]string) error {
	w := bufio.NewWriter(out)

	objects := sortedKeys(context.Objects)
	attributes := sortedKeys(context.Attributes)

	fmt.Fprintln(w, "B")
	fmt.Fprintln(w)
	fmt.Fprintln(w, len(objects))
	fmt.Fprintln(w, len(attributes))
	fmt.Fprintln(w)

	for _, object := range objects {
		fmt.Fprintln(w, RenderLabel(object, labels))
	}
	for _, attribute := range attributes {
		fmt.Fprintln(w, RenderLabel(attribute, labels))
	}

	row := make([]byte, len(attributes))
	for _, object := range objects {
		incidence := context.Incidence[object]
		for i, attribute := range attributes {
			if incidence.Contains(attribute) {
				row[i] = 'X'
			} else {
				row[i] = '.'
			}
		}
		w.Write(row)
		w.WriteByte('\n')
	}

	return w.Flush()
}

// RenderLabel renders an object or attribute label through the label
// table. A leading ^ is kept as the direction marker in front of the
// rendered property; a @[qualifier:text] annotation renders the
// qualifying property through the table and keeps the text verbatim; a
// @<text> annotation is kept verbatim (it was pre-rendered when the
// attribute was coloured).
func RenderLabel(needle string, labels map[string]string) string {
	if label, found := labels[needle]; found {
		return fmt.Sprintf("%s (%s)", label, needle)
	}

	var reverse bool
	var annotation string

	if strings.HasPrefix(needle, "^") {
		reverse = true
		needle = needle[1:]
	}

	if at := strings.LastIndex(needle, "@["); at >= 0 {
		qualifier := strings.TrimSuffix(needle[at+2:], "]")
		needle = needle[:at]

		colon := strings.Index(qualifier, ":")
		pid := qualifier[:colon]
		pq := pid
		if label, found := labels[pid]; found {
			pq = fmt.Sprintf("%s (%s)", label, pid)
		}

		annotation = fmt.Sprintf("@[%s:%s]", pq, qualifier[colon+1:])
	} else if at := strings.LastIndex(needle, "@<"); at >= 0 {
		annotation = fmt.Sprintf("@<%s>", strings.TrimSuffix(needle[at+2:], ">"))
		needle = needle[:at]
	}

	prop := needle
	if label, found := labels[needle]; found {
		prop = fmt.Sprintf("%s (%s)", label, needle)
	}

	marker := ""
	if reverse {
		marker = "^"
	}
	return marker + prop + annotation
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for key := range set {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
