package wikidata

import (
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/pkg/errors"
)

// SPARQLEndpoint is the public Wikidata query service. Failures here are
// fatal to the run; there is no local retry.
var SPARQLEndpoint = "https://query.wikidata.org/sparql"

const toolBanner = "#TOOL:wdcontext\n%s"

type sparqlResults struct {
	Results struct {
		Bindings []map[string]sparqlBinding `json:"bindings"`
	} `json:"results"`
}

type sparqlBinding struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

func sparqlQuery(query string) (*sparqlResults, error) {
	params := url.Values{}
	params.Set("query", fmt.Sprintf(toolBanner, query))
	params.Set("format", "json")

	resp, err := http.Get(SPARQLEndpoint + "?" + params.Encode())
	if err != nil {
		return nil, errors.Wrap(err, "SPARQL request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("SPARQL request failed with status %v", resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "problem reading SPARQL response")
	}

	var results sparqlResults
	if err := qjson.Unmarshal(body, &results); err != nil {
		return nil, errors.Wrap(err, "problem decoding SPARQL response")
	}
	return &results, nil
}

func instanceQueryForClass(qid, language string, direct bool) string {
	subclass := ""
	if !direct {
		subclass = fmt.Sprintf("wdt:%s*/", PropertySubclassOf)
	}
	return fmt.Sprintf(`SELECT ?qid ?qidLabel WHERE {
    ?qid %swdt:%s wd:%s .
    SERVICE wikibase:label { bd:serviceParam wikibase:language "%s" . }
}`, subclass, PropertyInstanceOf, qid, language)
}

func classesQueryForValuesOf(pid string) string {
	return fmt.Sprintf(`SELECT ?class WHERE {
    hint:Query hint:optimizer "None".
    ?item wdt:%s/wdt:%s ?class .
} GROUP BY ?class`, pid, PropertyInstanceOf)
}

func labelledMapFromBindings(results *sparqlResults, field string) map[string]string {
	label := field + "Label"
	bindings := make(map[string]string)

	for _, binding := range results.Results.Bindings {
		value := EntityIDFromURI(binding[field].Value)
		bindings[value] = binding[label].Value
	}

	return bindings
}

func unlabelledListFromBindings(results *sparqlResults, field string) []string {
	var bindings []string

	for _, binding := range results.Results.Bindings {
		bindings = append(bindings, EntityIDFromURI(binding[field].Value))
	}

	return bindings
}

// AllDirectInstancesInClass returns the IDs and labels of all direct
// instances of the class qid.
func AllDirectInstancesInClass(qid, language string) (map[string]string, error) {
	result, err := sparqlQuery(instanceQueryForClass(qid, language, true))
	if err != nil {
		return nil, err
	}
	return labelledMapFromBindings(result, "qid"), nil
}

// AllInstancesInClass returns the IDs and labels of all instances of the
// class qid, including instances of its subclasses.
func AllInstancesInClass(qid, language string) (map[string]string, error) {
	result, err := sparqlQuery(instanceQueryForClass(qid, language, false))
	if err != nil {
		return nil, err
	}
	return labelledMapFromBindings(result, "qid"), nil
}

// AllDirectClassesForValuesOf returns the IDs of all classes that some
// value of the property pid is a direct instance of.
func AllDirectClassesForValuesOf(pid string) ([]string, error) {
	result, err := sparqlQuery(classesQueryForValuesOf(pid))
	if err != nil {
		return nil, err
	}
	return unlabelledListFromBindings(result, "class"), nil
}
