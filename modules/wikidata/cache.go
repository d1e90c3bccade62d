package wikidata

import (
	"github.com/fcatools/wdcontext/modules/persistence"
	"github.com/fcatools/wdcontext/modules/ui"
	"github.com/pkg/errors"
)

// classInstances caches one properties-in-class SPARQL response, so
// repeated runs against the same class skip the query service.
type classInstances struct {
	Class     string
	Instances map[string]string
}

func (c classInstances) ID() string {
	return c.Class
}

// CachedDirectInstancesInClass is AllDirectInstancesInClass behind the
// local query cache.
func CachedDirectInstancesInClass(qid, language string) (map[string]string, error) {
	store, err := persistence.GetStorage[classInstances]("instances-in-class", false)
	if err != nil {
		return nil, errors.Wrap(err, "problem opening query cache")
	}

	if cached, found := store.Get(qid); found {
		ui.Debug().Msgf("Using cached instances for class %v", qid)
		return cached.Instances, nil
	}

	resolved, err := AllDirectInstancesInClass(qid, language)
	if err != nil {
		return nil, err
	}

	if err := store.Put(classInstances{Class: qid, Instances: resolved}); err != nil {
		ui.Warn().Msgf("Problem caching instances for class %v: %v", qid, err)
	}

	return resolved, nil
}
