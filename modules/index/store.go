package index

import (
	"os"

	"github.com/pierrec/lz4/v4"
	"github.com/pkg/errors"
	"github.com/ugorji/go/codec"
)

var mh codec.MsgpackHandle

// Save writes the indexes to path as an lz4-compressed msgpack map with
// the three fields labels, instances and subclasses.
func (indexes *Indexes) Save(path string) error {
	outfile, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "problem creating index file %v", path)
	}
	defer outfile.Close()

	boutfile := lz4.NewWriter(outfile)

	enc := codec.NewEncoder(boutfile, &mh)
	err = enc.Encode(map[string]interface{}{
		"labels":     indexes.Labels,
		"instances":  indexes.Instances,
		"subclasses": indexes.Subclasses,
	})
	if err != nil {
		return errors.Wrapf(err, "problem encoding index file %v", path)
	}

	return boutfile.Close()
}

// Load reads an index file written by Save. A file missing one of the
// three expected fields is a schema mismatch and fails.
func Load(path string) (*Indexes, error) {
	infile, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "problem opening index file %v", path)
	}
	defer infile.Close()

	binfile := lz4.NewReader(infile)

	var raw struct {
		Labels     map[string]string `codec:"labels"`
		Instances  map[string]IDSet  `codec:"instances"`
		Subclasses map[string]IDSet  `codec:"subclasses"`
	}
	dec := codec.NewDecoder(binfile, &mh)
	if err := dec.Decode(&raw); err != nil {
		return nil, errors.Wrapf(err, "problem decoding index file %v", path)
	}

	if raw.Labels == nil || raw.Instances == nil || raw.Subclasses == nil {
		return nil, errors.Errorf("index file %v does not have the expected labels/instances/subclasses fields", path)
	}

	return &Indexes{
		Labels:     raw.Labels,
		Instances:  raw.Instances,
		Subclasses: raw.Subclasses,
	}, nil
}
