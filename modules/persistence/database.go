package persistence

import (
	"errors"
	"path/filepath"

	"github.com/fcatools/wdcontext/modules/cli"
	"github.com/ugorji/go/codec"
	"go.etcd.io/bbolt"
)

var (
	datastore *bbolt.DB
	mh        codec.JsonHandle
)

func getDB() (*bbolt.DB, error) {
	if datastore != nil {
		return datastore, nil
	}
	var err error
	datastore, err = bbolt.Open(filepath.Join(*cli.Datapath, "cache.bbolt"), 0666, nil)
	return datastore, err
}

// Objects must be able to return a unique key
type Identifiable interface {
	ID() string
}

type Store[i Identifiable] struct {
	db         *bbolt.DB
	cache      map[string]i
	bucketname []byte
}

func GetStorage[i Identifiable](bucketname string, cached bool) (Store[i], error) {
	db, err := getDB()
	if err != nil {
		return Store[i]{}, err
	}
	s := Store[i]{
		db:         db,
		bucketname: []byte(bucketname),
	}
	if cached {
		s.cache = make(map[string]i)
	}
	return s, nil
}

func (s Store[p]) Get(id string) (*p, bool) {
	var result p
	if s.cache != nil {
		if rv, found := s.cache[id]; found {
			return &rv, true
		}
	}
	var data []byte
	if s.db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket(s.bucketname)
		if b == nil {
			return nil
		}
		data = b.Get([]byte(id))
		return nil
	}); data != nil {
		dec := codec.NewDecoderBytes(data, &mh)
		err := dec.Decode(&result)
		if err != nil {
			return nil, false
		}
		if s.cache != nil {
			s.cache[id] = result
		}
		return &result, true
	}
	return nil, false
}

func (s Store[p]) Put(saveme p) error {
	var output []byte
	enc := codec.NewEncoderBytes(&output, &mh)
	err := enc.Encode(saveme)
	if err != nil {
		return err
	}
	id := saveme.ID()
	if id == "" {
		return errors.New("empty ID")
	}
	err = s.db.Update(func(tx *bbolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists(s.bucketname)
		if err != nil {
			return err
		}
		b.Put([]byte(id), output)
		return nil
	})
	if err != nil {
		return err
	}
	if s.cache != nil {
		s.cache[id] = saveme
	}
	return nil
}

func (s Store[p]) Delete(id string) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket(s.bucketname)
		if b == nil {
			return nil
		}
		exists := b.Get([]byte(id))
		err := b.Delete([]byte(id))
		if err != nil {
			return err
		}
		if exists == nil {
			return errors.New("key not found")
		}
		return nil
	})
}
