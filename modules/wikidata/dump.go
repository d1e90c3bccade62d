package wikidata

import (
	"bufio"
	"io"
	"os"
	"strings"
	"sync/atomic"

	"github.com/fcatools/wdcontext/modules/ui"
	jsoniter "github.com/json-iterator/go"
	"github.com/pierrec/lz4/v4"
	"github.com/pkg/errors"
)

var qjson = jsoniter.ConfigCompatibleWithStandardLibrary

// Entities in current dumps can exceed the default scanner buffer by a lot.
const maxLineSize = 256 * 1024 * 1024

// ProcessDump streams the entity dump at path, calling cb once per parsed
// entity. Each line is one JSON entity terminated by a two character
// delimiter (",\n" in the array-wrapped dumps Wikidata publishes), which is
// stripped before parsing; lines that do not parse are skipped. Dumps with
// an .lz4 suffix are decompressed on the fly.
func ProcessDump(path string, cb func(*Entity)) error {
	dumpfile, err := os.Open(path)
	if err != nil {
		return errors.Wrapf(err, "problem opening dump file %v", path)
	}
	defer dumpfile.Close()

	dumpstat, _ := dumpfile.Stat()
	pb := ui.ProgressBar("Processing "+path, dumpstat.Size())
	pb.ShowBytes = true
	defer pb.Finish()

	counter := countingReader{r: dumpfile}

	var source io.Reader = &counter
	if strings.HasSuffix(path, ".lz4") {
		source = lz4.NewReader(source)
	}

	scanner := bufio.NewScanner(source)
	scanner.Buffer(make([]byte, 64*1024), maxLineSize)

	for scanner.Scan() {
		line := scanner.Bytes()

		// The scanner already ate the newline, the trailing comma goes here
		if len(line) < 1 {
			continue
		}
		line = line[:len(line)-1]

		var entity Entity
		if err := qjson.Unmarshal(line, &entity); err != nil {
			continue
		}

		cb(&entity)
		pb.Set(counter.count())
	}

	return errors.Wrapf(scanner.Err(), "problem reading dump file %v", path)
}

type countingReader struct {
	r io.Reader
	n int64
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	atomic.AddInt64(&c.n, int64(n))
	return n, err
}

func (c *countingReader) count() int64 {
	return atomic.LoadInt64(&c.n)
}
