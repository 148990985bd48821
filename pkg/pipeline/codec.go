package pipeline

import (
	"io"
	"os"

	"github.com/fxamacker/cbor/v2"
	"github.com/pkg/errors"

	"github.com/tomas-bustamante-h/rendimiento-escolar-cl/pkg/data"
)

// formatVersion is bumped whenever the persisted layout changes.
const formatVersion = 1

// encMode uses Core Deterministic Encoding so the same fitted pipeline
// always serializes to identical bytes.
var encMode cbor.EncMode

var decMode cbor.DecMode

func init() {
	var err error
	encMode, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("pipeline: CBOR encoder initialization failed: " + err.Error())
	}
	decMode, err = cbor.DecOptions{}.DecMode()
	if err != nil {
		panic("pipeline: CBOR decoder initialization failed: " + err.Error())
	}
}

type envelope struct {
	Version  int       `cbor:"1,keyasint"`
	Pipeline *Pipeline `cbor:"2,keyasint"`
}

// Encode writes p to w.
func (p *Pipeline) Encode(w io.Writer) error {
	return encMode.NewEncoder(w).Encode(envelope{Version: formatVersion, Pipeline: p})
}

// Decode reads a pipeline written by Encode.
func Decode(r io.Reader) (*Pipeline, error) {
	var env envelope
	if err := decMode.NewDecoder(r).Decode(&env); err != nil {
		return nil, errors.Wrapf(data.ErrMalformed, "decode model: %v", err)
	}
	if env.Version != formatVersion {
		return nil, errors.Wrapf(data.ErrMalformed, "model format version %d, want %d", env.Version, formatVersion)
	}
	if env.Pipeline == nil || env.Pipeline.Encoder == nil || env.Pipeline.Regressor == nil {
		return nil, errors.Wrap(data.ErrMalformed, "model file holds an incomplete pipeline")
	}
	return env.Pipeline, nil
}

// Save persists p at path, creating parent directories. The file is
// replaced atomically.
func (p *Pipeline) Save(path string) error {
	return data.WriteFileAtomic(path, p.Encode)
}

// Load restores a pipeline persisted by Save.
func Load(path string) (*Pipeline, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, errors.Wrapf(data.ErrNotFound, "%s", path)
		}
		return nil, errors.Wrapf(data.ErrMalformed, "open %s: %v", path, err)
	}
	defer file.Close()
	return Decode(file)
}
